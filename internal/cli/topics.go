package cli

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md
var topicFiles embed.FS

// helpTopics returns the embedded topic documents rooted at their directory
func helpTopics() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return nil
	}
	return sub
}
