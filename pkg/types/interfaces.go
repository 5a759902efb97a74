package types

import (
	"io/fs"
)

// FS is the filesystem interface required by the translation pipeline
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)

	// WriteFile must replace name atomically: readers observe either the
	// previous content or the complete new content.
	WriteFile(name string, data []byte, perm fs.FileMode) error
}
