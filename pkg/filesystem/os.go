package filesystem

import (
	"io/fs"
	"os"

	"github.com/google/renameio/v2"

	"github.com/arthur-debert/xml2conf/pkg/types"
)

// osFS implements types.FS using the OS filesystem
type osFS struct{}

// NewOS creates a new OS filesystem implementation
func NewOS() types.FS {
	return &osFS{}
}

func (o *osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (o *osFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile writes to a temporary file in the destination directory, syncs
// it and renames it over name. On failure name is left untouched.
func (o *osFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return renameio.WriteFile(name, data, perm)
}
