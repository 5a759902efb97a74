package filesystem

import (
	"io/fs"

	"github.com/spf13/afero"

	"github.com/arthur-debert/xml2conf/pkg/types"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewAferoFS creates a new afero filesystem implementation
func NewAferoFS(fs afero.Fs) types.FS {
	return &aferoFS{fs: fs}
}

// NewMemoryFS returns an in-memory filesystem, mostly for tests
func NewMemoryFS() types.FS {
	return NewAferoFS(afero.NewMemMapFs())
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

// WriteFile stages data in a sibling temp file and renames it into place,
// mirroring the OS implementation's atomic replace.
func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	tmp := name + ".tmp"
	if err := afero.WriteFile(a.fs, tmp, data, perm); err != nil {
		return err
	}
	if err := a.fs.Rename(tmp, name); err != nil {
		_ = a.fs.Remove(tmp)
		return err
	}
	return nil
}
