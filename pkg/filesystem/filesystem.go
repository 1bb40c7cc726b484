package filesystem

import (
	"io/fs"

	"github.com/spf13/afero"
)

// FS is the types.FS used everywhere in dashkit: an afero filesystem, backed
// by the OS in production and by memory in tests.
type FS struct {
	afero.Afero
}

// New wraps base.
func New(base afero.Fs) *FS {
	return &FS{Afero: afero.Afero{Fs: base}}
}

// NewOS returns the real filesystem.
func NewOS() *FS {
	return New(afero.NewOsFs())
}

// NewMemory returns an empty in-memory filesystem.
func NewMemory() *FS {
	return New(afero.NewMemMapFs())
}

// ReadFile reads name. Directories are rejected up front since the memory
// backend would otherwise return an empty read.
func (f *FS) ReadFile(name string) ([]byte, error) {
	info, err := f.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return f.Afero.ReadFile(name)
}

// ReadDir lists name sorted by file name.
func (f *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := f.Afero.ReadDir(name)
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = fs.FileInfoToDirEntry(info)
	}
	return entries, nil
}
