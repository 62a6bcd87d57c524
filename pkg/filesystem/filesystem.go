// Package filesystem provides types.FS implementations backed by afero,
// plus the shared text-writing primitive every generated file goes through.
package filesystem

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/pkgsmith/pkgsmith/pkg/errors"
	"github.com/pkgsmith/pkgsmith/pkg/types"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// New wraps an afero filesystem in the types.FS interface.
func New(fsys afero.Fs) types.FS {
	return &aferoFS{fs: fsys}
}

// NewOS returns a types.FS backed by the real operating system filesystem.
func NewOS() types.FS {
	return New(afero.NewOsFs())
}

// NewMemory returns an empty in-memory types.FS, used in tests.
func NewMemory() types.FS {
	return New(afero.NewMemMapFs())
}

// NewReadOnlyIOFS adapts a standard library fs.FS (such as an embed.FS) to
// types.FS. Write operations fail.
func NewReadOnlyIOFS(fsys fs.FS) types.FS {
	return New(afero.FromIOFS{FS: fsys})
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

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := afero.ReadDir(a.fs, name)
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	return entries, nil
}

// WriteText writes text to path, creating parent directories and ensuring
// the content ends with exactly the text plus a trailing newline when one is
// missing. Re-running with identical content produces byte-identical output.
func WriteText(fsys types.FS, path, text string) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "creating directory for %s", path)
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	if err := fsys.WriteFile(path, []byte(text), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "writing %s", path)
	}
	return nil
}

// Exists reports whether path exists on fsys.
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}
