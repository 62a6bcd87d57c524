package types

import "io/fs"

// FS is the filesystem abstraction used throughout the generator.
// Implementations exist for the real OS filesystem, an in-memory filesystem
// for tests, and read-only embedded template sets.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
}
