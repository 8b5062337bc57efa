// Package storage implements access to the file system backing the editor's
// pages and directory listings.
package storage

import (
	"io/fs"
	"os"
)

// FS is the file system access needed by the editor.
type FS interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
	ReadDir(path string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)

	// CreateFile creates a new empty file. It fails if the file exists.
	CreateFile(path string) error
	Mkdir(path string) error
	Remove(path string) error
	RemoveAll(path string) error
	Rename(from, to string) error
}

// OSFS implements FS on the operating system's file system.
type OSFS struct {
	FileMode os.FileMode
	DirMode  os.FileMode
}

// NewOSFS returns a pointer to an OSFS using default permissions.
func NewOSFS() *OSFS {
	return &OSFS{FileMode: 0644, DirMode: 0755}
}

// ReadFile reads the full contents of the file.
func (o *OSFS) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// WriteFile writes data to the file, truncating or creating it.
func (o *OSFS) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, o.FileMode)
}

// ReadDir lists the directory.
func (o *OSFS) ReadDir(path string) ([]fs.DirEntry, error) { return os.ReadDir(path) }

// Stat returns file info, following symlinks.
func (o *OSFS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

// CreateFile creates a new empty file. It fails if the file exists.
func (o *OSFS) CreateFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, o.FileMode)
	if err != nil {
		return err
	}
	return f.Close()
}

// Mkdir creates a directory.
func (o *OSFS) Mkdir(path string) error { return os.Mkdir(path, o.DirMode) }

// Remove removes a file or empty directory.
func (o *OSFS) Remove(path string) error { return os.Remove(path) }

// RemoveAll removes a path and everything it contains.
func (o *OSFS) RemoveAll(path string) error { return os.RemoveAll(path) }

// Rename renames (moves) a path.
func (o *OSFS) Rename(from, to string) error { return os.Rename(from, to) }
