// Package fsops provides the filesystem operations used by imgrename.
//
// Every filesystem access made while planning or applying renames goes
// through the FS interface so that planning can be exercised against
// in-memory doubles (case-insensitive volumes, failing renames) in tests.
//
// Key features:
//   - Read-only queries used by the planner (ReadDir, Stat, Exists)
//   - In-place renames used by the executor
//   - Same-file detection that survives case-insensitive filesystems
package fsops

import (
	"fmt"
	"os"
	"path/filepath"
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// Stat returns file info, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// Lstat returns file info without following symlinks.
	Lstat(path string) (os.FileInfo, error)

	// ReadDir lists a directory, sorted by filename.
	ReadDir(path string) ([]os.DirEntry, error)

	// Rename moves oldpath to newpath in place.
	Rename(oldpath, newpath string) error

	// Exists checks if a path exists.
	Exists(path string) (bool, error)

	// SameFile reports whether two directory entries are the same file on
	// disk. Symlinks are not followed. It returns an error when identity
	// cannot be determined.
	SameFile(a, b string) (bool, error)

	// Abs returns an absolute representation of path.
	Abs(path string) (string, error)
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

// Stat returns file info, following symlinks.
func (fs *RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Lstat returns file info without following symlinks.
func (fs *RealFS) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// ReadDir lists a directory, sorted by filename.
func (fs *RealFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

// Rename moves oldpath to newpath in place.
func (fs *RealFS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Exists checks if a path exists.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// SameFile compares the device and inode (or the platform equivalent) of
// the two entries. A symlink is never the same file as its target.
func (fs *RealFS) SameFile(a, b string) (bool, error) {
	infoA, err := os.Lstat(a)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", a, err)
	}
	infoB, err := os.Lstat(b)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", b, err)
	}
	return os.SameFile(infoA, infoB), nil
}

// Abs returns an absolute representation of path.
func (fs *RealFS) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

// IsDir reports whether path exists and is a directory.
func IsDir(fs FS, path string) bool {
	info, err := fs.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
