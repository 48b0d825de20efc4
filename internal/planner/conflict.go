package planner

import "github.com/danieljhkim/imgrename/internal/fsops"

// ConflictChecker decides whether a planned rename is safe to perform.
type ConflictChecker struct {
	fs fsops.FS
}

// NewConflictChecker creates a new ConflictChecker.
func NewConflictChecker(fs fsops.FS) *ConflictChecker {
	return &ConflictChecker{fs: fs}
}

// ShouldRename returns true if oldPath can be renamed to newPath without
// destroying another file.
//
// A rename onto itself is a no-op and is skipped. A missing target is always
// safe. An existing target is only safe for a case-only rename of the source
// file itself on a case-insensitive filesystem. Hard links to the source
// under another name are skipped, since renaming onto them does nothing.
func (c *ConflictChecker) ShouldRename(oldPath, newPath string) bool {
	if oldPath == newPath {
		return false
	}

	exists, err := c.fs.Exists(newPath)
	if err == nil && !exists {
		return true
	}

	// Target exists, or its existence could not be determined.
	return fsops.SamePath(c.fs, oldPath, newPath) && fsops.SameFile(c.fs, oldPath, newPath)
}
