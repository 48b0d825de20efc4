package fsops

import (
	"path/filepath"
	"strings"
)

// SameFile reports whether a and b denote the same underlying file.
//
// The filesystem's identity check is tried first. When it is unavailable or
// fails (one path missing, stat error), the absolute, case-folded forms of the
// two paths are compared instead so that case-only renames on case-insensitive
// volumes (test.jpg -> TEST.jpg) are still recognised. SameFile never fails.
func SameFile(fs FS, a, b string) bool {
	same, err := fs.SameFile(a, b)
	if err == nil {
		return same
	}
	return SamePath(fs, a, b)
}

// SamePath reports whether a and b differ at most in letter case once made
// absolute and cleaned.
func SamePath(fs FS, a, b string) bool {
	return foldPath(fs, a) == foldPath(fs, b)
}

// foldPath returns a canonical, case-folded absolute path.
func foldPath(fs FS, path string) string {
	abs, err := fs.Abs(path)
	if err != nil {
		abs = path
	}
	return strings.ToLower(filepath.Clean(abs))
}
