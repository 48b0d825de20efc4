package planner

import (
	"sort"
	"strings"
)

// supportedExtensions is the fixed set of image extensions, lower-case.
var supportedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// IsSupported reports whether name has a supported image extension,
// ignoring case.
func IsSupported(name string) bool {
	return supportedExtensions[strings.ToLower(Ext(name))]
}

// Ext returns the extension of name, including the dot, with its original
// case. Leading dots belong to the stem, so a dotfile such as ".jpg" has no
// extension.
func Ext(name string) string {
	stem := strings.TrimLeft(name, ".")
	i := strings.LastIndexByte(stem, '.')
	if i < 0 {
		return ""
	}
	return stem[i:]
}

// SupportedExtensions returns the supported extensions in sorted order.
func SupportedExtensions() []string {
	exts := make([]string, 0, len(supportedExtensions))
	for ext := range supportedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
