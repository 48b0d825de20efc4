// Package theme turns free-text labels into filename prefixes.
package theme

import (
	"errors"
	"path/filepath"
	"strings"
	"unicode"
)

var (
	// ErrEmpty indicates the theme is empty after normalization.
	ErrEmpty = errors.New("theme is empty")

	// ErrPathSeparator indicates the theme cannot be used as a single
	// filename component.
	ErrPathSeparator = errors.New("theme contains a path separator")

	// ErrReserved indicates the theme is a relative path element.
	ErrReserved = errors.New("theme is a reserved name")
)

// Normalize trims raw, replaces every run of whitespace with a single
// underscore and then collapses repeated underscores. An empty result means
// the theme is unusable.
//
// No other characters are filtered; see Validate.
func Normalize(raw string) string {
	t := strings.TrimSpace(raw)
	if t == "" {
		return ""
	}

	// A run mixing whitespace and underscores ends up as one underscore
	// either way, so both are folded in a single pass.
	var b strings.Builder
	b.Grow(len(t))
	inRun := false
	for _, r := range t {
		if r == '_' || unicode.IsSpace(r) {
			if !inRun {
				b.WriteByte('_')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

// Validate checks that a normalized theme can be embedded in a filename.
func Validate(normalized string) error {
	if normalized == "" {
		return ErrEmpty
	}
	if strings.ContainsAny(normalized, `/\`) || strings.ContainsRune(normalized, filepath.Separator) {
		return ErrPathSeparator
	}
	if normalized == "." || normalized == ".." {
		return ErrReserved
	}
	return nil
}

// FromFolder derives a theme from the base name of a folder.
func FromFolder(folder string) string {
	base := filepath.Base(filepath.Clean(folder))
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return Normalize(base)
}
