package planner

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/danieljhkim/imgrename/internal/fsops"
	"github.com/danieljhkim/imgrename/internal/theme"
)

// BuildRenamePlan generates a deterministic plan to rename the images in
// folder to theme_NN.ext, numbering from startIndex.
//
// BuildRenamePlan never fails: an invalid theme, a start index outside
// [1, MaxStartIndex] and a missing or unreadable folder all yield an empty
// plan. Callers that need to
// tell those cases apart validate their input first.
func BuildRenamePlan(fs fsops.FS, folder, rawTheme string, startIndex int) *RenamePlan {
	t := theme.Normalize(rawTheme)
	if theme.Validate(t) != nil {
		return NewRenamePlan(folder, "", startIndex)
	}
	plan := NewRenamePlan(folder, t, startIndex)
	if startIndex < 1 || startIndex > MaxStartIndex {
		return plan
	}

	files := listImages(fs, folder)
	if len(files) == 0 {
		return plan
	}

	width := DigitWidth(startIndex, len(files))
	checker := NewConflictChecker(fs)

	for i, name := range files {
		newName := fmt.Sprintf("%s_%0*d%s", t, width, startIndex+i, Ext(name))
		oldPath := filepath.Join(folder, name)
		newPath := filepath.Join(folder, newName)

		plan.AddEntry(Entry{
			OldPath:    oldPath,
			NewPath:    newPath,
			OldName:    name,
			NewName:    newName,
			WillRename: checker.ShouldRename(oldPath, newPath),
		})
	}

	return plan
}

// listImages returns the supported image filenames in folder in plain string
// order. Directories are ignored even if their name looks like an image.
func listImages(fs fsops.FS, folder string) []string {
	entries, err := fs.ReadDir(folder)
	if err != nil {
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !IsSupported(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}

	sort.Strings(files)
	return files
}
