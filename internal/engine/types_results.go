package engine

import (
	"github.com/danieljhkim/imgrename/internal/planner"
)

// PreviewResult represents a computed plan that has not been applied.
type PreviewResult struct {
	// Folder is the planned folder
	Folder string `json:"folder"`

	// Theme is the normalized theme
	Theme string `json:"theme"`

	// Plan is the generated plan
	Plan *planner.RenamePlan `json:"-"`
}

// ExecuteResult represents the outcome of applying a plan.
type ExecuteResult struct {
	// Renamed is the number of files renamed successfully
	Renamed int `json:"renamed"`

	// Skipped is the number of entries not attempted
	Skipped int `json:"skipped"`

	// Failed lists the renames that were attempted and failed
	Failed []Failure `json:"failed"`
}

// Failure describes a single rename that failed.
type Failure struct {
	OldPath string `json:"old_path"`
	NewPath string `json:"new_path"`
	Err     string `json:"error"`
}

// RenameResult represents the result of renaming one folder.
type RenameResult struct {
	// Plan is the plan that was (or, for DryRun, would be) applied
	Plan *planner.RenamePlan

	// Execute is nil for DryRun
	Execute *ExecuteResult
}

// Renamed returns the number of files renamed, 0 for a dry run.
func (r *RenameResult) Renamed() int {
	if r == nil || r.Execute == nil {
		return 0
	}
	return r.Execute.Renamed
}

// FolderResult summarises one folder processed by AutoRename.
type FolderResult struct {
	// Folder is the absolute or root-joined path of the folder
	Folder string `json:"folder"`

	// Theme is the normalized theme derived from the folder name
	Theme string `json:"theme"`

	// Planned is the number of eligible images found
	Planned int `json:"planned"`

	// Renamed is the number of files renamed (0 for DryRun)
	Renamed int `json:"renamed"`

	// Skipped is the number of entries that were not renamed
	Skipped int `json:"skipped"`
}

// AutoRenameResult represents the result of an AutoRename run.
type AutoRenameResult struct {
	// Root is the root folder
	Root string `json:"root"`

	// Folders lists every processed folder in walk order
	Folders []FolderResult `json:"folders"`

	// Renamed is the total number of files renamed
	Renamed int `json:"renamed"`
}
