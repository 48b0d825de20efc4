package engine

// RenameRequest represents a request to preview or rename one folder.
type RenameRequest struct {
	// Folder is the folder whose images are renamed
	Folder string

	// Theme is the raw, user-supplied theme label
	Theme string

	// StartIndex is the sequence number of the first file (>= 1)
	StartIndex int

	// DryRun performs planning only without making changes
	DryRun bool
}

// AutoRenameRequest represents a request to rename every folder below a root.
type AutoRenameRequest struct {
	// Root is the top of the tree; its own files are never renamed
	Root string

	// Exclude holds doublestar patterns, relative to Root, of folders to skip
	// together with everything below them
	Exclude []string

	// DryRun plans every folder without renaming anything
	DryRun bool

	// OnFolder, if set, is called after each folder has been processed
	OnFolder func(FolderResult)
}
