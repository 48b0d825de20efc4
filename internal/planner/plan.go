package planner

import "strconv"

// MaxStartIndex is the largest accepted first sequence number.
const MaxStartIndex = 9999

// RenamePlan represents a plan to rename the images in one folder.
type RenamePlan struct {
	// Folder is the folder whose files are renamed
	Folder string

	// Theme is the normalized filename prefix (empty if the theme was invalid)
	Theme string

	// StartIndex is the sequence number of the first entry
	StartIndex int

	// Entries is the ordered list of proposed renames
	Entries []Entry
}

// Entry represents one proposed rename.
type Entry struct {
	// OldPath is the current path of the file
	OldPath string `json:"old_path"`

	// NewPath is the path the file would be renamed to
	NewPath string `json:"new_path"`

	// OldName is the current filename
	OldName string `json:"old_name"`

	// NewName is the proposed filename
	NewName string `json:"new_name"`

	// WillRename is false when the entry must be skipped
	WillRename bool `json:"will_rename"`
}

// NewRenamePlan creates a new empty RenamePlan.
func NewRenamePlan(folder, theme string, startIndex int) *RenamePlan {
	return &RenamePlan{
		Folder:     folder,
		Theme:      theme,
		StartIndex: startIndex,
		Entries:    []Entry{},
	}
}

// Len returns the number of planned entries.
func (p *RenamePlan) Len() int {
	return len(p.Entries)
}

// IsEmpty returns true if the plan has no entries.
func (p *RenamePlan) IsEmpty() bool {
	return len(p.Entries) == 0
}

// RenameCount returns the number of entries that will be renamed.
func (p *RenamePlan) RenameCount() int {
	n := 0
	for _, e := range p.Entries {
		if e.WillRename {
			n++
		}
	}
	return n
}

// SkipCount returns the number of entries that will be skipped.
func (p *RenamePlan) SkipCount() int {
	return len(p.Entries) - p.RenameCount()
}

// AddEntry adds an entry to the plan.
func (p *RenamePlan) AddEntry(e Entry) {
	p.Entries = append(p.Entries, e)
}

// DigitWidth returns the zero-padding width for a batch of count files
// numbered from startIndex: at least 2, and wide enough for the last index.
func DigitWidth(startIndex, count int) int {
	last := startIndex + count - 1
	if w := len(strconv.Itoa(last)); w > 2 {
		return w
	}
	return 2
}
