// Package planner handles the planning phase of batch renames.
//
// The planner generates deterministic rename plans for a single folder. It
// lists eligible image files, orders them, assigns sequential theme-prefixed
// names and classifies every entry as safe to rename or to be skipped.
//
// Key responsibilities:
//   - Generate RenamePlan with entries in filename order
//   - Compute a zero-padded digit width that never truncates an index
//   - Detect collisions with unrelated files and skip those entries
//   - Allow case-only renames on case-insensitive filesystems
//
// Planning only reads the filesystem, so the same plan can back a preview
// and the rename that follows it.
package planner
