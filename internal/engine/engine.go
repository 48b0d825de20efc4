// Package engine provides the core business logic for imgrename operations.
//
// The engine package acts as the orchestration layer between CLI commands and
// lower-level operations. It validates user input, builds rename plans and
// applies them to the filesystem.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Preview/Rename: Plans and applies the renames of a single folder
//   - Execute: Applies a plan, skipping unsafe entries and tolerating failures
//   - AutoRename: Renames every folder below a root using the folder's name
package engine

import (
	"github.com/rs/zerolog"

	"github.com/danieljhkim/imgrename/internal/fsops"
)

// Engine orchestrates all imgrename operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs     fsops.FS
	logger zerolog.Logger
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, logger zerolog.Logger) *Engine {
	return &Engine{
		fs:     fs,
		logger: logger,
	}
}
