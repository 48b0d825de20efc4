package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/danieljhkim/imgrename/internal/fsops"
	"github.com/danieljhkim/imgrename/internal/planner"
	"github.com/danieljhkim/imgrename/internal/theme"
)

// Preview builds the rename plan for a folder without touching it.
func (e *Engine) Preview(ctx context.Context, req *RenameRequest) (*PreviewResult, error) {
	normalized, err := e.validateRename(req)
	if err != nil {
		return nil, err
	}

	plan := planner.BuildRenamePlan(e.fs, req.Folder, req.Theme, req.StartIndex)
	e.logger.Debug().
		Str("folder", req.Folder).
		Str("theme", normalized).
		Int("entries", plan.Len()).
		Int("skipped", plan.SkipCount()).
		Msg("planned folder")

	return &PreviewResult{
		Folder: req.Folder,
		Theme:  normalized,
		Plan:   plan,
	}, nil
}

// Rename plans the folder and applies the plan.
//
// Algorithm steps:
// 1. Validate folder, theme and start index
// 2. Build the plan (same code path as Preview)
// 3. Execute the plan (if not DryRun)
// 4. Return result
func (e *Engine) Rename(ctx context.Context, req *RenameRequest) (*RenameResult, error) {
	preview, err := e.Preview(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.DryRun {
		return &RenameResult{Plan: preview.Plan}, nil
	}

	exec := e.Execute(ctx, preview.Plan)
	e.logger.Info().
		Str("folder", req.Folder).
		Int("renamed", exec.Renamed).
		Int("skipped", exec.Skipped).
		Int("failed", len(exec.Failed)).
		Msg("renamed folder")

	return &RenameResult{
		Plan:    preview.Plan,
		Execute: exec,
	}, nil
}

// validateRename checks the request and returns the normalized theme.
func (e *Engine) validateRename(req *RenameRequest) (string, error) {
	if req == nil || strings.TrimSpace(req.Folder) == "" {
		return "", fmt.Errorf("%w: folder is required", ErrValidation)
	}

	normalized := theme.Normalize(req.Theme)
	if normalized == "" {
		return "", fmt.Errorf("%w: theme is required", ErrValidation)
	}
	if err := theme.Validate(normalized); err != nil {
		return "", fmt.Errorf("%w: theme %q: %v", ErrValidation, normalized, err)
	}

	if req.StartIndex < 1 || req.StartIndex > planner.MaxStartIndex {
		return "", fmt.Errorf("%w: start index must be between 1 and %d, got %d", ErrValidation, planner.MaxStartIndex, req.StartIndex)
	}

	if err := e.requireDir(req.Folder); err != nil {
		return "", err
	}

	return normalized, nil
}

// requireDir returns ErrNotFound unless path is an existing directory.
func (e *Engine) requireDir(path string) error {
	if fsops.IsDir(e.fs, path) {
		return nil
	}
	exists, err := e.fs.Exists(path)
	if err == nil && exists {
		return fmt.Errorf("%w: %s is not a directory", ErrNotFound, path)
	}
	return fmt.Errorf("%w: folder %s does not exist", ErrNotFound, path)
}
