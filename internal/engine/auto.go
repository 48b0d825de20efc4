package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/danieljhkim/imgrename/internal/planner"
)

// AutoRename renames the images of every folder below req.Root, using each
// folder's own name as its theme and numbering from 1.
//
// Files directly inside the root are never renamed; the root has no theme of
// its own. Folders matching one of req.Exclude are skipped along with their
// descendants. Per-file failures are tolerated exactly as in Execute.
func (e *Engine) AutoRename(ctx context.Context, req *AutoRenameRequest) (*AutoRenameResult, error) {
	if req == nil || strings.TrimSpace(req.Root) == "" {
		return nil, fmt.Errorf("%w: folder is required", ErrValidation)
	}
	for _, pattern := range req.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("%w: invalid exclude pattern %q", ErrValidation, pattern)
		}
	}
	if err := e.requireDir(req.Root); err != nil {
		return nil, err
	}

	result := &AutoRenameResult{
		Root:    req.Root,
		Folders: []FolderResult{},
	}

	for _, folder := range e.collectFolders(req.Root, req.Exclude) {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		plan := planner.BuildRenamePlan(e.fs, folder, filepath.Base(folder), 1)
		folderResult := FolderResult{
			Folder:  folder,
			Theme:   plan.Theme,
			Planned: plan.Len(),
			Skipped: plan.SkipCount(),
		}

		if !req.DryRun && !plan.IsEmpty() {
			exec := e.Execute(ctx, plan)
			folderResult.Renamed = exec.Renamed
			folderResult.Skipped = exec.Skipped + len(exec.Failed)
		}

		e.logger.Info().
			Str("folder", folder).
			Str("theme", folderResult.Theme).
			Int("planned", folderResult.Planned).
			Int("renamed", folderResult.Renamed).
			Msg("auto-renamed folder")

		result.Folders = append(result.Folders, folderResult)
		result.Renamed += folderResult.Renamed
		if req.OnFolder != nil {
			req.OnFolder(folderResult)
		}
	}

	return result, nil
}

// collectFolders lists every directory below root, parents before children
// and siblings in name order. The tree is listed up front so renames never
// race the walk. Symlinked directories are not followed.
func (e *Engine) collectFolders(root string, exclude []string) []string {
	var folders []string

	var walk func(dir string)
	walk = func(dir string) {
		entries, err := e.fs.ReadDir(dir)
		if err != nil {
			e.logger.Warn().Err(err).Str("folder", dir).Msg("cannot list folder, skipping")
			return
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			child := filepath.Join(dir, entry.Name())
			if isExcluded(root, child, exclude) {
				e.logger.Debug().Str("folder", child).Msg("excluded")
				continue
			}
			folders = append(folders, child)
			walk(child)
		}
	}
	walk(root)

	return folders
}

// isExcluded reports whether folder, taken relative to root, matches any of
// the doublestar patterns.
func isExcluded(root, folder string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, folder)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
