package engine

import (
	"context"

	"github.com/danieljhkim/imgrename/internal/planner"
)

// Execute applies plan in order and returns what happened.
//
// Entries marked WillRename=false are skipped. A rename that fails is logged
// and recorded in Failed, and the batch moves on to the next entry; renames
// that already succeeded are not rolled back. Cancelling ctx stops the batch
// before the next entry, and the remaining entries count as skipped.
func (e *Engine) Execute(ctx context.Context, plan *planner.RenamePlan) *ExecuteResult {
	result := &ExecuteResult{Failed: []Failure{}}
	if plan == nil {
		return result
	}

	for i, entry := range plan.Entries {
		if err := ctx.Err(); err != nil {
			remaining := len(plan.Entries) - i
			e.logger.Warn().Err(err).Int("remaining", remaining).Str("folder", plan.Folder).Msg("rename batch cancelled")
			result.Skipped += remaining
			break
		}

		if !entry.WillRename {
			result.Skipped++
			continue
		}

		if err := e.fs.Rename(entry.OldPath, entry.NewPath); err != nil {
			e.logger.Warn().Err(err).Str("from", entry.OldPath).Str("to", entry.NewPath).Msg("rename failed, skipping")
			result.Failed = append(result.Failed, Failure{
				OldPath: entry.OldPath,
				NewPath: entry.NewPath,
				Err:     err.Error(),
			})
			continue
		}

		e.logger.Debug().Str("from", entry.OldName).Str("to", entry.NewName).Msg("renamed")
		result.Renamed++
	}

	return result
}
