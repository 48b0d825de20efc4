package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/imgrename/internal/engine"
	"github.com/danieljhkim/imgrename/internal/planner"
	"github.com/danieljhkim/imgrename/internal/theme"
)

var (
	previewTheme string
	previewStart int
	previewLimit int
)

var previewCmd = &cobra.Command{
	Use:   "preview <folder>",
	Short: "Show how the images in a folder would be renamed",
	Long: `Show the rename plan for a folder without changing anything.

Each supported image is listed with its new name and whether it will be
renamed or skipped. Files are skipped when they already have their target
name or when the target name belongs to another file.

The theme defaults to the folder's own name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := buildRenameRequest(args[0], previewTheme, resolveStartIndex(previewStart, cmd.Flags().Changed("start")))
		if err != nil {
			return err
		}

		result, err := newEngine().Preview(context.Background(), req)
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), newPlanJSON(result.Folder, result.Plan))
		}

		limit := previewLimit
		if !cmd.Flags().Changed("limit") {
			limit = appConfig.PreviewLimit
		}
		printPlan(cmd.OutOrStdout(), result.Plan, limit)
		return nil
	},
}

func init() {
	previewCmd.Flags().StringVarP(&previewTheme, "theme", "t", "", "Theme prefix (default: folder name)")
	previewCmd.Flags().IntVarP(&previewStart, "start", "s", 1, "First sequence number")
	previewCmd.Flags().IntVar(&previewLimit, "limit", 200, "Maximum rows to show (0 = all)")
}

// buildRenameRequest resolves the folder and the default theme.
func buildRenameRequest(folder, rawTheme string, start int) (*engine.RenameRequest, error) {
	if strings.TrimSpace(folder) == "" {
		return nil, fmt.Errorf("%w: folder is required", engine.ErrValidation)
	}
	abs, err := filepath.Abs(folder)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve folder %s: %w", folder, err)
	}
	if rawTheme == "" {
		rawTheme = theme.FromFolder(abs)
	}
	return &engine.RenameRequest{
		Folder:     abs,
		Theme:      rawTheme,
		StartIndex: start,
	}, nil
}

// planJSON is the machine-readable form of a plan.
type planJSON struct {
	Folder  string          `json:"folder"`
	Theme   string          `json:"theme"`
	Total   int             `json:"total"`
	Rename  int             `json:"rename"`
	Skip    int             `json:"skip"`
	Entries []planner.Entry `json:"entries"`
}

func newPlanJSON(folder string, plan *planner.RenamePlan) planJSON {
	return planJSON{
		Folder:  folder,
		Theme:   plan.Theme,
		Total:   plan.Len(),
		Rename:  plan.RenameCount(),
		Skip:    plan.SkipCount(),
		Entries: plan.Entries,
	}
}

// statusLabel is the per-entry status shown in the preview table.
func statusLabel(e planner.Entry) string {
	if e.WillRename {
		return "rename"
	}
	return "skip"
}

// printPlan renders the first limit entries of plan as a table followed by
// a summary. A limit of 0 shows every entry.
func printPlan(w io.Writer, plan *planner.RenamePlan, limit int) {
	PrintSection(w, fmt.Sprintf("Preview: %s", plan.Folder))
	PrintLabelValue(w, "Theme", plan.Theme)
	PrintLabelValue(w, "Extensions", strings.Join(planner.SupportedExtensions(), ", "))
	_, _ = fmt.Fprintln(w)

	if plan.IsEmpty() {
		PrintEmptyState(w, "No images to rename")
		return
	}

	shown := plan.Entries
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	rows := make([][]string, 0, len(shown))
	for _, e := range shown {
		rows = append(rows, []string{e.OldName, e.NewName, statusLabel(e)})
	}
	PrintTable(w, []string{"Current", "New", "Status"}, rows, func(row, col int) *color.Color {
		if col != 2 {
			return nil
		}
		if shown[row].WillRename {
			return successColor
		}
		return warningColor
	})
	_, _ = fmt.Fprintln(w)

	if remaining := plan.Len() - len(shown); remaining > 0 {
		PrintEmptyState(w, fmt.Sprintf("showing %d of %d (%d more not shown)", len(shown), plan.Len(), remaining))
	}
	PrintInfo(w, summaryLine(plan.Len(), plan.RenameCount(), plan.SkipCount()))
}
