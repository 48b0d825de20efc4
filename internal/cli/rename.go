package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/imgrename/internal/engine"
	"github.com/danieljhkim/imgrename/internal/planner"
)

var (
	renameTheme  string
	renameStart  int
	renameDryRun bool
	renameYes    bool
)

// errNotConfirmed is returned when confirmation is impossible.
var errNotConfirmed = errors.New("refusing to rename without confirmation; pass --yes when stdin is not a terminal")

// stdinIsTerminal reports whether the user can answer the confirmation prompt.
var stdinIsTerminal = func() bool { return isInteractive(os.Stdin) }

var renameCmd = &cobra.Command{
	Use:   "rename <folder>",
	Short: "Rename the images in a folder",
	Long: `Rename the supported images in a folder to <theme>_NN.<ext>.

The plan is shown first and must be confirmed unless --yes is given. Files
whose new name belongs to another file are left alone. A file that cannot be
renamed (permissions, locks) is reported and the rest of the batch continues.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := buildRenameRequest(args[0], renameTheme, resolveStartIndex(renameStart, cmd.Flags().Changed("start")))
		if err != nil {
			return err
		}
		req.DryRun = renameDryRun

		ctx := context.Background()
		eng := newEngine()
		out := cmd.OutOrStdout()

		// Nothing to show and nothing to ask: plan and apply in one go.
		if renameYes && (quiet || jsonOutput) {
			result, err := eng.Rename(ctx, req)
			if err != nil {
				return err
			}
			return reportRename(cmd, result.Plan, result.Execute)
		}

		preview, err := eng.Preview(ctx, req)
		if err != nil {
			return err
		}
		plan := preview.Plan

		if !jsonOutput && !quiet {
			printPlan(out, plan, appConfig.PreviewLimit)
		}

		if plan.RenameCount() == 0 || renameDryRun {
			return reportRename(cmd, plan, nil)
		}

		if !renameYes {
			if !stdinIsTerminal() {
				return errNotConfirmed
			}
			ok, err := confirm(cmd.InOrStdin(), out, fmt.Sprintf("Rename %s?", PrintCount(plan.RenameCount(), "file", "files")))
			if err != nil {
				return err
			}
			if !ok {
				PrintWarning(out, "Aborted, nothing was renamed")
				return nil
			}
		}

		// Apply exactly the plan that was shown.
		return reportRename(cmd, plan, eng.Execute(ctx, plan))
	},
}

func init() {
	renameCmd.Flags().StringVarP(&renameTheme, "theme", "t", "", "Theme prefix (default: folder name)")
	renameCmd.Flags().IntVarP(&renameStart, "start", "s", 1, "First sequence number")
	renameCmd.Flags().BoolVar(&renameDryRun, "dry-run", false, "Show what would be renamed without renaming")
	renameCmd.Flags().BoolVarP(&renameYes, "yes", "y", false, "Rename without asking for confirmation")
}

// renameJSON is the machine-readable rename summary.
type renameJSON struct {
	Folder  string           `json:"folder"`
	Theme   string           `json:"theme"`
	Planned int              `json:"planned"`
	Renamed int              `json:"renamed"`
	Skipped int              `json:"skipped"`
	DryRun  bool             `json:"dry_run"`
	Failed  []engine.Failure `json:"failed"`
}

// reportRename prints the outcome of a rename; exec is nil when nothing was
// executed.
func reportRename(cmd *cobra.Command, plan *planner.RenamePlan, exec *engine.ExecuteResult) error {
	out := cmd.OutOrStdout()

	if jsonOutput {
		summary := renameJSON{
			Folder:  plan.Folder,
			Theme:   plan.Theme,
			Planned: plan.Len(),
			Skipped: plan.SkipCount(),
			DryRun:  renameDryRun,
			Failed:  []engine.Failure{},
		}
		if exec != nil {
			summary.Renamed = exec.Renamed
			summary.Skipped = exec.Skipped
			summary.Failed = exec.Failed
		}
		return outputJSON(out, summary)
	}

	if exec == nil {
		switch {
		case plan.RenameCount() == 0:
			PrintWarning(out, "No files to rename")
		case renameDryRun:
			PrintInfo(out, fmt.Sprintf("Dry run: would rename %s", PrintCount(plan.RenameCount(), "file", "files")))
		}
		return nil
	}

	for _, f := range exec.Failed {
		PrintError(cmd.ErrOrStderr(), fmt.Sprintf("%s: %s", f.OldPath, f.Err))
	}
	if exec.Renamed == 0 {
		PrintWarning(out, "No files were renamed")
		return nil
	}
	PrintSuccess(out, fmt.Sprintf("Renamed %s", PrintCount(exec.Renamed, "file", "files")))
	if exec.Skipped > 0 || len(exec.Failed) > 0 {
		PrintLabelValue(out, "Skipped", fmt.Sprintf("%d", exec.Skipped))
		PrintLabelValue(out, "Failed", fmt.Sprintf("%d", len(exec.Failed)))
	}
	return nil
}

// confirm asks a yes/no question; anything but y/yes is a no.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	_, _ = fmt.Fprintf(out, "%s [y/N]: ", question)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
