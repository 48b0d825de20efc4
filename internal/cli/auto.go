package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/imgrename/internal/engine"
)

var (
	autoExclude []string
	autoDryRun  bool
)

var autoCmd = &cobra.Command{
	Use:   "auto <root>",
	Short: "Rename every folder below a root after the folder's own name",
	Long: `Walk the tree below <root> and rename the images of every folder using
that folder's name as the theme, numbering from 1 (cats/ -> cats_01.jpg, ...).

Images directly inside <root> are never renamed. Use --exclude with
doublestar patterns relative to <root> (e.g. ".git", "**/raw") to skip folders
and everything below them.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve folder %s: %w", args[0], err)
		}

		req := &engine.AutoRenameRequest{
			Root:    root,
			Exclude: autoExclude,
			DryRun:  autoDryRun,
		}

		var bar *progressbar.ProgressBar
		if !quiet && !jsonOutput && isInteractive(os.Stderr) {
			bar = progressbar.NewOptions(-1,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("Renaming"),
				progressbar.OptionShowCount(),
				progressbar.OptionSpinnerType(14),
				progressbar.OptionClearOnFinish(),
			)
			req.OnFolder = func(r engine.FolderResult) {
				bar.Describe(filepath.Base(r.Folder))
				_ = bar.Add(1)
			}
		}

		result, err := newEngine().AutoRename(context.Background(), req)
		if bar != nil {
			_ = bar.Finish()
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			return outputJSON(out, result)
		}

		if !quiet {
			PrintSection(out, fmt.Sprintf("Auto-rename: %s", result.Root))
			rows := make([][]string, 0, len(result.Folders))
			for _, f := range result.Folders {
				if f.Planned == 0 {
					continue
				}
				rel, err := filepath.Rel(result.Root, f.Folder)
				if err != nil {
					rel = f.Folder
				}
				rows = append(rows, []string{
					rel,
					f.Theme,
					fmt.Sprintf("%d", f.Planned),
					fmt.Sprintf("%d", f.Renamed),
					fmt.Sprintf("%d", f.Skipped),
				})
			}
			PrintTable(out, []string{"Folder", "Theme", "Images", "Renamed", "Skipped"}, rows, nil)
			_, _ = fmt.Fprintln(out)
		}

		switch {
		case autoDryRun:
			planned := 0
			for _, f := range result.Folders {
				planned += f.Planned - f.Skipped
			}
			PrintInfo(out, fmt.Sprintf("Dry run: would rename %s in %s",
				PrintCount(planned, "file", "files"),
				PrintCount(len(result.Folders), "folder", "folders")))
		case result.Renamed == 0:
			PrintWarning(out, "No files to rename")
		default:
			PrintSuccess(out, fmt.Sprintf("Renamed %s in %s",
				PrintCount(result.Renamed, "file", "files"),
				PrintCount(len(result.Folders), "folder", "folders")))
		}
		return nil
	},
}

func init() {
	autoCmd.Flags().StringSliceVarP(&autoExclude, "exclude", "x", nil, "Skip folders matching this pattern (repeatable)")
	autoCmd.Flags().BoolVar(&autoDryRun, "dry-run", false, "Show what would be renamed without renaming")
}
