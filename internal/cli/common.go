package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/danieljhkim/imgrename/internal/engine"
	"github.com/danieljhkim/imgrename/internal/fsops"
)

// newEngine creates a new engine over the real filesystem.
func newEngine() *engine.Engine {
	return engine.New(fsops.NewRealFS(), logger)
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// isInteractive reports whether f is attached to a terminal.
func isInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// resolveStartIndex returns the --start flag when given, else the configured
// default.
func resolveStartIndex(flagValue int, changed bool) int {
	if changed {
		return flagValue
	}
	return appConfig.StartIndex
}

// summaryLine describes a plan in one line.
func summaryLine(total, rename, skip int) string {
	return fmt.Sprintf("%s planned / rename: %d, skip: %d",
		PrintCount(total, "file", "files"), rename, skip)
}
