// Package integration exercises imgrename end to end against the real
// filesystem.
package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/imgrename/internal/engine"
	"github.com/danieljhkim/imgrename/internal/fsops"
)

// setupEngine returns an engine over the real filesystem and a fresh root.
func setupEngine(t *testing.T) (*engine.Engine, string) {
	t.Helper()
	root := t.TempDir()
	return engine.New(fsops.NewRealFS(), zerolog.Nop()), root
}

// writeImages creates each file below root with its own name as content so
// tests can check that bytes travel with the rename.
func writeImages(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(name), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

// readContent returns the content of root/name.
func readContent(t *testing.T, root, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(name)))
	if err != nil {
		t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

// names returns the sorted entry names of dir.
func names(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir %s: %v", dir, err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	return out
}
