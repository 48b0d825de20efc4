package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestFormatError(t *testing.T) {
	got := FormatError(errors.New("boom"))
	if !strings.Contains(got, "Error:") || !strings.Contains(got, "boom") {
		t.Errorf("FormatError() = %q, expected to contain 'Error:' and the message", got)
	}
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := outputJSON(&buf, map[string]int{"renamed": 3}); err != nil {
		t.Fatalf("outputJSON() error = %v", err)
	}
	if buf.String() != "{\n  \"renamed\": 3\n}\n" {
		t.Errorf("outputJSON() = %q", buf.String())
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, []string{"Current", "New"}, [][]string{
		{"a.jpg", "trip_01.jpg"},
		{"夏.jpg", "trip_02.jpg"},
	}, nil)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "  -------  ") {
		t.Errorf("unexpected separator line %q", lines[1])
	}
	if !strings.Contains(lines[3], "夏.jpg    trip_02.jpg") {
		t.Errorf("non-ASCII cell not padded by rune count: %q", lines[3])
	}
}

func TestPrintTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintTable(&buf, []string{"Current"}, nil, nil)
	if buf.Len() != 0 {
		t.Errorf("expected no output for empty table, got %q", buf.String())
	}
}

func TestPrintCount(t *testing.T) {
	if got := PrintCount(1, "file", "files"); got != "1 file" {
		t.Errorf("PrintCount(1) = %q", got)
	}
	if got := PrintCount(3, "file", "files"); got != "3 files" {
		t.Errorf("PrintCount(3) = %q", got)
	}
}

func TestSummaryLine(t *testing.T) {
	want := "3 files planned / rename: 2, skip: 1"
	if got := summaryLine(3, 2, 1); got != want {
		t.Errorf("summaryLine() = %q, want %q", got, want)
	}
}
