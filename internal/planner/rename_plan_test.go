package planner

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/danieljhkim/imgrename/internal/fsops"
)

func newPhotoFS(names ...string) *fsops.MemFS {
	m := fsops.NewMemFS()
	m.AddDir("/photos")
	for _, n := range names {
		m.AddFile(filepath.Join("/photos", n))
	}
	return m
}

func newNames(plan *RenamePlan) []string {
	var names []string
	for _, e := range plan.Entries {
		names = append(names, e.NewName)
	}
	return names
}

func TestBuildRenamePlan_EndToEnd(t *testing.T) {
	m := newPhotoFS("b.png", "a.jpg", "c.webp", "notes.txt")

	plan := BuildRenamePlan(m, "/photos", "Trip Summer", 1)

	if plan.Theme != "Trip_Summer" {
		t.Errorf("Theme = %q, want %q", plan.Theme, "Trip_Summer")
	}
	want := []Entry{
		{OldPath: "/photos/a.jpg", NewPath: "/photos/Trip_Summer_01.jpg", OldName: "a.jpg", NewName: "Trip_Summer_01.jpg", WillRename: true},
		{OldPath: "/photos/b.png", NewPath: "/photos/Trip_Summer_02.png", OldName: "b.png", NewName: "Trip_Summer_02.png", WillRename: true},
		{OldPath: "/photos/c.webp", NewPath: "/photos/Trip_Summer_03.webp", OldName: "c.webp", NewName: "Trip_Summer_03.webp", WillRename: true},
	}
	if !reflect.DeepEqual(plan.Entries, want) {
		t.Errorf("Entries = %+v, want %+v", plan.Entries, want)
	}
	if plan.RenameCount() != 3 || plan.SkipCount() != 0 {
		t.Errorf("rename/skip = %d/%d, want 3/0", plan.RenameCount(), plan.SkipCount())
	}
}

func TestBuildRenamePlan_EmptyPlans(t *testing.T) {
	tests := []struct {
		name   string
		folder string
		theme  string
		start  int
	}{
		{"empty theme", "/photos", "", 1},
		{"whitespace theme", "/photos", "   ", 1},
		{"theme with separator", "/photos", "trip/summer", 1},
		{"reserved theme", "/photos", "..", 1},
		{"start index zero", "/photos", "trip", 0},
		{"negative start index", "/photos", "trip", -3},
		{"start index above max", "/photos", "trip", MaxStartIndex + 1},
		{"start index near overflow", "/photos", "trip", math.MaxInt},
		{"missing folder", "/nowhere", "trip", 1},
		{"folder is a file", "/photos/a.jpg", "trip", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newPhotoFS("a.jpg", "b.png")
			plan := BuildRenamePlan(m, tt.folder, tt.theme, tt.start)
			if plan == nil {
				t.Fatal("BuildRenamePlan returned nil")
			}
			if !plan.IsEmpty() {
				t.Errorf("expected empty plan, got %d entries", plan.Len())
			}
		})
	}

	t.Run("no supported files", func(t *testing.T) {
		m := newPhotoFS("notes.txt", "clip.mp4", "anim.gif")
		if plan := BuildRenamePlan(m, "/photos", "trip", 1); !plan.IsEmpty() {
			t.Errorf("expected empty plan, got %d entries", plan.Len())
		}
	})
}

func TestBuildRenamePlan_Idempotent(t *testing.T) {
	m := newPhotoFS("b.png", "a.jpg", "trip_01.jpg", "IMG_0001.JPEG")

	first := BuildRenamePlan(m, "/photos", "trip", 1)
	second := BuildRenamePlan(m, "/photos", "trip", 1)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("plans differ:\n%+v\n%+v", first, second)
	}
}

func TestBuildRenamePlan_SortOrder(t *testing.T) {
	m := newPhotoFS("b.jpg", "B.jpg", "a10.jpg", "a2.jpg", "_x.png")

	plan := BuildRenamePlan(m, "/photos", "t", 1)

	var names []string
	for _, e := range plan.Entries {
		names = append(names, e.OldName)
	}
	// plain byte order: upper case before '_' before lower case, no natural sort
	want := []string{"B.jpg", "_x.png", "a10.jpg", "a2.jpg", "b.jpg"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("order = %v, want %v", names, want)
	}
}

func TestBuildRenamePlan_Filtering(t *testing.T) {
	m := newPhotoFS("A.JPG", "b.Jpeg", "c.WebP", "d.png", ".jpg", "e.txt", "f")
	m.AddDir("/photos/album.jpg")

	plan := BuildRenamePlan(m, "/photos", "x", 1)

	want := []string{"x_01.JPG", "x_02.Jpeg", "x_03.WebP", "x_04.png"}
	if got := newNames(plan); !reflect.DeepEqual(got, want) {
		t.Errorf("new names = %v, want %v", got, want)
	}
}

func TestBuildRenamePlan_DigitWidthWidens(t *testing.T) {
	var names []string
	for i := 0; i < 150; i++ {
		names = append(names, fmt.Sprintf("img%03d.jpg", i))
	}
	m := newPhotoFS(names...)

	plan := BuildRenamePlan(m, "/photos", "sunset", 1)

	if plan.Len() != 150 {
		t.Fatalf("Len() = %d, want 150", plan.Len())
	}
	if plan.Entries[0].NewName != "sunset_001.jpg" {
		t.Errorf("first = %q, want sunset_001.jpg", plan.Entries[0].NewName)
	}
	if plan.Entries[149].NewName != "sunset_150.jpg" {
		t.Errorf("last = %q, want sunset_150.jpg", plan.Entries[149].NewName)
	}
}

func TestBuildRenamePlan_StartIndex(t *testing.T) {
	tests := []struct {
		start int
		want  []string
	}{
		{99, []string{"trip_099.jpg", "trip_100.jpg"}},
		{MaxStartIndex, []string{"trip_09999.jpg", "trip_10000.jpg"}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("start %d", tt.start), func(t *testing.T) {
			m := newPhotoFS("a.jpg", "b.jpg")
			plan := BuildRenamePlan(m, "/photos", "trip", tt.start)

			if got := newNames(plan); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("new names = %v, want %v", got, tt.want)
			}
			if plan.StartIndex != tt.start {
				t.Errorf("StartIndex = %d, want %d", plan.StartIndex, tt.start)
			}
		})
	}
}

func TestBuildRenamePlan_UnrelatedCollisionSkipped(t *testing.T) {
	m := newPhotoFS("image.jpg", "theme_01.jpg")

	plan := BuildRenamePlan(m, "/photos", "theme", 1)

	if plan.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", plan.Len())
	}
	first, second := plan.Entries[0], plan.Entries[1]
	if first.OldName != "image.jpg" || first.NewName != "theme_01.jpg" || first.WillRename {
		t.Errorf("first entry = %+v, want image.jpg -> theme_01.jpg skipped", first)
	}
	if second.OldName != "theme_01.jpg" || second.NewName != "theme_02.jpg" || !second.WillRename {
		t.Errorf("second entry = %+v, want theme_01.jpg -> theme_02.jpg renamed", second)
	}
	if plan.SkipCount() != 1 {
		t.Errorf("SkipCount() = %d, want 1", plan.SkipCount())
	}
}

func TestBuildRenamePlan_AlreadyNamedIsNoop(t *testing.T) {
	m := newPhotoFS("trip_01.jpg", "trip_02.png")

	plan := BuildRenamePlan(m, "/photos", "trip", 1)

	if plan.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", plan.Len())
	}
	for _, e := range plan.Entries {
		if e.OldPath != e.NewPath || e.WillRename {
			t.Errorf("%s should be a no-op, got %+v", e.OldName, e)
		}
	}
}

func TestBuildRenamePlan_CaseOnlyRename(t *testing.T) {
	tests := []struct {
		name string
		fs   func() *fsops.MemFS
		want string
	}{
		{"case-insensitive volume", fsops.NewCaseInsensitiveMemFS, "/photos/TEST_01.jpg"},
		{"case-insensitive volume without identity", func() *fsops.MemFS {
			m := fsops.NewCaseInsensitiveMemFS()
			m.NoIdentity = true
			return m
		}, "/photos/TEST_01.jpg"},
		{"case-sensitive volume", fsops.NewMemFS, "/photos/TEST_01.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.fs()
			m.AddFile("/photos/test_01.jpg")

			plan := BuildRenamePlan(m, "/photos", "TEST", 1)

			if plan.Len() != 1 {
				t.Fatalf("Len() = %d, want 1", plan.Len())
			}
			if e := plan.Entries[0]; e.NewPath != tt.want || !e.WillRename {
				t.Errorf("entry = %+v, want rename to %s", e, tt.want)
			}
		})
	}
}

func TestBuildRenamePlan_HardLinkedTargetSkipped(t *testing.T) {
	m := newPhotoFS("theme_01.jpg")
	m.Link("/photos/theme_01.jpg", "/photos/a.jpg")

	plan := BuildRenamePlan(m, "/photos", "theme", 1)

	if plan.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", plan.Len())
	}
	if plan.Entries[0].WillRename {
		t.Error("a.jpg -> theme_01.jpg targets a hard link of itself and must be skipped")
	}
	if !plan.Entries[1].WillRename {
		t.Error("theme_01.jpg -> theme_02.jpg should be renamed")
	}
}

func TestBuildRenamePlan_NoClobber(t *testing.T) {
	folders := [][]string{
		{"a.jpg", "b.jpg", "t_01.jpg", "t_02.jpg", "t_03.jpg"},
		{"t_03.png", "t_02.png", "x.png", "y.png"},
		{"T_01.JPG", "t_01.jpg", "z.webp"},
		{"1.jpg", "t_1.jpg", "t_01.jpeg"},
	}

	for i, names := range folders {
		t.Run(fmt.Sprintf("folder %d", i), func(t *testing.T) {
			m := newPhotoFS(names...)
			plan := BuildRenamePlan(m, "/photos", "t", 1)

			seen := make(map[string]bool)
			for _, e := range plan.Entries {
				if seen[e.NewPath] {
					t.Errorf("duplicate target %s", e.NewPath)
				}
				seen[e.NewPath] = true

				if !e.WillRename {
					continue
				}
				exists, err := m.Exists(e.NewPath)
				if err != nil {
					t.Fatalf("Exists(%s) error = %v", e.NewPath, err)
				}
				if exists && !fsops.SameFile(m, e.OldPath, e.NewPath) {
					t.Errorf("%s would clobber %s", e.OldName, e.NewName)
				}
			}
		})
	}
}

func TestBuildRenamePlan_RealFS(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"b.png", "a.jpg", "c.webp", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte(n), 0644); err != nil {
			t.Fatalf("failed to create %s: %v", n, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.jpg"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}

	plan := BuildRenamePlan(fsops.NewRealFS(), dir, "Trip Summer", 1)

	want := []string{"Trip_Summer_01.jpg", "Trip_Summer_02.png", "Trip_Summer_03.webp"}
	if got := newNames(plan); !reflect.DeepEqual(got, want) {
		t.Errorf("new names = %v, want %v", got, want)
	}
	if plan.Entries[0].NewPath != filepath.Join(dir, "Trip_Summer_01.jpg") {
		t.Errorf("NewPath = %q", plan.Entries[0].NewPath)
	}
	if plan.RenameCount() != 3 {
		t.Errorf("RenameCount() = %d, want 3", plan.RenameCount())
	}
}
