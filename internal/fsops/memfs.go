package fsops

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// MemFS is an in-memory FS used by tests. It can emulate a case-insensitive
// volume, a platform without file identity support, and per-file rename
// failures.
type MemFS struct {
	// CaseInsensitive makes path lookups ignore case, like NTFS or APFS.
	CaseInsensitive bool

	// NoIdentity makes SameFile always fail, forcing callers onto their
	// fallback comparison.
	NoIdentity bool

	nodes      map[string]*memNode
	failRename map[string]error
	nextID     int
}

type memNode struct {
	path  string
	isDir bool
	id    int
}

// NewMemFS creates an empty MemFS with a root directory.
func NewMemFS() *MemFS {
	m := &MemFS{
		nodes:      make(map[string]*memNode),
		failRename: make(map[string]error),
	}
	m.nodes[m.key("/")] = &memNode{path: "/", isDir: true}
	return m
}

// NewCaseInsensitiveMemFS creates an empty MemFS that ignores case.
func NewCaseInsensitiveMemFS() *MemFS {
	m := NewMemFS()
	m.CaseInsensitive = true
	return m
}

func (m *MemFS) key(path string) string {
	path = filepath.Clean(path)
	if m.CaseInsensitive {
		return strings.ToLower(path)
	}
	return path
}

func (m *MemFS) lookup(path string) (*memNode, bool) {
	n, ok := m.nodes[m.key(path)]
	return n, ok
}

func (m *MemFS) add(path string, isDir bool) {
	path = filepath.Clean(path)
	if parent := filepath.Dir(path); parent != path {
		if _, ok := m.lookup(parent); !ok {
			m.add(parent, true)
		}
	}
	if _, ok := m.lookup(path); ok {
		return
	}
	m.nextID++
	m.nodes[m.key(path)] = &memNode{path: path, isDir: isDir, id: m.nextID}
}

// AddFile creates a file and any missing parent directories.
func (m *MemFS) AddFile(path string) {
	m.add(path, false)
}

// AddDir creates a directory and any missing parents.
func (m *MemFS) AddDir(path string) {
	m.add(path, true)
}

// Link adds newpath as a hard link to the existing file oldpath.
func (m *MemFS) Link(oldpath, newpath string) {
	n, ok := m.lookup(oldpath)
	if !ok {
		return
	}
	newpath = filepath.Clean(newpath)
	m.nodes[m.key(newpath)] = &memNode{path: newpath, isDir: n.isDir, id: n.id}
}

// FailRename makes every Rename of oldpath return err.
func (m *MemFS) FailRename(oldpath string, err error) {
	m.failRename[m.key(oldpath)] = err
}

// Names returns the base names of the entries of dir in sorted order.
func (m *MemFS) Names(dir string) []string {
	entries, err := m.ReadDir(dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// Stat returns file info for path.
func (m *MemFS) Stat(path string) (os.FileInfo, error) {
	n, ok := m.lookup(path)
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return memInfo{name: filepath.Base(n.path), isDir: n.isDir}, nil
}

// Lstat is Stat; MemFS has no symlinks.
func (m *MemFS) Lstat(path string) (os.FileInfo, error) {
	return m.Stat(path)
}

// ReadDir lists the direct children of path, sorted by name.
func (m *MemFS) ReadDir(path string) ([]os.DirEntry, error) {
	dir, ok := m.lookup(path)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	if !dir.isDir {
		return nil, &fs.PathError{Op: "readdirent", Path: path, Err: fmt.Errorf("not a directory")}
	}

	dirKey := m.key(dir.path)
	var entries []os.DirEntry
	for k, n := range m.nodes {
		if k == dirKey || m.key(filepath.Dir(n.path)) != dirKey {
			continue
		}
		entries = append(entries, fs.FileInfoToDirEntry(memInfo{name: filepath.Base(n.path), isDir: n.isDir}))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// Rename moves oldpath to newpath, replacing any existing file at newpath.
func (m *MemFS) Rename(oldpath, newpath string) error {
	if err, ok := m.failRename[m.key(oldpath)]; ok {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
	}
	n, ok := m.lookup(oldpath)
	if !ok {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrNotExist}
	}
	if n.isDir {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fmt.Errorf("directory renames not supported")}
	}
	if _, ok := m.lookup(filepath.Dir(newpath)); !ok {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrNotExist}
	}

	delete(m.nodes, m.key(oldpath))
	n.path = filepath.Clean(newpath)
	m.nodes[m.key(newpath)] = n
	return nil
}

// Exists checks if a path exists.
func (m *MemFS) Exists(path string) (bool, error) {
	_, ok := m.lookup(path)
	return ok, nil
}

// SameFile compares node identities.
func (m *MemFS) SameFile(a, b string) (bool, error) {
	if m.NoIdentity {
		return false, fmt.Errorf("file identity not supported")
	}
	na, ok := m.lookup(a)
	if !ok {
		return false, &fs.PathError{Op: "stat", Path: a, Err: fs.ErrNotExist}
	}
	nb, ok := m.lookup(b)
	if !ok {
		return false, &fs.PathError{Op: "stat", Path: b, Err: fs.ErrNotExist}
	}
	return na.id == nb.id, nil
}

// Abs resolves relative paths against "/".
func (m *MemFS) Abs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	return filepath.Join("/", path), nil
}

type memInfo struct {
	name  string
	isDir bool
}

func (i memInfo) Name() string { return i.name }
func (i memInfo) Size() int64  { return 0 }
func (i memInfo) Mode() fs.FileMode {
	if i.isDir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (i memInfo) ModTime() time.Time { return time.Time{} }
func (i memInfo) IsDir() bool        { return i.isDir }
func (i memInfo) Sys() any           { return nil }
