package core

import (
	"context"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests. Directories are
// implied by the paths of the files set on it.
type MockFileSystem struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMockFileSystem returns an empty in-memory filesystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{files: make(map[string][]byte)}
}

// SetFile stores a file at the given path, creating implied parent directories.
func (m *MockFileSystem) SetFile(p string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path.Clean(p)] = data
}

// ReadFile returns the contents of a stored file.
func (m *MockFileSystem) ReadFile(ctx context.Context, p string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path.Clean(p)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// WriteFile stores data at the given path.
func (m *MockFileSystem) WriteFile(ctx context.Context, p string, data []byte, _ fs.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.SetFile(p, data)
	return nil
}

// Stat reports on a file or an implied directory.
func (m *MockFileSystem) Stat(ctx context.Context, p string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	clean := path.Clean(p)
	if data, ok := m.files[clean]; ok {
		return mockFileInfo{name: path.Base(clean), size: int64(len(data))}, nil
	}
	if m.isDirLocked(clean) {
		return mockFileInfo{name: path.Base(clean), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: p, Err: fs.ErrNotExist}
}

// ReadDir lists the direct children (files and implied subdirectories) of a directory.
func (m *MockFileSystem) ReadDir(ctx context.Context, p string) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	dir := path.Clean(p)
	if !m.isDirLocked(dir) {
		return nil, &fs.PathError{Op: "readdir", Path: p, Err: fs.ErrNotExist}
	}

	prefix := dir + "/"
	if dir == "/" {
		prefix = "/"
	}

	seen := make(map[string]bool)
	var entries []fs.DirEntry
	for fp := range m.files {
		if !strings.HasPrefix(fp, prefix) {
			continue
		}
		rest := strings.TrimPrefix(fp, prefix)
		name, _, nested := strings.Cut(rest, "/")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		entries = append(entries, mockDirEntry{name: name, dir: nested})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

// isDirLocked reports whether any stored file lives beneath the given path.
func (m *MockFileSystem) isDirLocked(dir string) bool {
	if dir == "/" || dir == "." {
		return true
	}
	prefix := dir + "/"
	for fp := range m.files {
		if strings.HasPrefix(fp, prefix) {
			return true
		}
	}
	return false
}

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i mockFileInfo) Name() string       { return i.name }
func (i mockFileInfo) Size() int64        { return i.size }
func (i mockFileInfo) Mode() fs.FileMode  { return modeFor(i.dir) }
func (i mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i mockFileInfo) IsDir() bool        { return i.dir }
func (i mockFileInfo) Sys() any           { return nil }

type mockDirEntry struct {
	name string
	dir  bool
}

func (e mockDirEntry) Name() string      { return e.name }
func (e mockDirEntry) IsDir() bool       { return e.dir }
func (e mockDirEntry) Type() fs.FileMode { return modeFor(e.dir) }
func (e mockDirEntry) Info() (fs.FileInfo, error) {
	return mockFileInfo{name: e.name, dir: e.dir}, nil
}

func modeFor(dir bool) fs.FileMode {
	if dir {
		return fs.ModeDir | 0755
	}
	return 0644
}
