package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/skillsenselab/enginekit/engine"
	"github.com/skillsenselab/enginekit/provider"
)

// MapFS is an in-memory engine.FS that records every access, so tests
// can assert which paths the loader touched and how often.
type MapFS struct {
	mu    sync.Mutex
	files map[string][]byte

	existsCalls map[string]int
	readCalls   map[string]int
}

// NewMapFS creates an empty in-memory filesystem.
func NewMapFS() *MapFS {
	return &MapFS{
		files:       make(map[string][]byte),
		existsCalls: make(map[string]int),
		readCalls:   make(map[string]int),
	}
}

// Put stores content at path.
func (m *MapFS) Put(path string, content []byte) *MapFS {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = content
	return m
}

// PutArtifact stores content at the conventional artifact path for a
// provider family under root.
func (m *MapFS) PutArtifact(root string, id provider.ID, content []byte) *MapFS {
	return m.Put(filepath.Join(root, id.Dir(), engine.DefaultArtifactName), content)
}

// Remove deletes the file at path.
func (m *MapFS) Remove(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
}

func (m *MapFS) Exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.existsCalls[path]++
	_, ok := m.files[path]
	return ok
}

func (m *MapFS) ReadFile(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readCalls[path]++
	content, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

// Accesses returns the total number of Exists and ReadFile calls across
// all paths.
func (m *MapFS) Accesses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.existsCalls {
		total += n
	}
	for _, n := range m.readCalls {
		total += n
	}
	return total
}

// Reads returns how often path was read.
func (m *MapFS) Reads(path string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.readCalls[path]
}

// WriteArtifact writes content as the artifact for a provider family
// under root on the real filesystem, creating the family directory.
func WriteArtifact(t *testing.T, root string, id provider.ID, content []byte) string {
	t.Helper()
	dir := filepath.Join(root, id.Dir())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, engine.DefaultArtifactName)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// EmptyWasmModule is the smallest valid WebAssembly binary: the magic
// number and version, no sections.
var EmptyWasmModule = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
