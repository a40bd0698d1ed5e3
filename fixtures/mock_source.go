package fixtures

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"
)

// MockSource is an in-memory Source for testing
type MockSource struct {
	files map[string]string
	mu    sync.RWMutex
}

// NewMockSource creates a mock source holding the given name → content pairs
func NewMockSource(files map[string]string) *MockSource {
	m := &MockSource{files: make(map[string]string, len(files))}
	for name, content := range files {
		m.files[name] = content
	}
	return m
}

// Put adds or replaces a fixture
func (m *MockSource) Put(name, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[name] = content
}

// Open returns the stored content or an fs.ErrNotExist error
func (m *MockSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	content, ok := m.files[name]
	if !ok {
		return nil, fmt.Errorf("failed to open fixture %s: %w", name, fs.ErrNotExist)
	}
	return io.NopCloser(strings.NewReader(content)), nil
}
