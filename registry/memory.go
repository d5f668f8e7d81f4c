package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/harolddawson/dircat/types"
)

var _ types.Registry = (*Memory)(nil)

// Memory is an in-memory location registry. It is useful for tests and for
// embedders that manage their own name-to-path mapping.
type Memory struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemory creates a Memory registry seeded with the given mapping.
// A nil seed is allowed.
func NewMemory(seed map[string]string) *Memory {
	m := make(map[string]string, len(seed))
	for k, v := range seed {
		m[k] = v
	}
	return &Memory{m: m}
}

// Lookup implements [types.Registry].
func (r *Memory) Lookup(_ context.Context, name string) (string, error) {
	r.mu.RLock()
	path, ok := r.m[name]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", types.ErrNameNotFound, name)
	}
	return path, nil
}

// Put registers path under name, replacing any existing entry.
func (r *Memory) Put(name, path string) {
	r.mu.Lock()
	r.m[name] = path
	r.mu.Unlock()
}

// Delete removes name. Deleting an unknown name is not an error.
func (r *Memory) Delete(name string) {
	r.mu.Lock()
	delete(r.m, name)
	r.mu.Unlock()
}

// Names returns all registered names in lexical order.
func (r *Memory) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.m))
	for n := range r.m {
		names = append(names, n)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}
