// Package pathcache provides the in-memory project-root to binary-path cache.
package pathcache

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/pinto/internal/core/ports"
)

var _ ports.PathCache = (*Cache)(nil)

// Cache maps project roots to located pint binaries. Entries are validated
// on read: a cached path whose file has vanished is dropped and reported as
// a miss, so a deleted vendor tree never yields a stale binary.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]string
}

// New creates an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[string]string)}
}

// Get returns the cached binary for root if the file still exists.
func (c *Cache) Get(root string) (string, bool) {
	c.mu.RLock()
	path, ok := c.entries[root]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}

	if info, err := os.Stat(path); err != nil || info.IsDir() {
		c.mu.Lock()
		// Re-check under the write lock, a concurrent Set may have refreshed it.
		if current, still := c.entries[root]; still && current == path {
			delete(c.entries, root)
		}
		c.mu.Unlock()
		return "", false
	}

	return path, true
}

// Set records the binary path for root. Only successful locations are
// cached, misses are always re-searched.
func (c *Cache) Set(root, binaryPath string) {
	if binaryPath == "" {
		return
	}
	c.mu.Lock()
	c.entries[root] = binaryPath
	c.mu.Unlock()
}

// Invalidate drops the entry for a single project root.
func (c *Cache) Invalidate(root string) {
	c.mu.Lock()
	delete(c.entries, root)
	c.mu.Unlock()
}

// InvalidateBoundary drops every entry whose root lives under boundary,
// boundary itself included.
func (c *Cache) InvalidateBoundary(boundary string) {
	prefix := boundary + string(filepath.Separator)
	c.mu.Lock()
	for root := range c.entries {
		if root == boundary || strings.HasPrefix(root, prefix) {
			delete(c.entries, root)
		}
	}
	c.mu.Unlock()
}

// Clear drops all entries.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]string)
	c.mu.Unlock()
}

// Len returns the number of cached roots.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
