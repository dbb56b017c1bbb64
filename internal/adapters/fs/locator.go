package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
)

var _ ports.BinaryLocator = (*Locator)(nil)

// Locator implements ports.BinaryLocator with a depth-first walk.
type Locator struct {
	logger  ports.Logger
	skipDir func(name string) bool
}

// NewLocator creates a Locator pruning the built-in skip set.
func NewLocator(logger ports.Logger) *Locator {
	return &Locator{
		logger:  logger,
		skipDir: func(name string) bool { return domain.SkipDirNames[name] },
	}
}

// WithSkipFunc replaces the prune predicate, used to honor configured
// exclude directories.
func (l *Locator) WithSkipFunc(skip func(name string) bool) *Locator {
	l.skipDir = skip
	return l
}

// Find walks root depth-first and returns the first vendor/bin/pint found
// in directory listing order, or "" when the subtree is exhausted. A
// directory named vendor is probed for the conventional binary sub-path;
// on a hit the walk stops immediately. Pruned names are never descended
// into, at any depth. Unreadable entries are logged and treated as
// "nothing found here" so the walk continues on siblings.
func (l *Locator) Find(root string) (string, error) {
	var found string

	walkErr := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			if l.logger != nil {
				l.logger.Warn(fmt.Sprintf("skipping unreadable path %s: %v", path, err))
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.IsDir() {
			return nil
		}

		if d.Name() == domain.VendorDirName {
			candidate := filepath.Join(path, domain.VendorBinDirName, domain.PintBinaryName)
			if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
				found = candidate
				return filepath.SkipAll
			}
			// A vendor directory without the binary is still pruned: pint
			// never lives deeper inside someone else's vendor tree.
			return filepath.SkipDir
		}

		if path != root && l.skipDir(d.Name()) {
			return filepath.SkipDir
		}

		return nil
	})
	if walkErr != nil {
		// WalkDir errors are already handled per-entry; anything else means
		// the root itself was unreadable, which is "not found".
		if l.logger != nil {
			l.logger.Warn(fmt.Sprintf("binary search aborted under %s: %v", root, walkErr))
		}
		return "", nil
	}

	return found, nil
}
