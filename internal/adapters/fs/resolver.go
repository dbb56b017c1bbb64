// Package fs implements filesystem-backed project resolution and binary
// discovery.
package fs

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectResolver = (*Resolver)(nil)

// Resolver implements ports.ProjectResolver by upward directory traversal.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve returns the nearest ancestor of filePath (inclusive of its own
// directory) containing a composer manifest, confined to boundary. When no
// manifest exists between the file and the boundary, the boundary itself
// is returned. The fallback is a defined default, not a failure.
func (r *Resolver) Resolve(filePath, boundary string) (string, error) {
	absFile, err := filepath.Abs(filePath)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve absolute path"), "path", filePath)
	}
	absBoundary, err := filepath.Abs(boundary)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve absolute path"), "path", boundary)
	}

	currentDir := filepath.Dir(absFile)
	for isWithin(currentDir, absBoundary) {
		manifestPath := filepath.Join(currentDir, domain.ManifestName)
		if _, statErr := os.Stat(manifestPath); statErr == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached the filesystem root.
			break
		}
		currentDir = parentDir
	}

	return absBoundary, nil
}

// isWithin reports whether path is boundary itself or a descendant of it.
func isWithin(path, boundary string) bool {
	if path == boundary {
		return true
	}
	return strings.HasPrefix(path, boundary+string(filepath.Separator))
}
