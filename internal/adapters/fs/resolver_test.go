package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/pinto/internal/adapters/fs"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
}

func TestResolver_NearestAncestorWins(t *testing.T) {
	boundary := t.TempDir()

	// Both the workspace root and a nested package carry a manifest; the
	// nested one must win.
	writeFile(t, filepath.Join(boundary, "composer.json"))
	writeFile(t, filepath.Join(boundary, "packages", "api", "composer.json"))
	writeFile(t, filepath.Join(boundary, "packages", "api", "src", "Foo.php"))

	resolver := fs.NewResolver()
	root, err := resolver.Resolve(filepath.Join(boundary, "packages", "api", "src", "Foo.php"), boundary)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(boundary, "packages", "api"), root)
}

func TestResolver_FileDirectoryItselfCounts(t *testing.T) {
	boundary := t.TempDir()
	writeFile(t, filepath.Join(boundary, "app", "composer.json"))
	writeFile(t, filepath.Join(boundary, "app", "Foo.php"))

	resolver := fs.NewResolver()
	root, err := resolver.Resolve(filepath.Join(boundary, "app", "Foo.php"), boundary)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(boundary, "app"), root)
}

func TestResolver_FallbackToBoundary(t *testing.T) {
	boundary := t.TempDir()
	writeFile(t, filepath.Join(boundary, "src", "deep", "Foo.php"))

	resolver := fs.NewResolver()
	root, err := resolver.Resolve(filepath.Join(boundary, "src", "deep", "Foo.php"), boundary)
	require.NoError(t, err)
	require.Equal(t, boundary, root)
}

func TestResolver_ManifestAtBoundary(t *testing.T) {
	boundary := t.TempDir()
	writeFile(t, filepath.Join(boundary, "composer.json"))
	writeFile(t, filepath.Join(boundary, "src", "Foo.php"))

	resolver := fs.NewResolver()
	root, err := resolver.Resolve(filepath.Join(boundary, "src", "Foo.php"), boundary)
	require.NoError(t, err)
	require.Equal(t, boundary, root)
}

func TestResolver_ManifestAboveBoundaryIgnored(t *testing.T) {
	outer := t.TempDir()
	boundary := filepath.Join(outer, "workspace")

	// The manifest above the boundary must not leak in.
	writeFile(t, filepath.Join(outer, "composer.json"))
	writeFile(t, filepath.Join(boundary, "src", "Foo.php"))

	resolver := fs.NewResolver()
	root, err := resolver.Resolve(filepath.Join(boundary, "src", "Foo.php"), boundary)
	require.NoError(t, err)
	require.Equal(t, boundary, root)
}
