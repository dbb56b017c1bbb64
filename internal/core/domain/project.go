// Package domain contains core domain types for pinto.
package domain

import "path/filepath"

const (
	// ManifestName is the composer manifest file that marks a project root.
	// Only its existence matters; pinto never parses it.
	ManifestName = "composer.json"

	// VendorDirName is the composer dependency directory.
	VendorDirName = "vendor"

	// VendorBinDirName is the executable directory inside vendor.
	VendorBinDirName = "bin"

	// PintBinaryName is the formatter executable installed by composer.
	PintBinaryName = "pint"

	// PintPackage is the composer package that provides the binary.
	PintPackage = "laravel/pint"
)

// PintRelPath returns the conventional binary path relative to a project root.
func PintRelPath() string {
	return filepath.Join(VendorDirName, VendorBinDirName, PintBinaryName)
}

// ProjectRootOf returns the project root owning a discovered pint binary,
// i.e. the directory containing the vendor directory.
func ProjectRootOf(binaryPath string) string {
	return filepath.Dir(filepath.Dir(filepath.Dir(binaryPath)))
}

// SkipDirNames are directory names the binary locator never descends into:
// version control metadata, foreign dependency caches, and framework
// runtime directories. Pruning is by name only, at any depth.
var SkipDirNames = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	".jj":          true,
	"node_modules": true,
	"storage":      true,
	"cache":        true,
}
