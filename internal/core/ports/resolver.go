package ports

// ProjectResolver finds the composer project that owns a file.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ProjectResolver interface {
	// Resolve walks upward from the directory containing filePath, staying
	// at or below boundary, and returns the nearest ancestor directory
	// containing a composer manifest. When no manifest exists between the
	// file and the boundary it returns the boundary itself; the fallback
	// is a defined default, not an error.
	Resolve(filePath, boundary string) (string, error)
}
