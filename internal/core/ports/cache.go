package ports

// PathCache maps project roots to discovered pint binary paths.
//
// Only positive discoveries are cached: a "not found" answer can change
// out-of-band via composer install, so it is never stored.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type PathCache interface {
	// Get returns the cached binary path for root. A cached path that no
	// longer exists on disk is treated as a miss and the entry is dropped.
	Get(root string) (string, bool)

	// Set stores a discovered binary path for root.
	Set(root, path string)

	// Invalidate removes the entry for a single project root.
	Invalidate(root string)

	// InvalidateBoundary removes every entry at or under boundary.
	InvalidateBoundary(boundary string)

	// Clear removes all entries.
	Clear()

	// Len reports the number of live entries.
	Len() int
}
