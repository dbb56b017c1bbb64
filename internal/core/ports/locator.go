package ports

// BinaryLocator searches a project subtree for the pint binary.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type BinaryLocator interface {
	// Find walks root depth-first and returns the first
	// vendor/bin/pint it encounters in directory listing order, or ""
	// when the subtree is exhausted. Unreadable subtrees are skipped,
	// not propagated.
	Find(root string) (string, error)
}
