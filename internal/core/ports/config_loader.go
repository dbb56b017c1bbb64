package ports

import "go.trai.ch/pinto/internal/core/domain"

// ConfigLoader defines the interface for loading pinto configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers pinto.yaml upward from cwd and returns the effective
	// settings. A missing file yields defaults, not an error.
	Load(cwd string) (*domain.Settings, error)

	// DiscoverBoundary walks up from cwd to find the workspace boundary:
	// the directory containing pinto.yaml, or cwd itself when none exists.
	DiscoverBoundary(cwd string) (string, error)
}
