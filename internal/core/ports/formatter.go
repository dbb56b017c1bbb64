package ports

import (
	"context"

	"go.trai.ch/pinto/internal/core/domain"
)

// Formatter runs the full format pipeline for a single file.
//
//go:generate mockgen -source=formatter.go -destination=mocks/mock_formatter.go -package=mocks
type Formatter interface {
	// Format resolves the file's project, locates or installs pint, and
	// applies formatting when the check phase reports violations.
	Format(ctx context.Context, req domain.FormatRequest) (*domain.FormatResult, error)
}
