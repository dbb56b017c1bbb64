package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinto/internal/adapters/config"
	"go.trai.ch/pinto/internal/adapters/logger"
	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
)

const (
	// ResolverNodeID is the unique identifier for the project resolver Graft node.
	ResolverNodeID graft.ID = "adapter.project_resolver"
	// LocatorNodeID is the unique identifier for the binary locator Graft node.
	LocatorNodeID graft.ID = "adapter.binary_locator"
)

func init() {
	graft.Register(graft.Node[ports.ProjectResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProjectResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.BinaryLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.BinaryLocator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			// The prune predicate combines the built-in skip set with
			// search.exclude from pinto.yaml.
			return NewLocator(log).WithSkipFunc(settings.SkipDir), nil
		},
	})
}
