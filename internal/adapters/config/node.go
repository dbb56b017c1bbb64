package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinto/internal/adapters/logger"
	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the config loader Graft node.
	LoaderNodeID graft.ID = "adapter.config_loader"
	// NodeID is the unique identifier for the effective settings Graft node.
	NodeID graft.ID = "adapter.settings"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[*domain.Settings]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LoaderNodeID, logger.NodeID},
		Run: func(ctx context.Context) (*domain.Settings, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			settings, err := loader.Load(cwd)
			if err != nil {
				return nil, err
			}

			if settings.JSONLogs {
				log, depErr := graft.Dep[ports.Logger](ctx)
				if depErr != nil {
					return nil, depErr
				}
				if jl, ok := log.(interface{ SetJSON(bool) }); ok {
					jl.SetJSON(true)
				}
			}
			return settings, nil
		},
	})
}
