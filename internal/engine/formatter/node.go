package formatter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinto/internal/adapters/config"
	"go.trai.ch/pinto/internal/adapters/console"
	"go.trai.ch/pinto/internal/adapters/fs"
	"go.trai.ch/pinto/internal/adapters/logger"
	"go.trai.ch/pinto/internal/adapters/pathcache"
	"go.trai.ch/pinto/internal/adapters/shell"
	"go.trai.ch/pinto/internal/adapters/telemetry"
	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
)

// NodeID is the unique identifier for the formatter Graft node.
const NodeID graft.ID = "engine.formatter"

func init() {
	graft.Register(graft.Node[ports.Formatter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			fs.LocatorNodeID,
			pathcache.NodeID,
			shell.RunnerNodeID,
			console.NodeID,
			shell.InstallerNodeID,
			config.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (ports.Formatter, error) {
			resolver, err := graft.Dep[ports.ProjectResolver](ctx)
			if err != nil {
				return nil, err
			}
			locator, err := graft.Dep[ports.BinaryLocator](ctx)
			if err != nil {
				return nil, err
			}
			cache, err := graft.Dep[ports.PathCache](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.ToolRunner](ctx)
			if err != nil {
				return nil, err
			}
			consenter, err := graft.Dep[ports.Consenter](ctx)
			if err != nil {
				return nil, err
			}
			installer, err := graft.Dep[ports.Installer](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(resolver, locator, cache, runner, consenter, installer, settings, log, tracer), nil
		},
	})
}
