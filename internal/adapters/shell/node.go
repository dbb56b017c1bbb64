package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinto/internal/adapters/config"
	"go.trai.ch/pinto/internal/adapters/logger"
	"go.trai.ch/pinto/internal/core/domain"
	"go.trai.ch/pinto/internal/core/ports"
)

const (
	// RunnerNodeID is the unique identifier for the tool runner Graft node.
	RunnerNodeID graft.ID = "adapter.tool_runner"
	// InstallerNodeID is the unique identifier for the composer installer Graft node.
	InstallerNodeID graft.ID = "adapter.installer"
)

func init() {
	graft.Register(graft.Node[ports.ToolRunner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ToolRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})

	graft.Register(graft.Node[ports.Installer]{
		ID:        InstallerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{RunnerNodeID, logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (ports.Installer, error) {
			runner, err := graft.Dep[ports.ToolRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			return NewComposerInstaller(runner, log, settings.ComposerBin), nil
		},
	})
}
