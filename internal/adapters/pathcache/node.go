package pathcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinto/internal/core/ports"
)

// NodeID is the unique identifier for the path cache Graft node.
const NodeID graft.ID = "adapter.path_cache"

func init() {
	graft.Register(graft.Node[ports.PathCache]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PathCache, error) {
			return New(), nil
		},
	})
}
