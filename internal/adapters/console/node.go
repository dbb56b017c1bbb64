package console

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pinto/internal/core/ports"
)

// NodeID is the unique identifier for the consenter Graft node.
const NodeID graft.ID = "adapter.consenter"

func init() {
	graft.Register(graft.Node[ports.Consenter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Consenter, error) {
			return NewConsenter(), nil
		},
	})
}
