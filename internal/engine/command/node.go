package command

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the command registry Graft node.
const NodeID graft.ID = "engine.command.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Registry, error) {
			return DefaultRegistry(), nil
		},
	})
}
