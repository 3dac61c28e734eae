package tracker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gate/internal/core/ports"
)

// NodeID is the Graft node ID for the session tracker.
const NodeID graft.ID = "adapter.tracker"

func init() {
	graft.Register(graft.Node[ports.SessionTracker]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SessionTracker, error) {
			return New(), nil
		},
	})
}
