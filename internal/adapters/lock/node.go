package lock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gate/internal/adapters/logger"
	"go.trai.ch/gate/internal/core/ports"
)

// NodeID is the Graft node ID for the slot locker.
const NodeID graft.ID = "adapter.lock"

func init() {
	graft.Register(graft.Node[ports.Locker]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Locker, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocker(log), nil
		},
	})
}
