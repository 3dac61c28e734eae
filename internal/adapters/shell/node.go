package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gate/internal/adapters/logger"
	"go.trai.ch/gate/internal/core/ports"
)

// NodeID is the Graft node ID for the shell runner.
const NodeID graft.ID = "adapter.shell"

func init() {
	graft.Register(graft.Node[ports.Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Runner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
