package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gate/internal/adapters/logger"
	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
)

// NodeID is the Graft node ID for the plugin registry.
const NodeID graft.ID = "adapter.registry"

func init() {
	graft.Register(graft.Node[ports.PluginRegistry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.PluginRegistry, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(domain.ProjectRoot(), log), nil
		},
	})
}
