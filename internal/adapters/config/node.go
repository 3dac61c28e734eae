package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gate/internal/adapters/settings"
	"go.trai.ch/gate/internal/core/ports"
)

// NodeID is the Graft node ID for the config resolver.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{settings.NodeID},
		Run: func(ctx context.Context) (ports.ConfigResolver, error) {
			src, err := graft.Dep[ports.SettingsSource](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(src), nil
		},
	})
}
