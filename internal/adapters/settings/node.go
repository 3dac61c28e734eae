package settings

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
)

// NodeID is the Graft node ID for the settings source.
const NodeID graft.ID = "adapter.settings"

func init() {
	graft.Register(graft.Node[ports.SettingsSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SettingsSource, error) {
			return New(domain.ProjectRoot()), nil
		},
	})
}
