package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gate/internal/core/ports"
)

const (
	// WalkerNodeID is the Graft node ID for the tree walker.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// HasherNodeID is the Graft node ID for the content hasher.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// MarkersNodeID is the Graft node ID for the marker finder.
	MarkersNodeID graft.ID = "adapter.fs.markers"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (*Hasher, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewHasher(walker), nil
		},
	})

	graft.Register(graft.Node[ports.MarkerFinder]{
		ID:        MarkersNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.MarkerFinder, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewMarkers(walker), nil
		},
	})
}
