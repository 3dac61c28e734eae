package cache

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/grindlemire/graft"
	"go.trai.ch/gate/internal/adapters/fs"
	"go.trai.ch/gate/internal/adapters/logger"
	"go.trai.ch/gate/internal/core/domain"
	"go.trai.ch/gate/internal/core/ports"
)

const (
	// StoreNodeID is the Graft node ID for the manifest store.
	StoreNodeID graft.ID = "adapter.cache.store"
	// NodeID is the Graft node ID for the change cache.
	NodeID graft.ID = "adapter.cache"
)

func init() {
	graft.Register(graft.Node[*Store]{
		ID:        StoreNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Store, error) {
			return NewStore(StorePathFor(domain.ProjectRoot()))
		},
	})

	graft.Register(graft.Node[ports.ChangeCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{StoreNodeID, fs.HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ChangeCache, error) {
			store, err := graft.Dep[*Store](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[*fs.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(store, hasher, log), nil
		},
	})
}

// StorePathFor returns the manifest store path for a project. One file per
// project keeps unrelated checkouts out of each other's way.
func StorePathFor(projectRoot string) string {
	name := fmt.Sprintf("%016x.json", xxhash.Sum64String(projectRoot))
	return filepath.Join(domain.CachePath(), name)
}
