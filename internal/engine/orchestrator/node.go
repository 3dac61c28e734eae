package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gate/internal/adapters/cache"
	"go.trai.ch/gate/internal/adapters/config"
	"go.trai.ch/gate/internal/adapters/fs"
	"go.trai.ch/gate/internal/adapters/lock"
	"go.trai.ch/gate/internal/adapters/logger"
	"go.trai.ch/gate/internal/adapters/registry"
	"go.trai.ch/gate/internal/adapters/shell"
	"go.trai.ch/gate/internal/adapters/telemetry"
	"go.trai.ch/gate/internal/adapters/tracker"
	"go.trai.ch/gate/internal/core/ports"
)

// NodeID is the Graft node ID for the orchestrator.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			registry.NodeID,
			config.NodeID,
			fs.MarkersNodeID,
			cache.NodeID,
			lock.NodeID,
			shell.NodeID,
			tracker.NodeID,
			telemetry.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			reg, err := graft.Dep[ports.PluginRegistry](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.ConfigResolver](ctx)
			if err != nil {
				return nil, err
			}
			finder, err := graft.Dep[ports.MarkerFinder](ctx)
			if err != nil {
				return nil, err
			}
			changeCache, err := graft.Dep[ports.ChangeCache](ctx)
			if err != nil {
				return nil, err
			}
			locker, err := graft.Dep[ports.Locker](ctx)
			if err != nil {
				return nil, err
			}
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			sessions, err := graft.Dep[ports.SessionTracker](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(reg, resolver, finder, changeCache, locker, runner, sessions, tracer, log), nil
		},
	})
}
