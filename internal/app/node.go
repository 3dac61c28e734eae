package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/gate/internal/adapters/logger"
	"go.trai.ch/gate/internal/adapters/telemetry"
	"go.trai.ch/gate/internal/core/ports"
	"go.trai.ch/gate/internal/engine/orchestrator"
)

const (
	// AppNodeID is the Graft node ID for the main App.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the Graft node ID for the component bundle handed
	// to the CLI layer.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles everything the CLI layer needs.
type Components struct {
	App    *App
	Logger ports.Logger
	Tracer ports.Tracer
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{orchestrator.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*App, error) {
			orch, err := graft.Dep[*orchestrator.Orchestrator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(orch, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log, Tracer: tracer}, nil
		},
	})
}
