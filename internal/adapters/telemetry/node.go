package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/mattn/go-isatty"
	"go.trai.ch/gate/internal/core/ports"
)

// NodeID is the Graft node ID for the telemetry tracer.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			// The rendered tree is for operators. Piped stderr gets the
			// plain report only.
			if isatty.IsTerminal(os.Stderr.Fd()) {
				return New(os.Stderr), nil
			}
			return NewNoOpTracer(), nil
		},
	})
}
