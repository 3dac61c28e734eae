package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer is the entry point for creating spans around hook executions.
type Tracer interface {
	// Start creates a new span.
	Start(ctx context.Context, name string) (context.Context, Span)

	// Close flushes any pending output.
	Close() error
}

// Span represents one unit of work, typically a single directory execution.
type Span interface {
	io.Writer

	// End completes the span. A nil error marks success.
	End(err error)

	// Cached marks the span as a cache hit.
	Cached()
}
