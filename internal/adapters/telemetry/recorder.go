package telemetry

import (
	"context"
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/gate/internal/core/ports"
)

var _ ports.Tracer = (*Recorder)(nil)

// Recorder implements ports.Tracer on top of a Progrock tape. Each hook
// execution becomes a vertex; when constructed with New the recorded tree
// is rendered to the display writer on Close.
type Recorder struct {
	w    progrock.Writer
	rec  *progrock.Recorder
	tape *progrock.Tape
	out  io.Writer
}

// New creates a Recorder over a fresh tape that renders the vertex tree to
// out when the recording closes.
func New(out io.Writer) *Recorder {
	tape := progrock.NewTape()
	r := NewRecorder(tape)
	r.tape = tape
	r.out = out
	return r
}

// NewRecorder creates a Recorder writing vertices to w without a display.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start records a new vertex named after the execution.
func (r *Recorder) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	return ctx, &vertexSpan{vertex: v}
}

// Close flushes the tape and renders the recorded tree when a display
// writer is attached and anything was recorded.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			return err
		}
	}
	if r.tape != nil && r.out != nil && r.tape.TotalCount() > 0 {
		return r.tape.Render(r.out, progrock.DefaultUI())
	}
	return nil
}

// vertexSpan implements ports.Span wrapping *progrock.VertexRecorder.
type vertexSpan struct {
	vertex *progrock.VertexRecorder
}

// Write streams command output into the vertex.
func (s *vertexSpan) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// End completes the vertex. A nil error marks success.
func (s *vertexSpan) End(err error) {
	s.vertex.Done(err)
}

// Cached marks the vertex as a cache hit.
func (s *vertexSpan) Cached() {
	s.vertex.Cached()
}
