// Package progrock provides the Progrock implementation of the telemetry
// adapter.
package progrock

import (
	"context"
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/cuprov/internal/core/ports"
)

// Recorder implements ports.Telemetry using the progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	// tape and out are set when the recorder owns a renderable tape; Close
	// then renders the run to out.
	tape *progrock.Tape
	out  io.Writer
}

// New creates a Recorder that renders the recorded run to out on Close.
func New(out io.Writer) ports.Telemetry {
	tape := progrock.NewTape()
	r := NewRecorder(tape)
	r.tape = tape
	r.out = out
	return r
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	v := r.rec.Vertex(d, name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes the recording session and renders the run.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		if err := c.Close(); err != nil {
			return err
		}
	}
	if r.tape != nil && r.out != nil {
		return r.tape.Render(r.out, progrock.DefaultUI())
	}
	return nil
}
