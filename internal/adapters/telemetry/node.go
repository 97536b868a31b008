package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cuprov/internal/core/ports"
)

// NodeID is the unique identifier for the telemetry adapter Graft node.
// The no-op implementation is the default; the CLI swaps in the progrock
// recorder when stderr is an interactive terminal.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Telemetry, error) {
			return NewNoOp(), nil
		},
	})
}
