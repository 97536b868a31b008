package cudart

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cuprov/internal/core/ports"
)

const NodeID graft.ID = "adapter.cudart"

func init() {
	graft.Register(graft.Node[ports.RuntimeAPI]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RuntimeAPI, error) {
			return NewRuntime(), nil
		},
	})
}
