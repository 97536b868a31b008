package record

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cuprov/internal/core/ports"
)

const NodeID graft.ID = "adapter.record_store"

func init() {
	graft.Register(graft.Node[ports.RecordStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RecordStore, error) {
			return NewStore(DefaultFilename), nil
		},
	})
}
