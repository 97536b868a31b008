package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
)

const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*Settings]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Settings, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			return NewLoader().Load(cwd)
		},
	})
}
