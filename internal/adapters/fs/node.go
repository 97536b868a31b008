package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cuprov/internal/adapters/config"
	"go.trai.ch/cuprov/internal/adapters/logger"
	"go.trai.ch/cuprov/internal/core/ports"
)

const (
	LocatorNodeID       graft.ID = "adapter.fs.locator"
	FingerprinterNodeID graft.ID = "adapter.fs.fingerprinter"
)

func init() {
	// Locator Node (concrete type: the driver probe needs LocateDiagnostic)
	graft.Register(graft.Node[*Locator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, config.NodeID},
		Run: func(ctx context.Context) (*Locator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}
			l := NewLocator(log)
			l.ExtraRoots = settings.SearchRoots
			l.HostCompiler = settings.HostCompiler
			return l, nil
		},
	})

	// Fingerprinter Node
	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        FingerprinterNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Fingerprinter, error) {
			return NewFingerprinter(), nil
		},
	})
}
