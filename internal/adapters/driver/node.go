package driver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cuprov/internal/adapters/fs"
	"go.trai.ch/cuprov/internal/adapters/logger"
	"go.trai.ch/cuprov/internal/core/ports"
)

const (
	ProbeNodeID   graft.ID = "adapter.driver.probe"
	DevicesNodeID graft.ID = "adapter.driver.devices"
)

func init() {
	graft.Register(graft.Node[ports.DriverProbe]{
		ID:        ProbeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.LocatorNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DriverProbe, error) {
			locator, err := graft.Dep[*fs.Locator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewProbe(locator, log), nil
		},
	})

	graft.Register(graft.Node[ports.DeviceSource]{
		ID:        DevicesNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.LocatorNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.DeviceSource, error) {
			locator, err := graft.Dep[*fs.Locator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDevices(locator, log), nil
		},
	})
}
