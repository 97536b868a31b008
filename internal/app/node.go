package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cuprov/internal/adapters/config"
	"go.trai.ch/cuprov/internal/adapters/cudart"
	"go.trai.ch/cuprov/internal/adapters/driver"
	"go.trai.ch/cuprov/internal/adapters/fs"
	"go.trai.ch/cuprov/internal/adapters/logger"
	"go.trai.ch/cuprov/internal/adapters/nvcc"
	"go.trai.ch/cuprov/internal/adapters/record"
	"go.trai.ch/cuprov/internal/adapters/telemetry"
	"go.trai.ch/cuprov/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.LocatorNodeID,
			fs.FingerprinterNodeID,
			driver.ProbeNodeID,
			driver.DevicesNodeID,
			cudart.NodeID,
			nvcc.NodeID,
			record.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	locator, err := graft.Dep[*fs.Locator](ctx)
	if err != nil {
		return nil, err
	}
	probe, err := graft.Dep[ports.DriverProbe](ctx)
	if err != nil {
		return nil, err
	}
	devices, err := graft.Dep[ports.DeviceSource](ctx)
	if err != nil {
		return nil, err
	}
	runtimeAPI, err := graft.Dep[ports.RuntimeAPI](ctx)
	if err != nil {
		return nil, err
	}
	fingerprint, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}
	compiler, err := graft.Dep[ports.Compiler](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.RecordStore](ctx)
	if err != nil {
		return nil, err
	}
	settings, err := graft.Dep[*config.Settings](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(locator, probe, devices, runtimeAPI, fingerprint, compiler, store, settings, log, tel), nil
}
