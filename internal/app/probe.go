package app

import (
	"context"
	"fmt"

	"go.trai.ch/cuprov/internal/core/domain"
	"go.trai.ch/cuprov/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Report describes what a probe found on the machine. Absent components are
// reported as notes rather than errors so the whole picture prints in one go.
type Report struct {
	RuntimeLibrary string
	Version        domain.Version
	Driver         ports.DriverInfo
	Toolchain      domain.Toolchain
	Devices        []domain.Capability
	Notes          []string
}

// Probe inspects the machine without building or persisting anything. The
// independent discovery steps fan out concurrently.
func (a *App) Probe(ctx context.Context) (*Report, error) {
	report := &Report{}
	var runtimeNote, driverNote, toolchainNote string

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		path, err := a.locator.LocateRuntimeLibrary()
		if err != nil {
			runtimeNote = fmt.Sprintf("runtime library: %v", err)
			return nil
		}
		report.RuntimeLibrary = path
		version, err := a.runtime.Version(path)
		if err != nil {
			runtimeNote = fmt.Sprintf("runtime version: %v", err)
			return nil
		}
		report.Version = version
		return nil
	})

	g.Go(func() error {
		info, err := a.driver.Probe(ctx)
		if err != nil {
			driverNote = fmt.Sprintf("driver: %v", err)
			return nil
		}
		report.Driver = info
		report.Devices, _ = a.devices.Capabilities(ctx)
		return nil
	})

	g.Go(func() error {
		tc, err := a.locator.LocateToolchain()
		if err != nil {
			toolchainNote = fmt.Sprintf("toolchain: %v", err)
			return nil
		}
		report.Toolchain = tc
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, note := range []string{runtimeNote, driverNote, toolchainNote} {
		if note != "" {
			report.Notes = append(report.Notes, note)
		}
	}
	return report, nil
}
