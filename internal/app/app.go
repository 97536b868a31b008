// Package app implements the provisioning run.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/cuprov/internal/adapters/config"
	"go.trai.ch/cuprov/internal/core/domain"
	"go.trai.ch/cuprov/internal/core/ports"
	"go.trai.ch/zerr"
)

// Native source filenames, relative to the settings' source directory.
const (
	shimSource    = "shim.cu"
	utilitySource = "memops.cu"
	fixtureSource = "vadd.cu"
)

// App orchestrates provisioning runs.
type App struct {
	locator     ports.Locator
	driver      ports.DriverProbe
	devices     ports.DeviceSource
	runtime     ports.RuntimeAPI
	fingerprint ports.Fingerprinter
	compiler    ports.Compiler
	store       ports.RecordStore
	settings    *config.Settings
	logger      ports.Logger
	telemetry   ports.Telemetry
}

// Components bundles the wired application for the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

// New creates a new App instance.
func New(
	locator ports.Locator,
	driver ports.DriverProbe,
	devices ports.DeviceSource,
	runtimeAPI ports.RuntimeAPI,
	fingerprint ports.Fingerprinter,
	compiler ports.Compiler,
	store ports.RecordStore,
	settings *config.Settings,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		locator:     locator,
		driver:      driver,
		devices:     devices,
		runtime:     runtimeAPI,
		fingerprint: fingerprint,
		compiler:    compiler,
		store:       store,
		settings:    settings,
		logger:      logger,
		telemetry:   telemetry,
	}
}

// SetTelemetry replaces the telemetry sink. Used by the CLI to swap in the
// interactive recorder before the run starts.
func (a *App) SetTelemetry(t ports.Telemetry) {
	a.telemetry = t
}

// RunOptions control a single provisioning run.
type RunOptions struct {
	// Force bypasses reconciliation and always rebuilds.
	Force bool
}

// Run executes one provisioning run. On any fatal error the persisted record
// and its backup are removed before the error propagates, so a load-time
// consumer never observes a config describing a failed or partial build.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if err := a.provision(ctx, opts); err != nil {
		if derr := a.store.Discard(); derr != nil {
			a.logger.Error(derr)
		}
		return err
	}
	return nil
}

// provision walks the discovery pipeline: runtime library, driver utilities,
// runtime version, device capability, compiler toolchain, then reconciles
// against the previous record and rebuilds when anything changed.
func (a *App) provision(ctx context.Context, opts RunOptions) error {
	previous, err := a.store.Load()
	if err != nil {
		// A record we cannot parse is no better than no record: rebuild.
		a.logger.Warn(fmt.Sprintf("ignoring unreadable toolchain record: %v", err))
		previous = nil
	}
	if err := a.store.Stash(); err != nil {
		return err
	}

	fresh := &domain.ToolchainConfig{}

	if err := a.step(ctx, "discover cuda runtime", func(ctx context.Context) error {
		fresh.Libcudart, err = a.locator.LocateRuntimeLibrary()
		return err
	}); err != nil {
		return err
	}

	if err := a.step(ctx, "probe driver", func(ctx context.Context) error {
		info, err := a.driver.Probe(ctx)
		if err != nil {
			return err
		}
		fresh.Libcuda = info.Library
		fresh.NvidiaSMI = info.DiagnosticSMI
		return nil
	}); err != nil {
		return err
	}

	if err := a.step(ctx, "query runtime version", func(ctx context.Context) error {
		fresh.Version, err = a.runtime.Version(fresh.Libcudart)
		return err
	}); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("cuda runtime %s at %s", fresh.Version, fresh.Libcudart))

	if err := a.step(ctx, "select compute capability", func(ctx context.Context) error {
		fresh.Capability, err = a.selectCapability(ctx, fresh.Version)
		return err
	}); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("targeting compute capability %s (%s)", fresh.Capability, fresh.Capability.Arch()))

	if err := a.step(ctx, "discover compiler toolchain", func(ctx context.Context) error {
		tc, err := a.locator.LocateToolchain()
		if err != nil {
			return err
		}
		fresh.Nvcc = tc.Nvcc
		fresh.HostCompiler = tc.HostCompiler
		return nil
	}); err != nil {
		return err
	}

	if err := a.step(ctx, "fingerprint native sources", func(ctx context.Context) error {
		fresh.SourceHash, err = a.fingerprint.SourceHash(a.sources())
		return err
	}); err != nil {
		return err
	}

	if !opts.Force && domain.Reconcile(fresh, previous) == domain.Reuse {
		_, v := a.telemetry.Record(ctx, "build artifacts")
		v.Cached()
		v.Complete(nil)
		a.logger.Info("configuration unchanged, reusing existing artifacts")
		return a.store.Restore()
	}

	if err := a.step(ctx, "build artifacts", func(ctx context.Context) error {
		return a.buildArtifacts(ctx, fresh)
	}); err != nil {
		return err
	}

	if err := a.step(ctx, "persist toolchain record", func(ctx context.Context) error {
		return a.store.Commit(fresh)
	}); err != nil {
		return err
	}

	a.logger.Info("provisioning complete")
	return nil
}

// selectCapability resolves the capability to compile for: the pinned
// setting when present, otherwise the richest toolkit-supported capability
// at or below the weakest attached device.
func (a *App) selectCapability(ctx context.Context, version domain.Version) (domain.Capability, error) {
	supported, err := domain.SupportedCapabilities(version)
	if err != nil {
		return domain.Capability{}, err
	}

	if a.settings.CapabilityPinned {
		return domain.SelectCapability([]domain.Capability{a.settings.Capability}, supported)
	}

	local, err := a.devices.Capabilities(ctx)
	if err != nil {
		return domain.Capability{}, err
	}
	return domain.SelectCapability(local, supported)
}

// buildArtifacts runs the three compiler invocations: the shim shared
// library, the architecture-targeted utility PTX, and the test fixture PTX.
func (a *App) buildArtifacts(ctx context.Context, cfg *domain.ToolchainConfig) error {
	if err := os.MkdirAll(a.settings.ArtifactDir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create artifact directory"), "path", a.settings.ArtifactDir)
	}

	tc := cfg.Toolchain()
	arch := cfg.Capability.Arch()

	if err := a.compiler.BuildShared(ctx, tc,
		filepath.Join(a.settings.SourceDir, shimSource),
		filepath.Join(a.settings.ArtifactDir, sharedLibName("shim")),
	); err != nil {
		return err
	}
	if err := a.compiler.BuildPTX(ctx, tc, arch,
		filepath.Join(a.settings.SourceDir, utilitySource),
		filepath.Join(a.settings.ArtifactDir, "memops.ptx"),
	); err != nil {
		return err
	}
	return a.compiler.BuildPTX(ctx, tc, arch,
		filepath.Join(a.settings.SourceDir, fixtureSource),
		filepath.Join(a.settings.ArtifactDir, "vadd.ptx"),
	)
}

// Clean removes the generated artifacts, the record and its backup.
func (a *App) Clean(ctx context.Context) error {
	for _, name := range []string{sharedLibName("shim"), "memops.ptx", "vadd.ptx"} {
		path := filepath.Join(a.settings.ArtifactDir, name)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return zerr.With(zerr.Wrap(err, "failed to remove artifact"), "path", path)
		}
	}
	return a.store.Discard()
}

func (a *App) sources() []string {
	return []string{
		filepath.Join(a.settings.SourceDir, shimSource),
		filepath.Join(a.settings.SourceDir, utilitySource),
		filepath.Join(a.settings.SourceDir, fixtureSource),
	}
}

// step records one provisioning step as a telemetry vertex.
func (a *App) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, v := a.telemetry.Record(ctx, name)
	err := fn(ctx)
	v.Complete(err)
	return err
}

func sharedLibName(base string) string {
	switch runtime.GOOS {
	case "windows":
		return base + ".dll"
	case "darwin":
		return "lib" + base + ".dylib"
	default:
		return "lib" + base + ".so"
	}
}
