// Package driver probes the host's driver utilities: the management library
// and the nvidia-smi diagnostic executable.
package driver

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.trai.ch/cuprov/internal/adapters/fs"
	"go.trai.ch/cuprov/internal/core/domain"
	"go.trai.ch/cuprov/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DriverProbe = (*Probe)(nil)

// Probe implements ports.DriverProbe using the filesystem locator and the
// diagnostic executable itself.
type Probe struct {
	locator *fs.Locator
	logger  ports.Logger
}

// NewProbe creates a new Probe.
func NewProbe(locator *fs.Locator, logger ports.Logger) *Probe {
	return &Probe{locator: locator, logger: logger}
}

// Probe discovers the management library and the diagnostic executable.
// Either alone suffices; a present-but-broken diagnostic counts as absent.
func (p *Probe) Probe(ctx context.Context) (ports.DriverInfo, error) {
	info := ports.DriverInfo{}

	lib, err := p.locator.LocateDriverLibrary()
	if err != nil {
		return info, err
	}
	info.Library = lib

	smi, err := p.locator.LocateDiagnostic()
	if err != nil {
		return info, err
	}
	if smi != "" {
		if err := p.validateDiagnostic(ctx, smi); err != nil {
			p.logger.Warn(fmt.Sprintf("%s is present but not functional, treating as absent: %v", smi, err))
			smi = ""
		}
	}
	info.DiagnosticSMI = smi

	switch {
	case info.Library == "" && info.DiagnosticSMI == "":
		if p.locator.DriverMandatory() {
			return info, domain.ErrDriverNotFound
		}
		p.logger.Warn("no cuda driver found; continuing, the driver is optional on this platform")
	case info.Library == "":
		p.logger.Warn("driver management library not found, relying on the diagnostic executable")
	case info.DiagnosticSMI == "":
		p.logger.Warn("driver diagnostic executable not found, relying on the management library")
	}

	return info, nil
}

// validateDiagnostic invokes the executable with no arguments purely to test
// its exit status.
func (p *Probe) validateDiagnostic(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, path) //nolint:gosec // path resolved by the locator
	if out, err := cmd.CombinedOutput(); err != nil {
		return zerr.With(zerr.Wrap(err, "diagnostic executable failed"), "output", firstLine(out))
	}
	return nil
}

func firstLine(out []byte) string {
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return line
}
