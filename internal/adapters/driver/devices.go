package driver

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.trai.ch/cuprov/internal/adapters/fs"
	"go.trai.ch/cuprov/internal/core/domain"
	"go.trai.ch/cuprov/internal/core/ports"
)

var _ ports.DeviceSource = (*Devices)(nil)

// Devices enumerates attached device capabilities through the diagnostic
// executable.
type Devices struct {
	locator *fs.Locator
	logger  ports.Logger
}

// NewDevices creates a new Devices source.
func NewDevices(locator *fs.Locator, logger ports.Logger) *Devices {
	return &Devices{locator: locator, logger: logger}
}

// Capabilities queries nvidia-smi for one compute capability per device.
// A missing or failing diagnostic yields an empty list, not an error: the
// caller decides whether no devices is fatal.
func (d *Devices) Capabilities(ctx context.Context) ([]domain.Capability, error) {
	smi, err := d.locator.LocateDiagnostic()
	if err != nil {
		return nil, err
	}
	if smi == "" {
		return nil, nil
	}

	cmd := exec.CommandContext(ctx, smi, "--query-gpu=compute_cap", "--format=csv,noheader") //nolint:gosec // path resolved by the locator
	out, err := cmd.Output()
	if err != nil {
		d.logger.Warn(fmt.Sprintf("device query via %s failed: %v", smi, err))
		return nil, nil
	}

	var local []domain.Capability
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cap, err := domain.ParseCapability(line)
		if err != nil {
			d.logger.Warn(fmt.Sprintf("skipping unparseable compute capability %q", line))
			continue
		}
		local = append(local, cap)
	}
	return local, nil
}
