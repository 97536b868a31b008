package ports

import (
	"context"

	"go.trai.ch/cuprov/internal/core/domain"
)

// DriverInfo is the outcome of probing the host's driver utilities.
// Either path may be empty when the corresponding utility is absent.
type DriverInfo struct {
	Library       string
	DiagnosticSMI string
}

// DriverProbe discovers the driver management library and the companion
// diagnostic executable.
//
// Absence of one utility alone is a logged warning, because the other may
// suffice. Absence of both is domain.ErrDriverNotFound on platforms where
// the driver is mandatory, and only a warning where the driver may be absent
// by design. A diagnostic executable that is present but exits non-zero is
// treated as absent.
//
//go:generate go run go.uber.org/mock/mockgen -source=driver.go -destination=mocks/mock_driver.go -package=mocks
type DriverProbe interface {
	Probe(ctx context.Context) (DriverInfo, error)
}

// DeviceSource enumerates the compute capabilities of locally attached devices.
type DeviceSource interface {
	// Capabilities returns one entry per attached device. An empty slice with
	// a nil error means no device was detected.
	Capabilities(ctx context.Context) ([]domain.Capability, error)
}
