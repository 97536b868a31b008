//go:build !windows && !((linux || darwin) && cgo)

package cudart

import (
	"go.trai.ch/cuprov/internal/core/domain"
	"go.trai.ch/cuprov/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RuntimeAPI = (*Runtime)(nil)

// Runtime is the cgo-less stub. Loading a shared library needs the platform
// loader, so every query fails with ErrVersionQueryFailed.
type Runtime struct{}

// NewRuntime creates a new Runtime.
func NewRuntime() *Runtime {
	return &Runtime{}
}

// Version always fails: the binary was built without cgo.
func (r *Runtime) Version(path string) (domain.Version, error) {
	return domain.Version{}, zerr.With(zerr.With(domain.ErrVersionQueryFailed, "path", path), "reason", "built without cgo")
}
