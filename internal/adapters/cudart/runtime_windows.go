//go:build windows

package cudart

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"go.trai.ch/cuprov/internal/core/domain"
	"go.trai.ch/cuprov/internal/core/ports"
	"go.trai.ch/zerr"
)

const versionSymbol = "cudaRuntimeGetVersion"

var _ ports.RuntimeAPI = (*Runtime)(nil)

// Runtime implements ports.RuntimeAPI with LoadLibrary/GetProcAddress.
type Runtime struct{}

// NewRuntime creates a new Runtime.
func NewRuntime() *Runtime {
	return &Runtime{}
}

// Version loads the runtime DLL at path and queries cudaRuntimeGetVersion.
func (r *Runtime) Version(path string) (domain.Version, error) {
	handle, err := windows.LoadLibraryEx(path, 0, windows.LOAD_WITH_ALTERED_SEARCH_PATH)
	if err != nil {
		return domain.Version{}, zerr.With(zerr.Wrap(domain.ErrVersionQueryFailed, err.Error()), "path", path)
	}
	defer windows.FreeLibrary(handle) //nolint:errcheck // Best effort release in defer

	proc, err := windows.GetProcAddress(handle, versionSymbol)
	if err != nil {
		return domain.Version{}, zerr.With(domain.ErrVersionQueryFailed, "path", path, "symbol", versionSymbol)
	}

	var raw int32
	status, _, _ := syscall.SyscallN(proc, uintptr(unsafe.Pointer(&raw)))
	if status != 0 {
		return domain.Version{}, zerr.With(domain.ErrVersionQueryFailed, "path", path, "status", int(status))
	}

	return domain.DecodeRuntimeVersion(int(raw)), nil
}
