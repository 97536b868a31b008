//go:build (linux || darwin) && cgo

// Package cudart is the foreign-function boundary to the CUDA runtime
// library. One symbol is resolved and called; the handle is released before
// returning on every path.
package cudart

/*
#cgo linux LDFLAGS: -ldl

#include <dlfcn.h>
#include <stdlib.h>

typedef int (*version_fn)(int *);

static int call_version_fn(void *fn, int *out) {
	return ((version_fn)fn)(out);
}
*/
import "C"

import (
	"unsafe"

	"go.trai.ch/cuprov/internal/core/domain"
	"go.trai.ch/cuprov/internal/core/ports"
	"go.trai.ch/zerr"
)

const versionSymbol = "cudaRuntimeGetVersion"

var _ ports.RuntimeAPI = (*Runtime)(nil)

// Runtime implements ports.RuntimeAPI with dlopen/dlsym.
type Runtime struct{}

// NewRuntime creates a new Runtime.
func NewRuntime() *Runtime {
	return &Runtime{}
}

// Version loads the runtime library at path and queries cudaRuntimeGetVersion.
func (r *Runtime) Version(path string) (domain.Version, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	handle := C.dlopen(cpath, C.RTLD_LAZY|C.RTLD_LOCAL)
	if handle == nil {
		return domain.Version{}, zerr.With(domain.ErrVersionQueryFailed, "path", path, "dlerror", C.GoString(C.dlerror()))
	}
	defer C.dlclose(handle)

	csym := C.CString(versionSymbol)
	defer C.free(unsafe.Pointer(csym))

	fn := C.dlsym(handle, csym)
	if fn == nil {
		return domain.Version{}, zerr.With(domain.ErrVersionQueryFailed, "path", path, "symbol", versionSymbol)
	}

	var raw C.int
	if status := C.call_version_fn(fn, &raw); status != 0 {
		return domain.Version{}, zerr.With(domain.ErrVersionQueryFailed, "path", path, "status", int(status))
	}

	return domain.DecodeRuntimeVersion(int(raw)), nil
}
