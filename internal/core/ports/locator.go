// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/cuprov/internal/core/domain"

// Locator resolves libraries and executables on the host.
//
// Search order is: the ordered environment-variable override roots first,
// then the process library path (LD_LIBRARY_PATH or PATH), then the
// platform-conventional install directories. Returned paths are absolute
// with symlinks resolved to the concrete file.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type Locator interface {
	// LocateRuntimeLibrary finds the CUDA runtime shared library.
	// Returns domain.ErrRuntimeNotFound when no candidate resolves.
	LocateRuntimeLibrary() (string, error)

	// LocateDriverLibrary finds the driver management library.
	// Absence is an expected state: the empty string is returned with a nil
	// error so the caller can apply its own fallback policy.
	LocateDriverLibrary() (string, error)

	// LocateToolchain finds nvcc and a compatible host compiler.
	// Returns domain.ErrCompilerNotFound when either is absent.
	LocateToolchain() (domain.Toolchain, error)
}
