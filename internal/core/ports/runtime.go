package ports

import "go.trai.ch/cuprov/internal/core/domain"

// RuntimeAPI is the foreign-function boundary to the CUDA runtime library.
// Exactly one symbol is ever needed, so the boundary is one call, not a
// generic dynamic-dispatch layer.
//
// Implementations load the library, resolve and call the version entry point,
// and release the handle before returning, on the error path included.
//
//go:generate go run go.uber.org/mock/mockgen -source=runtime.go -destination=mocks/mock_runtime.go -package=mocks
type RuntimeAPI interface {
	// Version loads the library at path and queries cudaRuntimeGetVersion.
	// Returns domain.ErrVersionQueryFailed when the library cannot be loaded,
	// the symbol cannot be resolved, or the call reports a non-success status.
	Version(path string) (domain.Version, error)
}
