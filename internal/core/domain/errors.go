package domain

import "go.trai.ch/zerr"

var (
	// ErrRuntimeNotFound is returned when no candidate resolves to the CUDA runtime library.
	ErrRuntimeNotFound = zerr.New("cuda runtime library not found")

	// ErrDriverNotFound is returned when both the management library and the
	// diagnostic executable are absent on a platform where the driver is mandatory.
	ErrDriverNotFound = zerr.New("cuda driver not found")

	// ErrVersionQueryFailed is returned when the runtime library cannot be loaded,
	// the version symbol cannot be resolved, or the call reports a non-success status.
	ErrVersionQueryFailed = zerr.New("runtime version query failed")

	// ErrNoDevice is returned when no local device capability can be determined
	// and no capability is pinned in the settings.
	ErrNoDevice = zerr.New("no cuda device detected")

	// ErrNoCompatibleCapability is returned when the toolkit supports no capability
	// at or below the weakest attached device.
	ErrNoCompatibleCapability = zerr.New("no compatible compute capability")

	// ErrCompilerNotFound is returned when nvcc or the host compiler is absent.
	ErrCompilerNotFound = zerr.New("cuda compiler not found")

	// ErrCompilerInvocationFailed is returned when an nvcc invocation exits non-zero.
	ErrCompilerInvocationFailed = zerr.New("compiler invocation failed")

	// ErrInvalidCapability is returned when a capability string cannot be parsed.
	ErrInvalidCapability = zerr.New("invalid compute capability")

	// ErrRecordReadFailed is returned when the persisted record cannot be read.
	ErrRecordReadFailed = zerr.New("failed to read toolchain record")

	// ErrRecordMalformed is returned when the persisted record cannot be parsed.
	ErrRecordMalformed = zerr.New("malformed toolchain record")

	// ErrRecordWriteFailed is returned when the toolchain record cannot be written.
	ErrRecordWriteFailed = zerr.New("failed to write toolchain record")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read settings file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrSourceNotFound is returned when a declared native source is missing.
	ErrSourceNotFound = zerr.New("native source not found")
)
