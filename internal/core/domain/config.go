package domain

// Record binding keys. The persisted record carries exactly these keys, one
// binding per line; the load-time consumer of the binding library resolves
// them by name.
const (
	KeyLibcudart    = "libcudart"
	KeyLibcuda      = "libcuda"
	KeyNvidiaSMI    = "nvidia_smi"
	KeyVersion      = "version"
	KeyCapability   = "capability"
	KeyNvcc         = "nvcc"
	KeyHostCompiler = "host_compiler"
	KeySourceHash   = "source_hash"
)

// recordKeys is the canonical binding order of the persisted record.
var recordKeys = []string{
	KeyLibcudart,
	KeyLibcuda,
	KeyNvidiaSMI,
	KeyVersion,
	KeyCapability,
	KeyNvcc,
	KeyHostCompiler,
	KeySourceHash,
}

// RecordKeys returns the binding keys in canonical order.
func RecordKeys() []string {
	keys := make([]string, len(recordKeys))
	copy(keys, recordKeys)
	return keys
}

// ToolchainConfig is the outcome of one provisioning run. It is constructed
// fresh at the start of each run and never mutated once persisted.
//
// Libcuda and NvidiaSMI may be empty: absence of one driver utility is
// tolerated as long as the other is present (or the platform treats the
// driver as optional).
type ToolchainConfig struct {
	Libcudart    string
	Libcuda      string
	NvidiaSMI    string
	Version      Version
	Capability   Capability
	Nvcc         string
	HostCompiler string
	SourceHash   string
}

// Toolchain is the compiler pairing used to build the native artifacts.
type Toolchain struct {
	Nvcc         string
	HostCompiler string
}

// Toolchain returns the compiler pairing recorded in the config.
func (c *ToolchainConfig) Toolchain() Toolchain {
	return Toolchain{Nvcc: c.Nvcc, HostCompiler: c.HostCompiler}
}

// Bindings returns the config as record bindings keyed by RecordKeys.
func (c *ToolchainConfig) Bindings() map[string]string {
	return map[string]string{
		KeyLibcudart:    c.Libcudart,
		KeyLibcuda:      c.Libcuda,
		KeyNvidiaSMI:    c.NvidiaSMI,
		KeyVersion:      c.Version.String(),
		KeyCapability:   c.Capability.Arch(),
		KeyNvcc:         c.Nvcc,
		KeyHostCompiler: c.HostCompiler,
		KeySourceHash:   c.SourceHash,
	}
}

// Decision is the outcome of reconciling a fresh config against a previous record.
type Decision string

const (
	// Reuse indicates the previous record matches and the build is skipped.
	Reuse Decision = "reuse"
	// Rebuild indicates the artifacts must be rebuilt and the record rewritten.
	Rebuild Decision = "rebuild"
)

// Reconcile compares a freshly discovered config against the bindings of a
// previously persisted record. The previous record is reusable only when every
// recognized binding is present and equal to the fresh value; a missing record,
// a missing binding, or any mismatch forces a rebuild. Partial matches never
// count: the conditions are strictly conjunctive.
func Reconcile(fresh *ToolchainConfig, previous map[string]string) Decision {
	if previous == nil {
		return Rebuild
	}
	for key, want := range fresh.Bindings() {
		got, ok := previous[key]
		if !ok || got != want {
			return Rebuild
		}
	}
	return Reuse
}
