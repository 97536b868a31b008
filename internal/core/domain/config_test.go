package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullConfig() *ToolchainConfig {
	return &ToolchainConfig{
		Libcudart:    "/usr/local/cuda/lib64/libcudart.so.11.0.194",
		Libcuda:      "/usr/lib/x86_64-linux-gnu/libcuda.so.470.57.02",
		NvidiaSMI:    "/usr/bin/nvidia-smi",
		Version:      Version{Major: 11, Minor: 0},
		Capability:   Capability{Major: 6, Minor: 1},
		Nvcc:         "/usr/local/cuda/bin/nvcc",
		HostCompiler: "/usr/bin/gcc",
		SourceHash:   "f0e1d2c3b4a59687",
	}
}

func TestBindings_CoverEveryRecordKey(t *testing.T) {
	bindings := fullConfig().Bindings()
	for _, key := range RecordKeys() {
		_, ok := bindings[key]
		assert.True(t, ok, "missing binding for %q", key)
	}
	assert.Len(t, bindings, len(RecordKeys()))
}

func TestBindings_CapabilityStoredAsArch(t *testing.T) {
	bindings := fullConfig().Bindings()
	assert.Equal(t, "sm_61", bindings[KeyCapability])
	assert.Equal(t, "11.0", bindings[KeyVersion])
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name     string
		previous func() map[string]string
		want     Decision
	}{
		{
			name:     "no previous record",
			previous: func() map[string]string { return nil },
			want:     Rebuild,
		},
		{
			name:     "identical record",
			previous: func() map[string]string { return fullConfig().Bindings() },
			want:     Reuse,
		},
		{
			name: "runtime library path changed",
			previous: func() map[string]string {
				b := fullConfig().Bindings()
				b[KeyLibcudart] = "/opt/cuda-10.2/lib64/libcudart.so.10.2.89"
				return b
			},
			want: Rebuild,
		},
		{
			name: "binding missing",
			previous: func() map[string]string {
				b := fullConfig().Bindings()
				delete(b, KeySourceHash)
				return b
			},
			want: Rebuild,
		},
		{
			name: "capability changed",
			previous: func() map[string]string {
				b := fullConfig().Bindings()
				b[KeyCapability] = "sm_75"
				return b
			},
			want: Rebuild,
		},
		{
			name: "extra unrecognized binding is ignored",
			previous: func() map[string]string {
				b := fullConfig().Bindings()
				b["leftover"] = "anything"
				return b
			},
			want: Reuse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reconcile(fullConfig(), tt.previous()))
		})
	}
}
