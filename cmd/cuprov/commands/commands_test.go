package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cuprov/internal/app"
	"go.trai.ch/cuprov/internal/core/domain"
	"go.trai.ch/cuprov/internal/core/ports"
)

func TestNew_RegistersCommands(t *testing.T) {
	cli := New(&app.App{})

	var names []string
	for _, cmd := range cli.rootCmd.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "provision")
	assert.Contains(t, names, "probe")
	assert.Contains(t, names, "clean")
	assert.Contains(t, names, "version")
}

func TestRenderReport(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	report := &app.Report{
		RuntimeLibrary: "/usr/local/cuda/lib64/libcudart.so.12.0.107",
		Version:        domain.Version{Major: 12, Minor: 0},
		Driver: ports.DriverInfo{
			Library:       "/usr/lib/x86_64-linux-gnu/libcuda.so.525.60.11",
			DiagnosticSMI: "/usr/bin/nvidia-smi",
		},
		Toolchain: domain.Toolchain{
			Nvcc:         "/usr/local/cuda/bin/nvcc",
			HostCompiler: "/usr/bin/gcc",
		},
		Devices: []domain.Capability{{Major: 8, Minor: 6}, {Major: 7, Minor: 5}},
	}

	var sb strings.Builder
	renderReport(&sb, report)
	out := sb.String()

	assert.Contains(t, out, "libcudart.so.12.0.107")
	assert.Contains(t, out, "12.0")
	assert.Contains(t, out, "8.6, 7.5")
	assert.NotContains(t, out, "not found")
}

func TestRenderReport_AbsentComponents(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	report := &app.Report{
		Notes: []string{"runtime library: not found in any search root"},
	}

	var sb strings.Builder
	renderReport(&sb, report)
	out := sb.String()

	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "! runtime library")
}
