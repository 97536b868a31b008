package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cuprov/internal/adapters/telemetry"
	"go.trai.ch/cuprov/internal/app"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{
			name:         "version prints and exits cleanly",
			args:         []string{"cuprov", "version"},
			expectedExit: 0,
		},
		{
			// Probe reports absent components as notes, so it succeeds on
			// machines without any CUDA installation.
			name:         "probe succeeds without cuda installed",
			args:         []string{"cuprov", "probe"},
			expectedExit: 0,
		},
		{
			name:         "clean with nothing to remove",
			args:         []string{"cuprov", "clean"},
			expectedExit: 0,
		},
		{
			name:         "unknown command fails",
			args:         []string{"cuprov", "frobnicate"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()

			originalWd, _ := os.Getwd()
			if err := os.Chdir(tmpDir); err != nil {
				t.Fatalf("failed to chdir: %v", err)
			}
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = tt.args

			// Keep the test run silent regardless of the terminal.
			exitCode := run(func(a *app.App) {
				a.SetTelemetry(telemetry.NewNoOp())
			})
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
