// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cuprov/internal/adapters/config"
	_ "go.trai.ch/cuprov/internal/adapters/cudart"
	_ "go.trai.ch/cuprov/internal/adapters/driver"
	_ "go.trai.ch/cuprov/internal/adapters/fs"
	_ "go.trai.ch/cuprov/internal/adapters/logger"
	_ "go.trai.ch/cuprov/internal/adapters/nvcc"
	_ "go.trai.ch/cuprov/internal/adapters/record"
	_ "go.trai.ch/cuprov/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/cuprov/internal/app"
)
