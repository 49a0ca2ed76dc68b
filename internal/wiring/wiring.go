// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cadence/internal/adapters/config"
	_ "go.trai.ch/cadence/internal/adapters/logger"
	_ "go.trai.ch/cadence/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/cadence/internal/app"
	_ "go.trai.ch/cadence/internal/engine/command"
)
