package app

import (
	"go.trai.ch/cadence/internal/core/ports"
	"go.trai.ch/cadence/internal/engine/command"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Loader   ports.DocumentLoader
	Registry *command.Registry
}
