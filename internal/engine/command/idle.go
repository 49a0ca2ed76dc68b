package command

import (
	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/core/ports"
)

// TypeIdle does nothing for its delay.
const TypeIdle = "Idle"

var idleSchema = CommonProperties

// Idle waits for its delay and has no other effect. It is used to space out the steps
// of a Sequential.
type Idle struct {
	Base
}

// NewIdle creates an Idle invocation.
func NewIdle(source domain.PropertySource, env Env) Command {
	return &Idle{Base: NewBase(TypeIdle, idleSchema(), source, env)}
}

// Execute implements Command.
func (c *Idle) Execute(timers ports.Timers, fastMode bool) *domain.Action {
	return c.Run(timers, fastMode, func(bool) *domain.Action {
		return nil
	})
}
