package command

import (
	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/core/ports"
)

var parallelSchema = domain.LazySet(func() *domain.PropertyDefinitionSet {
	return domain.MustExtend(CommonProperties(),
		domain.NewProperty(PropCommands, nil, domain.AsArray, domain.FlagRequired),
	)
})

// Parallel starts all of its commands at once. Its Action resolves when every command's
// Action resolved; terminating it terminates them all.
type Parallel struct {
	Base
}

// NewParallel creates a Parallel invocation.
func NewParallel(source domain.PropertySource, env Env) Command {
	return &Parallel{Base: NewBase(TypeParallel, parallelSchema(), source, env)}
}

// Execute implements Command.
func (c *Parallel) Execute(timers ports.Timers, fastMode bool) *domain.Action {
	return c.Run(timers, fastMode, func(fastMode bool) *domain.Action {
		var actions []*domain.Action
		for _, raw := range c.bag.Array(PropCommands) {
			child := c.spawn(raw)
			if child == nil {
				continue
			}
			act := child.Execute(timers, fastMode)
			if act == nil || act.IsResolved() {
				continue
			}
			c.track(child, act)
			actions = append(actions, act)
		}

		if fastMode || len(actions) == 0 {
			return nil
		}
		return domain.WhenAll(actions...)
	})
}
