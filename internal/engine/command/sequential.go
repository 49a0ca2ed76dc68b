package command

import (
	"sync"

	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/core/ports"
)

const (
	// TypeSequential runs nested commands one after another.
	TypeSequential = "Sequential"
	// TypeParallel runs nested commands at the same time.
	TypeParallel = "Parallel"
)

// Properties of Sequential and Parallel.
const (
	PropCommands = "commands"
	PropFinally  = "finally"
)

var sequentialSchema = domain.LazySet(func() *domain.PropertyDefinitionSet {
	return domain.MustExtend(CommonProperties(),
		domain.NewProperty(PropCommands, nil, domain.AsArray, domain.FlagRequired),
		domain.NewProperty(PropRepeatCount, 0, domain.AsNonNegativeInteger),
		domain.NewProperty(PropFinally, []any{}, domain.AsArray),
	)
})

// Sequential runs its commands in order, each one starting when the Action of the
// previous one resolved. The commands run repeatCount+1 times, then the finally commands.
//
// Terminating the sequence terminates the running command and skips the remaining ones;
// the finally commands that have not started yet then run in fast mode.
type Sequential struct {
	Base
}

// NewSequential creates a Sequential invocation.
func NewSequential(source domain.PropertySource, env Env) Command {
	return &Sequential{Base: NewBase(TypeSequential, sequentialSchema(), source, env)}
}

// Execute implements Command.
// In fast mode every command runs once, in fast mode, and repeatCount is ignored.
// Terminating the sequence while its delay runs still runs the finally commands.
func (c *Sequential) Execute(timers ports.Timers, fastMode bool) *domain.Action {
	started := false
	action := c.Run(timers, fastMode, func(fastMode bool) *domain.Action {
		started = true
		commands := c.bag.Array(PropCommands)
		finally := c.bag.Array(PropFinally)

		if fastMode || timers == nil {
			c.runFast(commands)
			c.runFast(finally)
			return nil
		}

		steps := make([]any, 0, len(commands)*(c.bag.Int(PropRepeatCount)+1)+len(finally))
		for range c.bag.Int(PropRepeatCount) + 1 {
			steps = append(steps, commands...)
		}
		run := &sequenceRun{
			cmd:          c,
			timers:       timers,
			steps:        append(steps, finally...),
			finallyStart: len(steps),
			action:       domain.NewAction(),
		}
		run.action.OnRelease(run.release)
		run.advance(0)

		if run.action.IsResolved() {
			return nil
		}
		return run.action
	})

	if action != nil && !started {
		action.OnComplete(func(state domain.ActionState) {
			if state == domain.ActionTerminated && !started {
				c.runFast(c.bag.Array(PropFinally))
			}
		})
	}
	return action
}

func (c *Sequential) runFast(steps []any) {
	for _, raw := range steps {
		if child := c.spawn(raw); child != nil {
			child.Execute(nil, true)
		}
	}
}

// sequenceRun is the state of one normal-mode Sequential execution.
type sequenceRun struct {
	cmd          *Sequential
	timers       ports.Timers
	steps        []any
	finallyStart int
	action       *domain.Action

	mu      sync.Mutex
	pos     int
	current *domain.Action
}

// advance runs steps from pos until one returns a pending Action or none remain.
func (r *sequenceRun) advance(pos int) {
	for ; pos < len(r.steps); pos++ {
		if !r.action.IsPending() {
			return
		}

		child := r.cmd.spawn(r.steps[pos])
		if child == nil {
			continue
		}

		r.mu.Lock()
		r.pos = pos
		r.mu.Unlock()

		act := child.Execute(r.timers, false)
		if act == nil || act.IsResolved() {
			continue
		}
		if act.IsTerminated() {
			r.action.Terminate()
			return
		}
		r.cmd.track(child, act)

		r.mu.Lock()
		r.current = act
		r.mu.Unlock()

		next := pos + 1
		act.OnComplete(func(state domain.ActionState) {
			r.mu.Lock()
			r.current = nil
			r.mu.Unlock()

			if state == domain.ActionTerminated {
				r.action.Terminate()
				return
			}
			r.advance(next)
		})
		return
	}
	r.action.Resolve()
}

// release stops the running step. On termination the finally steps that have not
// started run in fast mode.
func (r *sequenceRun) release() {
	r.mu.Lock()
	current := r.current
	pos := r.pos
	r.current = nil
	r.mu.Unlock()

	if current != nil {
		current.Terminate()
	}
	if !r.action.IsTerminated() {
		return
	}

	start := r.finallyStart
	if pos >= r.finallyStart {
		start = pos + 1
	}
	if start < len(r.steps) {
		r.cmd.runFast(r.steps[start:])
	}
}
