// Package command implements the command types a document can declare and the registry
// that instantiates them by name.
package command

import (
	"time"

	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/core/ports"
	"go.trai.ch/zerr"
)

// Property names shared by several command types.
const (
	PropDescription = "description"
	PropDelay       = "delay"
	PropWhen        = "when"
	PropScreenLock  = "screenLock"
	PropSequencer   = "sequencer"
	PropComponentID = "componentId"
)

// Command is one invocation of a command type.
//
// A dispatcher first calls CalculateProperties and, when it succeeds, Execute.
// Execute never blocks: deferred work is returned as an Action, nil means the command
// finished synchronously or had no effect.
type Command interface {
	// Type returns the command type name.
	Type() string
	// CalculateProperties resolves the declared property values against the type's schema.
	// It reports false when resolution failed; Err then returns the reason.
	CalculateProperties() bool
	// Execute applies the command.
	// In fast mode any timed work is skipped and its end state applied immediately.
	Execute(timers ports.Timers, fastMode bool) *domain.Action
	// Target returns the resolved id of the component the command acts on, or "".
	Target() string
	// Err returns the resolution or execution failure, if any.
	Err() error
}

// Env holds the runtime collaborators a command may touch.
type Env struct {
	Tree     ports.ComponentTree
	Focus    ports.FocusManager
	Logger   ports.Logger
	Registry *Registry

	// Track, when set, receives every pending Action a nested command returns, keyed by
	// the component it must die with.
	Track func(target string, action *domain.Action)
}

// targetRemover is implemented by commands that destroy their own target.
type targetRemover interface {
	removesTarget()
}

// TrackingTarget returns the component id an Action returned by cmd is bound to, or ""
// when the Action must outlive its target. A command that removes its target would
// otherwise be terminated by its own removal.
func TrackingTarget(cmd Command) string {
	if _, ok := cmd.(targetRemover); ok {
		return ""
	}
	return cmd.Target()
}

// CommonProperties returns the properties every command type accepts.
var CommonProperties = domain.LazySet(func() *domain.PropertyDefinitionSet {
	return domain.MustPropertySet(
		domain.NewProperty(PropDescription, "", domain.AsString),
		domain.NewProperty(PropDelay, 0.0, domain.AsNonNegativeNumber, domain.FlagDynamic),
		domain.NewProperty(PropWhen, true, domain.AsBoolean),
		domain.NewProperty(PropScreenLock, false, domain.AsBoolean),
		domain.NewProperty(PropSequencer, nil, domain.AsString),
	)
})

// Base implements the parts of Command shared by every type.
// Concrete types embed it and implement Execute through Run.
type Base struct {
	kind   string
	schema *domain.PropertyDefinitionSet
	source domain.PropertySource
	env    Env

	attempted bool
	bag       *domain.ResolvedPropertyBag
	err       error
}

// NewBase creates the shared state of a command invocation.
func NewBase(kind string, schema *domain.PropertyDefinitionSet, source domain.PropertySource, env Env) Base {
	return Base{
		kind:   kind,
		schema: schema,
		source: source,
		env:    env,
	}
}

// Type implements Command.
func (b *Base) Type() string {
	return b.kind
}

// Schema returns the property schema of the command type.
func (b *Base) Schema() *domain.PropertyDefinitionSet {
	return b.schema
}

// Env returns the runtime collaborators of the invocation.
func (b *Base) Env() Env {
	return b.env
}

// Props returns the resolved properties, or nil if resolution has not succeeded.
func (b *Base) Props() *domain.ResolvedPropertyBag {
	return b.bag
}

// CalculateProperties implements Command.
func (b *Base) CalculateProperties() bool {
	b.attempted = true
	bag, err := domain.CalculateProperties(b.schema, b.source)
	if err != nil {
		b.bag = nil
		b.err = zerr.With(err, "command", b.kind)
		return false
	}
	b.bag = bag
	b.err = nil
	return true
}

// Target implements Command.
func (b *Base) Target() string {
	return b.bag.String(PropComponentID)
}

// Err implements Command.
func (b *Base) Err() error {
	return b.err
}

// Fail records an execution failure and logs it. The command then has no effect.
func (b *Base) Fail(err error) {
	b.err = zerr.With(err, "command", b.kind)
	if b.env.Logger != nil {
		b.env.Logger.Error(b.err)
	}
}

// Run applies the preconditions shared by every command type and then calls body.
//
// Nothing runs when resolution failed or "when" is false. A positive delay in normal
// mode defers body until the delay elapsed on timers and returns an Action covering both
// the wait and whatever body returns; fast mode ignores the delay.
func (b *Base) Run(timers ports.Timers, fastMode bool, body func(fastMode bool) *domain.Action) *domain.Action {
	if !b.attempted {
		b.CalculateProperties()
	}
	if b.bag == nil {
		return nil
	}

	b.bag.Refresh(b.schema, b.source)
	if !b.bag.Bool(PropWhen) {
		return nil
	}

	delay := Millis(b.bag.Number(PropDelay))
	if fastMode || delay <= 0 || timers == nil {
		return body(fastMode)
	}
	return domain.Then(Wait(timers, delay), func() *domain.Action {
		return body(false)
	})
}

// Millis converts a property value in milliseconds to a duration.
func Millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// Wait returns an Action that resolves once d elapsed on timers.
// Terminating the Action before then cancels the registration.
func Wait(timers ports.Timers, d time.Duration) *domain.Action {
	action := domain.NewAction()
	fired := false
	handle := timers.RegisterDelay(d, func() {
		fired = true
		action.Resolve()
	})
	action.OnRelease(func() {
		if !fired {
			timers.Cancel(handle)
		}
	})
	return action
}

// track hands the pending Action of a nested command to Env.Track.
func (b *Base) track(child Command, action *domain.Action) {
	if b.env.Track == nil || action == nil || !action.IsPending() {
		return
	}
	if target := TrackingTarget(child); target != "" {
		b.env.Track(target, action)
	}
}

func (b *Base) warn(msg string, args ...any) {
	if b.env.Logger != nil {
		b.env.Logger.Warn(msg, args...)
	}
}
