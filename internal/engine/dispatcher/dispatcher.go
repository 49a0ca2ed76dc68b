// Package dispatcher runs batches of declared commands and tracks the Actions they leave
// behind until those resolve or are terminated.
package dispatcher

import (
	"context"
	"strings"
	"sync"

	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/core/ports"
	"go.trai.ch/cadence/internal/engine/command"
)

// Span attribute keys and outcomes recorded for every dispatched command.
const (
	AttrType     = "command.type"
	AttrTarget   = "command.target"
	AttrFastMode = "fast_mode"
	AttrOutcome  = "outcome"

	OutcomeCompleted = "completed"
	OutcomeSkipped   = "skipped"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

// batchKey tracks whole batches and commands that are not bound to a component.
const batchKey = ""

// Dispatcher instantiates declared commands through a Registry and executes them.
type Dispatcher struct {
	registry *command.Registry
	env      command.Env
	timers   ports.Timers
	tracer   ports.Tracer

	mu     sync.Mutex
	active map[string][]*domain.Action
}

// New creates a Dispatcher executing commands against env on timers.
// Nested commands report their pending Actions back through env.Track, so removing a
// component also terminates the work nested inside Sequential and Parallel.
func New(registry *command.Registry, env command.Env, timers ports.Timers, tracer ports.Tracer) *Dispatcher {
	if env.Registry == nil {
		env.Registry = registry
	}
	d := &Dispatcher{
		registry: registry,
		timers:   timers,
		tracer:   tracer,
		active:   make(map[string][]*domain.Action),
	}
	if env.Track == nil {
		env.Track = d.track
	}
	d.env = env
	return d
}

// Dispatch executes batch in document order.
//
// In normal mode each command starts once the Action of the previous one resolved, and the
// returned Action covers the whole batch; it is nil when every command finished
// synchronously. In fast mode every command runs to its end state before Dispatch returns.
// A command that cannot be created or resolved is logged and skipped.
func (d *Dispatcher) Dispatch(ctx context.Context, batch []domain.CommandDeclaration, fastMode bool) *domain.Action {
	types := make([]string, len(batch))
	for i, decl := range batch {
		types[i] = decl.Type
	}
	d.tracer.EmitPlan(ctx, types)

	if fastMode {
		for _, decl := range batch {
			d.execute(ctx, decl, true)
		}
		return nil
	}

	run := &batchRun{dispatcher: d, ctx: ctx, batch: batch, action: domain.NewAction()}
	run.action.OnRelease(run.release)
	run.advance(0)

	if run.action.IsResolved() {
		return nil
	}
	d.track(batchKey, run.action)
	return run.action
}

// execute runs one declaration inside its own span.
func (d *Dispatcher) execute(ctx context.Context, decl domain.CommandDeclaration, fastMode bool) *domain.Action {
	_, span := d.tracer.Start(ctx, decl.Type,
		ports.WithAttribute(AttrType, decl.Type),
		ports.WithAttribute(AttrFastMode, fastMode),
	)

	cmd, err := d.registry.Create(decl, d.env)
	if err != nil {
		d.warn("skipping command", "type", decl.Type, "error", err)
		finish(span, OutcomeRejected, err)
		return nil
	}

	if !cmd.CalculateProperties() {
		d.warn("skipping command", "type", decl.Type, "error", cmd.Err())
		finish(span, OutcomeSkipped, cmd.Err())
		return nil
	}

	if target := cmd.Target(); target != "" {
		span.SetAttribute(AttrTarget, target)
	}

	action := cmd.Execute(d.timers, fastMode)
	if action == nil || !action.IsPending() {
		if err := cmd.Err(); err != nil {
			finish(span, OutcomeFailed, err)
			return action
		}
		finish(span, outcome(action), nil)
		return action
	}

	d.track(command.TrackingTarget(cmd), action)
	action.OnComplete(func(state domain.ActionState) {
		if err := cmd.Err(); err != nil {
			finish(span, OutcomeFailed, err)
			return
		}
		finish(span, strings.ToLower(state.String()), nil)
	})
	return action
}

func outcome(action *domain.Action) string {
	if action == nil {
		return OutcomeCompleted
	}
	return strings.ToLower(action.State().String())
}

func finish(span ports.Span, outcome string, err error) {
	if err != nil {
		span.RecordError(err)
	}
	span.SetAttribute(AttrOutcome, outcome)
	span.End()
}

// TerminateTarget terminates every outstanding Action rooted at the component id and
// returns how many were terminated.
func (d *Dispatcher) TerminateTarget(id string) int {
	d.mu.Lock()
	actions := d.active[id]
	delete(d.active, id)
	d.mu.Unlock()

	for _, action := range actions {
		action.Terminate()
	}
	return len(actions)
}

// TerminateAll terminates every outstanding Action, batches included.
func (d *Dispatcher) TerminateAll() int {
	d.mu.Lock()
	active := d.active
	d.active = make(map[string][]*domain.Action)
	d.mu.Unlock()

	n := 0
	// Batches first so they do not advance into new commands while their
	// current step is torn down.
	for _, action := range active[batchKey] {
		action.Terminate()
		n++
	}
	for key, actions := range active {
		if key == batchKey {
			continue
		}
		for _, action := range actions {
			action.Terminate()
			n++
		}
	}
	return n
}

// Active returns the number of outstanding Actions rooted at the component id.
func (d *Dispatcher) Active(id string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.active[id])
}

// Idle reports whether no Action is outstanding.
func (d *Dispatcher) Idle() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, actions := range d.active {
		if len(actions) > 0 {
			return false
		}
	}
	return true
}

func (d *Dispatcher) track(key string, action *domain.Action) {
	d.mu.Lock()
	d.active[key] = append(d.active[key], action)
	d.mu.Unlock()

	action.OnComplete(func(domain.ActionState) { d.untrack(key, action) })
}

func (d *Dispatcher) untrack(key string, action *domain.Action) {
	d.mu.Lock()
	defer d.mu.Unlock()

	actions := d.active[key]
	for i, a := range actions {
		if a == action {
			d.active[key] = append(actions[:i:i], actions[i+1:]...)
			break
		}
	}
	if len(d.active[key]) == 0 {
		delete(d.active, key)
	}
}

func (d *Dispatcher) warn(msg string, args ...any) {
	if d.env.Logger != nil {
		d.env.Logger.Warn(msg, args...)
	}
}

// batchRun is the state of one normal-mode batch.
type batchRun struct {
	dispatcher *Dispatcher
	ctx        context.Context //nolint:containedctx // spans of later steps share the dispatch context
	batch      []domain.CommandDeclaration
	action     *domain.Action

	mu      sync.Mutex
	current *domain.Action
}

func (r *batchRun) advance(pos int) {
	for ; pos < len(r.batch); pos++ {
		if !r.action.IsPending() {
			return
		}

		act := r.dispatcher.execute(r.ctx, r.batch[pos], false)
		if act == nil || act.IsResolved() {
			continue
		}
		if act.IsTerminated() {
			r.action.Terminate()
			return
		}

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

func (r *batchRun) release() {
	r.mu.Lock()
	current := r.current
	r.current = nil
	r.mu.Unlock()

	if current != nil {
		current.Terminate()
	}
}
