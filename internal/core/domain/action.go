package domain

import "sync"

// ActionState is the lifecycle state of an Action.
type ActionState uint8

const (
	// ActionPending indicates the deferred work has not finished yet.
	ActionPending ActionState = iota
	// ActionResolved indicates the work completed.
	ActionResolved
	// ActionTerminated indicates the work was cancelled or its target went away.
	ActionTerminated
)

// String returns the state name.
func (s ActionState) String() string {
	switch s {
	case ActionPending:
		return "Pending"
	case ActionResolved:
		return "Resolved"
	case ActionTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}

// Action is a handle to deferred work started by a command: a timer-gated step, an
// animation, a chain of sub-actions.
//
// An Action leaves Pending exactly once. Release hooks run first, then completion callbacks
// in registration order. Resolve and Terminate are no-ops on a finished Action, so both are
// safe to call any number of times.
type Action struct {
	mu        sync.Mutex
	state     ActionState
	callbacks []func(ActionState)
	releases  []func()
}

// NewAction creates a pending Action.
func NewAction() *Action {
	return &Action{}
}

// State returns the current state.
func (a *Action) State() ActionState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// IsPending reports whether the Action has not finished yet.
func (a *Action) IsPending() bool {
	return a.State() == ActionPending
}

// IsResolved reports whether the Action completed.
func (a *Action) IsResolved() bool {
	return a.State() == ActionResolved
}

// IsTerminated reports whether the Action was terminated.
func (a *Action) IsTerminated() bool {
	return a.State() == ActionTerminated
}

// OnComplete registers a callback invoked once with the terminal state.
// If the Action already finished the callback runs immediately.
func (a *Action) OnComplete(cb func(ActionState)) {
	a.mu.Lock()
	if a.state == ActionPending {
		a.callbacks = append(a.callbacks, cb)
		a.mu.Unlock()
		return
	}
	state := a.state
	a.mu.Unlock()
	cb(state)
}

// OnRelease registers a hook that frees resources held for the Action, such as scheduler
// registrations. Hooks run on any terminal transition. If the Action already finished the
// hook runs immediately.
func (a *Action) OnRelease(release func()) {
	a.mu.Lock()
	if a.state == ActionPending {
		a.releases = append(a.releases, release)
		a.mu.Unlock()
		return
	}
	a.mu.Unlock()
	release()
}

// Resolve marks the work as complete.
func (a *Action) Resolve() {
	a.finish(ActionResolved)
}

// Terminate marks the work as abandoned.
func (a *Action) Terminate() {
	a.finish(ActionTerminated)
}

// Cancel is an alias of Terminate used by dispatchers on teardown.
func (a *Action) Cancel() {
	a.Terminate()
}

func (a *Action) finish(state ActionState) {
	a.mu.Lock()
	if a.state != ActionPending {
		a.mu.Unlock()
		return
	}
	a.state = state
	releases := a.releases
	callbacks := a.callbacks
	a.releases = nil
	a.callbacks = nil
	a.mu.Unlock()

	for _, release := range releases {
		release()
	}
	for _, cb := range callbacks {
		cb(state)
	}
}

// WhenAll returns an Action that resolves once every non-nil action resolved.
// If any of them terminates, the aggregate terminates; terminating the aggregate
// terminates every child still pending. With no pending children the result is resolved.
func WhenAll(actions ...*Action) *Action {
	pending := make([]*Action, 0, len(actions))
	for _, child := range actions {
		if child != nil {
			pending = append(pending, child)
		}
	}

	all := NewAction()
	if len(pending) == 0 {
		all.Resolve()
		return all
	}

	remaining := len(pending)
	for _, child := range pending {
		child.OnComplete(func(state ActionState) {
			if state == ActionTerminated {
				all.Terminate()
				return
			}
			all.mu.Lock()
			remaining--
			done := remaining == 0
			all.mu.Unlock()
			if done {
				all.Resolve()
			}
		})
	}
	all.OnRelease(func() {
		for _, child := range pending {
			child.Terminate()
		}
	})
	return all
}

// Then runs next once first resolves and returns an Action covering both steps.
// A nil first runs next immediately. If first terminates, next never runs.
// When next returns nil the chain resolves as soon as next returns.
func Then(first *Action, next func() *Action) *Action {
	if first == nil {
		return next()
	}

	chain := NewAction()
	var current *Action
	var mu sync.Mutex

	chain.OnRelease(func() {
		first.Terminate()
		mu.Lock()
		c := current
		mu.Unlock()
		if c != nil {
			c.Terminate()
		}
	})

	first.OnComplete(func(state ActionState) {
		if state == ActionTerminated {
			chain.Terminate()
			return
		}
		if !chain.IsPending() {
			return
		}
		step := next()
		if step == nil {
			chain.Resolve()
			return
		}
		mu.Lock()
		current = step
		mu.Unlock()
		step.OnComplete(func(s ActionState) {
			if s == ActionTerminated {
				chain.Terminate()
				return
			}
			chain.Resolve()
		})
	})
	return chain
}
