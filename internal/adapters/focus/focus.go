// Package focus implements ports.FocusManager over a component tree.
package focus

import (
	"sync"

	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FocusManager = (*Manager)(nil)

// Holder is implemented by components that keep a focus flag.
// The flag follows every focus move, notified or not.
type Holder interface {
	SetFocused(focused bool)
}

// Receiver is implemented by components that react to focus notifications.
type Receiver interface {
	FocusChanged(gained bool)
}

// Change is one focus notification.
type Change struct {
	ID     string
	Gained bool
}

// Manager holds the single focused component id.
type Manager struct {
	mu        sync.Mutex
	tree      ports.ComponentTree
	focused   string
	listeners []func(Change)
}

// New creates a Manager resolving ids against tree.
func New(tree ports.ComponentTree) *Manager {
	return &Manager{tree: tree}
}

// Subscribe registers fn to receive every notification, after the component itself.
func (m *Manager) Subscribe(fn func(Change)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}

// SetFocus moves the focus to id. With notify set the previous holder hears about
// the loss before id hears about the gain. Focusing the current holder is a no-op.
func (m *Manager) SetFocus(id string, notify bool) error {
	target, ok := m.tree.Find(id)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrComponentNotFound, "cannot focus"), "component", id)
	}
	if !target.Focusable() {
		return zerr.With(zerr.Wrap(domain.ErrNotFocusable, "cannot focus"), "component", id)
	}

	m.mu.Lock()
	prev := m.focused
	if prev == id {
		m.mu.Unlock()
		return nil
	}
	m.focused = id
	listeners := m.listeners
	m.mu.Unlock()

	m.sync(prev, false)
	m.sync(id, true)
	if !notify {
		return nil
	}
	if prev != "" {
		m.notify(listeners, prev, false)
	}
	m.notify(listeners, id, true)
	return nil
}

// ClearFocus drops the focus.
func (m *Manager) ClearFocus(notify bool) {
	m.mu.Lock()
	prev := m.focused
	m.focused = ""
	listeners := m.listeners
	m.mu.Unlock()

	m.sync(prev, false)
	if notify && prev != "" {
		m.notify(listeners, prev, false)
	}
}

// Focused returns the focused id, or "" when nothing has focus.
func (m *Manager) Focused() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.focused
}

// Forget drops the focus without notification when id holds it.
// It is meant to be hooked to component removal.
func (m *Manager) Forget(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.focused == id {
		m.focused = ""
	}
}

func (m *Manager) sync(id string, focused bool) {
	if id == "" {
		return
	}
	if c, ok := m.tree.Find(id); ok {
		if h, ok := c.(Holder); ok {
			h.SetFocused(focused)
		}
	}
}

func (m *Manager) notify(listeners []func(Change), id string, gained bool) {
	if c, ok := m.tree.Find(id); ok {
		if r, ok := c.(Receiver); ok {
			r.FocusChanged(gained)
		}
	}
	change := Change{ID: id, Gained: gained}
	for _, fn := range listeners {
		fn(change)
	}
}
