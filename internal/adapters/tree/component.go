package tree

import (
	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Component = (*Component)(nil)

// Component is one node of a Tree. Its state is guarded by the tree's lock.
type Component struct {
	tree      *Tree
	id        string
	kind      string
	focusable bool
	props     map[string]any
	parent    *Component
	children  []*Component
	focused   bool
	destroyed bool

	notifications int
}

// ID returns the component id.
func (c *Component) ID() string { return c.id }

// Type returns the component type name.
func (c *Component) Type() string { return c.kind }

// Focusable reports whether the component can take focus.
func (c *Component) Focusable() bool { return c.focusable }

// Property returns the current value of a property.
func (c *Component) Property(name string) (any, bool) {
	c.tree.mu.RLock()
	defer c.tree.mu.RUnlock()
	v, ok := c.props[name]
	return v, ok
}

// SetProperty assigns a property. It fails once the component was removed.
func (c *Component) SetProperty(name string, value any) error {
	c.tree.mu.Lock()
	defer c.tree.mu.Unlock()
	if c.destroyed {
		return zerr.With(zerr.Wrap(domain.ErrComponentDestroyed, "cannot set property"), "property", name)
	}
	c.props[name] = value
	return nil
}

// Focused reports whether the component holds the focus.
func (c *Component) Focused() bool {
	c.tree.mu.RLock()
	defer c.tree.mu.RUnlock()
	return c.focused
}

// SetFocused sets the focus flag reported by Snapshot.
func (c *Component) SetFocused(focused bool) {
	c.tree.mu.Lock()
	defer c.tree.mu.Unlock()
	if !c.destroyed {
		c.focused = focused
	}
}

// FocusChanged records a focus notification.
func (c *Component) FocusChanged(gained bool) {
	c.tree.mu.Lock()
	defer c.tree.mu.Unlock()
	if !c.destroyed {
		c.focused = gained
		c.notifications++
	}
}

// Notifications returns how many focus notifications the component received.
func (c *Component) Notifications() int {
	c.tree.mu.RLock()
	defer c.tree.mu.RUnlock()
	return c.notifications
}

// Children returns the ids of the direct children in document order.
func (c *Component) Children() []string {
	c.tree.mu.RLock()
	defer c.tree.mu.RUnlock()
	ids := make([]string, len(c.children))
	for i, child := range c.children {
		ids[i] = child.id
	}
	return ids
}

// walk yields c and its descendants in pre-order. Callers hold the tree lock.
func (c *Component) walk() func(yield func(*Component) bool) {
	return func(yield func(*Component) bool) {
		var visit func(n *Component) bool
		visit = func(n *Component) bool {
			if !yield(n) {
				return false
			}
			for _, child := range n.children {
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(c)
	}
}
