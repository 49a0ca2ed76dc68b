// Package tree holds the live component tree commands act on.
package tree

import (
	"maps"
	"sync"

	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ComponentTree = (*Tree)(nil)

// Tree is an in-memory component tree indexed by id.
type Tree struct {
	mu    sync.RWMutex
	root  *Component
	index map[string]*Component
	hooks []func(id string)
}

// New builds a tree from the document's component specs.
func New(spec *domain.ComponentSpec) (*Tree, error) {
	if spec == nil {
		return nil, zerr.Wrap(domain.ErrMissingComponentID, "tree has no root")
	}

	t := &Tree{index: make(map[string]*Component)}
	root, err := t.build(spec, nil)
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

func (t *Tree) build(spec *domain.ComponentSpec, parent *Component) (*Component, error) {
	if spec.ID == "" {
		return nil, zerr.Wrap(domain.ErrMissingComponentID, "cannot build component")
	}
	if _, exists := t.index[spec.ID]; exists {
		return nil, zerr.With(zerr.Wrap(domain.ErrDuplicateComponentID, "cannot build component"), "id", spec.ID)
	}

	c := &Component{
		tree:      t,
		id:        spec.ID,
		kind:      spec.Type,
		focusable: spec.Focusable,
		props:     maps.Clone(spec.Properties),
		parent:    parent,
	}
	if c.props == nil {
		c.props = make(map[string]any)
	}
	t.index[c.id] = c

	for _, childSpec := range spec.Children {
		child, err := t.build(childSpec, c)
		if err != nil {
			return nil, err
		}
		c.children = append(c.children, child)
	}
	return c, nil
}

// Find returns the live component with the given id.
func (t *Tree) Find(id string) (ports.Component, bool) {
	c, ok := t.Lookup(id)
	if !ok {
		return nil, false
	}
	return c, true
}

// Lookup is Find returning the concrete component.
func (t *Tree) Lookup(id string) (*Component, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.index[id]
	return c, ok
}

// Root returns the root component, or nil once it was removed.
func (t *Tree) Root() *Component {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.root
}

// Len returns the number of live components.
func (t *Tree) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.index)
}

// OnRemove registers fn to run for every component a Remove call detaches,
// parents before children.
func (t *Tree) OnRemove(fn func(id string)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.hooks = append(t.hooks, fn)
}

// Remove detaches the component and its descendants. Removed components keep
// their properties but reject further writes.
func (t *Tree) Remove(id string) error {
	t.mu.Lock()
	c, ok := t.index[id]
	if !ok {
		t.mu.Unlock()
		return zerr.With(zerr.Wrap(domain.ErrComponentNotFound, "cannot remove component"), "component", id)
	}

	if c.parent == nil {
		t.root = nil
	} else {
		siblings := c.parent.children
		for i, sibling := range siblings {
			if sibling == c {
				c.parent.children = append(siblings[:i:i], siblings[i+1:]...)
				break
			}
		}
		c.parent = nil
	}

	var removed []string
	for n := range c.walk() {
		n.destroyed = true
		n.focused = false
		delete(t.index, n.id)
		removed = append(removed, n.id)
	}
	hooks := t.hooks
	t.mu.Unlock()

	for _, removedID := range removed {
		for _, hook := range hooks {
			hook(removedID)
		}
	}
	return nil
}

// State is a point-in-time copy of one component.
type State struct {
	ID         string
	Type       string
	Focused    bool
	Depth      int
	Properties map[string]any
}

// Snapshot copies every live component in depth-first pre-order.
func (t *Tree) Snapshot() []State {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var states []State
	var visit func(c *Component, depth int)
	visit = func(c *Component, depth int) {
		states = append(states, State{
			ID:         c.id,
			Type:       c.kind,
			Focused:    c.focused,
			Depth:      depth,
			Properties: maps.Clone(c.props),
		})
		for _, child := range c.children {
			visit(child, depth+1)
		}
	}
	if t.root != nil {
		visit(t.root, 0)
	}
	return states
}
