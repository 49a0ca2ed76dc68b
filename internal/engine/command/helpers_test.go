package command_test

import (
	"sync"
	"testing"

	"go.trai.ch/cadence/internal/core/domain"
	"go.trai.ch/cadence/internal/core/ports"
	"go.trai.ch/cadence/internal/core/ports/mocks"
	"go.trai.ch/cadence/internal/engine/command"
	"go.uber.org/mock/gomock"
)

// testComponent is a property store standing in for a live component.
type testComponent struct {
	mu    sync.Mutex
	id    string
	props map[string]any
	sets  int
}

func newTestComponent(id string, props map[string]any) *testComponent {
	if props == nil {
		props = map[string]any{}
	}
	return &testComponent{id: id, props: props}
}

func (c *testComponent) ID() string      { return c.id }
func (c *testComponent) Type() string    { return "Frame" }
func (c *testComponent) Focusable() bool { return true }

func (c *testComponent) Property(name string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.props[name]
	return v, ok
}

func (c *testComponent) SetProperty(name string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.props[name] = value
	c.sets++
	return nil
}

func (c *testComponent) get(name string) any {
	v, _ := c.Property(name)
	return v
}

// testTree is a component tree whose members can be removed mid-test.
type testTree struct {
	mu         sync.Mutex
	components map[string]ports.Component
}

func newTestTree(components ...ports.Component) *testTree {
	t := &testTree{components: map[string]ports.Component{}}
	for _, c := range components {
		t.components[c.ID()] = c
	}
	return t
}

func (t *testTree) Find(id string) (ports.Component, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	c, ok := t.components[id]
	return c, ok
}

func (t *testTree) Remove(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.components[id]; !ok {
		return domain.ErrComponentNotFound
	}
	delete(t.components, id)
	return nil
}

type envMocks struct {
	focus  *mocks.MockFocusManager
	logger *mocks.MockLogger
}

// newEnv builds an Env over tree with mocked focus and logger.
func newEnv(t *testing.T, tree ports.ComponentTree) (command.Env, envMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := envMocks{
		focus:  mocks.NewMockFocusManager(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	env := command.Env{
		Tree:     tree,
		Focus:    m.focus,
		Logger:   m.logger,
		Registry: command.DefaultRegistry(),
	}
	return env, m
}
