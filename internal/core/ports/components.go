package ports

// Component is a node of the live component tree that commands act on.
type Component interface {
	ID() string
	Type() string
	Focusable() bool

	// Property returns the current value of a component property.
	Property(name string) (any, bool)

	// SetProperty assigns a component property.
	SetProperty(name string, value any) error
}

// ComponentTree looks components up by id.
//
//go:generate go run go.uber.org/mock/mockgen -source=components.go -destination=mocks/mock_components.go -package=mocks
type ComponentTree interface {
	// Find returns the live component with the given id.
	Find(id string) (Component, bool)

	// Remove detaches the component and its descendants from the tree.
	Remove(id string) error
}
