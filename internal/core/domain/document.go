package domain

// CommandDeclaration is one command as declared in a document: its type name and the raw,
// already evaluated property values.
type CommandDeclaration struct {
	Type       string
	Properties Properties
}

// ComponentSpec describes one component of the document tree.
type ComponentSpec struct {
	ID         string
	Type       string
	Focusable  bool
	Properties map[string]any
	Children   []*ComponentSpec
}

// Walk returns an iterator over c and all its descendants in depth-first pre-order.
func (c *ComponentSpec) Walk() func(yield func(*ComponentSpec) bool) {
	return func(yield func(*ComponentSpec) bool) {
		var visit func(n *ComponentSpec) bool
		visit = func(n *ComponentSpec) bool {
			if n == nil {
				return true
			}
			if !yield(n) {
				return false
			}
			for _, child := range n.Children {
				if !visit(child) {
					return false
				}
			}
			return true
		}
		visit(c)
	}
}

// Document is a parsed declarative document: a component tree plus named event handlers.
type Document struct {
	Version  string
	Root     *ComponentSpec
	Handlers map[string][]CommandDeclaration
}

// Handler returns the commands declared for the named event.
func (d *Document) Handler(name string) ([]CommandDeclaration, bool) {
	if d == nil {
		return nil, false
	}
	cmds, ok := d.Handlers[name]
	return cmds, ok
}
