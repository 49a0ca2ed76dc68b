package ports

//go:generate go run go.uber.org/mock/mockgen -source=focus.go -destination=mocks/mock_focus.go -package=mocks

// FocusManager holds the single focused component.
type FocusManager interface {
	// SetFocus moves focus to the component with the given id.
	// When notify is set the previous holder is told it lost focus before the new holder
	// is told it gained focus. It returns an error if the component cannot take focus.
	SetFocus(id string, notify bool) error

	// ClearFocus drops the focus, notifying the previous holder when notify is set.
	ClearFocus(notify bool)

	// Focused returns the id of the focused component, or "" when nothing has focus.
	Focused() string
}
