package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyPropertyName is returned when a property definition has no name.
	ErrEmptyPropertyName = zerr.New("property name must not be empty")

	// ErrDuplicateProperty is returned when one schema layer declares the same property twice.
	ErrDuplicateProperty = zerr.New("duplicate property definition")

	// ErrIncompatibleOverride is returned when a child schema drops the Required flag of a parent property.
	ErrIncompatibleOverride = zerr.New("property override drops the required flag")

	// ErrMissingRequiredProperty is returned when a required property has neither a value nor a default.
	ErrMissingRequiredProperty = zerr.New("missing required property")

	// ErrInvalidProperty is returned when a required property fails validation.
	ErrInvalidProperty = zerr.New("invalid property value")

	// ErrWrongType is returned by validators when a raw value has an unsupported type.
	ErrWrongType = zerr.New("value has the wrong type")

	// ErrInvalidID is returned when a component id reference is empty or malformed.
	ErrInvalidID = zerr.New("invalid component id")

	// ErrValueOutOfRange is returned when a numeric value is outside its allowed range.
	ErrValueOutOfRange = zerr.New("value out of range")

	// ErrUnknownEnumValue is returned when a value is not one of the allowed enumeration values.
	ErrUnknownEnumValue = zerr.New("unknown enumeration value")

	// ErrCommandTypeExists is returned when a command type is registered twice.
	ErrCommandTypeExists = zerr.New("command type already registered")

	// ErrUnknownCommandType is returned when a declaration names a command type that is not registered.
	ErrUnknownCommandType = zerr.New("unknown command type")

	// ErrMissingCommandType is returned when a command declaration has no type.
	ErrMissingCommandType = zerr.New("command declaration is missing a type")

	// ErrComponentNotFound is returned when a target component does not exist in the tree.
	ErrComponentNotFound = zerr.New("component not found")

	// ErrComponentDestroyed is returned when a target component was removed from the tree.
	ErrComponentDestroyed = zerr.New("component destroyed")

	// ErrNotFocusable is returned when focus is moved to a component that cannot take focus.
	ErrNotFocusable = zerr.New("component is not focusable")

	// ErrDocumentReadFailed is returned when the document file cannot be read.
	ErrDocumentReadFailed = zerr.New("failed to read document")

	// ErrDocumentParseFailed is returned when the document file cannot be parsed.
	ErrDocumentParseFailed = zerr.New("failed to parse document")

	// ErrMissingComponentID is returned when a component in the document has no id.
	ErrMissingComponentID = zerr.New("component is missing an id")

	// ErrDuplicateComponentID is returned when two components in the document share an id.
	ErrDuplicateComponentID = zerr.New("duplicate component id")

	// ErrUnknownHandler is returned when a requested event handler is not declared in the document.
	ErrUnknownHandler = zerr.New("unknown event handler")

	// ErrPlayStalled is reported when Actions are outstanding but no timer is left to advance them.
	ErrPlayStalled = zerr.New("play stalled with no pending timers")
)
