// Package domain contains the core domain models of the command runtime:
// property schemas, resolved property bags, actions and documents.
package domain

import "strings"

// PropertyFlag marks how a property is treated during resolution.
type PropertyFlag uint8

const (
	// FlagRequired marks a property that must resolve to a non-nil value.
	FlagRequired PropertyFlag = 1 << iota
	// FlagDynamic marks a property that may be re-resolved on later ticks.
	FlagDynamic
)

// Has reports whether all bits of other are set in f.
func (f PropertyFlag) Has(other PropertyFlag) bool {
	return f&other == other
}

// String returns a human-readable form such as "required|dynamic".
func (f PropertyFlag) String() string {
	var parts []string
	if f.Has(FlagRequired) {
		parts = append(parts, "required")
	}
	if f.Has(FlagDynamic) {
		parts = append(parts, "dynamic")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "|")
}

// Validator checks a raw property value and returns the value to store.
// It may coerce the value (for example a number into its string form) or reject it.
type Validator func(raw any) (any, error)

// PropertyDefinition declares one recognized property of a command type.
// It is immutable once constructed.
type PropertyDefinition struct {
	name      InternedString
	def       any
	validator Validator
	flags     PropertyFlag
}

// NewProperty creates a property definition.
// A nil validator accepts raw values unchanged.
func NewProperty(name string, defaultValue any, validator Validator, flags ...PropertyFlag) PropertyDefinition {
	var f PropertyFlag
	for _, flag := range flags {
		f |= flag
	}
	return PropertyDefinition{
		name:      NewInternedString(name),
		def:       defaultValue,
		validator: validator,
		flags:     f,
	}
}

// Name returns the property name.
func (p PropertyDefinition) Name() string {
	return p.name.String()
}

// Default returns the default value used when the document declares no value.
func (p PropertyDefinition) Default() any {
	return p.def
}

// Flags returns the property flags.
func (p PropertyDefinition) Flags() PropertyFlag {
	return p.flags
}

// Required reports whether the property is flagged Required.
func (p PropertyDefinition) Required() bool {
	return p.flags.Has(FlagRequired)
}

// Dynamic reports whether the property is flagged Dynamic.
func (p PropertyDefinition) Dynamic() bool {
	return p.flags.Has(FlagDynamic)
}

// Validate runs the property validator against raw.
func (p PropertyDefinition) Validate(raw any) (any, error) {
	if p.validator == nil {
		return raw, nil
	}
	return p.validator(raw)
}

func (p PropertyDefinition) key() InternedString {
	return p.name
}
