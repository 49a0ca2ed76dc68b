package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// PropertySource supplies raw property values, typically the evaluated properties a
// document declared for one command.
type PropertySource interface {
	// Lookup returns the raw value declared under name.
	Lookup(name string) (any, bool)
}

// Properties is a PropertySource backed by a plain map.
type Properties map[string]any

// Lookup implements PropertySource.
func (p Properties) Lookup(name string) (any, bool) {
	v, ok := p[name]
	return v, ok
}

// ResolvedPropertyBag holds the validated property values of one command invocation.
type ResolvedPropertyBag struct {
	names  []InternedString
	values map[InternedString]any
}

func newBag(size int) *ResolvedPropertyBag {
	return &ResolvedPropertyBag{
		names:  make([]InternedString, 0, size),
		values: make(map[InternedString]any, size),
	}
}

func (b *ResolvedPropertyBag) set(key InternedString, value any) {
	if _, exists := b.values[key]; !exists {
		b.names = append(b.names, key)
	}
	b.values[key] = value
}

// Get returns the resolved value of name.
func (b *ResolvedPropertyBag) Get(name string) (any, bool) {
	if b == nil {
		return nil, false
	}
	v, ok := b.values[NewInternedString(name)]
	return v, ok
}

// Has reports whether name resolved to a value.
func (b *ResolvedPropertyBag) Has(name string) bool {
	_, ok := b.Get(name)
	return ok
}

// String returns the value of name as a string, or "" if absent or not a string.
func (b *ResolvedPropertyBag) String(name string) string {
	v, _ := b.Get(name)
	s, _ := v.(string)
	return s
}

// Bool returns the value of name as a bool, or false if absent or not a bool.
func (b *ResolvedPropertyBag) Bool(name string) bool {
	v, _ := b.Get(name)
	x, _ := v.(bool)
	return x
}

// Number returns the value of name as a float64, or 0 if absent or not numeric.
func (b *ResolvedPropertyBag) Number(name string) float64 {
	v, _ := b.Get(name)
	f, _ := toFloat(v)
	return f
}

// Int returns the value of name as an int, or 0 if absent or not an int.
func (b *ResolvedPropertyBag) Int(name string) int {
	v, _ := b.Get(name)
	if i, ok := v.(int); ok {
		return i
	}
	f, _ := toFloat(v)
	return int(f)
}

// Array returns the value of name as a slice, or nil if absent or not a slice.
func (b *ResolvedPropertyBag) Array(name string) []any {
	v, _ := b.Get(name)
	a, _ := v.([]any)
	return a
}

// Len returns the number of resolved properties.
func (b *ResolvedPropertyBag) Len() int {
	if b == nil {
		return 0
	}
	return len(b.names)
}

// All returns an iterator over name/value pairs in schema order.
func (b *ResolvedPropertyBag) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if b == nil {
			return
		}
		for _, key := range b.names {
			if !yield(key.String(), b.values[key]) {
				return
			}
		}
	}
}

// CalculateProperties resolves every definition of set against source.
//
// Raw values come from source, falling back to the definition default. A required property
// that is missing or fails validation fails the resolution as a whole. An optional property
// that fails validation falls back to its default and is omitted if the default is invalid too.
func CalculateProperties(set *PropertyDefinitionSet, source PropertySource) (*ResolvedPropertyBag, error) {
	if source == nil {
		source = Properties(nil)
	}

	bag := newBag(set.Len())
	for def := range set.All() {
		value, ok, err := resolveOne(def, source)
		if err != nil {
			return nil, err
		}
		if ok {
			bag.set(def.key(), value)
		}
	}
	return bag, nil
}

// Refresh re-resolves the Dynamic properties of set against source.
// A property that no longer validates keeps its previous value.
func (b *ResolvedPropertyBag) Refresh(set *PropertyDefinitionSet, source PropertySource) {
	if b == nil || source == nil {
		return
	}
	for def := range set.All() {
		if !def.Dynamic() {
			continue
		}
		value, ok, err := resolveOne(def, source)
		if err != nil || !ok {
			continue
		}
		b.set(def.key(), value)
	}
}

func resolveOne(def PropertyDefinition, source PropertySource) (any, bool, error) {
	raw, declared := source.Lookup(def.Name())
	if !declared || raw == nil {
		if def.Default() == nil {
			if def.Required() {
				return nil, false, zerr.With(zerr.Wrap(ErrMissingRequiredProperty, "property resolution failed"),
					"property", def.Name())
			}
			return nil, false, nil
		}
		raw = def.Default()
	}

	value, err := def.Validate(raw)
	if err == nil && value != nil {
		return value, true, nil
	}

	if def.Required() {
		reason := "validator returned no value"
		if err != nil {
			reason = err.Error()
		}
		invalid := zerr.With(zerr.Wrap(ErrInvalidProperty, "property resolution failed"), "property", def.Name())
		return nil, false, zerr.With(invalid, "reason", reason)
	}

	if !declared || def.Default() == nil {
		return nil, false, nil
	}
	value, err = def.Validate(def.Default())
	if err != nil || value == nil {
		return nil, false, nil
	}
	return value, true, nil
}
