package domain

import (
	"encoding/binary"
	"iter"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// PropertyDefinitionSet is the ordered schema of the properties recognized by a command type.
// Sets are built once per command type and never mutated afterwards, so they can be shared
// freely between invocations.
type PropertyDefinitionSet struct {
	entries []PropertyDefinition
	index   map[InternedString]int
}

// NewPropertySet creates a base set from the given entries.
// It returns an error if an entry has no name or if two entries share a name.
func NewPropertySet(entries ...PropertyDefinition) (*PropertyDefinitionSet, error) {
	return Extend(nil, entries...)
}

// Extend merges entries over a copy of parent. Entries override parent definitions of the
// same name in place; new names are appended in declaration order.
// A nil parent is treated as an empty set.
func Extend(parent *PropertyDefinitionSet, entries ...PropertyDefinition) (*PropertyDefinitionSet, error) {
	size := len(entries)
	if parent != nil {
		size += len(parent.entries)
	}

	s := &PropertyDefinitionSet{
		entries: make([]PropertyDefinition, 0, size),
		index:   make(map[InternedString]int, size),
	}
	if parent != nil {
		s.entries = append(s.entries, parent.entries...)
		for k, v := range parent.index {
			s.index[k] = v
		}
	}

	seen := make(map[InternedString]struct{}, len(entries))
	for _, entry := range entries {
		if entry.Name() == "" {
			return nil, ErrEmptyPropertyName
		}
		key := entry.key()
		if _, dup := seen[key]; dup {
			return nil, zerr.With(zerr.Wrap(ErrDuplicateProperty, "invalid schema"), "property", entry.Name())
		}
		seen[key] = struct{}{}

		if i, exists := s.index[key]; exists {
			if s.entries[i].Required() && !entry.Required() {
				return nil, zerr.With(zerr.Wrap(ErrIncompatibleOverride, "invalid schema"), "property", entry.Name())
			}
			s.entries[i] = entry
			continue
		}
		s.index[key] = len(s.entries)
		s.entries = append(s.entries, entry)
	}

	return s, nil
}

// MustPropertySet is like NewPropertySet but panics on a schema error.
// It is meant for command type registration during engine initialization.
func MustPropertySet(entries ...PropertyDefinition) *PropertyDefinitionSet {
	return MustExtend(nil, entries...)
}

// MustExtend is like Extend but panics on a schema error.
func MustExtend(parent *PropertyDefinitionSet, entries ...PropertyDefinition) *PropertyDefinitionSet {
	s, err := Extend(parent, entries...)
	if err != nil {
		panic(err)
	}
	return s
}

// LazySet returns a function that builds the set on first call and returns the cached
// instance on every later call. It is safe for concurrent use.
func LazySet(build func() *PropertyDefinitionSet) func() *PropertyDefinitionSet {
	return sync.OnceValue(build)
}

// Get returns the definition registered under name.
func (s *PropertyDefinitionSet) Get(name string) (PropertyDefinition, bool) {
	if s == nil {
		return PropertyDefinition{}, false
	}
	i, ok := s.index[NewInternedString(name)]
	if !ok {
		return PropertyDefinition{}, false
	}
	return s.entries[i], true
}

// Has reports whether the set declares name.
func (s *PropertyDefinitionSet) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// All returns an iterator over the definitions in declaration order.
func (s *PropertyDefinitionSet) All() iter.Seq[PropertyDefinition] {
	return func(yield func(PropertyDefinition) bool) {
		if s == nil {
			return
		}
		for _, entry := range s.entries {
			if !yield(entry) {
				return
			}
		}
	}
}

// Len returns the number of definitions.
func (s *PropertyDefinitionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Names returns the property names in declaration order.
func (s *PropertyDefinitionSet) Names() []string {
	names := make([]string, 0, s.Len())
	for entry := range s.All() {
		names = append(names, entry.Name())
	}
	return names
}

// Fingerprint returns a stable hash over the property names and flags in declaration order.
// Two sets with the same fingerprint accept the same properties with the same flags.
func (s *PropertyDefinitionSet) Fingerprint() uint64 {
	d := xxhash.New()
	var buf [1]byte
	for entry := range s.All() {
		_, _ = d.WriteString(entry.Name())
		buf[0] = byte(entry.Flags())
		_, _ = d.Write(buf[:])
	}
	var n [8]byte
	binary.LittleEndian.PutUint64(n[:], uint64(s.Len()))
	_, _ = d.Write(n[:])
	return d.Sum64()
}
