package domparser

import (
	"iter"
	"slices"
)

// Attributes is an immutable string mapping that iterates in insertion order.
// A key assigned more than once keeps its first position and its last value.
// The zero value is an empty mapping.
type Attributes struct {
	keys   []string
	values map[string]string
}

// NewAttributes builds Attributes from alternating key, value arguments.
// A trailing key without a value maps to "".
func NewAttributes(pairs ...string) Attributes {
	var b attrBuilder
	for i := 0; i < len(pairs); i += 2 {
		val := ""
		if i+1 < len(pairs) {
			val = pairs[i+1]
		}
		b.set(pairs[i], val)
	}
	return b.build()
}

// Get returns the value for key and whether it is present.
func (a Attributes) Get(key string) (string, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Has reports whether key is present.
func (a Attributes) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Len returns the number of distinct keys.
func (a Attributes) Len() int { return len(a.keys) }

// Keys returns a copy of the keys in insertion order.
func (a Attributes) Keys() []string {
	return slices.Clone(a.keys)
}

// All iterates key, value pairs in insertion order.
func (a Attributes) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range a.keys {
			if !yield(k, a.values[k]) {
				return
			}
		}
	}
}

// Equal reports whether both mappings hold the same pairs in the same order.
func (a Attributes) Equal(other Attributes) bool {
	if !slices.Equal(a.keys, other.keys) {
		return false
	}
	for _, k := range a.keys {
		if a.values[k] != other.values[k] {
			return false
		}
	}
	return true
}

// attrBuilder accumulates attributes while a start tag is parsed.
type attrBuilder struct {
	keys   []string
	values map[string]string
}

func (b *attrBuilder) set(key, value string) {
	if b.values == nil {
		b.values = make(map[string]string)
	}
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = value
}

// build hands the accumulated state to an Attributes value. The builder must
// not be used afterwards.
func (b *attrBuilder) build() Attributes {
	a := Attributes{keys: b.keys, values: b.values}
	b.keys, b.values = nil, nil
	return a
}
