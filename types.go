package objectarray

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is the nested mapping stored inside a Container. Entries keep their
// insertion order.
type Map = orderedmap.OrderedMap[string, any]

// NewMap returns an empty Map
func NewMap() *Map {
	return orderedmap.New[string, any]()
}

// ThrowMode decides whether a missing key is reported as ErrKeyNotFound or
// answered with a zero value.
type ThrowMode int

const (
	// ThrowDefault defers to the next level: per-call, then container, then
	// the method's own default.
	ThrowDefault ThrowMode = iota
	// ThrowAlways reports every missing key as ErrKeyNotFound
	ThrowAlways
	// ThrowNever answers every missing key with a zero value and a nil error
	ThrowNever
)

func (m ThrowMode) String() string {
	switch m {
	case ThrowAlways:
		return "always"
	case ThrowNever:
		return "never"
	default:
		return "default"
	}
}

// Options tunes a single call. A nil *Options behaves like the zero value.
type Options struct {
	ParentKey string    // Dotted prefix the key is resolved under
	Throw     ThrowMode // Per-call override of the throwing mode
	Loose     bool      // Check only: compare with coercive equality
}

// Entry is a key/value pair of a resolved mapping
type Entry struct {
	Key   string
	Value any
}

// ForEachFunc is called once per entry. parentKey is the resolved dotted key of
// the mapping being iterated ("" for the root).
type ForEachFunc func(value any, key string, index int, parentKey string)

// ReduceFunc folds one entry into the accumulator
type ReduceFunc func(acc any, value any, key string, parentKey string) any

// isNested reports whether v is a nested mapping. Everything else, arrays
// included, is a leaf.
func isNested(v any) bool {
	_, ok := v.(*Map)
	return ok
}

// asMap returns v as a nested mapping when it is one
func asMap(v any) (*Map, bool) {
	m, ok := v.(*Map)
	return m, ok && m != nil
}

// entries snapshots the pairs of m in insertion order
func entries(m *Map) []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Entry{Key: pair.Key, Value: pair.Value})
	}
	return out
}
