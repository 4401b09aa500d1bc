package objectarray

import (
	"fmt"
	"sort"

	"github.com/cybergodev/objectarray/internal"
)

// Push writes value at key, creating every missing intermediate mapping. A
// parent key that does not exist yet is created the same way. A leaf standing
// where a mapping is needed is replaced by an empty mapping.
//
// A *Container value is unwrapped and its root mapping is stored by reference.
// Plain Go maps are converted to *Map with their keys in sorted order.
func (c *Container) Push(key string, value any, opts ...*Options) error {
	full, err := c.fullKey("push", key, c.options(opts), true)
	if err != nil {
		c.logError("push", err)
		return err
	}

	normalized, err := normalizeValue("push", value)
	if err != nil {
		c.logError("push", err)
		return err
	}

	c.insert(full, normalized)
	return nil
}

// Define pushes value at key only when nothing exists there yet
func (c *Container) Define(key string, value any, opts ...*Options) error {
	if c.Has(key, opts...) {
		return nil
	}
	return c.Push(key, value, opts...)
}

// Import pushes every top-level entry of source under the call's parent key.
// Keys of source may be dotted. Nested values are stored, not merged.
func (c *Container) Import(source any, opts ...*Options) error {
	items, err := sourceEntries("import", source)
	if err != nil {
		c.logError("import", err)
		return err
	}
	for _, item := range items {
		if err := c.Push(item.Key, item.Value, opts...); err != nil {
			return err
		}
	}
	return nil
}

// insert stores value at an already validated dotted key
func (c *Container) insert(full string, value any) {
	if c.data == nil {
		c.data = NewMap()
	}

	segments := internal.SplitKey(full)
	node := c.data
	for _, segment := range segments[:len(segments)-1] {
		next, exists := node.Get(segment)
		child, ok := asMap(next)
		if !exists || !ok {
			child = NewMap()
			node.Set(segment, child)
		}
		node = child
	}
	node.Set(segments[len(segments)-1], value)
}

// sourceEntries lists the top-level entries of an importable mapping
func sourceEntries(op string, source any) ([]Entry, error) {
	switch src := source.(type) {
	case nil:
		return nil, nil
	case *Container:
		return entries(src.Data()), nil
	case *Map:
		return entries(src), nil
	case map[string]any:
		keys := make([]string, 0, len(src))
		for k := range src {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]Entry, len(keys))
		for i, k := range keys {
			items[i] = Entry{Key: k, Value: src[k]}
		}
		return items, nil
	case map[any]any:
		keys := make([]string, 0, len(src))
		for k := range src {
			ks, ok := k.(string)
			if !ok {
				return nil, newInvalidKeyError(op, fmt.Sprint(k), fmt.Sprintf("key of type %T is not a string", k))
			}
			keys = append(keys, ks)
		}
		sort.Strings(keys)
		items := make([]Entry, len(keys))
		for i, k := range keys {
			items[i] = Entry{Key: k, Value: src[k]}
		}
		return items, nil
	default:
		return nil, newInvalidKeyError(op, "", fmt.Sprintf("cannot import from %T", source))
	}
}

// normalizeValue converts caller values into their stored form
func normalizeValue(op string, value any) (any, error) {
	switch v := value.(type) {
	case *Container:
		return v.Data(), nil
	case *Map:
		return v, nil
	case map[string]any, map[any]any:
		items, err := sourceEntries(op, v)
		if err != nil {
			return nil, err
		}
		m := NewMap()
		for _, item := range items {
			nested, err := normalizeValue(op, item.Value)
			if err != nil {
				return nil, err
			}
			m.Set(item.Key, nested)
		}
		return m, nil
	default:
		return value, nil
	}
}
