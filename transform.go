package objectarray

import "github.com/cybergodev/objectarray/internal"

// Clone returns a new container carrying the same session state. A shallow
// clone shares the root mapping with c; a deep clone copies every nested
// mapping and array.
func (c *Container) Clone(deep bool) *Container {
	clone := &Container{
		parentKey: c.parentKey,
		throwMode: c.throwMode,
		maxDepth:  c.maxDepth,
		logger:    c.logger,
	}
	if !deep {
		clone.data = c.Data()
		return clone
	}
	clone.data = deepCopyMap(c.Data())
	return clone
}

// Flatten replaces the mapping at key (the root when key is empty) with a
// single-level mapping of its leaves, walking depth-first in insertion order.
//
// Without dotted keys a later leaf overwrites an earlier one with the same
// name. With dotted keys each leaf is stored under its dotted path relative
// to the flattened mapping, so names never collide. Empty nested mappings
// have no leaves and disappear.
func (c *Container) Flatten(dotted bool, key string, opts ...*Options) error {
	value, _, found, err := c.locate("flatten", key, c.options(opts), throwsFlatten)
	if err != nil || !found {
		return err
	}
	m, ok := asMap(value)
	if !ok {
		return nil
	}

	flat := NewMap()
	c.flattenInto(flat, m, "", dotted)

	clearMap(m)
	for _, item := range entries(flat) {
		m.Set(item.Key, item.Value)
	}
	return nil
}

func (c *Container) flattenInto(dst, src *Map, prefix string, dotted bool) {
	for pair := src.Oldest(); pair != nil; pair = pair.Next() {
		path := internal.JoinKey(prefix, pair.Key)
		if child, ok := asMap(pair.Value); ok {
			c.flattenInto(dst, child, path, dotted)
			continue
		}

		flatKey := pair.Key
		if dotted {
			flatKey = path
		}
		if _, exists := dst.Get(flatKey); exists {
			c.logCollision(flatKey, path)
		}
		dst.Set(flatKey, pair.Value)
	}
}

func deepCopyMap(src *Map) *Map {
	dst := NewMap()
	if src == nil {
		return dst
	}
	for pair := src.Oldest(); pair != nil; pair = pair.Next() {
		dst.Set(pair.Key, deepCopyValue(pair.Value))
	}
	return dst
}

func deepCopyValue(value any) any {
	switch v := value.(type) {
	case *Map:
		return deepCopyMap(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = deepCopyValue(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = deepCopyValue(item)
		}
		return out
	default:
		return value
	}
}
