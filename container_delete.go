package objectarray

import "github.com/cybergodev/objectarray/internal"

// Remove deletes the entry at key. A missing key is an ErrKeyNotFound unless
// throwing is disabled, in which case Remove does nothing.
func (c *Container) Remove(key string, opts ...*Options) error {
	o := c.options(opts)
	full, err := c.fullKey("remove", key, o, true)
	if err != nil {
		c.logError("remove", err)
		return err
	}

	parent, found := c.lookup(internal.ParentKey(full))
	m, ok := asMap(parent)
	if found && ok {
		if _, present := m.Delete(internal.LastSegment(full)); present {
			return nil
		}
	}

	if c.throws(o, throwsRemove) {
		err = newKeyNotFoundError("remove", full)
		c.logError("remove", err)
		return err
	}
	c.logMissing("remove", full)
	return nil
}

// Empty clears the whole container when key is empty and removes key
// otherwise. Clearing happens in place so shallow clones observe it.
func (c *Container) Empty(key string, opts ...*Options) error {
	if key != "" {
		return c.Remove(key, opts...)
	}
	clearMap(c.Data())
	return nil
}

// clearMap deletes every entry of m
func clearMap(m *Map) {
	for _, item := range entries(m) {
		m.Delete(item.Key)
	}
}
