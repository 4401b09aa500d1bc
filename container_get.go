package objectarray

// Has reports whether every segment of key resolves, starting from the
// parent key when one applies. It never fails.
func (c *Container) Has(key string, opts ...*Options) bool {
	if key == "" {
		return false
	}
	full, err := c.fullKey("has", key, c.options(opts), true)
	if err != nil {
		return false
	}
	_, found := c.lookup(full)
	return found
}

// Dataset returns the value at key, or the parent (root) mapping when key is
// empty. A missing key is an ErrKeyNotFound unless throwing is disabled, in
// which case it returns nil, nil.
func (c *Container) Dataset(key string, opts ...*Options) (any, error) {
	value, _, _, err := c.locate("dataset", key, c.options(opts), throwsDataset)
	return value, err
}

// Pull is an alias of Dataset
func (c *Container) Pull(key string, opts ...*Options) (any, error) {
	return c.Dataset(key, opts...)
}

// Lookup returns the value at key and whether it exists. It never fails.
func (c *Container) Lookup(key string, opts ...*Options) (any, bool) {
	full, err := c.fullKey("lookup", key, c.options(opts), false)
	if err != nil {
		return nil, false
	}
	return c.lookup(full)
}

// Keys returns the keys of the mapping at key in insertion order. A leaf
// target has no keys. Missing keys do not fail unless throwing is forced.
func (c *Container) Keys(key string, opts ...*Options) ([]string, error) {
	items, _, err := c.locateMap("keys", key, c.options(opts), throwsKeys)
	if err != nil || items == nil {
		return nil, err
	}
	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = item.Key
	}
	return keys, nil
}

// Values returns the values of the mapping at key, aligned with Keys
func (c *Container) Values(key string, opts ...*Options) ([]any, error) {
	items, _, err := c.locateMap("values", key, c.options(opts), throwsKeys)
	if err != nil || items == nil {
		return nil, err
	}
	values := make([]any, len(items))
	for i, item := range items {
		values[i] = item.Value
	}
	return values, nil
}

// Entries returns the key/value pairs of the mapping at key, in insertion order
func (c *Container) Entries(key string, opts ...*Options) ([]Entry, error) {
	items, _, err := c.locateMap("entries", key, c.options(opts), throwsKeys)
	return items, err
}

// Length returns the number of keys of the mapping at key
func (c *Container) Length(key string, opts ...*Options) (int, error) {
	keys, err := c.Keys(key, opts...)
	return len(keys), err
}

// Check reports whether key exists and holds expected. Comparison is strict
// (same type and value) unless Options.Loose is set.
func (c *Container) Check(key string, expected any, opts ...*Options) bool {
	o := c.options(opts)
	full, err := c.fullKey("check", key, o, true)
	if err != nil {
		return false
	}
	value, found := c.lookup(full)
	if !found {
		return false
	}
	if o.Loose {
		return looseEqual(value, expected)
	}
	return strictEqual(value, expected)
}
