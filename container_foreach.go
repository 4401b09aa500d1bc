package objectarray

// ForEach calls fn once per entry of the mapping at key, in insertion order.
// The entries are snapshotted before the first call; mutating the container
// from fn is not supported. Nested mappings are not descended into.
func (c *Container) ForEach(fn ForEachFunc, key string, opts ...*Options) error {
	items, full, err := c.locateMap("forEach", key, c.options(opts), throwsIteration)
	if err != nil {
		return err
	}
	for index, item := range items {
		fn(item.Value, item.Key, index, full)
	}
	return nil
}

// Reduce folds the entries of the mapping at key from the left
func (c *Container) Reduce(fn ReduceFunc, initial any, key string, opts ...*Options) (any, error) {
	return ReduceAs(c, func(acc any, value any, k string, parentKey string) any {
		return fn(acc, value, k, parentKey)
	}, initial, key, opts...)
}

// ReduceAs is the typed form of Container.Reduce
func ReduceAs[A any](c *Container, fn func(acc A, value any, key string, parentKey string) A, initial A, key string, opts ...*Options) (A, error) {
	acc := initial
	err := c.ForEach(func(value any, k string, _ int, parentKey string) {
		acc = fn(acc, value, k, parentKey)
	}, key, opts...)
	if err != nil {
		return initial, err
	}
	return acc, nil
}
