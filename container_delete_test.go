package objectarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemove(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Push("test", "fixture"))
		require.NoError(t, c.Remove("test"))
		assert.Equal(t, map[string]any{}, c.ToMap())
	})

	t.Run("dotted", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Push("test.dot", "fixture"))
		require.NoError(t, c.Push("test.dot2", "fixture2"))
		require.NoError(t, c.Remove("test.dot2"))
		assert.Equal(t, map[string]any{"test": map[string]any{"dot": "fixture"}}, c.ToMap())
	})

	t.Run("under parent key", func(t *testing.T) {
		c := newFixture(t)
		require.NoError(t, c.Remove("test21", &Options{ParentKey: "test2"}))
		assert.False(t, c.Has("test2.test21"))
		assert.True(t, c.Has("test2.test22"))
	})

	t.Run("nested mapping", func(t *testing.T) {
		c := newFixture(t)
		require.NoError(t, c.Remove("test2"))
		assert.Equal(t, map[string]any{"test": "fixture"}, c.ToMap())
	})

	t.Run("missing key", func(t *testing.T) {
		c := newFixture(t)
		assert.ErrorIs(t, c.Remove("test3"), ErrKeyNotFound)
		assert.ErrorIs(t, c.Remove("test.below.leaf"), ErrKeyNotFound)
		assert.NoError(t, c.Remove("test3", &Options{Throw: ThrowNever}))

		c.SetThrowMode(ThrowNever)
		assert.NoError(t, c.Remove("nowhere.to.be.found"))
		assert.Equal(t, newFixture(t).ToMap(), c.ToMap())
	})
}

func TestPushThenRemove(t *testing.T) {
	for _, key := range []string{"a", "a.b", "a.b.c"} {
		c := New()
		require.NoError(t, c.Push(key, "v"))
		require.NoError(t, c.Remove(key))
		assert.False(t, c.Has(key), key)
	}
}

func TestEmpty(t *testing.T) {
	c := newFixture(t)
	require.NoError(t, c.Empty("test2.test21"))
	assert.False(t, c.Has("test2.test21"))

	require.NoError(t, c.Empty(""))
	root, err := c.Dataset("")
	require.NoError(t, err)
	assert.Equal(t, 0, root.(*Map).Len())
	assert.Equal(t, map[string]any{}, c.ToMap())

	// Emptying twice is harmless
	require.NoError(t, c.Empty(""))
	assert.Equal(t, map[string]any{}, c.ToMap())
}

func TestEmptyIsSharedWithShallowClone(t *testing.T) {
	c := newFixture(t)
	shallow := c.Clone(false)

	require.NoError(t, c.Empty(""))
	assert.Equal(t, 0, shallow.Data().Len())
}
