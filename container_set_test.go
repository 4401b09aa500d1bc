package objectarray

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPush(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Push("test", "fixture"))
		assert.Equal(t, map[string]any{"test": "fixture"}, c.ToMap())
	})

	t.Run("creates all needed keys", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Push("dat.really.long.path", "fixture"))
		assert.Equal(t, map[string]any{
			"dat": map[string]any{
				"really": map[string]any{
					"long": map[string]any{"path": "fixture"},
				},
			},
		}, c.ToMap())
	})

	t.Run("dotted siblings", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Push("test.dot", "fixture"))
		require.NoError(t, c.Push("test.dot2", "fixture2"))
		assert.Equal(t, map[string]any{
			"test": map[string]any{"dot": "fixture", "dot2": "fixture2"},
		}, c.ToMap())
	})

	t.Run("under parent key", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Push("dat.really.long.path", "fixture1"))
		require.NoError(t, c.Push("dream", "fixture2", &Options{ParentKey: "dat.really.long"}))
		require.NoError(t, c.Import(map[string]any{"shorter.path": "fixture3"}, &Options{ParentKey: "dat"}))
		assert.Equal(t, map[string]any{
			"dat": map[string]any{
				"really": map[string]any{
					"long": map[string]any{"path": "fixture1", "dream": "fixture2"},
				},
				"shorter": map[string]any{"path": "fixture3"},
			},
		}, c.ToMap())
	})

	t.Run("replaces a leaf in the way", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Push("a", "leaf"))
		require.NoError(t, c.Push("a.b", 1))
		assert.Equal(t, map[string]any{"a": map[string]any{"b": 1}}, c.ToMap())
	})

	t.Run("overwrite keeps position", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Push("a", 1))
		require.NoError(t, c.Push("b", 2))
		require.NoError(t, c.Push("a", 3))
		keys, _ := c.Keys("")
		assert.Equal(t, []string{"a", "b"}, keys)
		assert.True(t, c.Check("a", 3))
	})

	t.Run("arrays are leaves", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Push("list", []any{map[string]any{"x": 1}}))
		keys, err := c.Keys("list")
		require.NoError(t, err)
		assert.Empty(t, keys)
		assert.False(t, c.Has("list.x"))
	})
}

func TestPushContainer(t *testing.T) {
	o := newFixture(t)
	expected := map[string]any{
		"test": "fixture",
		"test2": map[string]any{
			"test21": "fixture21",
			"test22": "fixture22",
		},
	}

	i := New()
	require.NoError(t, i.Push("itest", o))
	assert.Equal(t, map[string]any{"itest": expected}, i.ToMap())

	stored, _ := i.Dataset("itest")
	assert.Same(t, o.Data(), stored)

	// Storage is shared with the pushed container
	require.NoError(t, o.Push("test3", "shared"))
	assert.True(t, i.Check("itest.test3", "shared"))

	i = New()
	require.NoError(t, i.Push("itest", o.Clone(true), &Options{ParentKey: "dat.path"}))
	assert.Equal(t, map[string]any{
		"dat": map[string]any{"path": map[string]any{"itest": o.ToMap()}},
	}, i.ToMap())
}

func TestImport(t *testing.T) {
	o := newFixture(t)

	t.Run("container", func(t *testing.T) {
		i := New()
		require.NoError(t, i.Import(o))
		assert.Equal(t, o.ToMap(), i.ToMap())
	})

	t.Run("container under parent key", func(t *testing.T) {
		i := New()
		require.NoError(t, i.Import(o, &Options{ParentKey: "dat.path"}))
		assert.Equal(t, map[string]any{
			"dat": map[string]any{"path": o.ToMap()},
		}, i.ToMap())
	})

	t.Run("dotted keys", func(t *testing.T) {
		i := New()
		require.NoError(t, i.Import(map[string]any{
			"dat.really.long.path":  "fixture1",
			"dat.really.long.dream": "fixture2",
			"dat.shorter.path":      "fixture3",
		}))
		assert.Equal(t, map[string]any{
			"dat": map[string]any{
				"really": map[string]any{
					"long": map[string]any{"path": "fixture1", "dream": "fixture2"},
				},
				"shorter": map[string]any{"path": "fixture3"},
			},
		}, i.ToMap())
	})

	t.Run("go map keys are sorted", func(t *testing.T) {
		i := New()
		require.NoError(t, i.Import(map[string]any{"c": 3, "a": 1, "b": 2}))
		keys, _ := i.Keys("")
		assert.Equal(t, []string{"a", "b", "c"}, keys)
	})

	t.Run("map with any keys", func(t *testing.T) {
		i := New()
		require.NoError(t, i.Import(map[any]any{"a": map[any]any{"b": 1}}))
		assert.Equal(t, map[string]any{"a": map[string]any{"b": 1}}, i.ToMap())
	})

	t.Run("nil source", func(t *testing.T) {
		i := New()
		require.NoError(t, i.Import(nil))
		assert.Equal(t, 0, i.Data().Len())
	})

	t.Run("flat round trip", func(t *testing.T) {
		flat, err := NewFrom(map[string]any{"a": 1, "b": "two", "c": true})
		require.NoError(t, err)
		root, err := flat.Dataset("")
		require.NoError(t, err)

		i := New()
		require.NoError(t, i.Import(root))
		assert.Equal(t, flat.ToMap(), i.ToMap())
	})
}

func TestPushThenDataset(t *testing.T) {
	keys := []string{"a", "a1.b", "x.y.z", "deep.ly.nested.key.path"}
	values := []any{1, "two", 3.5, []any{"four"}, nil, false}

	for _, key := range keys {
		for _, value := range values {
			t.Run(fmt.Sprintf("%s=%v", key, value), func(t *testing.T) {
				c := New()
				require.NoError(t, c.Push(key, value))
				assert.True(t, c.Has(key))
				got, err := c.Dataset(key)
				require.NoError(t, err)
				assert.Equal(t, value, got)
			})
		}
	}
}

func TestDefine(t *testing.T) {
	c := newFixture(t)

	require.NoError(t, c.Define("test3", "fixture3"))
	assert.True(t, c.Check("test3", "fixture3"))

	require.NoError(t, c.Define("test41", "fixture41", &Options{ParentKey: "test4"}))
	assert.True(t, c.Check("test4.test41", "fixture41"))

	require.NoError(t, c.Define("test", "nope"))
	assert.True(t, c.Check("test", "fixture"))

	assert.ErrorIs(t, c.Define("", "nope"), ErrInvalidKey)
}
