package objectarray

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const orderedJSON = `{"b":1,"a":{"y":true,"x":[1,"two",null]},"c":1.5}`

func TestJSONRoundTrip(t *testing.T) {
	c := New()
	require.NoError(t, json.Unmarshal([]byte(orderedJSON), c))

	keys, err := c.Keys("")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, keys)

	keys, err = c.Keys("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "x"}, keys)

	value, err := c.Dataset("a.x")
	require.NoError(t, err)
	assert.Equal(t, []any{int64(1), "two", nil}, value)
	assert.True(t, c.Check("c", 1.5))

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, orderedJSON, string(out))
}

func TestUnmarshalJSONReplacesContent(t *testing.T) {
	c := newFixture(t)
	require.NoError(t, c.UnmarshalJSON([]byte(`{"only":"this"}`)))
	assert.Equal(t, map[string]any{"only": "this"}, c.ToMap())
}

func TestUnmarshalKeepsContentOnFailure(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Push("keep", "me"))

		err := c.UnmarshalJSON([]byte(`{"a":1,"":2}`))
		assert.ErrorIs(t, err, ErrInvalidKey)
		assert.Equal(t, map[string]any{"keep": "me"}, c.ToMap())
	})

	t.Run("yaml", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Push("keep", "me"))

		err := yaml.Unmarshal([]byte("a: 1\n\"\": 2\n"), c)
		assert.ErrorIs(t, err, ErrInvalidKey)
		assert.Equal(t, map[string]any{"keep": "me"}, c.ToMap())
	})

	t.Run("shallow clone sees replacement", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Push("keep", "me"))
		clone := c.Clone(false)

		require.NoError(t, c.UnmarshalJSON([]byte(`{"a":1}`)))
		assert.Equal(t, map[string]any{"a": int64(1)}, clone.ToMap())
	})
}

func TestUnmarshalJSONZeroContainer(t *testing.T) {
	var c Container
	require.NoError(t, json.Unmarshal([]byte(`{"a":{"b":"c"}}`), &c))
	assert.True(t, c.Check("a.b", "c"))
}

func TestImportJSON(t *testing.T) {
	c := New()
	require.NoError(t, c.ImportJSON([]byte(`{"msg":"line\nbreak","n":-3}`), &Options{ParentKey: "in"}))
	assert.True(t, c.Check("in.msg", "line\nbreak"))
	assert.True(t, c.Check("in.n", int64(-3)))

	require.NoError(t, c.ImportJSON([]byte(`{"dotted.key":1}`)))
	assert.True(t, c.Has("dotted.key"))

	assert.ErrorIs(t, c.ImportJSON([]byte(`[1,2]`)), ErrMalformedInput)
	assert.ErrorIs(t, c.ImportJSON([]byte(`{"a":`)), ErrMalformedInput)
	assert.ErrorIs(t, c.ImportJSON([]byte(``)), ErrMalformedInput)
}

func TestImportJSONTrailingData(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.ImportJSON([]byte(`{"a":1} garbage`)), ErrMalformedInput)
	assert.ErrorIs(t, c.ImportJSON([]byte(`{"a":1}{"b":2}`)), ErrMalformedInput)
	assert.ErrorIs(t, c.UnmarshalJSON([]byte(`{"a":1} x`)), ErrMalformedInput)
	assert.Equal(t, 0, c.Data().Len())

	require.NoError(t, c.ImportJSON([]byte("  {\"a\":1}\n\t ")))
	assert.True(t, c.Check("a", int64(1)))
}

func TestYAMLRoundTrip(t *testing.T) {
	c := New()
	require.NoError(t, c.ImportYAML([]byte("b: 1\na:\n  y: true\n  x: [1, two]\n")))

	keys, err := c.Keys("")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, keys)

	value, err := c.Dataset("a.x")
	require.NoError(t, err)
	assert.Equal(t, []any{1, "two"}, value)

	out, err := yaml.Marshal(c)
	require.NoError(t, err)

	decoded := New()
	require.NoError(t, yaml.Unmarshal(out, decoded))
	assert.Equal(t, c.ToMap(), decoded.ToMap())
	keys, _ = decoded.Keys("a")
	assert.Equal(t, []string{"y", "x"}, keys)
}

func TestImportYAML(t *testing.T) {
	c := New()
	require.NoError(t, c.ImportYAML([]byte("")))
	assert.Equal(t, 0, c.Data().Len())

	require.NoError(t, c.ImportYAML([]byte("base: &b\n  k: v\ncopy: *b\n"), &Options{ParentKey: "doc"}))
	assert.True(t, c.Check("doc.copy.k", "v"))

	assert.ErrorIs(t, c.ImportYAML([]byte("- a\n- b\n")), ErrMalformedInput)
	assert.ErrorIs(t, c.ImportYAML([]byte("a: [\n")), ErrMalformedInput)
	assert.ErrorIs(t, c.ImportYAML([]byte("? [a, b]\n: c\n")), ErrInvalidKey)
}

func TestToMapIsACopy(t *testing.T) {
	c := newFixture(t)
	m := c.ToMap()
	m["test"] = "changed"
	m["test2"].(map[string]any)["test21"] = "changed"

	assert.True(t, c.Check("test", "fixture"))
	assert.True(t, c.Check("test2.test21", "fixture21"))
}
