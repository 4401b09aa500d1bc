package objectarray

import (
	"log/slog"

	"github.com/cybergodev/objectarray/internal"
)

// Container is an insertion-ordered nested key/value store addressed with
// dotted keys ("a.b.c").
//
// A Container is not safe for concurrent use; callers sharing one instance
// must synchronize access themselves.
type Container struct {
	data      *Map
	parentKey string
	throwMode ThrowMode
	maxDepth  int
	logger    *slog.Logger
}

// New creates an empty container with the default configuration
func New() *Container {
	return &Container{
		data:     NewMap(),
		maxDepth: DefaultMaxDepth,
	}
}

// NewFrom creates a container and imports data into it. data may be a
// *Container, a *Map, a map[string]any or a map[any]any with string keys.
func NewFrom(data any) (*Container, error) {
	c := New()
	if err := c.Import(data); err != nil {
		return nil, err
	}
	return c, nil
}

// NewWithConfig creates an empty container using config
func NewWithConfig(config *Config) (*Container, error) {
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}
	return &Container{
		data:      NewMap(),
		parentKey: config.ParentKey,
		throwMode: config.ThrowMode,
		maxDepth:  config.MaxDepth,
		logger:    config.Logger,
	}, nil
}

// Data returns the root mapping. The returned value is the live storage, not a
// copy.
func (c *Container) Data() *Map {
	if c.data == nil {
		c.data = NewMap()
	}
	return c.data
}

// Scope sets the default parent key used by every key-taking call that does
// not pass its own Options.ParentKey.
func (c *Container) Scope(pKey string) error {
	if pKey != "" && !validKey(pKey) {
		return newInvalidKeyError("scope", pKey, "parent key is not a valid dotted key")
	}
	c.parentKey = pKey
	return nil
}

// Unscope clears the default parent key
func (c *Container) Unscope() {
	c.parentKey = ""
}

// DefaultParentKey returns the parent key set with Scope
func (c *Container) DefaultParentKey() string {
	return c.parentKey
}

// SetThrowMode sets the container-wide throwing override. ThrowDefault
// restores the per-method defaults.
func (c *Container) SetThrowMode(mode ThrowMode) {
	c.throwMode = mode
}

// ThrowMode returns the container-wide throwing override
func (c *Container) ThrowMode() ThrowMode {
	return c.throwMode
}

// ParentKey returns all but the last segment of key, or "" when key has a
// single segment.
func (c *Container) ParentKey(key string) string {
	return internal.ParentKey(key)
}

// ChildKey returns all but the first segment of key, or "" when key has a
// single segment.
func (c *Container) ChildKey(key string) string {
	return internal.ChildKey(key)
}

// options returns the first non-nil option set, or an empty one
func (c *Container) options(opts []*Options) *Options {
	if len(opts) > 0 && opts[0] != nil {
		return opts[0]
	}
	return &Options{}
}

// parentFor returns the parent key a call is scoped under
func (c *Container) parentFor(o *Options) string {
	if o.ParentKey != "" {
		return o.ParentKey
	}
	return c.parentKey
}

// throws resolves the throwing mode: call, then container, then method.
func (c *Container) throws(o *Options, methodDefault bool) bool {
	switch o.Throw {
	case ThrowAlways:
		return true
	case ThrowNever:
		return false
	}
	switch c.throwMode {
	case ThrowAlways:
		return true
	case ThrowNever:
		return false
	}
	return methodDefault
}

// fullKey joins the call's parent key and key and validates the result. An
// empty key addresses the parent itself (or the root) unless required is set.
func (c *Container) fullKey(op, key string, o *Options, required bool) (string, error) {
	if required && key == "" {
		return "", newInvalidKeyError(op, key, "key cannot be empty")
	}
	if key != "" && !validKey(key) {
		return "", newInvalidKeyError(op, key, "key contains empty segments")
	}

	parent := c.parentFor(o)
	if parent != "" && !validKey(parent) {
		return "", newInvalidKeyError(op, parent, "parent key contains empty segments")
	}

	full := internal.JoinKey(parent, key)
	maxDepth := c.maxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	if internal.KeyDepth(full) > maxDepth {
		return "", newInvalidKeyError(op, full, "key exceeds maximum depth")
	}
	return full, nil
}

// lookup walks the dotted key from the root
func (c *Container) lookup(full string) (any, bool) {
	if c.data == nil {
		c.data = NewMap()
	}
	if full == "" {
		return c.data, true
	}

	var current any = c.data
	for _, segment := range internal.SplitKey(full) {
		m, ok := asMap(current)
		if !ok {
			return nil, false
		}
		if current, ok = m.Get(segment); !ok {
			return nil, false
		}
	}
	return current, true
}

// locate resolves key for a read. A missing key is an error in throwing mode
// and a (nil, false) answer otherwise.
func (c *Container) locate(op, key string, o *Options, methodDefault bool) (value any, full string, found bool, err error) {
	full, err = c.fullKey(op, key, o, false)
	if err != nil {
		c.logError(op, err)
		return nil, "", false, err
	}

	value, found = c.lookup(full)
	if found {
		return value, full, true, nil
	}

	if c.throws(o, methodDefault) {
		err = newKeyNotFoundError(op, full)
		c.logError(op, err)
		return nil, full, false, err
	}
	c.logMissing(op, full)
	return nil, full, false, nil
}

// locateMap is locate for operations that work on the entries of a mapping.
// A leaf target yields no entries.
func (c *Container) locateMap(op, key string, o *Options, methodDefault bool) ([]Entry, string, error) {
	value, full, found, err := c.locate(op, key, o, methodDefault)
	if err != nil || !found {
		return nil, full, err
	}
	m, ok := asMap(value)
	if !ok {
		return []Entry{}, full, nil
	}
	return entries(m), full, nil
}
