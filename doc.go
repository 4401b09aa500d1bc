// Package objectarray provides Container, an insertion-ordered nested
// key/value store addressed with dotted keys.
//
// A dotted key joins map keys with '.': "set1.subset2.subsub1" reads the
// "subsub1" entry of the "subset2" mapping of the "set1" mapping. There is no
// escape for a literal '.' inside a key name, so such keys cannot be addressed
// individually.
//
// # Basic Usage
//
//	c := objectarray.New()
//	_ = c.Push("dat.really.long.path", "fixture")
//	value, err := c.Dataset("dat.really.long.path")
//	keys, _ := c.Keys("dat.really")
//
// Every key-taking method accepts an optional *Options to scope the call under
// a parent key or to override the throwing mode:
//
//	_ = c.Push("dream", "fixture2", &objectarray.Options{ParentKey: "dat.really.long"})
//	v, err := c.Dataset("missing", &objectarray.Options{Throw: objectarray.ThrowNever})
//
// # Throwing Mode
//
// A missing key is either an ErrKeyNotFound or a zero answer. The mode is
// taken from Options.Throw, then from Container.SetThrowMode, then from the
// method itself: Dataset, Remove, ForEach, Reduce, Flatten and the string
// helpers report missing keys; Keys, Values and Length do not. Has and Check
// only ever answer false.
//
// # Values
//
// Nested mappings are stored as *Map (an ordered map). Every other value is a
// leaf, arrays included. Plain Go maps handed to Push or Import are converted
// to *Map with their keys in sorted order; a *Container is stored by its root
// mapping, sharing storage with the source.
//
// # Serialization
//
//	css, _ := c.StylesToString("")  // position:absolute;padding-left:1em
//	q, _ := c.URLEncode("")         // alias=test%20fixture
//	form, _ := c.FormURLEncode("")  // alias=test+fixture
//
// Containers also implement json.Marshaler, json.Unmarshaler, yaml.Marshaler
// and yaml.Unmarshaler, keeping insertion order both ways.
package objectarray
