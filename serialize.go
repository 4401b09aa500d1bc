package objectarray

import (
	"strings"

	"github.com/cybergodev/objectarray/internal"
)

// StylesToString renders the mapping at key as an inline style attribute,
// "name:value;name:value", with every name dashized.
func (c *Container) StylesToString(key string, opts ...*Options) (string, error) {
	items, _, err := c.locateMap("stylesToString", key, c.options(opts), throwsIteration)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(Dashize(item.Key))
		sb.WriteByte(':')
		sb.WriteString(stringify(item.Value))
	}
	return sb.String(), nil
}

// StringToStyles parses "name:value;name:value" and pushes every camelized
// name under the call's parent key. Empty segments, such as the one after a
// trailing ';', are skipped. A segment without ':' or with an empty name is an
// ErrMalformedInput and nothing is pushed.
func (c *Container) StringToStyles(text string, opts ...*Options) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var styles []Entry
	for _, segment := range strings.Split(text, ";") {
		if strings.TrimSpace(segment) == "" {
			continue
		}
		name, value, ok := strings.Cut(segment, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			err := newMalformedInputError("stringToStyles", "malformed string for stringToStyles")
			c.logError("stringToStyles", err)
			return err
		}
		styles = append(styles, Entry{Key: Camelize(name), Value: strings.TrimSpace(value)})
	}

	for _, style := range styles {
		if err := c.Push(style.Key, style.Value, opts...); err != nil {
			return err
		}
	}
	return nil
}

// URLEncode renders the mapping at key as "name=value&name=value" with every
// value encoded like encodeURIComponent.
func (c *Container) URLEncode(key string, opts ...*Options) (string, error) {
	items, _, err := c.locateMap("urlEncode", key, c.options(opts), throwsIteration)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for i, item := range items {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(item.Key)
		sb.WriteByte('=')
		sb.WriteString(internal.EncodeURIComponent(stringify(item.Value)))
	}
	return sb.String(), nil
}

// FormURLEncode is URLEncode with the first "%20" turned into "+". Only the
// first occurrence is replaced; later spaces stay "%20".
func (c *Container) FormURLEncode(key string, opts ...*Options) (string, error) {
	encoded, err := c.URLEncode(key, opts...)
	if err != nil {
		return "", err
	}
	// TODO: decide whether every %20 should become "+"; form encoding normally replaces all of them
	return strings.Replace(encoded, "%20", "+", 1), nil
}

// Camelize turns dash or space separated words into camelCase
func Camelize(s string) string {
	return internal.Camelize(s)
}

// Dashize turns camelCase or space separated words into dash-case
func Dashize(s string) string {
	return internal.Dashize(s)
}

// ParentKey returns all but the last segment of key
func ParentKey(key string) string {
	return internal.ParentKey(key)
}

// ChildKey returns all but the first segment of key
func ChildKey(key string) string {
	return internal.ChildKey(key)
}
