package objectarray

import (
	"bytes"
	"fmt"

	"github.com/buger/jsonparser"
	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the container as a JSON object in insertion order
func (c *Container) MarshalJSON() ([]byte, error) {
	return c.Data().MarshalJSON()
}

// UnmarshalJSON replaces the container content with a decoded JSON object.
// On failure the previous content is left untouched.
func (c *Container) UnmarshalJSON(data []byte) error {
	m, err := decodeJSONObject("unmarshal_json", data)
	if err != nil {
		return err
	}
	return c.replaceContent(m)
}

// ImportJSON decodes a JSON object and imports it under the call's parent key
func (c *Container) ImportJSON(data []byte, opts ...*Options) error {
	m, err := decodeJSONObject("import_json", data)
	if err != nil {
		c.logError("import_json", err)
		return err
	}
	return c.Import(m, opts...)
}

// MarshalYAML encodes the container as a YAML mapping in insertion order
func (c *Container) MarshalYAML() (any, error) {
	return encodeYAMLNode(c.Data())
}

// UnmarshalYAML replaces the container content with a decoded YAML mapping.
// On failure the previous content is left untouched.
func (c *Container) UnmarshalYAML(node *yaml.Node) error {
	m, err := decodeYAMLMapping("unmarshal_yaml", node)
	if err != nil {
		return err
	}
	return c.replaceContent(m)
}

// ImportYAML decodes a YAML mapping and imports it under the call's parent key
func (c *Container) ImportYAML(data []byte, opts ...*Options) error {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		err = newMalformedInputError("import_yaml", err.Error())
		c.logError("import_yaml", err)
		return err
	}
	m, err := decodeYAMLMapping("import_yaml", &node)
	if err != nil {
		c.logError("import_yaml", err)
		return err
	}
	return c.Import(m, opts...)
}

// replaceContent imports m into a scratch container with the same session
// state and swaps the result into the live root only when every entry was
// accepted. The root is refilled in place so shallow clones observe it.
func (c *Container) replaceContent(m *Map) error {
	staged := &Container{
		data:      NewMap(),
		parentKey: c.parentKey,
		throwMode: c.throwMode,
		maxDepth:  c.maxDepth,
		logger:    c.logger,
	}
	if err := staged.Import(m); err != nil {
		return err
	}

	root := c.Data()
	clearMap(root)
	for pair := staged.data.Oldest(); pair != nil; pair = pair.Next() {
		root.Set(pair.Key, pair.Value)
	}
	return nil
}

// ToMap returns a copy of the content as plain Go maps and slices
func (c *Container) ToMap() map[string]any {
	return plainMap(c.Data())
}

func plainMap(m *Map) map[string]any {
	out := make(map[string]any, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out[pair.Key] = plainValue(pair.Value)
	}
	return out
}

func plainValue(value any) any {
	switch v := value.(type) {
	case *Map:
		return plainMap(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = plainValue(item)
		}
		return out
	default:
		return value
	}
}

func decodeJSONObject(op string, data []byte) (*Map, error) {
	raw, dataType, end, err := jsonparser.Get(data)
	if err != nil {
		return nil, newMalformedInputError(op, err.Error())
	}
	if end < len(data) && len(bytes.TrimSpace(data[end:])) > 0 {
		return nil, newMalformedInputError(op, fmt.Sprintf("unexpected data after JSON value at offset %d", end))
	}
	if dataType != jsonparser.Object {
		return nil, newMalformedInputError(op, fmt.Sprintf("expected a JSON object, got %s", dataType))
	}
	value, err := decodeJSONValue(raw, dataType)
	if err != nil {
		return nil, newMalformedInputError(op, err.Error())
	}
	return value.(*Map), nil
}

// decodeJSONValue keeps object member order, which encoding/json cannot do
// when decoding into maps.
func decodeJSONValue(raw []byte, dataType jsonparser.ValueType) (any, error) {
	switch dataType {
	case jsonparser.Object:
		m := NewMap()
		err := jsonparser.ObjectEach(raw, func(key []byte, value []byte, valueType jsonparser.ValueType, _ int) error {
			decoded, err := decodeJSONValue(value, valueType)
			if err != nil {
				return err
			}
			m.Set(string(key), decoded)
			return nil
		})
		return m, err
	case jsonparser.Array:
		arr := make([]any, 0)
		var itemErr error
		_, err := jsonparser.ArrayEach(raw, func(value []byte, valueType jsonparser.ValueType, _ int, err error) {
			if itemErr != nil {
				return
			}
			if err != nil {
				itemErr = err
				return
			}
			decoded, err := decodeJSONValue(value, valueType)
			if err != nil {
				itemErr = err
				return
			}
			arr = append(arr, decoded)
		})
		if err == nil {
			err = itemErr
		}
		return arr, err
	case jsonparser.String:
		return jsonparser.ParseString(raw)
	case jsonparser.Number:
		if i, err := jsonparser.ParseInt(raw); err == nil {
			return i, nil
		}
		return jsonparser.ParseFloat(raw)
	case jsonparser.Boolean:
		return jsonparser.ParseBoolean(raw)
	case jsonparser.Null:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected JSON value type %s", dataType)
	}
}

func decodeYAMLMapping(op string, node *yaml.Node) (*Map, error) {
	value, err := decodeYAMLNode(op, node)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return NewMap(), nil
	}
	m, ok := asMap(value)
	if !ok {
		return nil, newMalformedInputError(op, "expected a YAML mapping")
	}
	return m, nil
}

// decodeYAMLNode walks the node tree so mappings keep document order
func decodeYAMLNode(op string, node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return decodeYAMLNode(op, node.Content[0])
	case yaml.MappingNode:
		m := NewMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, newInvalidKeyError(op, "", fmt.Sprintf("mapping key at line %d is not a scalar", keyNode.Line))
			}
			value, err := decodeYAMLNode(op, valueNode)
			if err != nil {
				return nil, err
			}
			m.Set(keyNode.Value, value)
		}
		return m, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			value, err := decodeYAMLNode(op, item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		return arr, nil
	case yaml.AliasNode:
		return decodeYAMLNode(op, node.Alias)
	case yaml.ScalarNode:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, newMalformedInputError(op, err.Error())
		}
		return value, nil
	default:
		return nil, nil
	}
}

func encodeYAMLNode(value any) (*yaml.Node, error) {
	switch v := value.(type) {
	case *Map:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for pair := v.Oldest(); pair != nil; pair = pair.Next() {
			keyNode := &yaml.Node{}
			if err := keyNode.Encode(pair.Key); err != nil {
				return nil, err
			}
			valueNode, err := encodeYAMLNode(pair.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, keyNode, valueNode)
		}
		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v {
			itemNode, err := encodeYAMLNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, itemNode)
		}
		return node, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(value); err != nil {
			return nil, err
		}
		return node, nil
	}
}
