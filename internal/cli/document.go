package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cybergodev/objectarray"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// load reads the input document into a container configured from s
func (a *app) load(in io.Reader, s *settings) (*objectarray.Container, string, error) {
	cfg := objectarray.DefaultConfig()
	cfg.ThrowMode = s.throw
	c, err := objectarray.NewWithConfig(cfg)
	if err != nil {
		return nil, "", err
	}

	format, err := inputFormat(s)
	if err != nil {
		return nil, "", err
	}
	if s.file == "" {
		if err := c.Scope(s.scope); err != nil {
			return nil, "", err
		}
		return c, format, nil
	}

	var data []byte
	if s.file == "-" {
		data, err = io.ReadAll(in)
	} else {
		data, err = os.ReadFile(s.file)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", s.file, err)
	}

	switch format {
	case formatYAML:
		err = c.ImportYAML(data)
	default:
		err = c.ImportJSON(data)
	}
	if err != nil {
		return nil, "", err
	}
	if err := c.Scope(s.scope); err != nil {
		return nil, "", err
	}

	a.logger.Debug("document loaded",
		zap.String("file", s.file),
		zap.String("format", format),
		zap.Int("bytes", len(data)),
		zap.Int("keys", c.Data().Len()),
	)
	return c, format, nil
}

func inputFormat(s *settings) (string, error) {
	if s.format != "" {
		return checkFormat(s.format)
	}
	switch strings.ToLower(filepath.Ext(s.file)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return formatJSON, nil
	}
}

func outputFormat(s *settings, input string) (string, error) {
	if s.output != "" {
		return checkFormat(s.output)
	}
	return input, nil
}

func checkFormat(format string) (string, error) {
	switch format {
	case "yml":
		return formatYAML, nil
	case formatJSON, formatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want json or yaml)", format)
	}
}

// writeDocument prints the whole container
func writeDocument(w io.Writer, c *objectarray.Container, format string) error {
	return writeValue(w, c, format)
}

// writeValue prints strings verbatim and everything else encoded
func writeValue(w io.Writer, value any, format string) error {
	if s, ok := value.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}

	switch format {
	case formatYAML:
		node, err := yamlValue(value)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(node)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		out, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
}

// yamlValue encodes value through a container so nested mappings keep their
// order.
func yamlValue(value any) (any, error) {
	if c, ok := value.(*objectarray.Container); ok {
		return c, nil
	}
	tmp := objectarray.New()
	if err := tmp.Push("value", value); err != nil {
		return nil, err
	}
	node, err := tmp.MarshalYAML()
	if err != nil {
		return nil, err
	}
	return node.(*yaml.Node).Content[1], nil
}

// parseValue reads a command line value as JSON, falling back to a string
func parseValue(raw string) any {
	if !json.Valid([]byte(raw)) {
		return raw
	}
	tmp := objectarray.New()
	if err := tmp.ImportJSON([]byte(`{"value":` + raw + `}`)); err != nil {
		return raw
	}
	value, ok := tmp.Lookup("value")
	if !ok {
		return raw
	}
	return value
}
