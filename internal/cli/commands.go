package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cybergodev/objectarray"
)

// run loads the document, applies fn and reports failures through the logger
func (a *app) run(cmd *cobra.Command, name string, fn func(c *objectarray.Container, s *settings, format string) error) error {
	s, err := a.settings()
	if err != nil {
		return err
	}
	c, format, err := a.load(cmd.InOrStdin(), s)
	if err != nil {
		a.logger.Debug("load failed", zap.String("command", name), zap.Error(err))
		return err
	}
	format, err = outputFormat(s, format)
	if err != nil {
		return err
	}
	if err := fn(c, s, format); err != nil {
		a.logger.Debug("command failed", zap.String("command", name), zap.Error(err))
		return err
	}
	return nil
}

func optionalKey(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

func (a *app) newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value at a dotted key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "get", func(c *objectarray.Container, _ *settings, format string) error {
				value, err := c.Dataset(args[0])
				if err != nil {
					return err
				}
				if value == nil && !c.Has(args[0]) {
					return nil
				}
				return writeValue(cmd.OutOrStdout(), value, format)
			})
		},
	}
}

func (a *app) newSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Write a value (JSON, or a plain string) and print the document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "set", func(c *objectarray.Container, _ *settings, format string) error {
				if err := c.Push(args[0], parseValue(args[1])); err != nil {
					return err
				}
				return writeDocument(cmd.OutOrStdout(), c, format)
			})
		},
	}
}

func (a *app) newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "del KEY",
		Aliases: []string{"delete", "rm"},
		Short:   "Remove a dotted key and print the document",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "del", func(c *objectarray.Container, _ *settings, format string) error {
				if err := c.Remove(args[0]); err != nil {
					return err
				}
				return writeDocument(cmd.OutOrStdout(), c, format)
			})
		},
	}
}

func (a *app) newKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys [KEY]",
		Short: "List the keys of a mapping, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "keys", func(c *objectarray.Container, _ *settings, _ string) error {
				keys, err := c.Keys(optionalKey(args))
				if err != nil {
					return err
				}
				for _, key := range keys {
					if _, err := fmt.Fprintln(cmd.OutOrStdout(), key); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func (a *app) newFlattenCommand() *cobra.Command {
	var dotted bool
	cmd := &cobra.Command{
		Use:   "flatten [KEY]",
		Short: "Collapse a mapping into a single level and print the document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "flatten", func(c *objectarray.Container, _ *settings, format string) error {
				if err := c.Flatten(dotted, optionalKey(args)); err != nil {
					return err
				}
				return writeDocument(cmd.OutOrStdout(), c, format)
			})
		},
	}
	cmd.Flags().BoolVar(&dotted, "dotted", false, "Use dotted paths as flattened keys")
	return cmd
}

func (a *app) newStylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles [KEY]",
		Short: "Render a mapping as an inline style attribute",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "styles", func(c *objectarray.Container, _ *settings, _ string) error {
				styles, err := c.StylesToString(optionalKey(args))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), styles)
				return err
			})
		},
	}
}

func (a *app) newParseStylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse-styles TEXT",
		Short: "Parse an inline style attribute into the document and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "parse-styles", func(c *objectarray.Container, _ *settings, format string) error {
				if err := c.StringToStyles(args[0]); err != nil {
					return err
				}
				return writeDocument(cmd.OutOrStdout(), c, format)
			})
		},
	}
}

func (a *app) newURLEncodeCommand() *cobra.Command {
	var form bool
	cmd := &cobra.Command{
		Use:   "urlencode [KEY]",
		Short: "Render a mapping as a URL query string",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, "urlencode", func(c *objectarray.Container, _ *settings, _ string) error {
				encode := c.URLEncode
				if form {
					encode = c.FormURLEncode
				}
				query, err := encode(optionalKey(args))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), query)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&form, "form", false, "Encode for application/x-www-form-urlencoded")
	return cmd
}
