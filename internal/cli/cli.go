// Package cli implements the objectarray command line tool.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cybergodev/objectarray"
)

const envPrefix = "OBJECTARRAY"

var persistentFlags = []string{"file", "format", "output", "scope", "throw", "verbose"}

// settings are the resolved persistent flags of one invocation
type settings struct {
	file   string
	format string
	output string
	scope  string
	throw  objectarray.ThrowMode
}

// app carries what every subcommand needs
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

// NewRootCommand creates the root 'objectarray' command with its subcommands.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "objectarray",
		Short: "Query and edit nested JSON or YAML documents with dotted keys",
		Long: `objectarray reads a JSON or YAML document and works on it with dotted keys.

Examples:
  # Read a nested value
  objectarray get server.http.port --file config.yaml

  # Write a value and print the document as JSON
  objectarray set server.http.port 8080 --file config.yaml --output json

  # Render a mapping as an inline style attribute
  objectarray styles box --file theme.json`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initialize(cmd)
		},
	}

	cmd.PersistentFlags().StringP("file", "f", "", "Input document, '-' for stdin (default: empty document)")
	cmd.PersistentFlags().String("format", "", "Input format: json or yaml (default: from extension, else json)")
	cmd.PersistentFlags().StringP("output", "o", "", "Output format: json or yaml (default: input format)")
	cmd.PersistentFlags().StringP("scope", "s", "", "Parent key every key is resolved under")
	cmd.PersistentFlags().String("throw", "default", "Missing key handling: default, always or never")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cmd.AddCommand(
		a.newGetCommand(),
		a.newSetCommand(),
		a.newDeleteCommand(),
		a.newKeysCommand(),
		a.newFlattenCommand(),
		a.newStylesCommand(),
		a.newParseStylesCommand(),
		a.newURLEncodeCommand(),
	)
	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) initialize(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	for _, name := range persistentFlags {
		if err := a.v.BindPFlag(name, flags.Lookup(name)); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}

	if a.v.GetBool("verbose") {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(cmd.ErrOrStderr()),
			zapcore.DebugLevel,
		)
		a.logger = zap.New(core)
	}
	return nil
}

func (a *app) settings() (*settings, error) {
	mode, err := parseThrowMode(a.v.GetString("throw"))
	if err != nil {
		return nil, err
	}
	return &settings{
		file:   a.v.GetString("file"),
		format: strings.ToLower(a.v.GetString("format")),
		output: strings.ToLower(a.v.GetString("output")),
		scope:  a.v.GetString("scope"),
		throw:  mode,
	}, nil
}

func parseThrowMode(s string) (objectarray.ThrowMode, error) {
	switch strings.ToLower(s) {
	case "", "default":
		return objectarray.ThrowDefault, nil
	case "always":
		return objectarray.ThrowAlways, nil
	case "never":
		return objectarray.ThrowNever, nil
	default:
		return objectarray.ThrowDefault, fmt.Errorf("unknown throw mode %q (want default, always or never)", s)
	}
}
