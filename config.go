package objectarray

import (
	"fmt"
	"log/slog"
)

// Config holds the container-wide settings applied by NewWithConfig
type Config struct {
	ThrowMode ThrowMode    // Container-wide throwing override
	ParentKey string       // Default parent key for key-taking operations
	MaxDepth  int          // Maximum segments in a dotted key
	Logger    *slog.Logger // Optional structured logger, nil disables logging
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ThrowMode: ThrowDefault,
		MaxDepth:  DefaultMaxDepth,
	}
}

// ValidateConfig validates configuration values and applies corrections
func ValidateConfig(config *Config) error {
	if config == nil {
		return &ContainerError{Op: "validate_config", Message: "config cannot be nil", Err: ErrInvalidConfig}
	}

	switch config.ThrowMode {
	case ThrowDefault, ThrowAlways, ThrowNever:
	default:
		return &ContainerError{
			Op:      "validate_config",
			Message: fmt.Sprintf("unknown throw mode %d", config.ThrowMode),
			Err:     ErrInvalidConfig,
		}
	}

	if config.ParentKey != "" && !validKey(config.ParentKey) {
		return &ContainerError{
			Op:      "validate_config",
			Key:     config.ParentKey,
			Message: "parent key is not a valid dotted key",
			Err:     ErrInvalidConfig,
		}
	}

	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultMaxDepth
	}

	return nil
}
