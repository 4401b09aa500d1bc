package objectarray

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/cybergodev/objectarray/internal"
)

// logMissing records a missing key that was answered with a zero value
func (c *Container) logMissing(op, key string) {
	if c.logger == nil {
		return
	}
	c.logger.LogAttrs(context.Background(), slog.LevelDebug, "Missing key ignored",
		slog.String("operation", op),
		slog.String("key", sanitizeKey(key)),
		slog.String("throw_mode", c.throwMode.String()),
	)
}

// logError logs a failed operation with structured logging
func (c *Container) logError(op string, err error) {
	if c.logger == nil || err == nil {
		return
	}

	errorType := "unknown"
	key := ""
	var containerErr *ContainerError
	if errors.As(err, &containerErr) {
		key = containerErr.Key
		if containerErr.Err != nil {
			errorType = containerErr.Err.Error()
		}
	}

	c.logger.LogAttrs(context.Background(), slog.LevelDebug, "Container operation failed",
		slog.String("operation", op),
		slog.String("key", sanitizeKey(key)),
		slog.String("error_type", errorType),
	)
}

// logCollision records a flatten collision where a later leaf replaced an
// earlier one.
func (c *Container) logCollision(flatKey, source string) {
	if c.logger == nil {
		return
	}
	c.logger.LogAttrs(context.Background(), slog.LevelDebug, "Flatten collision, last value wins",
		slog.String("key", sanitizeKey(flatKey)),
		slog.String("source", sanitizeKey(source)),
	)
}

// sanitizeKey removes potentially sensitive information from keys
func sanitizeKey(key string) string {
	lowerKey := strings.ToLower(key)
	sensitivePatterns := []string{
		"password", "passwd", "pwd",
		"token", "bearer",
		"apikey", "api_key", "api-key",
		"secret", "credential",
		"authorization", "cookie",
	}
	for _, pattern := range sensitivePatterns {
		if strings.Contains(lowerKey, pattern) {
			return "[REDACTED_KEY]"
		}
	}
	return truncateString(key, internal.MaxLoggedKeyLen)
}

// truncateString truncates a string with ellipsis
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
