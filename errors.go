package objectarray

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyNotFound is reported when a dotted key does not resolve and the
	// call is in throwing mode.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidKey is reported for keys that are not strings or not
	// well-formed dotted keys.
	ErrInvalidKey = errors.New("invalid key")
	// ErrMalformedInput is reported for style strings that cannot be parsed
	ErrMalformedInput = errors.New("malformed input")
	// ErrInvalidConfig is reported by ValidateConfig
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ContainerError describes a failed container operation
type ContainerError struct {
	Op      string `json:"op"`      // Operation that failed
	Key     string `json:"key"`     // Dotted key involved, if any
	Message string `json:"message"` // Human-readable message
	Err     error  `json:"err"`     // Underlying sentinel error
}

func (e *ContainerError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("objectarray %s failed at key '%s': %s", e.Op, e.Key, e.Message)
	}
	return fmt.Sprintf("objectarray %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *ContainerError) Unwrap() error {
	return e.Err
}

// Is matches either another ContainerError with the same Op and sentinel, or
// the sentinel itself.
func (e *ContainerError) Is(target error) bool {
	if target == nil {
		return false
	}

	if targetErr, ok := target.(*ContainerError); ok {
		return e.Op == targetErr.Op && e.Err == targetErr.Err
	}

	return errors.Is(e.Err, target)
}

func newKeyNotFoundError(op, key string) error {
	return &ContainerError{
		Op:      op,
		Key:     key,
		Message: "key does not exist",
		Err:     ErrKeyNotFound,
	}
}

func newInvalidKeyError(op, key, message string) error {
	return &ContainerError{
		Op:      op,
		Key:     key,
		Message: message,
		Err:     ErrInvalidKey,
	}
}

func newMalformedInputError(op, message string) error {
	return &ContainerError{
		Op:      op,
		Message: message,
		Err:     ErrMalformedInput,
	}
}

// IsKeyNotFound reports whether err is, or wraps, ErrKeyNotFound
func IsKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}
