package layout

import (
	"errors"
	"fmt"
)

// Layout configuration errors. These indicate a programming error in
// the consumer, not a transient condition; they are never retried.
var (
	// ErrNoMatchingBreakpoint indicates no breakpoint threshold fits
	// the available width.
	ErrNoMatchingBreakpoint = errors.New("no matching breakpoint")

	// ErrInvalidBreakpoints indicates breakpoint thresholds that are
	// not strictly increasing.
	ErrInvalidBreakpoints = errors.New("breakpoint thresholds must be strictly increasing")
)

// ConfigError wraps a configuration error with the operation that
// rejected it.
type ConfigError struct {
	Op     string // Operation name (e.g., "responsive")
	Detail string // What was wrong with the configuration
	Err    error  // Underlying sentinel
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Detail)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is implements errors.Is for ConfigError.
// Matches both the wrapper itself and the wrapped error.
func (e *ConfigError) Is(target error) bool {
	if e == nil {
		return false
	}
	if t, ok := target.(*ConfigError); ok {
		return e == t
	}
	return errors.Is(e.Err, target)
}
