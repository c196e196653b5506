// Package output renders generated labels and writes them to their destination.
package output

import (
	"errors"
	"fmt"
)

// =============================================================================
// Error Types
// =============================================================================

var (
	// ErrWriteFailed is returned when the destination cannot be written.
	ErrWriteFailed = errors.New("write failed")

	// ErrUnknownFormat is returned for an unsupported output format.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrInvalidCompose is returned when the compose destination cannot be parsed.
	ErrInvalidCompose = errors.New("invalid compose file")

	// ErrServiceNotFound is returned when the compose file lacks the target service.
	ErrServiceNotFound = errors.New("compose service not found")
)

// WriteError wraps errors with the destination that failed.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing '%s': %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
