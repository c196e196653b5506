package main

import "errors"

// =============================================================================
// Exit Codes
// =============================================================================

const (
	ExitSuccess = 0
	ExitFailure = 1
)

// errMissingAppID is returned when the required app id argument is absent.
var errMissingAppID = errors.New("missing required argument: app_id")

// RunError is a fatal failure with the stage it happened in.
type RunError struct {
	Op       string
	Err      error
	ExitCode int
}

func (e *RunError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *RunError) Unwrap() error {
	return e.Err
}
