package cli

import (
	"errors"
	"fmt"
)

// Exit codes for the notifier CLI
const (
	// ExitSuccess covers delivery, help, version, click and timeout alike
	ExitSuccess = 0

	// ExitFailure indicates a usage, config, permission or delivery error
	ExitFailure = 1
)

// exitError is a custom error type that carries an exit code.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// NewExitError creates a new exit error with the given code.
func NewExitError(code int) error {
	return &exitError{code: code}
}

// ExitCode returns the exit code from an error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return ExitFailure
}
