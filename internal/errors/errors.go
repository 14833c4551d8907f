// Package errors provides structured CLI errors with a category, an optional
// usage line, and remediation steps that are rendered for the user.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies a CLIError for display.
type ErrorCategory int

const (
	// Argument errors come from a bad command line.
	Argument ErrorCategory = iota
	// Configuration errors come from config files or environment overrides.
	Configuration
	// Prerequisite errors mean the environment is missing something
	// (a notification service, permission to post).
	Prerequisite
	// Runtime errors happen while doing the actual work.
	Runtime
)

// String returns the display heading for the category.
func (c ErrorCategory) String() string {
	switch c {
	case Argument:
		return "Argument Error"
	case Configuration:
		return "Configuration Error"
	case Prerequisite:
		return "Prerequisite Error"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// CLIError is an error meant to be shown to the user.
type CLIError struct {
	Category    ErrorCategory
	Message     string
	Usage       string
	Remediation []string
	Err         error
}

func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewArgumentErrorWithUsage creates an Argument error that also prints a usage line.
func NewArgumentErrorWithUsage(message, usage string, remediation ...string) *CLIError {
	return &CLIError{Category: Argument, Message: message, Usage: usage, Remediation: remediation}
}

// NewConfigError creates a Configuration error.
func NewConfigError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Configuration, Message: message, Remediation: remediation}
}

// NewPrerequisiteError creates a Prerequisite error.
func NewPrerequisiteError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Prerequisite, Message: message, Remediation: remediation}
}

// NewRuntimeError creates a Runtime error.
func NewRuntimeError(message string, remediation ...string) *CLIError {
	return &CLIError{Category: Runtime, Message: message, Remediation: remediation}
}

// Wrap re-categorizes err, appending remediation steps.
// A nil err yields nil.
func Wrap(err error, category ErrorCategory, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	if ce := AsCLIError(err); ce != nil {
		return &CLIError{
			Category:    category,
			Message:     ce.Message,
			Usage:       ce.Usage,
			Remediation: append(append([]string(nil), ce.Remediation...), remediation...),
			Err:         ce.Err,
		}
	}
	return &CLIError{Category: category, Message: err.Error(), Remediation: remediation, Err: err}
}

// WrapWithMessage wraps err under a new leading message ("outer: inner").
func WrapWithMessage(err error, category ErrorCategory, message string, remediation ...string) *CLIError {
	if err == nil {
		return nil
	}
	return &CLIError{
		Category:    category,
		Message:     fmt.Sprintf("%s: %s", message, err.Error()),
		Remediation: remediation,
		Err:         err,
	}
}

// AsCLIError returns the CLIError in err's chain, or nil.
func AsCLIError(err error) *CLIError {
	var ce *CLIError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}
