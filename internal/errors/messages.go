package errors

import "fmt"

// Usage is the one-line synopsis shown with argument errors.
const Usage = "notifier [options] [message]"

// MissingMessage is returned when neither -m nor a positional message was given.
func MissingMessage() *CLIError {
	return NewArgumentErrorWithUsage(
		"message is required",
		Usage,
		`pass the message as the first argument: notifier "Build finished"`,
		`or use -m/--message: notifier -t "CI" -m "Build finished"`,
	)
}

// NotificationsDenied is returned when the notification service refuses to post.
func NotificationsDenied(cause error) *CLIError {
	e := NewPrerequisiteError(
		"notifications are not allowed for notifier",
		"enable notifications for this application in your system settings",
		"turn off Do Not Disturb if it is active",
	)
	e.Err = cause
	return e
}

// NotificationServiceUnavailable is returned when no backend can reach a notification service.
func NotificationServiceUnavailable(backend string, cause error) *CLIError {
	return WrapWithMessage(cause, Prerequisite,
		fmt.Sprintf("notification service unavailable (backend %s)", backend),
		"make sure a notification daemon is running in your desktop session",
		"or pick another backend with NOTIFIER_BACKEND (dbus, notify-send, gosx, osascript, beeep)",
	)
}

// SubmissionFailed is returned when the service rejected the notification.
func SubmissionFailed(cause error) *CLIError {
	return WrapWithMessage(cause, Runtime, "failed to deliver notification",
		"run again with NOTIFIER_DEBUG=true to see what the backend reported",
	)
}

// ConfigParseError is returned when a config file cannot be loaded.
func ConfigParseError(path string, cause error) *CLIError {
	return WrapWithMessage(cause, Configuration, "failed to load config "+path,
		"fix the syntax error reported above",
		"or move the file aside to fall back to defaults",
	)
}

// ConfigInvalid is returned when config values fail validation.
func ConfigInvalid(cause error) *CLIError {
	return WrapWithMessage(cause, Configuration, "invalid configuration",
		"check the values in your notifier config file and NOTIFIER_* environment variables",
	)
}
