package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessages(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("cause")

	tests := map[string]struct {
		err      *CLIError
		category ErrorCategory
		contains string
		wraps    bool
	}{
		"missing message": {
			err:      MissingMessage(),
			category: Argument,
			contains: "message is required",
		},
		"notifications denied": {
			err:      NotificationsDenied(cause),
			category: Prerequisite,
			contains: "not allowed",
			wraps:    true,
		},
		"service unavailable": {
			err:      NotificationServiceUnavailable("dbus", cause),
			category: Prerequisite,
			contains: "backend dbus",
			wraps:    true,
		},
		"submission failed": {
			err:      SubmissionFailed(cause),
			category: Runtime,
			contains: "cause",
			wraps:    true,
		},
		"config parse": {
			err:      ConfigParseError("/etc/notifier.yml", cause),
			category: Configuration,
			contains: "/etc/notifier.yml",
			wraps:    true,
		},
		"config invalid": {
			err:      ConfigInvalid(cause),
			category: Configuration,
			contains: "invalid configuration",
			wraps:    true,
		},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.category, tt.err.Category)
			assert.Contains(t, tt.err.Message, tt.contains)
			assert.NotEmpty(t, tt.err.Remediation, "every user-facing error carries a fix")
			if tt.wraps {
				assert.ErrorIs(t, tt.err, cause)
			}
		})
	}
}

func TestMissingMessage_HasUsage(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Usage, MissingMessage().Usage)
}
