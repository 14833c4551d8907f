package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err      error
		expected int
	}{
		"nil":         {err: nil, expected: ExitSuccess},
		"exit error":  {err: NewExitError(ExitFailure), expected: ExitFailure},
		"custom code": {err: NewExitError(7), expected: 7},
		"wrapped":     {err: fmt.Errorf("run: %w", NewExitError(3)), expected: 3},
		"plain error": {err: errors.New("boom"), expected: ExitFailure},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}

func TestExitError_Message(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "exit code 1", NewExitError(1).Error())
}
