package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCategory_String(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		category ErrorCategory
		expected string
	}{
		"argument":      {category: Argument, expected: "Argument Error"},
		"configuration": {category: Configuration, expected: "Configuration Error"},
		"prerequisite":  {category: Prerequisite, expected: "Prerequisite Error"},
		"runtime":       {category: Runtime, expected: "Runtime Error"},
		"unknown":       {category: ErrorCategory(42), expected: "Error"},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.category.String())
		})
	}
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err      *CLIError
		category ErrorCategory
		steps    int
	}{
		"config":     {err: NewConfigError("bad", "a"), category: Configuration, steps: 1},
		"prereq":     {err: NewPrerequisiteError("bad"), category: Prerequisite, steps: 0},
		"runtime":    {err: NewRuntimeError("bad", "a"), category: Runtime, steps: 1},
		"with usage": {err: NewArgumentErrorWithUsage("bad", "cmd <x>", "a"), category: Argument, steps: 1},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.category, tt.err.Category)
			assert.Equal(t, "bad", tt.err.Error())
			assert.Len(t, tt.err.Remediation, tt.steps)
		})
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil error returns nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, Wrap(nil, Runtime))
	})

	t.Run("recategorizes a CLIError and appends remediation", func(t *testing.T) {
		t.Parallel()
		orig := NewArgumentErrorWithUsage("orig", Usage, "first")
		got := Wrap(orig, Runtime, "second")
		assert.Equal(t, Runtime, got.Category)
		assert.Equal(t, []string{"first", "second"}, got.Remediation)
		assert.Equal(t, []string{"first"}, orig.Remediation, "original must not be mutated")
	})

	t.Run("wraps a plain error and keeps it in the chain", func(t *testing.T) {
		t.Parallel()
		cause := stderrors.New("boom")
		got := Wrap(cause, Prerequisite)
		assert.Equal(t, "boom", got.Message)
		assert.ErrorIs(t, got, cause)
	})
}

func TestWrapWithMessage(t *testing.T) {
	t.Parallel()

	assert.Nil(t, WrapWithMessage(nil, Runtime, "outer"))

	cause := stderrors.New("inner")
	got := WrapWithMessage(cause, Runtime, "outer")
	assert.Equal(t, "outer: inner", got.Message)
	assert.ErrorIs(t, got, cause)
}

func TestAsCLIError(t *testing.T) {
	t.Parallel()

	orig := NewRuntimeError("x")
	wrapped := fmt.Errorf("context: %w", orig)

	require.NotNil(t, AsCLIError(wrapped))
	assert.Same(t, orig, AsCLIError(wrapped))

	assert.Nil(t, AsCLIError(stderrors.New("plain")))
}
