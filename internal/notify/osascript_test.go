package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppleScript(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		payload  Payload
		expected string
	}{
		"title and body": {
			payload:  Payload{Title: "T", Body: "B"},
			expected: `display notification "B" with title "T"`,
		},
		"subtitle": {
			payload:  Payload{Title: "T", Body: "B", Subtitle: "S"},
			expected: `display notification "B" with title "T" subtitle "S"`,
		},
		"default sound is Glass": {
			payload:  Payload{Title: "T", Body: "B", Sound: Sound{Mode: SoundDefault}},
			expected: `display notification "B" with title "T" sound name "Glass"`,
		},
		"named sound": {
			payload:  Payload{Title: "T", Body: "B", Sound: Sound{Mode: SoundNamed, Name: "Ping"}},
			expected: `display notification "B" with title "T" sound name "Ping"`,
		},
		"silent has no sound clause": {
			payload:  Payload{Title: "T", Body: "B", Sound: Sound{Mode: SoundSilent}},
			expected: `display notification "B" with title "T"`,
		},
		"quotes are escaped": {
			payload:  Payload{Title: `say "hi"`, Body: `a\b`},
			expected: `display notification "a\\b" with title "say \"hi\""`,
		},
		"emoji sequences stay literal": {
			payload:  Payload{Title: "T", Body: "👨\u200d👩\u200d👧 done"},
			expected: "display notification \"👨\u200d👩\u200d👧 done\" with title \"T\"",
		},
		"non-breaking space stays literal": {
			payload:  Payload{Title: "T", Body: "done\u00a0now", Subtitle: "tab\there"},
			expected: "display notification \"done\u00a0now\" with title \"T\" subtitle \"tab\there\"",
		},
		"line breaks stay literal": {
			payload:  Payload{Title: "T", Body: "line1\nline2"},
			expected: "display notification \"line1\nline2\" with title \"T\"",
		},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, appleScript(tt.payload))
		})
	}
}

func TestQuoteAppleScript(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input    string
		expected string
	}{
		"plain":           {input: "hello", expected: `"hello"`},
		"empty":           {input: "", expected: `""`},
		"embedded quotes": {input: `a "b" c`, expected: `"a \"b\" c"`},
		"backslash":       {input: `C:\tmp`, expected: `"C:\\tmp"`},
		"escaped quote":   {input: `\"`, expected: `"\\\""`},
		"zwj emoji":       {input: "👨\u200d👩", expected: "\"👨\u200d👩\""},
		"nbsp":            {input: "a\u00a0b", expected: "\"a\u00a0b\""},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got := quoteAppleScript(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.NotContains(t, got, `\u`, "no Go-style escapes")
		})
	}
}

func TestOSAScriptSender_Send(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		out        string
		err        error
		wantErr    bool
		wantDenied bool
	}{
		"success": {},
		"not authorized": {
			out:        "execution error: Not authorized to send Apple events to System Events. (-1743)",
			err:        errors.New("exit status 1"),
			wantErr:    true,
			wantDenied: true,
		},
		"other failure": {
			out:     "syntax error",
			err:     errors.New("exit status 1"),
			wantErr: true,
		},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var gotArgs []string
			s := newOSAScriptSender(zerolog.Nop())
			s.run = func(_ context.Context, name string, args ...string) ([]byte, error) {
				gotArgs = append([]string{name}, args...)
				return []byte(tt.out), tt.err
			}

			d, err := s.Send(context.Background(), Payload{Title: "T", Body: "B", Image: "/tmp/x.png"})
			require.Len(t, gotArgs, 3)
			assert.Equal(t, "osascript", gotArgs[0])
			assert.Equal(t, "-e", gotArgs[1])

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Nil(t, d.Activated())
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantDenied, errors.Is(err, ErrPermissionDenied))
		})
	}
}
