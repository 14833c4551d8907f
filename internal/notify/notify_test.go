package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSound(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input    string
		expected Sound
	}{
		"empty is unset":     {input: "", expected: Sound{Mode: SoundUnset}},
		"none suppresses":    {input: "none", expected: Sound{Mode: SoundSilent}},
		"default token":      {input: "default", expected: Sound{Mode: SoundDefault}},
		"named sound":        {input: "Glass", expected: Sound{Mode: SoundNamed, Name: "Glass"}},
		"tokens are exact":   {input: "None", expected: Sound{Mode: SoundNamed, Name: "None"}},
		"path is a name too": {input: "/usr/share/sounds/x.oga", expected: Sound{Mode: SoundNamed, Name: "/usr/share/sounds/x.oga"}},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ParseSound(tt.input))
		})
	}
}

func TestParseSound_SilentIsNotUnset(t *testing.T) {
	t.Parallel()
	assert.NotEqual(t, ParseSound("").Mode, ParseSound("none").Mode)
}

func TestSoundMode_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "unset", SoundUnset.String())
	assert.Equal(t, "silent", SoundSilent.String())
	assert.Equal(t, "default", SoundDefault.String())
	assert.Equal(t, "named", SoundNamed.String())
	assert.Equal(t, "SoundMode(9)", SoundMode(9).String())
}

func TestUrgency(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		urgency Urgency
		valid   bool
		level   byte
	}{
		"low":      {urgency: UrgencyLow, valid: true, level: 0},
		"normal":   {urgency: UrgencyNormal, valid: true, level: 1},
		"critical": {urgency: UrgencyCritical, valid: true, level: 2},
		"unknown":  {urgency: Urgency("urgent"), valid: false, level: 1},
		"empty":    {urgency: Urgency(""), valid: false, level: 1},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.valid, ValidUrgency(string(tt.urgency)))
			assert.Equal(t, tt.level, tt.urgency.Level())
		})
	}
}

func TestPayload_DisplayBody(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "body", Payload{Body: "body"}.DisplayBody())
	assert.Equal(t, "sub\nbody", Payload{Body: "body", Subtitle: "sub"}.DisplayBody())
}
