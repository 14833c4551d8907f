package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeeepSender_Send(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		sound     Sound
		wantAlert bool
	}{
		"unset uses notify":  {sound: Sound{Mode: SoundUnset}},
		"silent uses notify": {sound: Sound{Mode: SoundSilent}},
		"default uses alert": {sound: Sound{Mode: SoundDefault}, wantAlert: true},
		"named uses alert":   {sound: Sound{Mode: SoundNamed, Name: "bell"}, wantAlert: true},
	}

	for name, tt := range tests {
		name, tt := name, tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var notified, alerted []string
			s := newBeeepSender(zerolog.Nop())
			s.notify = func(title, message, icon string) error {
				notified = []string{title, message, icon}
				return nil
			}
			s.alert = func(title, message, icon string) error {
				alerted = []string{title, message, icon}
				return nil
			}

			p := Payload{Title: "T", Body: "B", Subtitle: "S", Image: "/tmp/i.png", Sound: tt.sound}
			d, err := s.Send(context.Background(), p)
			require.NoError(t, err)
			assert.Nil(t, d.Activated())

			want := []string{"T", "S\nB", "/tmp/i.png"}
			if tt.wantAlert {
				assert.Equal(t, want, alerted)
				assert.Nil(t, notified)
			} else {
				assert.Equal(t, want, notified)
				assert.Nil(t, alerted)
			}
		})
	}
}

func TestBeeepSender_SendError(t *testing.T) {
	t.Parallel()

	s := newBeeepSender(zerolog.Nop())
	s.notify = func(string, string, string) error { return errors.New("no dbus") }

	_, err := s.Send(context.Background(), Payload{Title: "T", Body: "B"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "beeep: no dbus")
	assert.NoError(t, s.RequestPermission(context.Background()))
}
