//go:build !linux && !darwin

package notify

import "github.com/rs/zerolog"

func newAutoSender(log zerolog.Logger) Sender {
	log.Debug().Str("backend", string(BackendBeeep)).Msg("selected notification backend")
	return newBeeepSender(log)
}
