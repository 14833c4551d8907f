//go:build linux

package notify

import "github.com/rs/zerolog"

// newAutoSender prefers the session bus and falls back to notify-send when
// the bus or the notification daemon cannot be reached.
func newAutoSender(log zerolog.Logger) Sender {
	var secondary Sender
	if toolAvailable("notify-send") {
		secondary = newNotifySendSender(log)
	}
	sender := newFallbackSender(newDBusSender(log), secondary, log)
	log.Debug().Str("backend", sender.Name()).Msg("selected notification backend")
	return sender
}
