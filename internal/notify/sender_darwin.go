//go:build darwin

package notify

import "github.com/rs/zerolog"

// newAutoSender prefers gosx-notifier, which can attach images and open the
// action URL on click. osascript (or beeep when osascript is missing) takes
// over when terminal-notifier cannot run.
func newAutoSender(log zerolog.Logger) Sender {
	return newDarwinAutoSender(log, toolAvailable("osascript"))
}

func newDarwinAutoSender(log zerolog.Logger, haveOSAScript bool) *fallbackSender {
	var secondary Sender = newBeeepSender(log)
	if haveOSAScript {
		secondary = newOSAScriptSender(log)
	}
	sender := newFallbackSender(newGosxSender(log), secondary, log)
	log.Debug().
		Str("backend", sender.Name()).
		Str("fallback", secondary.Name()).
		Msg("selected notification backend")
	return sender
}
