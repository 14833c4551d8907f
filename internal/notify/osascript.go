package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// DefaultMacOSSound is the sound used for --sound default on macOS
	DefaultMacOSSound = "Glass"
)

// osascriptSender implements Sender for macOS using osascript.
// Clicks on an AppleScript notification are not reported back to us.
type osascriptSender struct {
	log zerolog.Logger
	run commandRunner
}

func newOSAScriptSender(log zerolog.Logger) *osascriptSender {
	return &osascriptSender{log: log, run: execRunner}
}

func (s *osascriptSender) Name() string { return string(BackendOSAScript) }

func (s *osascriptSender) RequestPermission(_ context.Context) error {
	if !toolAvailable("osascript") {
		return fmt.Errorf("%w: osascript not found in PATH", ErrUnavailable)
	}
	return nil
}

// Send sends a visual notification using osascript
func (s *osascriptSender) Send(ctx context.Context, p Payload) (Delivery, error) {
	if p.Image != "" {
		s.log.Debug().Str("image", p.Image).Msg("osascript cannot attach images, dropping")
	}

	out, err := s.run(ctx, "osascript", "-e", appleScript(p))
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if strings.Contains(msg, "-1743") || strings.Contains(msg, "Not authorized") {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, msg)
		}
		return nil, fmt.Errorf("osascript: %w: %s", err, msg)
	}
	return inertDelivery{}, nil
}

// appleScript builds the display notification command for p.
func appleScript(p Payload) string {
	var b strings.Builder
	b.WriteString("display notification " + quoteAppleScript(p.Body))
	b.WriteString(" with title " + quoteAppleScript(p.Title))
	if p.Subtitle != "" {
		b.WriteString(" subtitle " + quoteAppleScript(p.Subtitle))
	}
	switch p.Sound.Mode {
	case SoundDefault:
		b.WriteString(" sound name " + quoteAppleScript(DefaultMacOSSound))
	case SoundNamed:
		b.WriteString(" sound name " + quoteAppleScript(p.Sound.Name))
	}
	return b.String()
}

// appleScriptEscaper escapes the only two characters that end or escape an
// AppleScript string literal. Every other rune, line breaks included, is
// valid inside the literal as is.
var appleScriptEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quoteAppleScript returns s as a double-quoted AppleScript string literal.
func quoteAppleScript(s string) string {
	return `"` + appleScriptEscaper.Replace(s) + `"`
}
