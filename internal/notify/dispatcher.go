package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Dispatcher submits exactly one notification and waits for its click.
type Dispatcher struct {
	sender Sender
	clicks *ClickHandler
	log    zerolog.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(sender Sender, clicks *ClickHandler, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{sender: sender, clicks: clicks, log: log}
}

// Dispatch asks for permission, sends p, and blocks until the click race
// settles. Nothing is sent when permission fails. Backends that implement
// LinkSender receive actionURL with the payload. Errors wrap
// ErrPermissionDenied or ErrUnavailable where the backend reported those.
func (d *Dispatcher) Dispatch(ctx context.Context, p Payload, actionURL string) (State, error) {
	if err := d.sender.RequestPermission(ctx); err != nil {
		return Armed, err
	}

	delivery, err := sendTo(ctx, d.sender, p, actionURL)
	if err != nil {
		return Armed, fmt.Errorf("%s: %w", d.sender.Name(), err)
	}

	d.log.Debug().
		Str("backend", d.sender.Name()).
		Str("title", p.Title).
		Stringer("sound", p.Sound.Mode).
		Bool("image", p.Image != "").
		Msg("notification delivered")

	return d.clicks.Await(ctx, delivery, actionURL), nil
}
