package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// State is where the click-versus-timeout race stands.
type State int

const (
	// Armed: delivered, waiting for a click or the timeout.
	Armed State = iota
	// Activated: the user clicked before the timeout.
	Activated
	// Expired: the timeout (or the caller's context) won.
	Expired
)

func (s State) String() string {
	switch s {
	case Armed:
		return "armed"
	case Activated:
		return "activated"
	case Expired:
		return "expired"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// DefaultClickTimeout is how long a delivered notification waits for a click.
const DefaultClickTimeout = 500 * time.Millisecond

// ClickHandler waits for a delivered notification to be clicked.
type ClickHandler struct {
	timeout time.Duration
	opener  URLOpener
	log     zerolog.Logger
}

// NewClickHandler creates a handler. A non-positive timeout uses DefaultClickTimeout.
func NewClickHandler(timeout time.Duration, opener URLOpener, log zerolog.Logger) *ClickHandler {
	if timeout <= 0 {
		timeout = DefaultClickTimeout
	}
	return &ClickHandler{timeout: timeout, opener: opener, log: log}
}

// Await races d's activation against the timeout and returns the winner.
//
// Whichever side wins cancels the other before acting: the timer context is
// cancelled and the delivery closed, so a late click is never acted on. On
// activation the action URL, if any, is opened; failure to open is logged
// and otherwise ignored.
func (h *ClickHandler) Await(ctx context.Context, d Delivery, actionURL string) State {
	timer, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	state := Armed
	select {
	case <-d.Activated():
		state = Activated
	case <-timer.Done():
		state = Expired
	}

	cancel()
	if err := d.Close(); err != nil {
		h.log.Debug().Err(err).Msg("closing delivery")
	}
	h.log.Debug().Stringer("state", state).Dur("timeout", h.timeout).Msg("click race settled")

	if state == Activated && actionURL != "" && h.opener != nil {
		if err := h.opener.Open(ctx, actionURL); err != nil {
			h.log.Debug().Err(err).Str("url", actionURL).Msg("could not open action URL")
		}
	}

	return state
}
