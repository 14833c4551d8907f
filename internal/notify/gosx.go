package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// gosxNote is what the gosx-notifier backend hands to terminal-notifier.
type gosxNote struct {
	Title        string
	Subtitle     string
	Message      string
	Sound        string
	DefaultSound bool
	ContentImage string
	Link         string
}

// gosxSender implements Sender and LinkSender with deckarep/gosx-notifier.
// terminal-notifier attaches the image and opens the link on click itself;
// the click is not reported back.
type gosxSender struct {
	log  zerolog.Logger
	push func(gosxNote) error
}

func newGosxSender(log zerolog.Logger) *gosxSender {
	return &gosxSender{log: log, push: gosxPush}
}

func (s *gosxSender) Name() string { return string(BackendGosx) }

func (s *gosxSender) RequestPermission(_ context.Context) error {
	if s.push == nil {
		return fmt.Errorf("%w: gosx-notifier is only available on macOS", ErrUnavailable)
	}
	return nil
}

func (s *gosxSender) Send(ctx context.Context, p Payload) (Delivery, error) {
	return s.SendWithLink(ctx, p, "")
}

// SendWithLink posts p; clicking it opens link when set. A push failure
// means terminal-notifier could not run, so it wraps ErrUnavailable.
func (s *gosxSender) SendWithLink(_ context.Context, p Payload, link string) (Delivery, error) {
	if s.push == nil {
		return nil, fmt.Errorf("%w: gosx-notifier is only available on macOS", ErrUnavailable)
	}

	note := newGosxNote(p, link)
	if err := s.push(note); err != nil {
		return nil, fmt.Errorf("%w: terminal-notifier: %v", ErrUnavailable, err)
	}
	s.log.Debug().Bool("image", note.ContentImage != "").Bool("link", link != "").Msg("notification pushed via terminal-notifier")
	return inertDelivery{}, nil
}

func newGosxNote(p Payload, link string) gosxNote {
	note := gosxNote{
		Title:        p.Title,
		Subtitle:     p.Subtitle,
		Message:      p.Body,
		ContentImage: p.Image,
		Link:         link,
	}
	switch p.Sound.Mode {
	case SoundDefault:
		note.DefaultSound = true
	case SoundNamed:
		note.Sound = p.Sound.Name
	}
	return note
}
