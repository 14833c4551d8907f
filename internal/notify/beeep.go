package notify

import (
	"context"
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"
)

// beeepSender implements Sender with gen2brain/beeep. beeep plays sound only
// through Alert, so any requested sound selects Alert over Notify.
type beeepSender struct {
	log    zerolog.Logger
	notify func(title, message, icon string) error
	alert  func(title, message, icon string) error
}

func newBeeepSender(log zerolog.Logger) *beeepSender {
	return &beeepSender{
		log:    log,
		notify: func(title, message, icon string) error { return beeep.Notify(title, message, icon) },
		alert:  func(title, message, icon string) error { return beeep.Alert(title, message, icon) },
	}
}

func (s *beeepSender) Name() string { return string(BackendBeeep) }

func (s *beeepSender) RequestPermission(_ context.Context) error { return nil }

func (s *beeepSender) Send(_ context.Context, p Payload) (Delivery, error) {
	if p.AppName != "" {
		beeep.AppName = p.AppName
	}

	send := s.notify
	switch p.Sound.Mode {
	case SoundDefault, SoundNamed:
		send = s.alert
	}

	if err := send(p.Title, p.DisplayBody(), p.Image); err != nil {
		return nil, fmt.Errorf("beeep: %w", err)
	}
	return inertDelivery{}, nil
}
