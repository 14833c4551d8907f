package notify

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"

	"github.com/rs/zerolog"
)

var (
	// ErrPermissionDenied means the notification service refuses to show
	// notifications for us (disabled, or Do Not Disturb is inhibiting them).
	ErrPermissionDenied = errors.New("notification permission denied")

	// ErrUnavailable means no notification service could be reached.
	ErrUnavailable = errors.New("notification service unavailable")
)

// Backend names a Sender implementation.
type Backend string

const (
	BackendAuto       Backend = "auto"
	BackendDBus       Backend = "dbus"
	BackendNotifySend Backend = "notify-send"
	BackendGosx       Backend = "gosx"
	BackendOSAScript  Backend = "osascript"
	BackendBeeep      Backend = "beeep"
)

// Sender defines the interface for notification backends.
type Sender interface {
	// Name identifies the backend in logs and errors.
	Name() string

	// RequestPermission checks that notifications can be shown. It returns
	// an error wrapping ErrPermissionDenied or ErrUnavailable when not.
	RequestPermission(ctx context.Context) error

	// Send submits the payload for immediate delivery.
	Send(ctx context.Context, p Payload) (Delivery, error)
}

// LinkSender is implemented by backends that open the action URL themselves
// when the notification is clicked, without reporting the click back.
type LinkSender interface {
	SendWithLink(ctx context.Context, p Payload, link string) (Delivery, error)
}

// Delivery is the handle for one submitted notification.
type Delivery interface {
	// Activated is closed when the user clicks the notification. Backends
	// that cannot observe clicks return a nil channel, which never fires.
	Activated() <-chan struct{}

	// Close stops watching for activation and releases backend resources.
	// It does not withdraw the notification.
	Close() error
}

// NewSender creates the Sender for the named backend.
func NewSender(backend string, log zerolog.Logger) (Sender, error) {
	switch Backend(backend) {
	case BackendAuto, "":
		return newAutoSender(log), nil
	case BackendDBus:
		return newDBusSender(log), nil
	case BackendNotifySend:
		return newNotifySendSender(log), nil
	case BackendGosx:
		return newGosxSender(log), nil
	case BackendOSAScript:
		return newOSAScriptSender(log), nil
	case BackendBeeep:
		return newBeeepSender(log), nil
	default:
		return nil, fmt.Errorf("unknown notification backend %q", backend)
	}
}

// toolAvailable checks if a command-line tool is available in PATH
func toolAvailable(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// fallbackSender uses primary unless it reports ErrUnavailable, in which
// case secondary takes over for good. A permission denial from primary is
// final.
type fallbackSender struct {
	primary   Sender
	secondary Sender
	active    Sender
	log       zerolog.Logger
}

func newFallbackSender(primary, secondary Sender, log zerolog.Logger) *fallbackSender {
	return &fallbackSender{primary: primary, secondary: secondary, active: primary, log: log}
}

func (s *fallbackSender) Name() string {
	return s.active.Name()
}

func (s *fallbackSender) RequestPermission(ctx context.Context) error {
	err := s.primary.RequestPermission(ctx)
	if !s.shouldFallBack(err) {
		return err
	}
	return s.fallBack(ctx, err)
}

func (s *fallbackSender) Send(ctx context.Context, p Payload) (Delivery, error) {
	return s.SendWithLink(ctx, p, "")
}

// SendWithLink forwards the link to the active backend when it can open it
// itself. Backends that cannot get a plain Send.
func (s *fallbackSender) SendWithLink(ctx context.Context, p Payload, link string) (Delivery, error) {
	d, err := sendTo(ctx, s.active, p, link)
	if !s.shouldFallBack(err) {
		return d, err
	}
	if err := s.fallBack(ctx, err); err != nil {
		return nil, err
	}
	return sendTo(ctx, s.active, p, link)
}

func (s *fallbackSender) shouldFallBack(err error) bool {
	return err != nil && errors.Is(err, ErrUnavailable) && s.secondary != nil && s.active == s.primary
}

func (s *fallbackSender) fallBack(ctx context.Context, cause error) error {
	s.log.Debug().Err(cause).
		Str("from", s.primary.Name()).
		Str("to", s.secondary.Name()).
		Msg("primary backend unavailable, falling back")
	s.active = s.secondary
	return s.secondary.RequestPermission(ctx)
}

// sendTo uses SendWithLink when sender supports it and a link is set.
func sendTo(ctx context.Context, sender Sender, p Payload, link string) (Delivery, error) {
	if ls, ok := sender.(LinkSender); ok && link != "" {
		return ls.SendWithLink(ctx, p, link)
	}
	return sender.Send(ctx, p)
}

// activation closes a channel exactly once.
type activation struct {
	ch   chan struct{}
	once sync.Once
}

func newActivation() *activation {
	return &activation{ch: make(chan struct{})}
}

func (a *activation) fire() {
	a.once.Do(func() { close(a.ch) })
}

// inertDelivery is returned by backends that cannot observe clicks.
type inertDelivery struct{}

func (inertDelivery) Activated() <-chan struct{} { return nil }
func (inertDelivery) Close() error               { return nil }
