package notify

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/godbus/dbus/v5"
	"github.com/rs/zerolog"
)

const (
	dbusDest  = "org.freedesktop.Notifications"
	dbusPath  = dbus.ObjectPath("/org/freedesktop/Notifications")
	dbusIface = "org.freedesktop.Notifications"

	// defaultActionKey is invoked when the notification body is clicked.
	defaultActionKey = "default"

	// defaultSoundName is the freedesktop sound-naming theme entry for a
	// generic incoming message.
	defaultSoundName = "message-new-instant"
)

// busConn is the part of *dbus.Conn the sender uses.
type busConn interface {
	Object(dest string, path dbus.ObjectPath) dbus.BusObject
	AddMatchSignalContext(ctx context.Context, options ...dbus.MatchOption) error
	Signal(ch chan<- *dbus.Signal)
	RemoveSignal(ch chan<- *dbus.Signal)
	Close() error
}

// dbusSender implements Sender over org.freedesktop.Notifications.
type dbusSender struct {
	log     zerolog.Logger
	connect func() (busConn, error)

	conn busConn
	caps map[string]bool
}

func newDBusSender(log zerolog.Logger) *dbusSender {
	return &dbusSender{log: log, connect: connectSessionBus}
}

func connectSessionBus() (busConn, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func (s *dbusSender) Name() string { return string(BackendDBus) }

func (s *dbusSender) dial() (busConn, error) {
	if s.conn != nil {
		return s.conn, nil
	}
	conn, err := s.connect()
	if err != nil {
		return nil, fmt.Errorf("%w: connecting to session bus: %v", ErrUnavailable, err)
	}
	s.conn = conn
	return conn, nil
}

// RequestPermission queries the daemon with GetCapabilities and honours the
// Inhibited property (Do Not Disturb) where the daemon exposes it.
func (s *dbusSender) RequestPermission(ctx context.Context) error {
	conn, err := s.dial()
	if err != nil {
		return err
	}

	obj := conn.Object(dbusDest, dbusPath)

	var caps []string
	if err := obj.CallWithContext(ctx, dbusIface+".GetCapabilities", 0).Store(&caps); err != nil {
		return fmt.Errorf("%w: %s did not answer: %v", ErrUnavailable, dbusDest, err)
	}
	s.caps = capabilitySet(caps)
	s.log.Debug().Strs("capabilities", caps).Msg("notification daemon capabilities")

	if v, err := obj.GetProperty(dbusIface + ".Inhibited"); err == nil {
		if inhibited, ok := v.Value().(bool); ok && inhibited {
			return fmt.Errorf("%w: notifications are inhibited", ErrPermissionDenied)
		}
	}

	return nil
}

// Send calls Notify and subscribes to ActionInvoked for the returned id.
func (s *dbusSender) Send(ctx context.Context, p Payload) (Delivery, error) {
	conn, err := s.dial()
	if err != nil {
		return nil, err
	}

	// Subscribe before Notify so a fast click cannot slip past us.
	if err := conn.AddMatchSignalContext(ctx,
		dbus.WithMatchObjectPath(dbusPath),
		dbus.WithMatchInterface(dbusIface),
		dbus.WithMatchMember("ActionInvoked"),
	); err != nil {
		return nil, fmt.Errorf("subscribing to ActionInvoked: %w", err)
	}
	signals := make(chan *dbus.Signal, 16)
	conn.Signal(signals)

	var id uint32
	call := conn.Object(dbusDest, dbusPath).CallWithContext(ctx, dbusIface+".Notify", 0,
		p.AppName,       // app_name
		uint32(0),       // replaces_id
		"",              // app_icon
		p.Title,         // summary
		p.DisplayBody(), // body
		s.actions(),     // actions
		buildHints(p),   // hints
		int32(-1),       // expire_timeout (-1 = server default)
	)
	if err := call.Store(&id); err != nil {
		conn.RemoveSignal(signals)
		_ = conn.Close()
		s.conn = nil
		return nil, err
	}
	s.log.Debug().Uint32("id", id).Msg("notification submitted over dbus")

	d := newSignalDelivery(id, signals, func() error {
		conn.RemoveSignal(signals)
		return conn.Close()
	})
	go d.watch()
	return d, nil
}

// actions registers the default action so body clicks are reported, unless
// the daemon said it does not support actions.
func (s *dbusSender) actions() []string {
	if s.caps != nil && !s.caps["actions"] {
		return []string{}
	}
	return []string{defaultActionKey, "Open"}
}

func capabilitySet(caps []string) map[string]bool {
	set := make(map[string]bool, len(caps))
	for _, c := range caps {
		set[c] = true
	}
	return set
}

// buildHints maps payload fields onto freedesktop hints.
func buildHints(p Payload) map[string]dbus.Variant {
	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(p.Urgency.Level()),
	}

	switch p.Sound.Mode {
	case SoundSilent:
		hints["suppress-sound"] = dbus.MakeVariant(true)
	case SoundDefault:
		hints["sound-name"] = dbus.MakeVariant(defaultSoundName)
	case SoundNamed:
		if strings.ContainsRune(p.Sound.Name, '/') {
			hints["sound-file"] = dbus.MakeVariant(p.Sound.Name)
		} else {
			hints["sound-name"] = dbus.MakeVariant(p.Sound.Name)
		}
	}

	if p.Image != "" {
		u := url.URL{Scheme: "file", Path: p.Image}
		hints["image-path"] = dbus.MakeVariant(u.String())
	}

	return hints
}

// signalDelivery watches ActionInvoked signals for one notification id.
type signalDelivery struct {
	id      uint32
	signals <-chan *dbus.Signal
	act     *activation
	done    chan struct{}
	release func() error

	closeOnce sync.Once
	closeErr  error
}

func newSignalDelivery(id uint32, signals <-chan *dbus.Signal, release func() error) *signalDelivery {
	return &signalDelivery{
		id:      id,
		signals: signals,
		act:     newActivation(),
		done:    make(chan struct{}),
		release: release,
	}
}

func (d *signalDelivery) Activated() <-chan struct{} { return d.act.ch }

func (d *signalDelivery) Close() error {
	d.closeOnce.Do(func() {
		close(d.done)
		if d.release != nil {
			d.closeErr = d.release()
		}
	})
	return d.closeErr
}

func (d *signalDelivery) watch() {
	for {
		select {
		case <-d.done:
			return
		case sig, ok := <-d.signals:
			if !ok {
				return
			}
			if isActivation(sig, d.id) {
				d.act.fire()
			}
		}
	}
}

// isActivation reports whether sig is the default action being invoked on
// notification id.
func isActivation(sig *dbus.Signal, id uint32) bool {
	if sig == nil || sig.Name != dbusIface+".ActionInvoked" || len(sig.Body) < 2 {
		return false
	}
	got, ok := sig.Body[0].(uint32)
	if !ok || got != id {
		return false
	}
	key, ok := sig.Body[1].(string)
	return ok && key == defaultActionKey
}
