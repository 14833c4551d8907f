package notify

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// notifySendSender implements Sender using the libnotify notify-send tool.
type notifySendSender struct {
	log   zerolog.Logger
	run   commandRunner
	start commandStarter

	detectOnce sync.Once
	actions   bool
}

func newNotifySendSender(log zerolog.Logger) *notifySendSender {
	return &notifySendSender{log: log, run: execRunner, start: execStarter}
}

func (s *notifySendSender) Name() string { return string(BackendNotifySend) }

// RequestPermission only checks that notify-send exists and whether it
// supports --action (libnotify 0.7.9+). notify-send has no permission model.
func (s *notifySendSender) RequestPermission(ctx context.Context) error {
	if !toolAvailable("notify-send") {
		return fmt.Errorf("%w: notify-send not found in PATH (install libnotify)", ErrUnavailable)
	}
	s.detectActions(ctx)
	return nil
}

func (s *notifySendSender) detectActions(ctx context.Context) {
	s.detectOnce.Do(func() {
		out, err := s.run(ctx, "notify-send", "--help")
		s.actions = err == nil && strings.Contains(string(out), "--action")
		s.log.Debug().Bool("actions", s.actions).Msg("notify-send actions detected")
	})
}

// Send runs notify-send. With action support the process stays alive and
// prints the action key when the notification is clicked.
func (s *notifySendSender) Send(ctx context.Context, p Payload) (Delivery, error) {
	s.detectActions(ctx)
	args := notifySendArgs(p, s.actions)

	if !s.actions {
		if out, err := s.run(ctx, "notify-send", args...); err != nil {
			return nil, fmt.Errorf("notify-send: %w: %s", err, strings.TrimSpace(string(out)))
		}
		return inertDelivery{}, nil
	}

	proc, err := s.start("notify-send", args...)
	if err != nil {
		return nil, fmt.Errorf("notify-send: %w", err)
	}
	d := &processDelivery{proc: proc, act: newActivation()}
	go d.watch()
	return d, nil
}

// notifySendArgs builds the argument vector for p.
func notifySendArgs(p Payload, withAction bool) []string {
	urgency := p.Urgency
	if !ValidUrgency(string(urgency)) {
		urgency = UrgencyNormal
	}

	args := []string{
		"--app-name=" + p.AppName,
		"-u", string(urgency),
	}

	if p.Image != "" {
		args = append(args, "-i", p.Image)
	}

	switch p.Sound.Mode {
	case SoundSilent:
		args = append(args, "-h", "boolean:suppress-sound:true")
	case SoundDefault:
		args = append(args, "-h", "string:sound-name:"+defaultSoundName)
	case SoundNamed:
		args = append(args, "-h", "string:sound-name:"+p.Sound.Name)
	}

	if withAction {
		args = append(args, "-A", defaultActionKey+"=Open")
	}

	// "--" keeps a title or body starting with "-" from being read as a flag.
	return append(args, "--", p.Title, p.DisplayBody())
}

// processDelivery watches a notify-send --action process for the action key.
type processDelivery struct {
	proc process
	act  *activation
	once sync.Once
}

func (d *processDelivery) Activated() <-chan struct{} { return d.act.ch }

func (d *processDelivery) Close() error {
	var err error
	d.once.Do(func() {
		// Killing notify-send leaves the notification on screen.
		err = d.proc.Kill()
		_ = d.proc.Wait()
	})
	return err
}

func (d *processDelivery) watch() {
	scanner := bufio.NewScanner(d.proc.Stdout())
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == defaultActionKey {
			d.act.fire()
			return
		}
	}
}
