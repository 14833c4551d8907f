package testutil

import (
	"context"
	"sync"

	"github.com/ariel-frischer/notifier/internal/notify"
)

// MockSender is a notify.Sender that records calls and returns configured
// results. Configure it with the With* methods.
type MockSender struct {
	mu sync.Mutex

	name          string
	permissionErr error
	sendErr       error
	delivery      *MockDelivery

	PermissionCalls int
	Sent            []notify.Payload
}

// NewMockSender creates a sender that grants permission and returns a
// delivery that never activates on its own.
func NewMockSender() *MockSender {
	return &MockSender{name: "mock", delivery: NewMockDelivery()}
}

// WithName sets the backend name reported by Name.
func (m *MockSender) WithName(name string) *MockSender {
	m.name = name
	return m
}

// WithPermissionError makes RequestPermission fail.
func (m *MockSender) WithPermissionError(err error) *MockSender {
	m.permissionErr = err
	return m
}

// WithSendError makes Send fail.
func (m *MockSender) WithSendError(err error) *MockSender {
	m.sendErr = err
	return m
}

// WithDelivery sets the delivery returned by Send.
func (m *MockSender) WithDelivery(d *MockDelivery) *MockSender {
	m.delivery = d
	return m
}

// Delivery returns the delivery handed out by Send.
func (m *MockSender) Delivery() *MockDelivery {
	return m.delivery
}

func (m *MockSender) Name() string { return m.name }

func (m *MockSender) RequestPermission(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PermissionCalls++
	return m.permissionErr
}

func (m *MockSender) Send(_ context.Context, p notify.Payload) (notify.Delivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sendErr != nil {
		return nil, m.sendErr
	}
	m.Sent = append(m.Sent, p)
	return m.delivery, nil
}

// SendCount returns how many payloads were sent.
func (m *MockSender) SendCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}

// LastPayload returns the most recent payload, or the zero Payload.
func (m *MockSender) LastPayload() notify.Payload {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Sent) == 0 {
		return notify.Payload{}
	}
	return m.Sent[len(m.Sent)-1]
}

// MockLinkSender is a MockSender for backends that open the action URL
// themselves.
type MockLinkSender struct {
	*MockSender
	links []string
}

// NewMockLinkSender creates a link-capable sender with MockSender defaults.
func NewMockLinkSender() *MockLinkSender {
	return &MockLinkSender{MockSender: NewMockSender()}
}

func (m *MockLinkSender) SendWithLink(ctx context.Context, p notify.Payload, link string) (notify.Delivery, error) {
	m.mu.Lock()
	m.links = append(m.links, link)
	m.mu.Unlock()
	return m.Send(ctx, p)
}

// Links returns the links passed to SendWithLink.
func (m *MockLinkSender) Links() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.links...)
}

// MockDelivery is a notify.Delivery whose activation is triggered by Fire.
type MockDelivery struct {
	ch         chan struct{}
	fireOnce   sync.Once
	mu         sync.Mutex
	closeCalls int
	closeErr   error
}

// NewMockDelivery creates an un-fired delivery.
func NewMockDelivery() *MockDelivery {
	return &MockDelivery{ch: make(chan struct{})}
}

// ActivatedDelivery returns a delivery that is already clicked.
func ActivatedDelivery() *MockDelivery {
	d := NewMockDelivery()
	d.Fire()
	return d
}

// WithCloseError makes Close fail.
func (d *MockDelivery) WithCloseError(err error) *MockDelivery {
	d.closeErr = err
	return d
}

// Fire simulates the user clicking the notification.
func (d *MockDelivery) Fire() {
	d.fireOnce.Do(func() { close(d.ch) })
}

func (d *MockDelivery) Activated() <-chan struct{} { return d.ch }

func (d *MockDelivery) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closeCalls++
	return d.closeErr
}

// CloseCalls returns how many times Close was called.
func (d *MockDelivery) CloseCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closeCalls
}

// MockOpener records opened URLs.
type MockOpener struct {
	mu     sync.Mutex
	err    error
	Opened []string
}

// NewMockOpener creates an opener that always succeeds.
func NewMockOpener() *MockOpener {
	return &MockOpener{}
}

// WithError makes Open fail after recording the URL.
func (o *MockOpener) WithError(err error) *MockOpener {
	o.err = err
	return o
}

func (o *MockOpener) Open(_ context.Context, target string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.Opened = append(o.Opened, target)
	return o.err
}

// OpenedURLs returns a copy of the URLs opened so far.
func (o *MockOpener) OpenedURLs() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.Opened...)
}

var (
	_ notify.Sender     = (*MockSender)(nil)
	_ notify.LinkSender = (*MockLinkSender)(nil)
	_ notify.Delivery   = (*MockDelivery)(nil)
	_ notify.URLOpener  = (*MockOpener)(nil)
)
