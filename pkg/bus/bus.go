// Package bus provides the in-process publish/subscribe dispatcher that keeps
// displays in sync with data mutations. The dispatcher is constructed by the
// application root and handed to every component that needs it; there is no
// package-level instance.
package bus

import (
	"fmt"
	"os"
	"sync"
)

// Event names every component agrees on.
const (
	ProfileSelectionChanged = "profile-selection-changed"
	ProfilesListChanged     = "profiles-list-changed"
	CategoriesListChanged   = "categories-list-changed"
	MessageCopied           = "message-copied"
	SettingsPanelToggle     = "settings-panel-toggle"
	AppReady                = "app-ready"
)

// maxDepth caps re-entrant publish chains. Handlers may publish from within a
// publish, but an unbounded cycle indicates a wiring bug.
const maxDepth = 32

// Handler receives the payload published for an event.
type Handler func(payload any)

// Subscription identifies a registered handler so it can be removed.
type Subscription struct {
	event string
	id    uint64
}

// ErrorReporter receives failures recovered from subscriber handlers.
type ErrorReporter func(event string, err error)

// Dispatcher routes published events to subscribed handlers synchronously, in
// subscription order, on the publisher's goroutine.
type Dispatcher struct {
	mu       sync.Mutex
	nextID   uint64
	handlers map[string][]registration
	depth    int
	report   ErrorReporter
}

type registration struct {
	id uint64
	fn Handler
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithErrorReporter overrides where recovered handler failures are sent.
func WithErrorReporter(r ErrorReporter) Option {
	return func(d *Dispatcher) { d.report = r }
}

// New constructs an empty dispatcher.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[string][]registration),
		report: func(event string, err error) {
			fmt.Fprintf(os.Stderr, "bus: handler for %q failed: %v\n", event, err)
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Subscribe registers a handler for the named event and returns a subscription
// usable with Unsubscribe. Handlers run in subscription order.
func (d *Dispatcher) Subscribe(event string, fn Handler) Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	d.handlers[event] = append(d.handlers[event], registration{id: d.nextID, fn: fn})
	return Subscription{event: event, id: d.nextID}
}

// Unsubscribe removes a previously registered handler. Unknown subscriptions
// are ignored.
func (d *Dispatcher) Unsubscribe(sub Subscription) {
	d.mu.Lock()
	defer d.mu.Unlock()
	regs := d.handlers[sub.event]
	for i, reg := range regs {
		if reg.id == sub.id {
			d.handlers[sub.event] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Publish invokes every handler subscribed to event with payload before
// returning. A panicking handler is recovered and reported without stopping
// the remaining handlers. Handlers may publish re-entrantly up to a bounded
// depth; past it the publish is dropped and reported.
func (d *Dispatcher) Publish(event string, payload any) {
	d.mu.Lock()
	if d.depth >= maxDepth {
		report := d.report
		d.mu.Unlock()
		report(event, fmt.Errorf("publish depth exceeded %d, dropping", maxDepth))
		return
	}
	d.depth++
	regs := make([]registration, len(d.handlers[event]))
	copy(regs, d.handlers[event])
	report := d.report
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.depth--
		d.mu.Unlock()
	}()

	for _, reg := range regs {
		invoke(reg.fn, event, payload, report)
	}
}

func invoke(fn Handler, event string, payload any, report ErrorReporter) {
	defer func() {
		if r := recover(); r != nil {
			report(event, fmt.Errorf("recovered: %v", r))
		}
	}()
	fn(payload)
}
