// Package applet implements the focus-addressable worker unit: one text
// buffer, one binding table, one private event queue, and one goroutine
// that receives, resolves and handles key events.
//
// The single-writer rule is the core correctness invariant: an applet's
// buffer, binding table and selection are mutated only by its own worker
// goroutine. Everything else, the router included, interacts with an
// applet solely by pushing events onto its queue.
package applet

import (
	"sync/atomic"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/chris14257/winston/internal/buffer"
	"github.com/chris14257/winston/internal/input/key"
	"github.com/chris14257/winston/internal/input/keymap"
	"github.com/chris14257/winston/internal/logging"
)

// DefaultPollInterval is how long a worker blocks on its queue before
// re-checking its running flag. The poll timeout is the sole
// cancellation mechanism; stop is therefore not instantaneous.
const DefaultPollInterval = 50 * time.Millisecond

// Applet is a focus-addressable unit the router can start, stop and
// forward events to.
type Applet interface {
	// Name returns the applet's registered name.
	Name() string

	// Start launches the worker goroutine. One-shot; later calls are no-ops.
	Start()

	// Stop requests the worker to exit. One-shot; a stopped applet is
	// never restarted. The worker observes the request at its next poll
	// timeout.
	Stop()

	// Join waits for the worker to exit, up to the given timeout.
	// Returns false if the worker is still running when the timeout fires.
	Join(timeout time.Duration) bool

	// Enqueue places a key event on the applet's private queue without
	// blocking.
	Enqueue(ev key.Event)

	// OnActivate is invoked when the applet gains focus and once when
	// its worker starts.
	OnActivate()

	// OnDeactivate is invoked when the applet loses focus and once when
	// its worker stops.
	OnDeactivate()
}

// Base provides the worker loop, queue, buffer and dispatch shared by
// all applets. Concrete applets embed a *Base and supply a binding
// table, hooks and optionally a fallback handler.
type Base struct {
	name     string
	id       string
	buf      *buffer.Buffer
	table    *keymap.Table
	queue    *Queue
	children map[string]*buffer.Buffer

	fallback     func(key.Event)
	onActivate   func()
	onDeactivate func()

	poll time.Duration
	log  *logging.Logger

	started atomic.Bool
	stopped atomic.Bool
	running atomic.Bool
	done    chan struct{}
}

// Option configures a Base.
type Option func(*Base)

// WithPollInterval sets the queue poll interval.
func WithPollInterval(d time.Duration) Option {
	return func(b *Base) {
		if d > 0 {
			b.poll = d
		}
	}
}

// WithFallback sets the handler for events no binding matches.
func WithFallback(f func(key.Event)) Option {
	return func(b *Base) { b.fallback = f }
}

// WithActivateHook sets the focus-gained hook.
func WithActivateHook(f func()) Option {
	return func(b *Base) { b.onActivate = f }
}

// WithDeactivateHook sets the focus-lost hook.
func WithDeactivateHook(f func()) Option {
	return func(b *Base) { b.onDeactivate = f }
}

// WithLogger sets the logger. Defaults to the process-wide logger.
func WithLogger(l *logging.Logger) Option {
	return func(b *Base) { b.log = l }
}

// NewBase creates an applet base with a fresh single-line buffer.
func NewBase(name string, table *keymap.Table, opts ...Option) *Base {
	b := &Base{
		name:  name,
		id:    uuid.New().String(),
		buf:   buffer.New(),
		table: table,
		queue: NewQueue(),
		poll:  DefaultPollInterval,
		log:   logging.Default(),
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.log = b.log.WithComponent("applet").WithField("applet", name).WithField("id", b.id)
	return b
}

// SetTable installs the binding table. Must be called before Start;
// calls after the worker launched are ignored.
func (b *Base) SetTable(t *keymap.Table) {
	if b.started.Load() {
		return
	}
	b.table = t
}

// Name returns the applet's name.
func (b *Base) Name() string {
	return b.name
}

// ID returns the unique instance identifier.
func (b *Base) ID() string {
	return b.id
}

// Buffer returns the applet's text buffer. Only the applet's own worker
// may call mutating methods on it.
func (b *Base) Buffer() *buffer.Buffer {
	return b.buf
}

// Enqueue places an event on the private queue. Never blocks.
func (b *Base) Enqueue(ev key.Event) {
	b.queue.Push(ev)
}

// Start launches the worker goroutine. One-shot.
func (b *Base) Start() {
	if !b.started.CompareAndSwap(false, true) {
		return
	}
	b.running.Store(true)
	go b.run()
}

// Stop requests the worker to exit. One-shot; never restarts.
func (b *Base) Stop() {
	if !b.stopped.CompareAndSwap(false, true) {
		return
	}
	b.running.Store(false)
}

// Join waits for the worker goroutine to exit. Returns false on timeout;
// callers treat a failed join as best-effort and proceed.
func (b *Base) Join(timeout time.Duration) bool {
	if !b.started.Load() {
		return true
	}
	select {
	case <-b.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// OnActivate invokes the activation hook, if any.
func (b *Base) OnActivate() {
	if b.onActivate != nil {
		b.onActivate()
	}
}

// OnDeactivate invokes the deactivation hook, if any.
func (b *Base) OnDeactivate() {
	if b.onDeactivate != nil {
		b.onDeactivate()
	}
}

// run is the worker loop: block on the queue with a bounded wait, re-check
// the running flag on timeout, dispatch on receipt. Events delivered after
// focus moved elsewhere are still processed; they are only no longer
// produced.
func (b *Base) run() {
	defer close(b.done)

	b.log.Debug("worker started")
	b.OnActivate()

	for b.running.Load() {
		ev, ok := b.queue.Pop(b.poll)
		if !ok {
			continue
		}
		b.dispatch(ev)
	}

	b.OnDeactivate()
	b.log.Debug("worker stopped")
}

// dispatch resolves an event against the binding table and invokes the
// matched handler, or the fallback for unmatched events.
func (b *Base) dispatch(ev key.Event) {
	if b.table != nil {
		if h, action, ok := b.table.Lookup(ev); ok {
			b.log.Debug("dispatch %s -> %s", ev.Canonical(), action)
			h(ev)
			return
		}
	}

	if b.fallback != nil {
		b.fallback(ev)
		return
	}
	b.InsertPrintable(ev)
}

// InsertPrintable is the default unbound-key behavior: a single printable
// character is inserted into the buffer, upper-cased when shift is set.
func (b *Base) InsertPrintable(ev key.Event) {
	if !ev.IsChar() {
		return
	}
	r := ev.Rune()
	if ev.Modifiers.HasShift() {
		r = unicode.ToUpper(r)
	}
	b.buf.InsertChar(r)
}
