// Package router owns applet registration, focus, and the inbound key
// event pump. Exactly one applet holds focus at a time; the router
// forwards raw events only to the focused applet's private queue and
// never touches any applet's buffer.
package router

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chris14257/winston/internal/applet"
	"github.com/chris14257/winston/internal/backend"
	"github.com/chris14257/winston/internal/input/key"
	"github.com/chris14257/winston/internal/logging"
)

// DefaultJoinTimeout bounds how long Shutdown waits for each worker.
const DefaultJoinTimeout = time.Second

// Factory produces an applet given the router handle and the name it
// was registered under.
type Factory func(r *Router, name string) (applet.Applet, error)

// Router routes key events to the focused applet and manages applet
// lifecycle. Applets are created on first activation and live until
// Shutdown.
type Router struct {
	mu        sync.Mutex
	factories map[string]Factory
	applets   map[string]applet.Applet
	order     []string // registration order, for shutdown
	active    string

	raw      *Queue
	listener backend.Listener

	poll        time.Duration
	joinTimeout time.Duration
	log         *logging.Logger

	running  atomic.Bool
	stopped  atomic.Bool
	stopOnce sync.Once
}

// Queue is the router's raw inbound queue type.
type Queue = applet.Queue

// Option configures a Router.
type Option func(*Router)

// WithListener sets the keyboard capture backend. Defaults to the inert
// backend.Null, leaving only direct injection.
func WithListener(l backend.Listener) Option {
	return func(r *Router) {
		if l != nil {
			r.listener = l
		}
	}
}

// WithPollInterval sets the raw-queue poll interval.
func WithPollInterval(d time.Duration) Option {
	return func(r *Router) {
		if d > 0 {
			r.poll = d
		}
	}
}

// WithJoinTimeout bounds shutdown joins for the listener and each applet.
func WithJoinTimeout(d time.Duration) Option {
	return func(r *Router) {
		if d > 0 {
			r.joinTimeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.log = l
		}
	}
}

// New creates a router.
func New(opts ...Option) *Router {
	r := &Router{
		factories:   make(map[string]Factory),
		applets:     make(map[string]applet.Applet),
		raw:         applet.NewQueue(),
		listener:    backend.Null{},
		poll:        applet.DefaultPollInterval,
		joinTimeout: DefaultJoinTimeout,
		log:         logging.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.WithComponent("router")
	return r
}

// Register adds an applet factory under a name. Registering a name
// twice fails with ErrDuplicateRegistration and leaves the registry
// unchanged.
func (r *Router) Register(name string, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRegistration, name)
	}
	r.factories[name] = factory
	r.order = append(r.order, name)
	return nil
}

// Activate gives focus to the named applet, constructing and starting it
// on first use. A name without a factory fails with ErrUnknownApplet and
// changes nothing. When focus moves, the previously focused applet's
// deactivation hook fires but its worker keeps running.
func (r *Router) Activate(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	factory, ok := r.factories[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownApplet, name)
	}

	a, ok := r.applets[name]
	if !ok {
		created, err := factory(r, name)
		if err != nil {
			return fmt.Errorf("creating applet %q: %w", name, err)
		}
		a = created
		r.applets[name] = a
		a.Start()
		r.log.Info("applet %q started", name)
	}

	if r.active != "" && r.active != name {
		if prev, ok := r.applets[r.active]; ok {
			prev.OnDeactivate()
		}
	}
	r.active = name
	a.OnActivate()
	r.log.Debug("focus -> %q", name)
	return nil
}

// Active returns the name of the focused applet, or "".
func (r *Router) Active() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Applet returns the live instance for a name, if one was created.
func (r *Router) Applet(name string) (applet.Applet, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.applets[name]
	return a, ok
}

// Inject places a key event on the raw inbound queue. This is the entry
// point for the keyboard backend and for tests; it never blocks.
func (r *Router) Inject(ev key.Event) {
	r.raw.Push(ev)
}

// Run starts the keyboard listener and pumps the raw queue until
// Shutdown. Each event goes to the focused applet's private queue; with
// no focused applet, events are consumed and dropped.
func (r *Router) Run() error {
	if r.stopped.Load() {
		return ErrStopped
	}
	if !r.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer r.Shutdown()

	if err := r.listener.Start(r.Inject); err != nil {
		return fmt.Errorf("starting keyboard listener: %w", err)
	}
	r.log.Info("router running")

	for r.running.Load() {
		ev, ok := r.raw.Pop(r.poll)
		if !ok {
			continue
		}
		r.forward(ev)
	}

	return nil
}

// forward hands an event to the focused applet without blocking.
func (r *Router) forward(ev key.Event) {
	r.mu.Lock()
	a := r.applets[r.active]
	r.mu.Unlock()

	if a != nil {
		a.Enqueue(ev)
	}
}

// Shutdown stops the pump, joins the listener, then stops and joins
// every live applet in registration order. Joins are bounded and
// best-effort: a worker that misses its deadline is logged and left to
// the runtime rather than escalated.
func (r *Router) Shutdown() {
	r.stopOnce.Do(func() {
		r.stopped.Store(true)
		r.running.Store(false)

		r.listener.Stop()
		if !r.listener.Join(r.joinTimeout) {
			r.log.Warn("keyboard listener did not stop within %v", r.joinTimeout)
		}

		r.mu.Lock()
		order := make([]string, len(r.order))
		copy(order, r.order)
		r.mu.Unlock()

		for _, name := range order {
			r.mu.Lock()
			a := r.applets[name]
			r.mu.Unlock()
			if a == nil {
				continue
			}
			a.Stop()
			if !a.Join(r.joinTimeout) {
				r.log.Warn("applet %q did not stop within %v", name, r.joinTimeout)
			}
		}

		r.log.Info("router stopped")
	})
}
