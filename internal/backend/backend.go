// Package backend provides the keyboard capture capability.
//
// The router consumes decoded key events through the Listener interface.
// When no real backend is available the inert Null implementation is
// injected at construction time and the router degrades to accepting
// only directly injected events.
package backend

import (
	"time"

	"github.com/chris14257/winston/internal/input/key"
)

// Listener captures keyboard input and delivers decoded events.
type Listener interface {
	// Start begins capture, delivering each decoded event through emit.
	// It must not block; capture runs on its own goroutine.
	Start(emit func(key.Event)) error

	// Stop ends capture and releases resources.
	Stop()

	// Join waits for the capture goroutine to exit, up to the given
	// timeout. Returns false if it is still running.
	Join(timeout time.Duration) bool
}

// Null is an inert listener for headless and test environments.
type Null struct{}

// Start does nothing; no events will ever be emitted.
func (Null) Start(func(key.Event)) error { return nil }

// Stop does nothing.
func (Null) Stop() {}

// Join always succeeds immediately.
func (Null) Join(time.Duration) bool { return true }
