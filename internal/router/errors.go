package router

import "errors"

// Router errors.
var (
	// ErrDuplicateRegistration indicates a name already has a factory.
	ErrDuplicateRegistration = errors.New("applet already registered")

	// ErrUnknownApplet indicates activation of a name that was never
	// registered.
	ErrUnknownApplet = errors.New("applet not registered")

	// ErrAlreadyRunning indicates the router pump is already running.
	ErrAlreadyRunning = errors.New("router already running")

	// ErrStopped indicates the router has been shut down.
	ErrStopped = errors.New("router stopped")
)
