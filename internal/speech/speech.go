// Package speech defines the announcement output capability.
//
// The real synthesizer is an external collaborator; the core only ever
// talks to this interface. When no synthesizer is available the inert
// implementation is injected at construction time, never probed for at
// runtime.
package speech

import "github.com/chris14257/winston/internal/logging"

// Announcer speaks short status messages to the user.
type Announcer interface {
	// Announce queues the given text for output. Implementations must
	// not block the caller.
	Announce(text string)
}

// Null is an inert announcer.
type Null struct{}

// Announce discards the text.
func (Null) Announce(string) {}

// Log is an announcer that writes announcements to a logger. It stands
// in for a speech synthesizer in headless and test environments.
type Log struct {
	logger *logging.Logger
}

// NewLog creates a logging announcer.
func NewLog(l *logging.Logger) *Log {
	if l == nil {
		l = logging.Default()
	}
	return &Log{logger: l.WithComponent("speech")}
}

// Announce logs the text at info level.
func (a *Log) Announce(text string) {
	a.logger.Info("%s", text)
}
