package applet

import (
	"errors"
	"fmt"

	"github.com/chris14257/winston/internal/buffer"
)

// ErrDuplicateChild indicates a child name is already in use.
var ErrDuplicateChild = errors.New("child already exists")

// AddChild registers a named sub-panel buffer under this applet.
// Children form a flat namespace; registering a name twice is an error.
// Only the applet's own worker may touch child buffers.
func (b *Base) AddChild(name string, child *buffer.Buffer) error {
	if name == "" {
		return fmt.Errorf("child name must not be empty")
	}
	if b.children == nil {
		b.children = make(map[string]*buffer.Buffer)
	}
	if _, ok := b.children[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateChild, name)
	}
	b.children[name] = child
	return nil
}

// Child returns the named sub-panel buffer, reporting whether it exists.
func (b *Base) Child(name string) (*buffer.Buffer, bool) {
	child, ok := b.children[name]
	return child, ok
}
