// Package keymap maps canonical key strings to handler functions.
//
// Tables are built once, at applet construction, from a declarative list
// of bindings and a map of action names to handlers. Construction fails
// fast on duplicate canonical keys, malformed key specifications, and
// actions without handlers.
package keymap

import (
	"fmt"

	"github.com/chris14257/winston/internal/input/key"
)

// entry pairs an action name with its handler.
type entry struct {
	action  string
	handler Handler
}

// Table resolves key events to handlers.
type Table struct {
	entries map[string]entry
}

// NewTable builds a table from bindings and an action-to-handler map.
func NewTable(bindings []Binding, handlers map[string]Handler) (*Table, error) {
	t := &Table{entries: make(map[string]entry, len(bindings))}

	for i, b := range bindings {
		if b.Keys == "" {
			return nil, fmt.Errorf("binding %d (%s): empty keys", i, b.Action)
		}
		if b.Action == "" {
			return nil, fmt.Errorf("binding %d (%s): empty action", i, b.Keys)
		}

		canon, err := key.Canonicalize(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("binding %d (%s): %w", i, b.Action, err)
		}

		if existing, ok := t.entries[canon]; ok {
			return nil, fmt.Errorf("binding %d: key %q bound to both %q and %q",
				i, canon, existing.action, b.Action)
		}

		h, ok := handlers[b.Action]
		if !ok {
			return nil, fmt.Errorf("binding %d (%s): no handler for action %q",
				i, b.Keys, b.Action)
		}

		t.entries[canon] = entry{action: b.Action, handler: h}
	}

	return t, nil
}

// Len returns the number of bound keys.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup resolves a key event to a handler. Resolution tries the exact
// canonical string first; if that misses and shift was set, the shift
// component is stripped once and the lookup retried, so shifted printable
// characters fall through to their unshifted binding. Only the shift token
// is ever stripped, and only once.
func (t *Table) Lookup(ev key.Event) (Handler, string, bool) {
	if e, ok := t.entries[ev.Canonical()]; ok {
		return e.handler, e.action, true
	}

	if ev.Modifiers.HasShift() {
		stripped := ev
		stripped.Modifiers = stripped.Modifiers.Without(key.ModShift)
		if e, ok := t.entries[stripped.Canonical()]; ok {
			return e.handler, e.action, true
		}
	}

	return nil, "", false
}

// Action returns the action bound to a canonical key, for display purposes.
func (t *Table) Action(canonical string) (string, bool) {
	e, ok := t.entries[canonical]
	return e.action, ok
}
