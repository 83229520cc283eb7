// Package key defines keyboard events and their canonical string form.
//
// An event's key identifier is either a single character ("a", "+") or a
// named key ("enter", "left"). The canonical form emits the active modifier
// names in fixed order (control, alt, shift, meta) followed by the
// lower-cased identifier, all joined with "+". Canonical strings are the
// lookup keys for binding tables.
package key

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Named key identifiers. Single characters are their own identifier.
const (
	KeyEnter     = "enter"
	KeyEscape    = "escape"
	KeyTab       = "tab"
	KeyBackspace = "backspace"
	KeyDelete    = "delete"
	KeyInsert    = "insert"
	KeyHome      = "home"
	KeyEnd       = "end"
	KeyPageUp    = "pageup"
	KeyPageDown  = "pagedown"
	KeyUp        = "up"
	KeyDown      = "down"
	KeyLeft      = "left"
	KeyRight     = "right"
)

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed: a single character or a named key.
	Key string

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewEvent creates a key event.
func NewEvent(key string, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: string(r), Modifiers: mods}
}

// IsRune returns true if the identifier is a single character.
func (e Event) IsRune() bool {
	return utf8.RuneCountInString(e.Key) == 1
}

// Rune returns the character for single-character events, or utf8.RuneError.
func (e Event) Rune() rune {
	if !e.IsRune() {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(e.Key)
	return r
}

// IsChar returns true if this is a printable character key.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune())
}

// Canonical returns the canonical string form of the event, the lookup key
// into a binding table. Two events with the same key (case-insensitive) and
// modifiers always canonicalize identically.
func (e Event) Canonical() string {
	parts := e.Modifiers.CanonicalNames()
	parts = append(parts, strings.ToLower(e.Key))
	return strings.Join(parts, "+")
}

// String returns a human-readable form like "Ctrl+Shift+S" or "Left".
func (e Event) String() string {
	var parts []string
	if mods := e.Modifiers.String(); mods != "" {
		parts = append(parts, mods)
	}
	name := e.Key
	if e.IsRune() {
		name = strings.ToUpper(name)
	} else if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	parts = append(parts, name)
	return strings.Join(parts, "+")
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Modifiers == other.Modifiers &&
		strings.EqualFold(e.Key, other.Key)
}
