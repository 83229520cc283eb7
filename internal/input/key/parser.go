package key

import (
	"fmt"
	"strings"
)

// Parse parses a key specification string like "control+s", "shift+left"
// or "a" into an Event. All tokens before the last must name modifiers;
// the last token is the key identifier. A trailing "+" denotes the literal
// plus key ("control++").
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, fmt.Errorf("empty key specification")
	}

	tokens := strings.Split(spec, "+")

	// "control++" splits into ["control", "", ""]: the trailing empty
	// pair denotes a literal "+" key.
	if n := len(tokens); n >= 2 && tokens[n-1] == "" && tokens[n-2] == "" {
		tokens = append(tokens[:n-2], "+")
	}

	keyToken := tokens[len(tokens)-1]
	if keyToken == "" {
		return Event{}, fmt.Errorf("key specification %q has no key", spec)
	}

	var mods Modifier
	for _, tok := range tokens[:len(tokens)-1] {
		mod := ModifierFromName(tok)
		if mod == ModNone {
			return Event{}, fmt.Errorf("unknown modifier %q in %q", tok, spec)
		}
		mods = mods.With(mod)
	}

	return Event{Key: strings.ToLower(keyToken), Modifiers: mods}, nil
}

// Canonicalize parses a key specification and returns its canonical form.
// Aliases are resolved ("ctrl+S" becomes "control+s") and modifiers are
// reordered into the fixed canonical order.
func Canonicalize(spec string) (string, error) {
	ev, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return ev.Canonical(), nil
}
