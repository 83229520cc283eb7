package keymap

import "github.com/chris14257/winston/internal/input/key"

// Handler processes a key event. Handlers run synchronously on the
// worker goroutine of the applet that owns the table.
type Handler func(ev key.Event)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key specification that triggers this binding.
	// Formats: "left", "control+s", "shift+left", "ctrl+S".
	Keys string `yaml:"keys"`

	// Action is the command name to execute.
	// Examples: "cursor.down", "editor.save".
	Action string `yaml:"action"`

	// Description provides documentation for the binding.
	Description string `yaml:"description,omitempty"`
}

// NewBinding creates a binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{Keys: keys, Action: action}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// Merge applies override bindings to a default set. An override replaces
// the keys of the default binding with the same action; overrides for
// actions not present in the defaults are appended.
func Merge(defaults, overrides []Binding) []Binding {
	merged := make([]Binding, len(defaults))
	copy(merged, defaults)

	for _, ov := range overrides {
		replaced := false
		for i := range merged {
			if merged[i].Action == ov.Action {
				merged[i].Keys = ov.Keys
				if ov.Description != "" {
					merged[i].Description = ov.Description
				}
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, ov)
		}
	}

	return merged
}
