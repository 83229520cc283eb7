package key

import "testing"

func TestModifier_CanonicalNames(t *testing.T) {
	tests := []struct {
		name string
		mods Modifier
		want []string
	}{
		{"none", ModNone, nil},
		{"ctrl", ModCtrl, []string{"control"}},
		{"shift", ModShift, []string{"shift"}},
		{"all", ModCtrl | ModAlt | ModShift | ModMeta, []string{"control", "alt", "shift", "meta"}},
		{"fixed order regardless of bit order", ModMeta | ModCtrl, []string{"control", "meta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.mods.CanonicalNames()
			if len(got) != len(tt.want) {
				t.Fatalf("CanonicalNames() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("CanonicalNames()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestModifier_WithWithout(t *testing.T) {
	m := ModNone.With(ModCtrl).With(ModShift)
	if !m.HasCtrl() || !m.HasShift() {
		t.Fatalf("With() did not set bits: %v", m)
	}
	m = m.Without(ModShift)
	if m.HasShift() {
		t.Error("Without(ModShift) left shift set")
	}
	if !m.HasCtrl() {
		t.Error("Without(ModShift) cleared control")
	}
}

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"ctrl", ModCtrl},
		{"control", ModCtrl},
		{"Control", ModCtrl},
		{"alt", ModAlt},
		{"option", ModAlt},
		{"shift", ModShift},
		{"SHIFT", ModShift},
		{"meta", ModMeta},
		{"cmd", ModMeta},
		{"super", ModMeta},
		{"bogus", ModNone},
	}

	for _, tt := range tests {
		if got := ModifierFromName(tt.name); got != tt.want {
			t.Errorf("ModifierFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEvent_Canonical(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want string
	}{
		{"plain rune", NewRuneEvent('a', ModNone), "a"},
		{"shifted rune", NewRuneEvent('a', ModShift), "shift+a"},
		{"uppercase key lowered", NewEvent("A", ModShift), "shift+a"},
		{"ctrl chord", NewRuneEvent('s', ModCtrl), "control+s"},
		{"all modifiers in fixed order", NewEvent(KeyEnter, ModMeta|ModShift|ModCtrl|ModAlt), "control+alt+shift+meta+enter"},
		{"named key", NewEvent(KeyLeft, ModShift), "shift+left"},
		{"literal plus", NewRuneEvent('+', ModCtrl), "control++"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.Canonical(); got != tt.want {
				t.Errorf("Canonical() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvent_CanonicalCaseInsensitive(t *testing.T) {
	a := NewEvent("A", ModShift)
	b := NewEvent("a", ModShift)
	if a.Canonical() != b.Canonical() {
		t.Errorf("Canonical() differs by case: %q vs %q", a.Canonical(), b.Canonical())
	}
	if !a.Equals(b) {
		t.Error("Equals() = false for same key differing only in case")
	}
}

func TestEvent_IsChar(t *testing.T) {
	if !NewRuneEvent('x', ModNone).IsChar() {
		t.Error("IsChar() = false for 'x'")
	}
	if !NewRuneEvent('é', ModNone).IsChar() {
		t.Error("IsChar() = false for 'é'")
	}
	if NewEvent(KeyEnter, ModNone).IsChar() {
		t.Error("IsChar() = true for named key")
	}
	if NewRuneEvent('\x01', ModNone).IsChar() {
		t.Error("IsChar() = true for control character")
	}
}

func TestEvent_Rune(t *testing.T) {
	if got := NewRuneEvent('q', ModNone).Rune(); got != 'q' {
		t.Errorf("Rune() = %q, want 'q'", got)
	}
	ev := NewEvent(KeyEscape, ModNone)
	if ev.IsRune() {
		t.Error("IsRune() = true for multi-character identifier")
	}
}

func TestEvent_String(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{NewRuneEvent('s', ModCtrl|ModShift), "Ctrl+Shift+S"},
		{NewEvent(KeyLeft, ModNone), "Left"},
		{NewEvent(KeyPageUp, ModAlt), "Alt+Pageup"},
	}

	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		spec     string
		wantKey  string
		wantMods Modifier
	}{
		{"a", "a", ModNone},
		{"control+s", "s", ModCtrl},
		{"ctrl+S", "s", ModCtrl},
		{"shift+left", "left", ModShift},
		{"control+shift+home", "home", ModCtrl | ModShift},
		{"cmd+q", "q", ModMeta},
		{"control++", "+", ModCtrl},
		{"enter", "enter", ModNone},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			ev, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if ev.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", ev.Key, tt.wantKey)
			}
			if ev.Modifiers != tt.wantMods {
				t.Errorf("Modifiers = %v, want %v", ev.Modifiers, tt.wantMods)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, spec := range []string{"", "control+", "bogus+s", "a+b"} {
		if _, err := Parse(spec); err == nil {
			t.Errorf("Parse(%q) error = nil, want error", spec)
		}
	}
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"ctrl+S", "control+s"},
		{"shift+control+a", "control+shift+a"},
		{"Left", "left"},
		{"cmd+alt+x", "alt+meta+x"},
	}

	for _, tt := range tests {
		got, err := Canonicalize(tt.spec)
		if err != nil {
			t.Fatalf("Canonicalize(%q) error = %v", tt.spec, err)
		}
		if got != tt.want {
			t.Errorf("Canonicalize(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}
