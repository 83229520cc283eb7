package backend

import (
	"fmt"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/chris14257/winston/internal/input/key"
)

// Terminal captures keyboard input from the controlling terminal using
// tcell. Decoded events are normalized: uppercase runes become the
// lower-cased key with shift set, and control chords become the plain
// letter with control set, so canonicalization sees one spelling per key.
type Terminal struct {
	screen  tcell.Screen
	done    chan struct{}
	started atomic.Bool
	stopped atomic.Bool
}

// NewTerminal creates a terminal listener. The screen is not taken over
// until Start.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return &Terminal{
		screen: screen,
		done:   make(chan struct{}),
	}, nil
}

// Start initializes the screen and begins polling for key events.
func (t *Terminal) Start(emit func(key.Event)) error {
	if !t.started.CompareAndSwap(false, true) {
		return fmt.Errorf("terminal listener already started")
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	go t.poll(emit)
	return nil
}

// poll blocks on PollEvent until Stop finalizes the screen, which makes
// PollEvent return nil.
func (t *Terminal) poll(emit func(key.Event)) {
	defer close(t.done)

	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		if ke, ok := ev.(*tcell.EventKey); ok {
			if decoded, ok := decodeKey(ke); ok {
				emit(decoded)
			}
		}
	}
}

// Stop finalizes the screen, restoring the terminal and unblocking the
// poll goroutine.
func (t *Terminal) Stop() {
	if !t.stopped.CompareAndSwap(false, true) {
		return
	}
	if t.started.Load() {
		t.screen.Fini()
	} else {
		close(t.done)
	}
}

// Join waits for the poll goroutine to exit.
func (t *Terminal) Join(timeout time.Duration) bool {
	select {
	case <-t.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// decodeKey converts a tcell key event to a key.Event. Unknown keys are
// dropped.
func decodeKey(ev *tcell.EventKey) (key.Event, bool) {
	mods := key.ModNone
	tm := ev.Modifiers()
	if tm&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if tm&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if tm&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if tm&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}

	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if unicode.IsUpper(r) {
			r = unicode.ToLower(r)
			mods = mods.With(key.ModShift)
		}
		return key.NewRuneEvent(r, mods), true
	case tcell.KeyEnter:
		return key.NewEvent(key.KeyEnter, mods), true
	case tcell.KeyEscape:
		return key.NewEvent(key.KeyEscape, mods), true
	case tcell.KeyTab:
		return key.NewEvent(key.KeyTab, mods), true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewEvent(key.KeyBackspace, mods), true
	case tcell.KeyDelete:
		return key.NewEvent(key.KeyDelete, mods), true
	case tcell.KeyInsert:
		return key.NewEvent(key.KeyInsert, mods), true
	case tcell.KeyHome:
		return key.NewEvent(key.KeyHome, mods), true
	case tcell.KeyEnd:
		return key.NewEvent(key.KeyEnd, mods), true
	case tcell.KeyPgUp:
		return key.NewEvent(key.KeyPageUp, mods), true
	case tcell.KeyPgDn:
		return key.NewEvent(key.KeyPageDown, mods), true
	case tcell.KeyUp:
		return key.NewEvent(key.KeyUp, mods), true
	case tcell.KeyDown:
		return key.NewEvent(key.KeyDown, mods), true
	case tcell.KeyLeft:
		return key.NewEvent(key.KeyLeft, mods), true
	case tcell.KeyRight:
		return key.NewEvent(key.KeyRight, mods), true
	default:
		// Control chords for letters arrive as dedicated key codes.
		if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			r := rune('a' + int(k) - int(tcell.KeyCtrlA))
			return key.NewRuneEvent(r, mods.With(key.ModCtrl)), true
		}
		return key.Event{}, false
	}
}
