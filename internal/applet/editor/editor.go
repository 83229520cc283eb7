// Package editor implements the line-oriented editor applet: cursor
// movement with shift-extended selection, multi-line editing, and
// whole-buffer save.
package editor

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chris14257/winston/internal/applet"
	"github.com/chris14257/winston/internal/input/key"
	"github.com/chris14257/winston/internal/input/keymap"
	"github.com/chris14257/winston/internal/logging"
	"github.com/chris14257/winston/internal/speech"
)

// DefaultFileName is used when saving a buffer that has never been
// given a path, and for save-as until a file picker exists.
const DefaultFileName = "untitled.txt"

// Editor is the keystroke-driven text editor applet.
type Editor struct {
	*applet.Base

	announcer   speech.Announcer
	defaultName string
	keymapPath  string
	overrides   []keymap.Binding
	poll        time.Duration
	log         *logging.Logger

	// filename is the last-used save path; empty until the first save.
	// Touched only by the worker goroutine.
	filename string
}

// Option configures an Editor.
type Option func(*Editor)

// WithAnnouncer sets the announcement output. Defaults to speech.Null.
func WithAnnouncer(a speech.Announcer) Option {
	return func(e *Editor) { e.announcer = a }
}

// WithDefaultFileName overrides the fallback save filename.
func WithDefaultFileName(name string) Option {
	return func(e *Editor) {
		if name != "" {
			e.defaultName = name
		}
	}
}

// WithKeymapPath loads user keybinding overrides from a YAML file.
func WithKeymapPath(path string) Option {
	return func(e *Editor) { e.keymapPath = path }
}

// WithBindings applies binding overrides directly.
func WithBindings(overrides []keymap.Binding) Option {
	return func(e *Editor) { e.overrides = overrides }
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Editor) { e.log = l }
}

// WithPollInterval sets the worker's queue poll interval.
func WithPollInterval(d time.Duration) Option {
	return func(e *Editor) { e.poll = d }
}

// DefaultBindings returns the editor's built-in binding table.
func DefaultBindings() []keymap.Binding {
	return []keymap.Binding{
		keymap.NewBinding(key.KeyLeft, "cursor.left").WithDescription("Move cursor left"),
		keymap.NewBinding(key.KeyRight, "cursor.right").WithDescription("Move cursor right"),
		keymap.NewBinding(key.KeyUp, "cursor.up").WithDescription("Move cursor up"),
		keymap.NewBinding(key.KeyDown, "cursor.down").WithDescription("Move cursor down"),
		keymap.NewBinding(key.KeyHome, "cursor.home").WithDescription("Move to start of line"),
		keymap.NewBinding(key.KeyEnd, "cursor.end").WithDescription("Move to end of line"),
		keymap.NewBinding(key.KeyEnter, "editor.newline").WithDescription("Split line at cursor"),
		keymap.NewBinding(key.KeyBackspace, "editor.backspace").WithDescription("Delete left of cursor"),
		keymap.NewBinding(key.KeyDelete, "editor.delete").WithDescription("Delete right of cursor"),
		keymap.NewBinding("control+s", "editor.save").WithDescription("Save buffer (shift: save as)"),
	}
}

// New creates an editor applet with the given name.
func New(name string, opts ...Option) (*Editor, error) {
	e := &Editor{
		announcer:   speech.Null{},
		defaultName: DefaultFileName,
		log:         logging.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.WithComponent("editor")

	baseOpts := []applet.Option{
		applet.WithLogger(e.log),
		applet.WithActivateHook(func() {
			e.announcer.Announce(name + " activated")
		}),
		applet.WithDeactivateHook(func() {
			e.announcer.Announce(name + " deactivated")
		}),
	}
	if e.poll > 0 {
		baseOpts = append(baseOpts, applet.WithPollInterval(e.poll))
	}
	e.Base = applet.NewBase(name, nil, baseOpts...)

	bindings := DefaultBindings()
	if e.keymapPath != "" {
		loaded, err := keymap.LoadFile(e.keymapPath)
		if err != nil {
			return nil, fmt.Errorf("loading keymap %s: %w", e.keymapPath, err)
		}
		bindings = keymap.Merge(bindings, loaded)
	}
	if len(e.overrides) > 0 {
		bindings = keymap.Merge(bindings, e.overrides)
	}

	table, err := keymap.NewTable(bindings, e.handlers())
	if err != nil {
		return nil, fmt.Errorf("building editor bindings: %w", err)
	}
	e.SetTable(table)

	return e, nil
}

// handlers maps action names to their implementations. Every handler
// runs on the editor's own worker goroutine.
func (e *Editor) handlers() map[string]keymap.Handler {
	return map[string]keymap.Handler{
		"cursor.left": func(ev key.Event) {
			e.Buffer().MoveLeft(ev.Modifiers.HasShift())
		},
		"cursor.right": func(ev key.Event) {
			e.Buffer().MoveRight(ev.Modifiers.HasShift())
		},
		"cursor.up": func(ev key.Event) {
			e.Buffer().MoveUp(ev.Modifiers.HasShift())
		},
		"cursor.down": func(ev key.Event) {
			e.Buffer().MoveDown(ev.Modifiers.HasShift())
		},
		"cursor.home": func(ev key.Event) {
			e.Buffer().MoveHome(ev.Modifiers.HasShift())
		},
		"cursor.end": func(ev key.Event) {
			e.Buffer().MoveEnd(ev.Modifiers.HasShift())
		},
		"editor.newline": func(key.Event) {
			e.Buffer().SplitLine()
		},
		"editor.backspace": func(key.Event) {
			e.Buffer().DeleteLeft()
		},
		"editor.delete": func(key.Event) {
			e.Buffer().DeleteRight()
		},
		"editor.save": func(ev key.Event) {
			if err := e.Save(ev.Modifiers.HasShift()); err != nil {
				e.log.Error("save failed: %v", err)
				e.announcer.Announce("save failed")
				return
			}
			e.announcer.Announce("saved " + e.filename)
		},
	}
}

// Save writes the buffer's lines, newline-joined, verbatim to the
// last-used path. When saveAs is true, or no path has been chosen yet,
// the default filename is used instead.
func (e *Editor) Save(saveAs bool) error {
	if saveAs || e.filename == "" {
		e.filename = e.defaultName
	}

	content := strings.Join(e.Buffer().Lines(), "\n")
	if err := os.WriteFile(e.filename, []byte(content), 0644); err != nil {
		return &FileError{Op: "save", Path: e.filename, Err: err}
	}

	e.log.Info("saved %s", e.filename)
	return nil
}

// FileName returns the last-used save path, or "" before the first save.
func (e *Editor) FileName() string {
	return e.filename
}

// FileError represents a file operation error.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Err == nil {
		return e.Op + " " + e.Path
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}
