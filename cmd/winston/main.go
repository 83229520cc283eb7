// Package main is the entry point for the winston applet shell.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chris14257/winston/internal/applet"
	"github.com/chris14257/winston/internal/applet/editor"
	"github.com/chris14257/winston/internal/backend"
	"github.com/chris14257/winston/internal/config"
	"github.com/chris14257/winston/internal/logging"
	"github.com/chris14257/winston/internal/router"
	"github.com/chris14257/winston/internal/speech"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.keymapPath != "" {
		cfg.Editor.KeymapPath = opts.keymapPath
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Prefix: "winston",
	})
	logging.SetDefault(log)

	// Prefer the terminal keyboard backend; degrade to injection-only
	// operation when it is unavailable (no TTY, tests, CI).
	var listener backend.Listener = backend.Null{}
	if term, err := backend.NewTerminal(); err != nil {
		log.Warn("keyboard backend unavailable, running degraded: %v", err)
	} else {
		listener = term
	}

	r := router.New(
		router.WithListener(listener),
		router.WithPollInterval(cfg.PollInterval()),
		router.WithJoinTimeout(cfg.JoinTimeout()),
		router.WithLogger(log),
	)
	defer r.Shutdown()

	announcer := speech.NewLog(log)
	err = r.Register("editor", func(_ *router.Router, name string) (applet.Applet, error) {
		return editor.New(name,
			editor.WithAnnouncer(announcer),
			editor.WithDefaultFileName(cfg.Editor.DefaultFileName),
			editor.WithKeymapPath(cfg.Editor.KeymapPath),
			editor.WithPollInterval(cfg.PollInterval()),
			editor.WithLogger(log),
		)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := r.Activate("editor"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		r.Shutdown()
	}()

	if err := r.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

type options struct {
	configPath string
	keymapPath string
	logLevel   string
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.keymapPath, "keymap", "", "Path to keybinding override file")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Winston - keystroke-driven applet shell\n\n")
		fmt.Fprintf(os.Stderr, "Usage: winston [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Winston %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		os.Exit(0)
	}

	if opts.logLevel != "" {
		switch opts.logLevel {
		case "debug", "info", "warn", "error":
		default:
			fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", opts.logLevel)
			os.Exit(1)
		}
	}

	return opts
}
