// Package main is the entry point for stackedit.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/dshills/stackedit/internal/command"
	"github.com/dshills/stackedit/internal/config"
	"github.com/dshills/stackedit/internal/engine/editbuf"
	"github.com/dshills/stackedit/internal/engine/store"
	"github.com/dshills/stackedit/internal/logging"
	"github.com/dshills/stackedit/internal/script"
	"github.com/dshills/stackedit/internal/tui"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds command-line settings. Empty or zero values leave the
// configured setting alone.
type options struct {
	configPath string
	logLevel   string
	storeKind  string
	capacity   int
	scriptPath string
	useTUI     bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.LogLevel()
	logger := logging.New(logCfg)

	buf := editbuf.New(editbuf.WithStore(store.New(cfg.StoreKind(), cfg.Buffer.InitialCapacity)))
	logger.WithFields(map[string]any{
		"config":   opts.configPath,
		"store":    cfg.StoreKind(),
		"capacity": cfg.Buffer.InitialCapacity,
	}).Info("starting stackedit %s", version)

	runner := script.New(buf, script.WithOutput(os.Stdout), script.WithLogger(logger))
	defer runner.Close()

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch {
	case opts.scriptPath != "":
		err = runner.DoFile(ctx, opts.scriptPath)
		if err == nil {
			fmt.Println(buf.Text())
		}
	case opts.useTUI:
		err = runTUI(ctx, buf, logger)
	default:
		prompt := cfg.REPL.Prompt
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			// Piped input: keep the output to one state line per command.
			prompt = ""
		}
		session := command.NewSession(buf,
			command.WithPrompt(prompt),
			command.WithMarker(cfg.REPL.CursorMarker),
			command.WithHelp(cfg.REPL.ShowHelp),
			command.WithScripter(runner),
			command.WithLogger(logger),
		)
		err = session.Run(ctx, os.Stdin, os.Stdout)
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadConfig layers the config file, the environment and the flags.
func loadConfig(opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return config.Config{}, err
	}

	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.storeKind != "" {
		cfg.Buffer.Store = opts.storeKind
	}
	if opts.capacity != 0 {
		cfg.Buffer.InitialCapacity = opts.capacity
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func runTUI(ctx context.Context, buf *editbuf.Buffer, logger *logging.Logger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("-tui needs a terminal on stdout")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer screen.Fini()

	return tui.New(screen, buf, tui.WithLogger(logger)).Run(ctx)
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.storeKind, "store", "", "Character store (dualstack, split)")
	flag.IntVar(&opts.capacity, "capacity", 0, "Initial store capacity")
	flag.StringVar(&opts.scriptPath, "script", "", "Run a Lua script against an empty buffer and print the result")
	flag.BoolVar(&opts.useTUI, "tui", false, "Start the full-screen editor instead of the command loop")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "stackedit - cursor-centred text buffer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: stackedit [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  stackedit                   Command loop on stdin\n")
		fmt.Fprintf(os.Stderr, "  stackedit -tui              Full-screen editor\n")
		fmt.Fprintf(os.Stderr, "  stackedit -script edit.lua  Run a script\n")
		fmt.Fprintf(os.Stderr, "  stackedit -store split      Use the two-slice store\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("stackedit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
