package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/stackedit/internal/engine/store"
	"github.com/dshills/stackedit/internal/logging"
)

// EnvPrefix is the prefix of environment variables read by ApplyEnv.
const EnvPrefix = "STACKEDIT_"

// Config holds all settings.
type Config struct {
	Buffer BufferConfig `toml:"buffer"`
	REPL   REPLConfig   `toml:"repl"`
	Log    LogConfig    `toml:"log"`
}

// BufferConfig configures the edit buffer.
type BufferConfig struct {
	// Store is the character store kind: "dualstack" or "split".
	Store string `toml:"store"`
	// InitialCapacity is the initial store capacity in characters.
	InitialCapacity int `toml:"initial_capacity"`
}

// REPLConfig configures the command loop.
type REPLConfig struct {
	Prompt       string `toml:"prompt"`
	CursorMarker string `toml:"cursor_marker"`
	ShowHelp     bool   `toml:"show_help"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Buffer: BufferConfig{
			Store:           string(store.KindDualStack),
			InitialCapacity: store.DefaultCapacity,
		},
		REPL: REPLConfig{
			Prompt:       "> ",
			CursorMarker: "|",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads the TOML file at path over the defaults and validates the
// result. An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return parse(path, data)
}

// LoadFromReader reads TOML from r over the defaults. source names the
// input in error messages.
func LoadFromReader(source string, r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return parse(source, data)
}

func parse(source string, data []byte) (Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return Config{}, perr
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from STACKEDIT_* variables read through
// lookup (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "STORE"); ok {
		c.Buffer.Store = v
	}
	if v, ok := lookup(EnvPrefix + "INITIAL_CAPACITY"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return &ValidationError{Path: "buffer.initial_capacity", Value: v, Message: "not an integer"}
		}
		c.Buffer.InitialCapacity = n
	}
	if v, ok := lookup(EnvPrefix + "PROMPT"); ok {
		c.REPL.Prompt = v
	}
	if v, ok := lookup(EnvPrefix + "CURSOR_MARKER"); ok {
		c.REPL.CursorMarker = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	return c.Validate()
}

// Validate checks every setting.
func (c Config) Validate() error {
	if _, err := store.ParseKind(c.Buffer.Store); err != nil {
		return &ValidationError{Path: "buffer.store", Value: c.Buffer.Store, Message: "must be dualstack or split"}
	}
	if c.Buffer.InitialCapacity <= 0 {
		return &ValidationError{Path: "buffer.initial_capacity", Value: c.Buffer.InitialCapacity, Message: "must be positive"}
	}
	if c.REPL.CursorMarker == "" {
		return &ValidationError{Path: "repl.cursor_marker", Value: c.REPL.CursorMarker, Message: "must not be empty"}
	}
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return &ValidationError{Path: "log.level", Value: c.Log.Level, Message: "must be debug, info, warn or error"}
	}
	return nil
}

// StoreKind returns the configured store kind.
func (c Config) StoreKind() store.Kind {
	kind, err := store.ParseKind(c.Buffer.Store)
	if err != nil {
		return store.KindDualStack
	}
	return kind
}

// LogLevel returns the configured log level.
func (c Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Log.Level)
	return level
}
