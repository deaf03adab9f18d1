// Package config loads game settings from the environment, an optional
// .env file and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"wumpusworld/pkg/game/i18n"
)

// Renderer names
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Defaults
const (
	DefaultSize     = 4
	DefaultTick     = 100 * time.Millisecond
	DefaultRenderer = RendererTUI
	DefaultEnvFile  = ".env"
)

// ErrInvalid is wrapped by every validation error
var ErrInvalid = errors.New("invalid configuration")

// Config holds the game's settings.
type Config struct {
	Size     int           // Board side length
	Seed     uint64        // Session seed; 0 picks one from the clock
	Tick     time.Duration // Time between automatic steps
	Language string        // Message catalog, see i18n.Languages
	Renderer string        // RendererTUI or RendererEbiten
	LogLevel slog.Level
	LogFile  string // Log destination; empty means stderr
	Dump     bool   // Print one generated board and exit
}

// LookupFunc finds a setting by environment variable name.
type LookupFunc func(key string) (string, bool)

// Load reads DefaultEnvFile if present, then the process environment, then
// args (without the program name).
func Load(args []string) (Config, error) {
	lookup, err := EnvLookup(DefaultEnvFile)
	if err != nil {
		return Config{}, err
	}
	return Parse(args, lookup)
}

// EnvLookup returns a lookup over the process environment backed by the
// given .env files. Variables already set in the environment win. Missing
// files are skipped.
func EnvLookup(files ...string) (LookupFunc, error) {
	fileEnv := make(map[string]string)
	for _, file := range files {
		values, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug(".env file not found", "file", file)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		for k, v := range values {
			if _, seen := fileEnv[k]; !seen {
				fileEnv[k] = v
			}
		}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}, nil
}

// Parse builds a Config from lookup and then applies args as flag
// overrides.
func Parse(args []string, lookup LookupFunc) (Config, error) {
	cfg := Config{
		Size:     DefaultSize,
		Tick:     DefaultTick,
		Language: i18n.DefaultLanguage,
		Renderer: DefaultRenderer,
		LogLevel: slog.LevelInfo,
	}

	var err error
	if cfg.Size, err = intEnv(lookup, "WUMPUS_SIZE", cfg.Size); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = uintEnv(lookup, "WUMPUS_SEED", cfg.Seed); err != nil {
		return Config{}, err
	}
	if cfg.Tick, err = durationEnv(lookup, "WUMPUS_TICK", cfg.Tick); err != nil {
		return Config{}, err
	}
	cfg.Language = stringEnv(lookup, "WUMPUS_LANG", cfg.Language)
	cfg.Renderer = stringEnv(lookup, "WUMPUS_RENDERER", cfg.Renderer)
	cfg.LogFile = stringEnv(lookup, "WUMPUS_LOG_FILE", cfg.LogFile)
	logLevel := stringEnv(lookup, "WUMPUS_LOG_LEVEL", cfg.LogLevel.String())

	flags := flag.NewFlagSet("wumpusworld", flag.ContinueOnError)
	flags.IntVar(&cfg.Size, "size", cfg.Size, "board side length")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "session seed (0 = time based)")
	flags.DurationVar(&cfg.Tick, "tick", cfg.Tick, "time between automatic steps")
	flags.StringVar(&cfg.Language, "lang", cfg.Language, "message language (en, es)")
	flags.StringVar(&cfg.Renderer, "renderer", cfg.Renderer, "renderer (tui, ebiten)")
	flags.StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "append logs to this file instead of stderr")
	flags.BoolVar(&cfg.Dump, "dump", false, "print a generated board and exit")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return Config{}, fmt.Errorf("%w: log level %q", ErrInvalid, logLevel)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: size must be at least 1, got %d", ErrInvalid, c.Size)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive, got %s", ErrInvalid, c.Tick)
	}
	if !i18n.IsSupported(c.Language) {
		return fmt.Errorf("%w: unsupported language %q", ErrInvalid, c.Language)
	}
	switch c.Renderer {
	case RendererTUI, RendererEbiten:
	default:
		return fmt.Errorf("%w: unknown renderer %q", ErrInvalid, c.Renderer)
	}
	return nil
}

func stringEnv(lookup LookupFunc, key, fallback string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return fallback
}

func intEnv(lookup LookupFunc, key string, fallback int) (int, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalid, key, err)
	}
	return n, nil
}

func uintEnv(lookup LookupFunc, key string, fallback uint64) (uint64, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer: %v", ErrInvalid, key, err)
	}
	return n, nil
}

func durationEnv(lookup LookupFunc, key string, fallback time.Duration) (time.Duration, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a duration: %v", ErrInvalid, key, err)
	}
	return d, nil
}
