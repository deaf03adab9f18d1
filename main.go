package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wumpusworld/pkg/engine/terminal"
	"wumpusworld/pkg/game/config"
	"wumpusworld/pkg/game/devtools"
	"wumpusworld/pkg/game/gameplay"
	"wumpusworld/pkg/game/generator"
	"wumpusworld/pkg/game/i18n"
	"wumpusworld/pkg/game/renderer"
	ebitenrenderer "wumpusworld/pkg/game/renderer/ebiten"
	"wumpusworld/pkg/game/renderer/tui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup runs before exit
func run(args []string) int {
	cfg, err := config.Load(args)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeLog()

	if err := i18n.Load(cfg.Language); err != nil {
		slog.Error("cannot load messages", "error", err)
		return 1
	}

	if cfg.Dump {
		if err := dumpBoard(cfg, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := newRenderer(cfg.Renderer)
	r.Init()

	session := gameplay.NewSession(generator.DefaultGenerator, cfg.Size, cfg.Seed, slog.Default())
	slog.Info("starting", "renderer", cfg.Renderer, "size", cfg.Size, "tick", cfg.Tick, "lang", cfg.Language)

	if err := r.Run(ctx, session, cfg.Tick); err != nil {
		slog.Error("renderer stopped", "error", err)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func newRenderer(name string) renderer.Renderer {
	if name == config.RendererEbiten {
		return ebitenrenderer.New()
	}
	return tui.New()
}

// setupLogging installs the default slog logger. The text renderer owns
// the terminal, so without a log file its logs are dropped.
func setupLogging(cfg config.Config) (func(), error) {
	var out io.Writer = os.Stderr
	closeLog := func() {}

	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	case cfg.Renderer == config.RendererTUI && !cfg.Dump && terminal.IsTerminal(os.Stderr):
		out = io.Discard
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.LogLevel})))
	return closeLog, nil
}

// dumpBoard prints one fully revealed board
func dumpBoard(cfg config.Config, w io.Writer) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g, err := gameplay.BuildGame(generator.DefaultGenerator, cfg.Size, seed)
	if err != nil {
		return err
	}
	return devtools.DumpBoard(w, g, true)
}
