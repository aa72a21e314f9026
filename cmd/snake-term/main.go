package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/i582/cfmt/cmd/cfmt"

	"snake/internal/app"
	"snake/internal/core"
	"snake/internal/game"
	"snake/internal/term"
)

func main() {
	cfg := term.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		cfmt.Printf("{{error:}}::lightRed|bold %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *term.Config) error {
	out, err := app.OpenLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer out.Close()
	log, err := app.NewLogger(out, cfg.LogLevel)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	screen.DisableMouse()
	screen.HideCursor()

	w, h := screen.Size()
	gameCfg := cfg.GameConfig(w, h)
	if err := gameCfg.Validate(); err != nil {
		screen.Fini()
		return fmt.Errorf("terminal %dx%d too small: %w", w, h, err)
	}

	factory := func() (core.Session, error) {
		b, err := game.NewBoard(gameCfg, log)
		if err != nil {
			return nil, err
		}
		return b, nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := term.NewRunner(screen, factory, gameCfg.TickInterval, log)
	last, err := runner.Run(ctx)
	screen.Fini()
	if err != nil {
		return err
	}

	cfmt.Printf("{{SCORE}}::lightYellow|bold {{%d}}::bold  (%d cherries, length %d, %d games)\n",
		last.Score, last.Eaten, len(last.Body), runner.Games())
	return nil
}
