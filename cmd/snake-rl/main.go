//go:build raylib

package main

import (
	"flag"
	"fmt"
	"os"

	"snake/internal/app"
	"snake/internal/core"
	"snake/internal/game"
	"snake/internal/rlview"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := cfg.Game.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	factory := func() (core.Session, error) {
		b, err := game.NewBoard(cfg.Game, log)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	view := rlview.New(factory, cfg.Game.TileSize, cfg.Game.ScoreBoardPx, cfg.Game.TickInterval, log)
	if err := view.Run(); err != nil {
		log.Fatal().Err(err).Msg("game loop")
	}
}
