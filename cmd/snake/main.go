//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"snake/internal/app"
	"snake/internal/core"
	"snake/internal/game"
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
	g, err := app.New(factory, cfg.Game.TileSize, cfg.Game.ScoreBoardPx, cfg.Game.TickInterval, log)
	if err != nil {
		log.Fatal().Err(err).Msg("start")
	}

	ebiten.SetWindowTitle("Snake")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(g.Layout(0, 0))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game loop")
	}
}
