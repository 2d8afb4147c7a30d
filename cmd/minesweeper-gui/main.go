//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/app"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/mines"
)

func main() {
	flags := config.BindFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := config.NewLogger(cfg, os.Stderr)
	mines.Log = logger
	if cfg.Development() {
		game.Log.SetLevel(logrus.DebugLevel)
	}

	params, err := config.ParseParams(cfg.Params)
	if err != nil {
		logger.Error("unable to parse board params", slog.Any("error", err))
		os.Exit(2)
	}

	g, err := game.New(params)
	if err != nil {
		logger.Error("unable to start game", slog.Any("error", err))
		os.Exit(1)
	}

	a := app.New(g, cfg.TileSize, logger)
	w, h := a.Layout(0, 0)

	ebiten.SetWindowTitle("Minesweeper")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	logger.Info("starting", slog.Any("config", cfg), config.ParamsAttr(params))
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game loop failed", slog.Any("error", err))
		os.Exit(1)
	}
}
