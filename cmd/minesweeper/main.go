package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/mines"
)

var flags = config.BindFlags(flag.CommandLine)

func setupLogging(cfg *config.Config) *slog.Logger {
	logger := config.NewLogger(cfg, os.Stderr)
	mines.Log = logger

	game.Log.SetOutput(os.Stderr)
	game.Log.SetFormatter(&logrus.TextFormatter{ForceColors: cfg.Development()})
	if cfg.Development() {
		game.Log.SetLevel(logrus.DebugLevel)
	} else {
		game.Log.SetLevel(logrus.WarnLevel)
	}
	return logger
}

func main() {
	flag.Parse()

	cfg, err := flags.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := setupLogging(cfg)
	logger.Debug("config", slog.Any("config", cfg))

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

	logger.Info("starting", config.ParamsAttr(params))

	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	out := &lockedWriter{w: os.Stdout}
	lines := scanLines(os.Stdin)

	eg, egCtx := errgroup.WithContext(mainCtx)
	eg.Go(func() error {
		return play(egCtx, g, lines, out)
	})
	eg.Go(func() error {
		return tick(egCtx, g, time.Second, out)
	})

	err = eg.Wait()
	switch {
	case err == nil,
		errors.Is(err, game.ErrQuit),
		errors.Is(err, errInputClosed),
		errors.Is(err, context.Canceled):
		logger.Debug("bye", slog.Any("reason", err))
	default:
		logger.Error("exit", slog.Any("error", err))
		os.Exit(1)
	}
}
