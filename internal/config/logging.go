package config

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
)

// NewLogger returns a colored debug logger in development and a JSON info
// logger otherwise.
func NewLogger(c *Config, w io.Writer) *slog.Logger {
	if c.Development() {
		return slog.New(
			tint.NewHandler(w, &tint.Options{Level: slog.LevelDebug}),
		)
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}
