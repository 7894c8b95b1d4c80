package cmd

import (
	"io"
	"log/slog"
)

// NewLogger returns a JSON logger at info level in production and a text
// logger at debug level otherwise.
func NewLogger(cfg Config, w io.Writer) *slog.Logger {
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
