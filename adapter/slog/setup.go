package slogadapter

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/pulselog"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for slog + pulselog.
type Config struct {
	Writer     io.Writer // default: os.Stdout
	Identifier string
	Level      any    // anything pulselog.ParseLevel accepts
	Format     Format // JSON (default) or Text
	PollPath   string // enables config reload
}

// Use builds a slog-backed pulselog.Logger from Config.
func Use(cfg Config) (*pulselog.Logger, error) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	// LevelVar allows dynamic SetThreshold on the sink.
	var lv slog.LevelVar
	opts := &slog.HandlerOptions{Level: &lv, ReplaceAttr: ReplaceLevelNames}

	var h slog.Handler
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}

	return pulselog.NewBuilder().
		WithIdentifier(cfg.Identifier).
		WithLevel(cfg.Level).
		WithSink(NewWithLevelVar(slog.New(h), &lv)).
		WithPolling(cfg.PollPath).
		Build()
}
