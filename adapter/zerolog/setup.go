package zerologadapter

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/pulselog"
)

// Config is an explicit, code-first configuration for zerolog + pulselog.
type Config struct {
	Writer            io.Writer // default: os.Stdout
	Identifier        string
	Level             any    // anything pulselog.ParseLevel accepts
	Console           bool   // pretty console output instead of JSON
	ConsoleTimeFormat string // only used if Console==true; default time.RFC3339Nano
	PollPath          string // enables config reload
}

// Use builds a zerolog-backed pulselog.Logger from Config.
func Use(cfg Config) (*pulselog.Logger, error) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	var zl zerolog.Logger
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.ConsoleTimeFormat}
		if cw.TimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}

	// Builder propagates the initial threshold through SetThreshold.
	return pulselog.NewBuilder().
		WithIdentifier(cfg.Identifier).
		WithLevel(cfg.Level).
		WithSink(New(zl)).
		WithPolling(cfg.PollPath).
		Build()
}
