package zapadapter

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/pulselog"
)

// Config is an explicit, code-first configuration for zap + pulselog.
type Config struct {
	Writer        io.Writer // default: os.Stdout
	Identifier    string
	Level         any                   // anything pulselog.ParseLevel accepts
	Console       bool                  // console encoder instead of JSON
	EncoderConfig zapcore.EncoderConfig // if zero, a sensible default is used
	PollPath      string                // enables config reload
}

// Use builds a zap-backed pulselog.Logger from Config.
func Use(cfg Config) (*pulselog.Logger, error) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	// Do not let zap inject its own time (pulselog provides "ts").
	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" {
		encCfg = zapcore.EncoderConfig{
			LevelKey:       "level",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	}
	encCfg.TimeKey = ""

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	// AtomicLevel so Sink.SetThreshold can adjust dynamically.
	al := zap.NewAtomicLevelAt(toZapLevel(pulselog.ParseLevel(cfg.Level)))
	core := zapcore.NewCore(enc, zapcore.AddSync(w), al)
	zl := zap.New(core, zap.AddStacktrace(zapcore.FatalLevel+1))

	return pulselog.NewBuilder().
		WithIdentifier(cfg.Identifier).
		WithLevel(cfg.Level).
		WithSink(NewWithAtomicLevel(zl, &al)).
		WithPolling(cfg.PollPath).
		Build()
}
