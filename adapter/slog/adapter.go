package slogadapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/trickstertwo/pulselog"
)

// Syslog severities slog does not define, placed between and above its own.
const (
	LevelNotice    slog.Level = 2
	LevelCritical  slog.Level = 12
	LevelAlert     slog.Level = 16
	LevelEmergency slog.Level = 20
)

// SlogSink adapts pulselog to the Go slog API (Sink Strategy).
type SlogSink struct {
	l  *slog.Logger
	lv *slog.LevelVar // optional, enables SetThreshold
}

func New(l *slog.Logger) *SlogSink {
	return NewWithLevelVar(l, nil)
}

// NewWithLevelVar wires a LevelVar so SetThreshold can adjust the handler filter.
func NewWithLevelVar(l *slog.Logger, lv *slog.LevelVar) *SlogSink {
	if l == nil {
		l = slog.Default()
	}
	return &SlogSink{l: l, lv: lv}
}

func (s *SlogSink) Write(level pulselog.Level, tag, line string, at time.Time) {
	// Use LogAttrs for minimal allocations
	s.l.LogAttrs(context.Background(), toSlog(level), line,
		slog.Time("ts", at),
		slog.String("tag", tag),
	)
}

// SetThreshold updates the LevelVar when one was supplied.
func (s *SlogSink) SetThreshold(l pulselog.Level) {
	if s.lv == nil {
		return
	}
	s.lv.Set(toSlog(l))
}

func toSlog(l pulselog.Level) slog.Level {
	switch l {
	case pulselog.LevelEmergency:
		return LevelEmergency
	case pulselog.LevelAlert:
		return LevelAlert
	case pulselog.LevelCritical:
		return LevelCritical
	case pulselog.LevelError:
		return slog.LevelError
	case pulselog.LevelWarning:
		return slog.LevelWarn
	case pulselog.LevelNotice:
		return LevelNotice
	case pulselog.LevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// ReplaceLevelNames renders the custom levels by name instead of "INFO+2",
// "ERROR+4" and so on. Use as slog.HandlerOptions.ReplaceAttr.
func ReplaceLevelNames(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	lvl, ok := a.Value.Any().(slog.Level)
	if !ok {
		return a
	}
	switch lvl {
	case LevelNotice:
		a.Value = slog.StringValue("NOTICE")
	case LevelCritical:
		a.Value = slog.StringValue("CRITICAL")
	case LevelAlert:
		a.Value = slog.StringValue("ALERT")
	case LevelEmergency:
		a.Value = slog.StringValue("EMERGENCY")
	}
	return a
}
