package zapadapter

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/pulselog"
)

// Sink bridges pulselog to go.uber.org/zap.
//
//   - Uses Logger.Check(level, msg) so disabled lines cost nothing.
//   - Writes pulselog's timestamp as an RFC3339Nano string field.
//   - SetThreshold drives a zap.AtomicLevel when one was supplied, keeping
//     zap's filter aligned with signal toggles and config reloads.
type Sink struct {
	l      *zap.Logger
	al     *zap.AtomicLevel // optional, enables SetThreshold
	tsKey  string
	tagKey string
}

// New creates a sink for the provided zap logger.
func New(l *zap.Logger) *Sink {
	return NewWithAtomicLevel(l, nil)
}

// NewWithAtomicLevel creates a sink and wires a zap.AtomicLevel so
// SetThreshold can dynamically adjust the backend's filter.
func NewWithAtomicLevel(l *zap.Logger, al *zap.AtomicLevel) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	return &Sink{l: l, al: al, tsKey: "ts", tagKey: "tag"}
}

// Write emits one entry. Emergency, alert, and critical map to zap's error
// level to avoid DPanic/Fatal side effects in library code.
func (s *Sink) Write(level pulselog.Level, tag, line string, at time.Time) {
	ce := s.l.Check(toZapLevel(level), line)
	if ce == nil {
		return
	}
	ce.Write(
		zap.String(s.tsKey, at.UTC().Format(time.RFC3339Nano)),
		zap.String(s.tagKey, tag),
	)
}

// SetThreshold updates the backend filter when an AtomicLevel was supplied.
func (s *Sink) SetThreshold(l pulselog.Level) {
	if s.al == nil {
		return
	}
	s.al.SetLevel(toZapLevel(l))
}

func toZapLevel(l pulselog.Level) zapcore.Level {
	switch {
	case l >= pulselog.LevelDebug:
		return zapcore.DebugLevel
	case l >= pulselog.LevelNotice:
		return zapcore.InfoLevel // zap has no notice; info is the closest
	case l == pulselog.LevelWarning:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
