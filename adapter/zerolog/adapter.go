package zerologadapter

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/pulselog"
)

// Sink bridges pulselog to rs/zerolog.
//
//   - Fast pre-check using GetLevel() to avoid allocating a zerolog.Event
//     when the level is disabled.
//   - Uses Logger.WithLevel(...), which never exits or panics, so emergency
//     and alert keep zerolog's panic/fatal labels without side effects.
//   - SetThreshold swaps the backend logger atomically; safe against
//     concurrent writes and signal toggles.
type Sink struct {
	l atomic.Pointer[zerolog.Logger]
}

func New(l zerolog.Logger) *Sink {
	s := &Sink{}
	s.l.Store(&l)
	return s
}

// Write emits a single entry with pulselog's timestamp as "ts".
func (s *Sink) Write(level pulselog.Level, tag, line string, at time.Time) {
	zl := s.l.Load()
	zlvl := mapLevel(level)

	// Fast path: drop early if below logger's min level (no Event allocation).
	if zlvl < zl.GetLevel() {
		return
	}

	zl.WithLevel(zlvl).
		Str("ts", at.UTC().Format(time.RFC3339Nano)).
		Str("tag", tag).
		Msg(line)
}

// SetThreshold keeps zerolog's own filter aligned with the pulselog threshold.
func (s *Sink) SetThreshold(l pulselog.Level) {
	lvl := mapLevel(l)
	for {
		cur := s.l.Load()
		next := cur.Level(lvl)
		if s.l.CompareAndSwap(cur, &next) {
			return
		}
	}
}

// mapLevel converts pulselog.Level to zerolog.Level.
func mapLevel(l pulselog.Level) zerolog.Level {
	switch {
	case l >= pulselog.LevelDebug:
		return zerolog.DebugLevel
	case l >= pulselog.LevelNotice:
		return zerolog.InfoLevel // zerolog has no notice
	case l == pulselog.LevelWarning:
		return zerolog.WarnLevel
	case l >= pulselog.LevelCritical:
		return zerolog.ErrorLevel
	case l == pulselog.LevelAlert:
		return zerolog.FatalLevel
	default:
		return zerolog.PanicLevel
	}
}
