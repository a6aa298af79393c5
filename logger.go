package pulselog

import (
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// Logger holds the threshold, identifier, and sink shared by every call site.
// Build one per logging identity and pass it around by pointer.
type Logger struct {
	ident string
	sink  Sink
	now   func() time.Time

	// threshold is the only field read on the hot path. Writers hold setMu
	// so the sink's own filter is updated in the same order.
	threshold atomic.Int32
	setMu     sync.Mutex

	poller     *Poller // nil when polling is disabled
	stopSignal func()
	closeOnce  sync.Once
	closeErr   error

	// Observers: lock-free reads via atomic.Value; synchronized updates via obsMu.
	// Stored value is []Observer and MUST be treated as immutable by readers.
	observers atomic.Value
	obsMu     sync.Mutex
}

// Identifier returns the tag attached to every message.
func (l *Logger) Identifier() string { return l.ident }

// Threshold returns the least severe level currently emitted.
func (l *Logger) Threshold() Level { return Level(l.threshold.Load()) }

// Poller returns the config poller, or nil when polling is disabled.
func (l *Logger) Poller() *Poller { return l.poller }

// SetThreshold replaces the threshold. Invalid levels become LevelInfo.
func (l *Logger) SetThreshold(level Level) {
	l.setThreshold(level, SourceSet)
}

// SetLevel parses v with ParseLevel and applies it.
func (l *Logger) SetLevel(v any) {
	l.setThreshold(ParseLevel(v), SourceSet)
}

func (l *Logger) setThreshold(level Level, src ChangeSource) {
	old, cur := l.updateThreshold(func(Level) Level { return level })
	l.changed(old, cur, src)
}

// updateThreshold stores next(current) and pushes it to the sink under setMu.
// Readers never take the lock.
func (l *Logger) updateThreshold(next func(cur Level) Level) (old, cur Level) {
	l.setMu.Lock()
	defer l.setMu.Unlock()
	old = Level(l.threshold.Load())
	cur = next(old)
	if !cur.Valid() {
		cur = LevelInfo
	}
	l.threshold.Store(int32(cur))
	if ts, ok := l.sink.(thresholdSetter); ok {
		ts.SetThreshold(cur)
	}
	return old, cur
}

// changed notifies observers of a threshold update.
func (l *Logger) changed(old, cur Level, src ChangeSource) {
	if old == cur {
		return
	}
	c := ConfigChange{Old: old, New: cur, Source: src}
	for _, o := range l.loadObservers() {
		o.OnConfig(c)
	}
}

// Enabled reports whether a message at level would be emitted now.
// Use to avoid building expensive arguments when disabled.
func (l *Logger) Enabled(level Level) bool {
	return level.Valid() && level <= Level(l.threshold.Load())
}

// Log emits m at level. When polling is enabled the config source is
// checked first; a failed reload is returned and m is not emitted.
// A suppressed message is never resolved.
func (l *Logger) Log(level Level, m Message) error {
	if l.poller != nil {
		if _, err := l.poller.MaybeReload(l.now()); err != nil {
			return err
		}
	}
	l.emit(level, m)
	return nil
}

func (l *Logger) emit(level Level, m Message) {
	if !l.Enabled(level) {
		return
	}
	msg, ok := m.resolve()
	if !ok {
		return
	}
	line := level.String() + ": " + msg
	at := l.now()

	l.sink.Write(level, l.ident, line, at)

	obs := l.loadObservers()
	if len(obs) == 0 {
		return
	}
	e := Entry{At: at, Level: level, Tag: l.ident, Line: line}
	for _, o := range obs {
		o.OnEvent(e)
	}
}

// AddObserver registers o for entries and threshold changes.
func (l *Logger) AddObserver(o Observer) {
	if o == nil {
		return
	}
	l.obsMu.Lock()
	defer l.obsMu.Unlock()
	cur := l.loadObservers()
	next := make([]Observer, len(cur), len(cur)+1)
	copy(next, cur)
	l.observers.Store(append(next, o))
}

func (l *Logger) loadObservers() []Observer {
	v, _ := l.observers.Load().([]Observer)
	return v
}

// Close unregisters the toggle signal and closes the sink when it is an io.Closer.
// Only the first call does any work; later calls return its result.
func (l *Logger) Close() error {
	l.closeOnce.Do(func() {
		if l.stopSignal != nil {
			l.stopSignal()
		}
		if c, ok := l.sink.(io.Closer); ok {
			l.closeErr = c.Close()
		}
	})
	return l.closeErr
}
