package pulselog

// Toggler flips a Logger between LevelInfo and LevelDebug.
// Bind OnTrigger to an operator signal with RegisterAsyncTrigger or
// Builder.WithToggleSignal.
type Toggler struct {
	l *Logger
}

// NewToggler returns a Toggler for l.
func NewToggler(l *Logger) *Toggler { return &Toggler{l: l} }

// OnTrigger switches DEBUG to INFORMATIONAL (confirmed at NOTICE) and anything
// else to DEBUG (confirmed at DEBUG). The confirmation is emitted after the
// threshold update returns, outside its lock.
func (t *Toggler) OnTrigger() {
	l := t.l
	confirm := LevelDebug
	old, next := l.updateThreshold(func(cur Level) Level {
		if cur == LevelDebug {
			confirm = LevelNotice
			return LevelInfo
		}
		confirm = LevelDebug
		return LevelDebug
	})
	l.changed(old, next, SourceSignal)
	l.emit(confirm, Lazyf("log level set to %s", next))
}
