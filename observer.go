package pulselog

import "time"

// Entry is a read-only snapshot of an emitted message.
type Entry struct {
	At    time.Time
	Level Level
	Tag   string
	Line  string // "LABEL: message"
}

// ChangeSource identifies who moved the threshold.
type ChangeSource uint8

const (
	SourceSet ChangeSource = iota + 1
	SourceSignal
	SourcePoll
)

func (s ChangeSource) String() string {
	switch s {
	case SourceSet:
		return "set"
	case SourceSignal:
		return "signal"
	case SourcePoll:
		return "poll"
	default:
		return "unknown"
	}
}

// ConfigChange describes a threshold update.
type ConfigChange struct {
	Old    Level
	New    Level
	Source ChangeSource
}

// Observer receives notifications for emitted entries and threshold changes.
// Implementations MUST be concurrency-safe; OnConfig may run on the signal goroutine.
type Observer interface {
	OnEvent(e Entry)
	OnConfig(c ConfigChange)
}

// ObserverFuncs adapts plain functions to Observer. Nil funcs are skipped.
type ObserverFuncs struct {
	Event  func(Entry)
	Config func(ConfigChange)
}

func (o ObserverFuncs) OnEvent(e Entry) {
	if o.Event != nil {
		o.Event(e)
	}
}

func (o ObserverFuncs) OnConfig(c ConfigChange) {
	if o.Config != nil {
		o.Config(c)
	}
}
