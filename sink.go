package pulselog

import "time"

// Sink is the output Strategy (syslog, stream, zap, ...).
// line is already prefixed with the level label; tag is the logger identifier.
// Write must return; failures are the sink's concern and never reach the caller.
type Sink interface {
	Write(level Level, tag, line string, at time.Time)
}

// thresholdSetter is an optional interface sinks can implement to keep
// their own backend filter aligned with the logger threshold.
type thresholdSetter interface {
	SetThreshold(Level)
}
