package pulselog

import "errors"

var (
	// ErrNoSink is returned by Builder.Build when no sink was configured.
	ErrNoSink = errors.New("pulselog: no sink configured")

	// ErrReload wraps failures of the polled config source. It is returned
	// from the log call that triggered the reload.
	ErrReload = errors.New("pulselog: config reload failed")
)
