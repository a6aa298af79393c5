package pulselog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/trickstertwo/pulselog/config"
)

// SinkFactory builds the sink named by config.Settings.Sink for the given tag.
// The syslog adapter registers itself from init(); stdout and stderr are built in.
type SinkFactory func(kind, tag string) (Sink, error)

var sinkFactory SinkFactory

// RegisterSinkFactory replaces the factory used by Default.
// Adapters call this from init() to avoid import cycles.
func RegisterSinkFactory(f SinkFactory) {
	sinkFactory = f
}

// Default builds a Logger from the PULSE_LOGGER_* environment settings:
// initial level, identifier, sink, polled config path, and SIGUSR1 toggle.
// Side-import github.com/trickstertwo/pulselog/adapter/syslog for the
// syslog sink.
func Default() (*Logger, error) {
	s, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	id := s.Identifier
	if id == "" {
		id = programName()
	}

	sink, err := buildSink(s.Sink, id)
	if err != nil {
		return nil, err
	}

	return NewBuilder().
		WithIdentifier(id).
		WithLevel(s.Level).
		WithSink(sink).
		WithPolling(s.ConfigPath).
		WithToggleSignal(DefaultToggleSignal).
		Build()
}

func buildSink(kind, tag string) (Sink, error) {
	if sinkFactory != nil {
		return sinkFactory(kind, tag)
	}
	switch kind {
	case config.SinkStdout:
		return newLineSink(os.Stdout), nil
	case config.SinkStderr:
		return newLineSink(os.Stderr), nil
	default:
		return nil, fmt.Errorf("pulselog: no factory registered for sink %q; import adapter/syslog", kind)
	}
}

// lineSink is the dependency-free fallback used when no factory is registered.
type lineSink struct {
	mu sync.Mutex
	w  io.Writer
}

func newLineSink(w io.Writer) *lineSink { return &lineSink{w: w} }

func (s *lineSink) Write(_ Level, tag, line string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "%s %s[%d]: %s\n", at.Format(time.RFC3339), tag, os.Getpid(), line)
}
