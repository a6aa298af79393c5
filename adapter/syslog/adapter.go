//go:build !windows && !plan9

// Package syslogadapter routes pulselog output to the system log daemon, one
// connection per tag, translating each level to the native syslog priority.
package syslogadapter

import (
	"fmt"
	"log/syslog"
	"os"
	"sync"
	"time"

	"github.com/trickstertwo/pulselog"
)

// ErrorHandler defines how dial and write errors are handled
type ErrorHandler func(error)

func defaultErrorHandler(err error) {
	fmt.Fprintf(os.Stderr, "pulselog syslog error: %v\n", err)
}

// Options configures the sink. The zero value writes to the local daemon
// with the LOG_USER facility.
type Options struct {
	// Network and Addr select a remote daemon ("udp", "host:514").
	// Both empty means the local unix socket.
	Network string
	Addr    string

	// Facility is or'ed with the per-message severity. Default LOG_USER.
	Facility syslog.Priority

	ErrorHandler ErrorHandler
}

// Sink owns one *syslog.Writer per tag, dialled on first use.
type Sink struct {
	opts Options

	mu      sync.Mutex
	writers map[string]*syslog.Writer
}

// New returns a Sink. No connection is opened until the first Write.
func New(opts Options) *Sink {
	if opts.Facility == 0 {
		opts.Facility = syslog.LOG_USER
	}
	if opts.ErrorHandler == nil {
		opts.ErrorHandler = defaultErrorHandler
	}
	return &Sink{opts: opts, writers: make(map[string]*syslog.Writer)}
}

// Write implements pulselog.Sink. The daemon stamps its own time; at is unused.
func (s *Sink) Write(level pulselog.Level, tag, line string, _ time.Time) {
	w, err := s.writer(tag)
	if err != nil {
		s.opts.ErrorHandler(err)
		return
	}
	if err := send(w, level, line); err != nil {
		s.opts.ErrorHandler(fmt.Errorf("write %s: %w", tag, err))
	}
}

func (s *Sink) writer(tag string) (*syslog.Writer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.writers[tag]; ok {
		return w, nil
	}
	w, err := syslog.Dial(s.opts.Network, s.opts.Addr, s.opts.Facility|syslog.LOG_INFO, tag)
	if err != nil {
		return nil, fmt.Errorf("dial syslog for %s: %w", tag, err)
	}
	s.writers[tag] = w
	return w, nil
}

// send maps the level onto the writer method carrying the same severity.
func send(w *syslog.Writer, level pulselog.Level, line string) error {
	switch level {
	case pulselog.LevelEmergency:
		return w.Emerg(line)
	case pulselog.LevelAlert:
		return w.Alert(line)
	case pulselog.LevelCritical:
		return w.Crit(line)
	case pulselog.LevelError:
		return w.Err(line)
	case pulselog.LevelWarning:
		return w.Warning(line)
	case pulselog.LevelNotice:
		return w.Notice(line)
	case pulselog.LevelDebug:
		return w.Debug(line)
	default:
		return w.Info(line)
	}
}

// Close closes every open connection and returns the first error.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var first error
	for tag, w := range s.writers {
		if err := w.Close(); err != nil && first == nil {
			first = err
		}
		delete(s.writers, tag)
	}
	return first
}
