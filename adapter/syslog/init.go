//go:build !windows && !plan9

package syslogadapter

import (
	"fmt"
	"os"

	"github.com/trickstertwo/pulselog"
	"github.com/trickstertwo/pulselog/adapter/stream"
	"github.com/trickstertwo/pulselog/config"
)

// Register this adapter as the sink factory for pulselog.Default().
// PULSE_LOGGER_SINK=stdout|stderr still selects a stream sink.
func init() {
	pulselog.RegisterSinkFactory(func(kind, _ string) (pulselog.Sink, error) {
		switch kind {
		case config.SinkSyslog, "":
			return New(Options{}), nil
		case config.SinkStdout:
			return stream.New(os.Stdout, stream.Options{}), nil
		case config.SinkStderr:
			return stream.New(os.Stderr, stream.Options{}), nil
		default:
			return nil, fmt.Errorf("syslog: unknown sink kind %q", kind)
		}
	})
}
