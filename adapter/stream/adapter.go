// Package stream writes pulselog lines to any io.Writer:
//
//	2025-01-01T00:00:00Z myapp[4242]: WARNING: disk almost full
package stream

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/trickstertwo/pulselog"
)

// ErrorHandler defines how write errors are handled
type ErrorHandler func(error)

// MetricsCollector observes sink writes. Implementations must be concurrency-safe.
type MetricsCollector interface {
	WroteLine(level pulselog.Level, durMS float64, size int, err error)
}

// NoopMetricsCollector is a no-op implementation
type NoopMetricsCollector struct{}

func (*NoopMetricsCollector) WroteLine(level pulselog.Level, durMS float64, size int, err error) {}

// Options configures the sink behavior
type Options struct {
	// TimeFormat specifies the timestamp layout (empty = RFC3339Nano)
	TimeFormat string

	// DisablePID drops the "[pid]" suffix after the tag
	DisablePID bool

	// ErrorHandler receives write errors (default: one line on stderr)
	ErrorHandler ErrorHandler
}

// WriterFactory allows custom writers per level
type WriterFactory interface {
	GetWriter(level pulselog.Level) io.Writer
}

// DefaultWriterFactory sends all lines to the same writer
type DefaultWriterFactory struct {
	Writer io.Writer
}

func (f *DefaultWriterFactory) GetWriter(pulselog.Level) io.Writer {
	return f.Writer
}

// SplitWriterFactory sends WARNING and more severe lines to Severe and the rest to Normal.
type SplitWriterFactory struct {
	Normal io.Writer
	Severe io.Writer
}

func (f *SplitWriterFactory) GetWriter(level pulselog.Level) io.Writer {
	if level <= pulselog.LevelWarning {
		return f.Severe
	}
	return f.Normal
}

// Sink writes one line per entry with pooled buffers and serialized writes.
type Sink struct {
	writerFactory WriterFactory
	mu            sync.Mutex
	opts          Options
	pid           int
	metrics       MetricsCollector
}

func defaultErrorHandler(err error) {
	fmt.Fprintf(os.Stderr, "pulselog stream error: %v\n", err)
}

// New creates a Sink writing to w.
func New(w io.Writer, opts Options) *Sink {
	return NewWithWriterFactory(&DefaultWriterFactory{Writer: w}, opts)
}

// NewWithWriterFactory creates a Sink with a custom writer factory.
func NewWithWriterFactory(factory WriterFactory, opts Options) *Sink {
	if factory == nil {
		factory = &DefaultWriterFactory{Writer: os.Stdout}
	}
	if opts.TimeFormat == "" {
		opts.TimeFormat = time.RFC3339Nano
	}
	if opts.ErrorHandler == nil {
		opts.ErrorHandler = defaultErrorHandler
	}
	return &Sink{
		writerFactory: factory,
		opts:          opts,
		pid:           os.Getpid(),
		metrics:       &NoopMetricsCollector{},
	}
}

// SetMetricsCollector sets a custom metrics collector for observability
func (s *Sink) SetMetricsCollector(c MetricsCollector) {
	if c == nil {
		c = &NoopMetricsCollector{}
	}
	s.metrics = c
}

// Write implements pulselog.Sink.
func (s *Sink) Write(level pulselog.Level, tag, line string, at time.Time) {
	w := s.writerFactory.GetWriter(level)
	if w == nil {
		return
	}
	start := time.Now()
	buf := getBuf()
	defer putBuf(buf)

	buf.b = at.AppendFormat(buf.b, s.opts.TimeFormat)
	buf.writeByte(' ')
	buf.writeString(tag)
	if !s.opts.DisablePID {
		buf.writeByte('[')
		appendInt(buf, s.pid)
		buf.writeByte(']')
	}
	buf.writeString(": ")
	buf.writeString(line)
	buf.writeByte('\n')

	// Write the line atomically
	s.mu.Lock()
	n, err := w.Write(buf.b)
	s.mu.Unlock()

	if err != nil {
		s.opts.ErrorHandler(fmt.Errorf("failed to write log line: %w", err))
	}
	s.metrics.WroteLine(level, time.Since(start).Seconds()*1000, n, err)
}

// ------ Buffer Management ------

// buffer wraps a byte slice with efficient write operations
type buffer struct{ b []byte }

func (buf *buffer) writeString(s string) { buf.b = append(buf.b, s...) }
func (buf *buffer) writeByte(c byte)     { buf.b = append(buf.b, c) }

var bufPool = sync.Pool{
	New: func() any { return &buffer{b: make([]byte, 0, 512)} },
}

func getBuf() *buffer {
	buf := bufPool.Get().(*buffer)
	buf.b = buf.b[:0]
	return buf
}

func putBuf(buf *buffer) {
	// Keep pool bounded; drop extremely large buffers
	if cap(buf.b) <= 64*1024 {
		bufPool.Put(buf)
	}
}

func appendInt(buf *buffer, v int) {
	if v == 0 {
		buf.writeByte('0')
		return
	}
	if v < 0 {
		buf.writeByte('-')
		v = -v
	}
	var tmp [20]byte
	i := len(tmp)
	for v > 0 {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
	}
	buf.b = append(buf.b, tmp[i:]...)
}
