package pulselog

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/trickstertwo/xclock"

	"github.com/trickstertwo/pulselog/config"
)

// Config for constructing a Logger (Factory data structure).
type Config struct {
	Identifier string
	Level      any // anything ParseLevel accepts; nil means LevelInfo
	Sink       Sink
	Observers  []Observer
	Clock      xclock.Clock // optional; defaults to xclock.Default() at call time

	// PollPath enables file-based reload when non-empty.
	PollPath       string
	PollSource     ConfigSource  // defaults to config.NewFileSource(afero.NewOsFs())
	ReloadInterval time.Duration // defaults to DefaultReloadInterval

	// ToggleSignal binds a Toggler when non-nil.
	ToggleSignal os.Signal
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) WithIdentifier(id string) *Builder {
	b.cfg.Identifier = id
	return b
}

func (b *Builder) WithLevel(v any) *Builder {
	b.cfg.Level = v
	return b
}

func (b *Builder) WithSink(s Sink) *Builder {
	b.cfg.Sink = s
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

// WithPolling enables config reload from path. An empty path disables it.
func (b *Builder) WithPolling(path string) *Builder {
	b.cfg.PollPath = path
	return b
}

func (b *Builder) WithConfigSource(src ConfigSource) *Builder {
	b.cfg.PollSource = src
	return b
}

func (b *Builder) WithReloadInterval(d time.Duration) *Builder {
	b.cfg.ReloadInterval = d
	return b
}

func (b *Builder) WithToggleSignal(sig os.Signal) *Builder {
	b.cfg.ToggleSignal = sig
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

// Build constructs the Logger (Factory + Builder).
func (b *Builder) Build() (*Logger, error) {
	return New(b.cfg)
}

// New constructs a Logger from cfg.
func New(cfg Config) (*Logger, error) {
	if cfg.Sink == nil {
		return nil, ErrNoSink
	}
	l := &Logger{
		ident: cfg.Identifier,
		sink:  cfg.Sink,
		now:   xclock.Now,
	}
	if l.ident == "" {
		l.ident = programName()
	}
	if cfg.Clock != nil {
		l.now = cfg.Clock.Now
	}
	for _, o := range cfg.Observers {
		l.AddObserver(o)
	}

	level := ParseLevel(cfg.Level)
	l.threshold.Store(int32(level))
	// Propagate the initial threshold into the sink when supported.
	if ts, ok := l.sink.(thresholdSetter); ok {
		ts.SetThreshold(level)
	}

	if cfg.PollPath != "" {
		src := cfg.PollSource
		if src == nil {
			src = config.NewFileSource(afero.NewOsFs())
		}
		l.poller = newPoller(l, cfg.PollPath, src, cfg.ReloadInterval)
	}
	if cfg.ToggleSignal != nil {
		l.stopSignal = RegisterAsyncTrigger(cfg.ToggleSignal, NewToggler(l).OnTrigger)
	}
	return l, nil
}

func programName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return "pulselog"
	}
	return filepath.Base(os.Args[0])
}
