package pulselog

import (
	"fmt"
	"sync/atomic"
	"time"
)

// DefaultReloadInterval is the minimum time between two config reloads.
const DefaultReloadInterval = 60 * time.Second

// ConfigSource reads the operator-editable config document.
// config.FileSource is the production implementation.
type ConfigSource interface {
	Exists(path string) bool
	Load(path string) (map[string]any, error)
}

// Poller reloads the threshold from a config source, at most once per interval.
// It has no goroutine of its own: Logger.Log calls MaybeReload before every emit.
type Poller struct {
	target   *Logger
	path     string
	interval time.Duration
	source   ConfigSource

	// lastLoad is the Unix-nanosecond time of the last successful load.
	// Zero (the epoch) guarantees the first check loads.
	lastLoad atomic.Int64
}

func newPoller(target *Logger, path string, src ConfigSource, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultReloadInterval
	}
	return &Poller{
		target:   target,
		path:     path,
		interval: interval,
		source:   src,
	}
}

// Path returns the polled location.
func (p *Poller) Path() string { return p.path }

// Interval returns the reload cooldown.
func (p *Poller) Interval() time.Duration { return p.interval }

// LastLoad returns the time of the last successful load.
func (p *Poller) LastLoad() time.Time { return time.Unix(0, p.lastLoad.Load()) }

// MaybeReload loads the config source and applies its level when the
// cooldown has elapsed and the source exists. It reports whether a load
// happened. Load failures are returned wrapped in ErrReload and leave the
// last load time untouched, so the next call retries.
func (p *Poller) MaybeReload(now time.Time) (bool, error) {
	if p.path == "" {
		return false, nil
	}
	last := p.lastLoad.Load()
	if now.Sub(time.Unix(0, last)) <= p.interval {
		return false, nil
	}
	if !p.source.Exists(p.path) {
		return false, nil
	}
	// One caller wins the slot; the rest see the cooldown as not elapsed.
	stamp := now.UnixNano()
	if !p.lastLoad.CompareAndSwap(last, stamp) {
		return false, nil
	}

	cfg, err := p.source.Load(p.path)
	if err != nil {
		p.lastLoad.CompareAndSwap(stamp, last)
		return false, fmt.Errorf("%w: %s: %w", ErrReload, p.path, err)
	}
	p.target.setThreshold(ParseLevel(cfg["level"]), SourcePoll)
	return true, nil
}
