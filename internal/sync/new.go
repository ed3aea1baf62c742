package sync

import (
	gosync "sync"
	"time"

	pkgLog "taskboard/pkg/log"
)

const (
	defaultMaxAttempts = 3
	defaultBackoff     = 2 * time.Second
)

type implOutbox struct {
	l      pkgLog.Logger
	remote Doer
	cfg    Config
	gauge  Gauge

	mu            gosync.Mutex
	pending       []Op
	failed        []Op
	notifications []Notification
	appliers      map[string]Applier
	retrying      bool

	now   func() time.Time
	sleep func(d time.Duration) <-chan time.Time
}

// Option configures the outbox.
type Option func(*implOutbox)

// WithGauge reports the pending count to g.
func WithGauge(g Gauge) Option {
	return func(o *implOutbox) {
		o.gauge = g
	}
}

// New creates an in-memory outbox that replays through remote.
func New(l pkgLog.Logger, remote Doer, cfg Config, opts ...Option) Outbox {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = defaultBackoff
	}

	o := &implOutbox{
		l:        l,
		remote:   remote,
		cfg:      cfg,
		appliers: make(map[string]Applier),
		now:      time.Now,
		sleep:    time.After,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *implOutbox) RegisterApplier(collection string, a Applier) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.appliers[collection] = a
}

// reportLocked must be called with mu held.
func (o *implOutbox) reportLocked() {
	if o.gauge != nil {
		o.gauge.Set(float64(len(o.pending)))
	}
}
