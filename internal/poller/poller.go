// Package poller keeps the game-id cache warm by resolving today's game on
// an interval, so the first announcement request does not pay the upstream
// round trip.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"goal-announcer/internal/logging"
	"goal-announcer/internal/metrics"
)

const defaultInterval = 30 * time.Second

// Resolver looks up today's game id, consulting the cache first.
type Resolver interface {
	ResolveToday(ctx context.Context) (string, bool)
}

// Poller resolves today's game on an interval.
type Poller struct {
	resolver Resolver
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent activity of the polling loop. Resolution
// cannot fail (upstream trouble downgrades to "no game"), so each cycle
// is an attempt and a completion in one.
type Status struct {
	LastCycle time.Time
	GameID    string
	GameFound bool
	Cycles    int
}

// IsReady reports whether at least one resolution cycle has completed. A
// day without a game still counts as ready; the service has an answer.
func (s Status) IsReady() bool {
	return s.Cycles > 0
}

// New constructs a Poller with sane defaults.
func New(resolver Resolver, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		resolver: resolver,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Warm the cache on boot before the first tick.
		p.resolveOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.resolveOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) resolveOnce(ctx context.Context) {
	start := time.Now()
	gameID, found := p.resolver.ResolveToday(ctx)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), nil)
	}
	p.recordCycle(gameID, found, start)
	if found {
		p.logInfo("poller resolved today's game",
			slog.String(logging.FieldGameID, gameID),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		return
	}
	p.logInfo("poller found no game today",
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) recordCycle(gameID string, found bool, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastCycle = at
	p.status.GameID = gameID
	p.status.GameFound = found
	p.status.Cycles++
}

// Status returns a snapshot of the poller's recent activity.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
