package providers

import (
	"context"
	"log/slog"
	"time"

	"goal-announcer/internal/domain"
	"goal-announcer/internal/logging"
	"goal-announcer/internal/metrics"
)

// instrumentedProvider wraps a DataProvider with call metrics and logging.
// Upstream failures are never retried here; the caller decides whether a
// failure is terminal or maps to a "not found" outcome.
type instrumentedProvider struct {
	inner   DataProvider
	logger  *slog.Logger
	metrics *metrics.Recorder
	name    string
}

// NewInstrumentedProvider wraps the given provider with attempt/error/latency
// recording under the provider name.
func NewInstrumentedProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) DataProvider {
	return &instrumentedProvider{
		inner:   inner,
		logger:  logger,
		metrics: recorder,
		name:    name,
	}
}

func (p *instrumentedProvider) FetchWeekSchedule(ctx context.Context, team string) ([]domain.ScheduledGame, error) {
	start := time.Now()
	games, err := p.inner.FetchWeekSchedule(ctx, team)
	p.record(ctx, "schedule", start, err)
	return games, err
}

func (p *instrumentedProvider) FetchRoster(ctx context.Context, team, season string) ([]domain.Player, error) {
	start := time.Now()
	roster, err := p.inner.FetchRoster(ctx, team, season)
	p.record(ctx, "roster", start, err)
	return roster, err
}

func (p *instrumentedProvider) FetchGameDetail(ctx context.Context, gameID string) (domain.GameDetail, error) {
	start := time.Now()
	detail, err := p.inner.FetchGameDetail(ctx, gameID)
	p.record(ctx, "game_detail", start, err)
	return detail, err
}

func (p *instrumentedProvider) record(ctx context.Context, call string, start time.Time, err error) {
	duration := time.Since(start)
	if p.metrics != nil {
		p.metrics.RecordProviderAttempt(p.name, call, duration, err)
	}
	if err != nil {
		logger := logging.FromContext(ctx, p.logger)
		if logger != nil {
			logger.Warn("provider call failed",
				slog.String(logging.FieldProvider, p.name),
				slog.String("call", call),
				slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
				"error", err,
			)
		}
	}
}
