// Package schedule resolves which game, if any, the configured team plays
// today, caching the answer for the rest of the team-local day.
package schedule

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"goal-announcer/internal/domain"
	"goal-announcer/internal/logging"
	"goal-announcer/internal/metrics"
	"goal-announcer/internal/providers"
	"goal-announcer/internal/timeutil"
)

// Store is the slice of the state store the resolver needs.
type Store interface {
	GameRef(ctx context.Context) (domain.GameRef, bool, error)
	SetGameRef(ctx context.Context, ref domain.GameRef) error
}

// RosterLoader refreshes and inspects the roster tied to a resolved season.
type RosterLoader interface {
	Reload(ctx context.Context, team, season string) error
	Loaded(ctx context.Context) bool
}

// Service resolves today's game id with a date-keyed single-slot cache.
type Service struct {
	// mu serializes the read-check-write sequence so concurrent misses on
	// a date boundary cannot interleave.
	mu       sync.Mutex
	store    Store
	roster   RosterLoader
	provider providers.ScheduleProvider
	team     string
	loc      *time.Location
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// NewService constructs a resolver for one team observed in loc.
func NewService(store Store, roster RosterLoader, provider providers.ScheduleProvider, team string, loc *time.Location, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		store:    store,
		roster:   roster,
		provider: provider,
		team:     team,
		loc:      loc,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// ResolveToday returns the id of today's game for the configured team.
// The cached reference is served only while its date equals the current
// team-local date and a roster is loaded; any other state refetches the
// weekly schedule. Upstream failures are reported as "no game"; callers
// cannot tell them apart from an off day, the distinction lives in logs
// and metrics only.
func (s *Service) ResolveToday(ctx context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := timeutil.LocalDate(s.now(), s.loc)
	logger := logging.FromContext(ctx, s.logger)

	ref, ok, err := s.store.GameRef(ctx)
	if err != nil {
		logging.Warn(logger, "game ref lookup failed", "error", err)
	}
	if err == nil && ok && ref.Date == date && ref.Team == s.team && s.roster.Loaded(ctx) {
		s.metrics.RecordCacheLookup(true)
		if logger != nil {
			logger.Debug("game id served from cache",
				slog.String(logging.FieldDate, date),
				slog.String(logging.FieldGameID, ref.GameID),
			)
		}
		return ref.GameID, true
	}
	s.metrics.RecordCacheLookup(false)

	games, err := s.provider.FetchWeekSchedule(ctx, s.team)
	if err != nil {
		logging.Warn(logger, "schedule fetch failed, reporting no game",
			slog.String(logging.FieldTeam, s.team),
			slog.String(logging.FieldDate, date),
			"error", err,
		)
		return "", false
	}

	for _, game := range games {
		if game.Date != date {
			continue
		}

		next := domain.GameRef{
			Team:   s.team,
			Date:   date,
			GameID: game.ID,
			Season: game.Season,
		}
		if err := s.store.SetGameRef(ctx, next); err != nil {
			logging.Warn(logger, "game ref store failed", "error", err)
		}

		// A failed reload leaves the roster empty, which forces the next
		// call back through this path; the game id itself is still good.
		if err := s.roster.Reload(ctx, s.team, game.Season); err != nil {
			logging.Warn(logger, "roster refresh failed during resolution",
				slog.String(logging.FieldSeason, game.Season),
				"error", err,
			)
		}

		logging.Info(logger, "resolved today's game",
			slog.String(logging.FieldTeam, s.team),
			slog.String(logging.FieldDate, date),
			slog.String(logging.FieldGameID, game.ID),
			slog.String(logging.FieldSeason, game.Season),
		)
		return game.ID, true
	}

	if logger != nil {
		logger.Debug("no game scheduled today",
			slog.String(logging.FieldTeam, s.team),
			slog.String(logging.FieldDate, date),
		)
	}
	return "", false
}
