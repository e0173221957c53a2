// Package roster loads a team's season roster and answers jersey-number
// lookups for scoring players.
package roster

import (
	"context"
	"log/slog"

	"goal-announcer/internal/domain"
	"goal-announcer/internal/logging"
	"goal-announcer/internal/providers"
)

// Store is the slice of the state store the roster service needs.
type Store interface {
	Roster(ctx context.Context) ([]domain.Player, error)
	SetRoster(ctx context.Context, roster []domain.Player) error
	ClearRoster(ctx context.Context) error
}

// Service coordinates roster loads against a Store.
type Service struct {
	store    Store
	provider providers.RosterProvider
	logger   *slog.Logger
}

// NewService constructs a Service.
func NewService(store Store, provider providers.RosterProvider, logger *slog.Logger) *Service {
	return &Service{
		store:    store,
		provider: provider,
		logger:   logger,
	}
}

// Reload clears the stored roster and refetches it for the season. The clear
// happens first so a failed refetch leaves the roster empty rather than
// serving the previous season's numbers; the empty roster makes the next
// game resolution retry the load.
func (s *Service) Reload(ctx context.Context, team, season string) error {
	if err := s.store.ClearRoster(ctx); err != nil {
		return err
	}

	players, err := s.provider.FetchRoster(ctx, team, season)
	if err != nil {
		logging.Warn(s.logger, "roster reload failed",
			slog.String(logging.FieldTeam, team),
			slog.String(logging.FieldSeason, season),
			"error", err,
		)
		return err
	}

	if err := s.store.SetRoster(ctx, players); err != nil {
		return err
	}
	logging.Info(s.logger, "roster loaded",
		slog.String(logging.FieldTeam, team),
		slog.String(logging.FieldSeason, season),
		slog.Int(logging.FieldCount, len(players)),
	)
	return nil
}

// Loaded reports whether a roster is currently stored.
func (s *Service) Loaded(ctx context.Context) bool {
	players, err := s.store.Roster(ctx)
	return err == nil && len(players) > 0
}

// JerseyNumber returns the stored jersey number for a player id.
func (s *Service) JerseyNumber(ctx context.Context, playerID int) (int, bool) {
	players, err := s.store.Roster(ctx)
	if err != nil {
		return 0, false
	}
	for _, p := range players {
		if p.ID == playerID {
			return p.Jersey, true
		}
	}
	return 0, false
}
