package providers

import (
	"context"

	"goal-announcer/internal/domain"
)

// ScheduleProvider fetches a team's schedule for the current week.
type ScheduleProvider interface {
	FetchWeekSchedule(ctx context.Context, team string) ([]domain.ScheduledGame, error)
}

// RosterProvider fetches a team's full roster for a season, ordered
// forwards, defensemen, goalies.
type RosterProvider interface {
	FetchRoster(ctx context.Context, team, season string) ([]domain.Player, error)
}

// GameDetailProvider fetches the live detail of a single game.
type GameDetailProvider interface {
	FetchGameDetail(ctx context.Context, gameID string) (domain.GameDetail, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	ScheduleProvider
	RosterProvider
	GameDetailProvider
}
