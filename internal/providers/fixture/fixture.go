// Package fixture serves a deterministic schedule, roster, and game detail
// for local runs and demos, without touching the upstream API.
package fixture

import (
	"context"
	"time"

	"goal-announcer/internal/domain"
	"goal-announcer/internal/timeutil"
)

const (
	gameID = "fixture-1"
	season = "20242025"
)

// Provider returns a static in-progress game with one two-assist goal.
type Provider struct {
	team string
	loc  *time.Location
	now  func() time.Time
}

// New creates a fixture provider announcing for the given team in loc.
func New(team string, loc *time.Location) *Provider {
	if loc == nil {
		loc = time.UTC
	}
	return &Provider{
		team: team,
		loc:  loc,
		now:  time.Now,
	}
}

// FetchWeekSchedule returns a single game dated today in the provider's zone.
func (p *Provider) FetchWeekSchedule(ctx context.Context, team string) ([]domain.ScheduledGame, error) {
	_ = ctx
	_ = team
	return []domain.ScheduledGame{
		{
			ID:     gameID,
			Season: season,
			Date:   timeutil.LocalDate(p.now(), p.loc),
		},
	}, nil
}

// FetchRoster returns the players referenced by the fixture goal.
func (p *Provider) FetchRoster(ctx context.Context, team, forSeason string) ([]domain.Player, error) {
	_ = ctx
	_ = team
	_ = forSeason
	return []domain.Player{
		{ID: 101, Jersey: 28, FirstName: "Elias", LastName: "Lindholm"},
		{ID: 102, Jersey: 63, FirstName: "Brad", LastName: "Marchand"},
		{ID: 103, Jersey: 73, FirstName: "Charlie", LastName: "McAvoy"},
	}, nil
}

// FetchGameDetail returns a live game whose latest goal has two assists.
func (p *Provider) FetchGameDetail(ctx context.Context, id string) (domain.GameDetail, error) {
	_ = ctx
	_ = id
	return domain.GameDetail{
		State: domain.StateLive,
		Scoring: []domain.ScoringPeriod{
			{
				Period: 1,
				Goals: []domain.Goal{
					{
						PlayerID:     101,
						FirstName:    "Elias",
						LastName:     "Lindholm",
						TeamAbbrev:   p.team,
						GoalsToDate:  2,
						TimeInPeriod: "01:07",
						Assists: []domain.GoalAssist{
							{PlayerID: 102, Jersey: 63, FirstName: "Brad", LastName: "Marchand"},
							{PlayerID: 103, Jersey: 73, FirstName: "Charlie", LastName: "McAvoy"},
						},
					},
				},
			},
		},
	}, nil
}
