package testutil

import (
	"context"

	"goal-announcer/internal/domain"
)

// StubProvider implements providers.DataProvider with canned results and
// call counters.
type StubProvider struct {
	ScheduleResult []domain.ScheduledGame
	ScheduleErr    error
	ScheduleCalls  int

	RosterResult []domain.Player
	RosterErr    error
	RosterCalls  int

	DetailResult domain.GameDetail
	DetailErr    error
	DetailCalls  int
}

func (p *StubProvider) FetchWeekSchedule(ctx context.Context, team string) ([]domain.ScheduledGame, error) {
	_ = ctx
	_ = team
	p.ScheduleCalls++
	if p.ScheduleErr != nil {
		return nil, p.ScheduleErr
	}
	return p.ScheduleResult, nil
}

func (p *StubProvider) FetchRoster(ctx context.Context, team, season string) ([]domain.Player, error) {
	_ = ctx
	_ = team
	_ = season
	p.RosterCalls++
	if p.RosterErr != nil {
		return nil, p.RosterErr
	}
	return p.RosterResult, nil
}

func (p *StubProvider) FetchGameDetail(ctx context.Context, gameID string) (domain.GameDetail, error) {
	_ = ctx
	_ = gameID
	p.DetailCalls++
	if p.DetailErr != nil {
		return domain.GameDetail{}, p.DetailErr
	}
	return p.DetailResult, nil
}
