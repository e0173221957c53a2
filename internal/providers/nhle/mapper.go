package nhle

import (
	"strconv"

	"goal-announcer/internal/domain"
)

func mapSchedule(payload scheduleResponse) []domain.ScheduledGame {
	games := make([]domain.ScheduledGame, 0, len(payload.Games))
	for _, g := range payload.Games {
		games = append(games, domain.ScheduledGame{
			ID:     strconv.FormatInt(g.ID, 10),
			Season: strconv.FormatInt(g.Season, 10),
			Date:   g.GameDate,
		})
	}
	return games
}

func mapRoster(payload rosterResponse) []domain.Player {
	roster := make([]domain.Player, 0, len(payload.Forwards)+len(payload.Defensemen)+len(payload.Goalies))
	for _, group := range [][]rosterPlayerResponse{payload.Forwards, payload.Defensemen, payload.Goalies} {
		for _, p := range group {
			roster = append(roster, domain.Player{
				ID:        p.ID,
				Jersey:    p.SweaterNumber,
				FirstName: p.FirstName.Default,
				LastName:  p.LastName.Default,
			})
		}
	}
	return roster
}

func mapGameDetail(payload landingResponse) domain.GameDetail {
	detail := domain.GameDetail{
		State:   domain.GameState(payload.GameState),
		Scoring: make([]domain.ScoringPeriod, 0, len(payload.Summary.Scoring)),
	}
	for _, period := range payload.Summary.Scoring {
		mapped := domain.ScoringPeriod{
			Period: period.PeriodDescriptor.Number,
			Goals:  make([]domain.Goal, 0, len(period.Goals)),
		}
		for _, g := range period.Goals {
			mapped.Goals = append(mapped.Goals, mapGoal(g))
		}
		detail.Scoring = append(detail.Scoring, mapped)
	}
	return detail
}

func mapGoal(g goalResponse) domain.Goal {
	goal := domain.Goal{
		PlayerID:     g.PlayerID,
		FirstName:    g.FirstName.Default,
		LastName:     g.LastName.Default,
		TeamAbbrev:   g.TeamAbbrev.Default,
		GoalsToDate:  g.GoalsToDate,
		TimeInPeriod: g.TimeInPeriod,
		Assists:      make([]domain.GoalAssist, 0, len(g.Assists)),
	}
	for _, a := range g.Assists {
		goal.Assists = append(goal.Assists, domain.GoalAssist{
			PlayerID:  a.PlayerID,
			Jersey:    a.SweaterNumber,
			FirstName: a.FirstName.Default,
			LastName:  a.LastName.Default,
		})
	}
	return goal
}
