package announce

import (
	"goal-announcer/internal/domain"
	"goal-announcer/internal/speech"
)

// Demo renders a representative two-assist goal through the real renderer,
// so callers can preview the announcement shape without a live game.
func Demo(announceName string, clockMode speech.ClockMode) domain.Announcement {
	goal := domain.Goal{
		PlayerID:     8480039,
		FirstName:    "Elias",
		LastName:     "Lindholm",
		TeamAbbrev:   "BOS",
		GoalsToDate:  2,
		TimeInPeriod: "01:07",
		Assists: []domain.GoalAssist{
			{PlayerID: 8473419, Jersey: 63, FirstName: "Brad", LastName: "Marchand"},
			{PlayerID: 8479325, Jersey: 73, FirstName: "Charlie", LastName: "McAvoy"},
		},
	}
	data := render(goal, renderInput{
		AnnounceName: announceName,
		Jersey:       28,
		JerseyKnown:  true,
		ClockMode:    clockMode,
	})
	return domain.Announcement{Status: domain.StatusGoal, Data: &data}
}
