package announce

import (
	"fmt"
	"strconv"

	"goal-announcer/internal/domain"
	"goal-announcer/internal/speech"
)

type renderInput struct {
	AnnounceName string
	Jersey       int
	JerseyKnown  bool
	ClockMode    speech.ClockMode
}

// render produces the narrated sentence, the compact summary, and the
// structured fields for one goal. The sentence branches on assist count;
// the spoken time honors the configured clock mode while the structured
// time stays raw.
func render(goal domain.Goal, in renderInput) domain.GoalAnnouncement {
	scorer := goal.FirstName + " " + goal.LastName
	number := ""
	if in.JerseyKnown {
		number = strconv.Itoa(in.Jersey)
	}
	count := speech.OrdinalNumber(goal.GoalsToDate)
	spokenTime := speech.ClockPhrase(goal.TimeInPeriod, in.ClockMode)

	data := domain.GoalAnnouncement{
		Name:       scorer,
		FirstName:  goal.FirstName,
		LastName:   goal.LastName,
		Number:     number,
		TimeOfGoal: goal.TimeInPeriod,
		GoalNumber: count,
		Assists:    make([]domain.Assist, 0, len(goal.Assists)),
	}
	for _, a := range goal.Assists {
		data.Assists = append(data.Assists, domain.Assist{
			Name:      a.FirstName + " " + a.LastName,
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Number:    strconv.Itoa(a.Jersey),
		})
	}

	switch len(goal.Assists) {
	case 2:
		first, second := goal.Assists[0], goal.Assists[1]
		data.Announcement = fmt.Sprintf(
			"%s goal, scored by number %s, %s. Assisted by number %d %s %s and number %d %s %s. Time of the goal %s... That's %s's %s goal of the season from %s and %s, at %s.",
			in.AnnounceName, number, scorer,
			first.Jersey, first.FirstName, first.LastName,
			second.Jersey, second.FirstName, second.LastName,
			spokenTime,
			goal.LastName, count, first.LastName, second.LastName, spokenTime,
		)
		data.ShortText = fmt.Sprintf("%s (%s), %s & %s (A) @ %s",
			goal.LastName, count, first.LastName, second.LastName, goal.TimeInPeriod)
	case 1:
		first := goal.Assists[0]
		data.Announcement = fmt.Sprintf(
			"%s goal, scored by number %s, %s. Assisted by number %d %s %s. Time of the goal %s. %s's %s goal of the season from %s at %s.",
			in.AnnounceName, number, scorer,
			first.Jersey, first.FirstName, first.LastName,
			spokenTime,
			goal.LastName, count, first.LastName, spokenTime,
		)
		data.ShortText = fmt.Sprintf("%s (%s), %s (A) @ %s",
			goal.LastName, count, first.LastName, goal.TimeInPeriod)
	default:
		data.Announcement = fmt.Sprintf(
			"%s goal, an unassisted goal, scored by number %s, %s. Time of the goal %s. That's %s's %s goal of the season at %s.",
			in.AnnounceName, number, scorer,
			spokenTime,
			goal.LastName, count, spokenTime,
		)
		data.ShortText = fmt.Sprintf("%s (%s) @ %s", goal.LastName, count, goal.TimeInPeriod)
	}

	return data
}
