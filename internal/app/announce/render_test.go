package announce

import (
	"strings"
	"testing"

	"goal-announcer/internal/domain"
	"goal-announcer/internal/speech"
)

func lindholmGoal() domain.Goal {
	return domain.Goal{
		PlayerID:     101,
		FirstName:    "Elias",
		LastName:     "Lindholm",
		TeamAbbrev:   "BOS",
		GoalsToDate:  2,
		TimeInPeriod: "01:07",
		Assists: []domain.GoalAssist{
			{PlayerID: 102, Jersey: 63, FirstName: "Brad", LastName: "Marchand"},
			{PlayerID: 103, Jersey: 73, FirstName: "Charlie", LastName: "McAvoy"},
		},
	}
}

func TestRenderTwoAssists(t *testing.T) {
	data := render(lindholmGoal(), renderInput{
		AnnounceName: "Boston",
		Jersey:       28,
		JerseyKnown:  true,
		ClockMode:    speech.ModeRaw,
	})

	for _, want := range []string{
		"Boston goal",
		"scored by number 28, Elias Lindholm",
		"Assisted by number 63 Brad Marchand and number 73 Charlie McAvoy",
		"Time of the goal 01:07",
		"2nd goal of the season from Marchand and McAvoy, at 01:07",
	} {
		if !strings.Contains(data.Announcement, want) {
			t.Errorf("announcement missing %q:\n%s", want, data.Announcement)
		}
	}

	if data.ShortText != "Lindholm (2nd), Marchand & McAvoy (A) @ 01:07" {
		t.Fatalf("unexpected shortText: %s", data.ShortText)
	}
	if data.Number != "28" || data.GoalNumber != "2nd" || data.TimeOfGoal != "01:07" {
		t.Fatalf("unexpected structured fields: %+v", data)
	}
	if len(data.Assists) != 2 || data.Assists[0].Number != "63" || data.Assists[1].LastName != "McAvoy" {
		t.Fatalf("unexpected assists: %+v", data.Assists)
	}
}

func TestRenderOneAssist(t *testing.T) {
	goal := lindholmGoal()
	goal.Assists = goal.Assists[:1]

	data := render(goal, renderInput{AnnounceName: "Boston", Jersey: 28, JerseyKnown: true, ClockMode: speech.ModeRaw})

	if !strings.Contains(data.Announcement, "Assisted by number 63 Brad Marchand.") {
		t.Fatalf("expected single-assist clause:\n%s", data.Announcement)
	}
	if strings.Contains(data.Announcement, "and number") {
		t.Fatalf("unexpected second assist:\n%s", data.Announcement)
	}
	if !strings.Contains(data.Announcement, "from Marchand at 01:07") {
		t.Fatalf("expected elaboration with one assister:\n%s", data.Announcement)
	}
	if data.ShortText != "Lindholm (2nd), Marchand (A) @ 01:07" {
		t.Fatalf("unexpected shortText: %s", data.ShortText)
	}
	if len(data.Assists) != 1 {
		t.Fatalf("unexpected assists: %+v", data.Assists)
	}
}

func TestRenderUnassisted(t *testing.T) {
	goal := lindholmGoal()
	goal.Assists = nil

	data := render(goal, renderInput{AnnounceName: "Boston", Jersey: 28, JerseyKnown: true, ClockMode: speech.ModeRaw})

	if !strings.Contains(data.Announcement, "an unassisted goal") {
		t.Fatalf("expected unassisted clause:\n%s", data.Announcement)
	}
	if strings.Contains(data.Announcement, "Assisted by") {
		t.Fatalf("unexpected assist clause:\n%s", data.Announcement)
	}
	if !strings.Contains(data.Announcement, "2nd goal of the season at 01:07") {
		t.Fatalf("expected time in elaboration:\n%s", data.Announcement)
	}
	if data.ShortText != "Lindholm (2nd) @ 01:07" {
		t.Fatalf("unexpected shortText: %s", data.ShortText)
	}
	if len(data.Assists) != 0 {
		t.Fatalf("unexpected assists: %+v", data.Assists)
	}
}

func TestRenderUnknownJerseyLeavesNumberEmpty(t *testing.T) {
	data := render(lindholmGoal(), renderInput{AnnounceName: "Boston", ClockMode: speech.ModeRaw})

	if data.Number != "" {
		t.Fatalf("expected empty number, got %q", data.Number)
	}
	if !strings.Contains(data.Announcement, "Elias Lindholm") {
		t.Fatalf("expected rendering to proceed:\n%s", data.Announcement)
	}
}

func TestRenderHumanClockMode(t *testing.T) {
	data := render(lindholmGoal(), renderInput{AnnounceName: "Boston", Jersey: 28, JerseyKnown: true, ClockMode: speech.ModeHuman})

	if !strings.Contains(data.Announcement, "Time of the goal 1 oh 7") {
		t.Fatalf("expected spoken time:\n%s", data.Announcement)
	}
	// The compact summary and structured field stay raw.
	if !strings.Contains(data.ShortText, "@ 01:07") || data.TimeOfGoal != "01:07" {
		t.Fatalf("expected raw time outside the sentence: %+v", data)
	}
}
