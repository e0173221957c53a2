// Package domain holds the canonical shapes passed between providers, the
// app services, and the HTTP layer.
package domain

// GameState is the upstream-reported lifecycle phase of a game.
type GameState string

const (
	StateScheduled GameState = "SCHEDULED"
	StateLive      GameState = "LIVE"
	StateCritical  GameState = "CRIT"
	StateFinal     GameState = "FINAL"
)

// GoalsVisible reports whether a game in this state carries a scoring
// summary worth reading. Anything unrecognized counts as not started.
func (s GameState) GoalsVisible() bool {
	switch s {
	case StateLive, StateCritical, StateFinal:
		return true
	default:
		return false
	}
}

// ScheduledGame is one entry of a team's weekly schedule.
type ScheduledGame struct {
	ID     string
	Season string
	Date   string // team-local, YYYY-MM-DD
}

// GameRef is the single cached resolution of "today's game".
type GameRef struct {
	Team   string `json:"team"`
	Date   string `json:"date"`
	GameID string `json:"gameId"`
	Season string `json:"season"`
}

// Player is one roster entry.
type Player struct {
	ID        int    `json:"id"`
	Jersey    int    `json:"sweaterNumber"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// GoalAssist is an assisting player on a scoring play.
type GoalAssist struct {
	PlayerID  int
	Jersey    int
	FirstName string
	LastName  string
}

// Goal is one scoring play from the game detail feed.
type Goal struct {
	PlayerID     int
	FirstName    string
	LastName     string
	TeamAbbrev   string
	GoalsToDate  int
	TimeInPeriod string // raw MM:SS
	Assists      []GoalAssist
}

// ScoringPeriod groups the goals of one period, in order.
type ScoringPeriod struct {
	Period int
	Goals  []Goal
}

// GameDetail is the normalized live-game payload.
type GameDetail struct {
	State   GameState
	Scoring []ScoringPeriod
}

// LatestGoal returns the last goal of the last scoring period. The feed
// lists every played period, so a goalless trailing period means there is
// no goal to announce even when earlier periods scored.
func (d GameDetail) LatestGoal() (Goal, bool) {
	if len(d.Scoring) == 0 {
		return Goal{}, false
	}
	goals := d.Scoring[len(d.Scoring)-1].Goals
	if len(goals) == 0 {
		return Goal{}, false
	}
	return goals[len(goals)-1], true
}

// AnnouncementStatus tags the outcome of a goal query.
type AnnouncementStatus string

const (
	StatusNotStarted AnnouncementStatus = "NOT_STARTED"
	StatusNoGoals    AnnouncementStatus = "NO_GOALS"
	StatusGoal       AnnouncementStatus = "GOAL"
)

// Assist is an assisting player as exposed over the wire.
type Assist struct {
	Name      string `json:"name"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Number    string `json:"number"`
}

// GoalAnnouncement is the rendered description of the most recent goal.
type GoalAnnouncement struct {
	Announcement string   `json:"announcement"`
	ShortText    string   `json:"shortText"`
	Name         string   `json:"name"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Number       string   `json:"number"`
	TimeOfGoal   string   `json:"timeOfGoal"`
	GoalNumber   string   `json:"goalNumber"`
	Assists      []Assist `json:"assists"`
}

// Announcement is the payload returned by /announce.
type Announcement struct {
	Status AnnouncementStatus `json:"status"`
	Data   *GoalAnnouncement  `json:"data,omitempty"`
}
