package nhle

const providerName = "nhle"

// nameResponse unmarshals the api-web convention of {"default": "..."} for
// localized names.
type nameResponse struct {
	Default string `json:"default"`
}

type scheduleResponse struct {
	Games []scheduledGameResponse `json:"games"`
}

type scheduledGameResponse struct {
	ID       int64  `json:"id"`
	Season   int64  `json:"season"`
	GameDate string `json:"gameDate"`
}

type rosterResponse struct {
	Forwards   []rosterPlayerResponse `json:"forwards"`
	Defensemen []rosterPlayerResponse `json:"defensemen"`
	Goalies    []rosterPlayerResponse `json:"goalies"`
}

type rosterPlayerResponse struct {
	ID            int          `json:"id"`
	SweaterNumber int          `json:"sweaterNumber"`
	FirstName     nameResponse `json:"firstName"`
	LastName      nameResponse `json:"lastName"`
}

type landingResponse struct {
	GameState string          `json:"gameState"`
	Summary   summaryResponse `json:"summary"`
}

type summaryResponse struct {
	Scoring []scoringPeriodResponse `json:"scoring"`
}

type scoringPeriodResponse struct {
	PeriodDescriptor periodDescriptorResponse `json:"periodDescriptor"`
	Goals            []goalResponse           `json:"goals"`
}

type periodDescriptorResponse struct {
	Number int `json:"number"`
}

type goalResponse struct {
	PlayerID     int              `json:"playerId"`
	FirstName    nameResponse     `json:"firstName"`
	LastName     nameResponse     `json:"lastName"`
	TeamAbbrev   nameResponse     `json:"teamAbbrev"`
	GoalsToDate  int              `json:"goalsToDate"`
	TimeInPeriod string           `json:"timeInPeriod"`
	Assists      []assistResponse `json:"assists"`
}

type assistResponse struct {
	PlayerID      int          `json:"playerId"`
	SweaterNumber int          `json:"sweaterNumber"`
	FirstName     nameResponse `json:"firstName"`
	LastName      nameResponse `json:"lastName"`
}
