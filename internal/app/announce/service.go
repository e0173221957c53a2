// Package announce turns the latest goal of a live game into a narrated
// announcement.
package announce

import (
	"context"
	"fmt"
	"log/slog"

	"goal-announcer/internal/domain"
	"goal-announcer/internal/logging"
	"goal-announcer/internal/metrics"
	"goal-announcer/internal/providers"
	"goal-announcer/internal/speech"
)

// JerseyLookup resolves a scorer's jersey number from the loaded roster.
type JerseyLookup interface {
	JerseyNumber(ctx context.Context, playerID int) (int, bool)
}

// Service classifies a game's lifecycle state and renders its most recent
// goal for the configured team.
type Service struct {
	provider     providers.GameDetailProvider
	roster       JerseyLookup
	team         string
	announceName string
	clockMode    speech.ClockMode
	logger       *slog.Logger
	metrics      *metrics.Recorder
}

// NewService constructs an announcer for one team.
func NewService(provider providers.GameDetailProvider, roster JerseyLookup, team, announceName string, clockMode speech.ClockMode, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if clockMode != speech.ModeHuman {
		clockMode = speech.ModeRaw
	}
	return &Service{
		provider:     provider,
		roster:       roster,
		team:         team,
		announceName: announceName,
		clockMode:    clockMode,
		logger:       logger,
		metrics:      recorder,
	}
}

// DescribeLatestGoal fetches the game detail and describes its most recent
// goal. A non-nil error means the upstream fetch or decode failed; every
// other outcome, including "game not started" and "no goal for our team
// yet", is an ordinary Announcement.
func (s *Service) DescribeLatestGoal(ctx context.Context, gameID string) (domain.Announcement, error) {
	logger := logging.FromContext(ctx, s.logger)

	detail, err := s.provider.FetchGameDetail(ctx, gameID)
	if err != nil {
		s.metrics.RecordAnnouncement("ERROR")
		return domain.Announcement{}, fmt.Errorf("fetch game detail: %w", err)
	}

	if !detail.State.GoalsVisible() {
		if logger != nil {
			logger.Debug("game not started", slog.String(logging.FieldGameID, gameID), slog.String("state", string(detail.State)))
		}
		s.metrics.RecordAnnouncement(string(domain.StatusNotStarted))
		return domain.Announcement{Status: domain.StatusNotStarted}, nil
	}

	goal, ok := detail.LatestGoal()
	if !ok {
		s.metrics.RecordAnnouncement(string(domain.StatusNoGoals))
		return domain.Announcement{Status: domain.StatusNoGoals}, nil
	}

	// Only goals for our team are announced, even when the opponent
	// scored more recently.
	if goal.TeamAbbrev != s.team {
		if logger != nil {
			logger.Debug("latest goal belongs to the opponent",
				slog.String(logging.FieldGameID, gameID),
				slog.String(logging.FieldTeam, goal.TeamAbbrev),
			)
		}
		s.metrics.RecordAnnouncement(string(domain.StatusNoGoals))
		return domain.Announcement{Status: domain.StatusNoGoals}, nil
	}

	jersey, found := s.roster.JerseyNumber(ctx, goal.PlayerID)
	if !found && logger != nil {
		// Rendering proceeds with an empty number; never block on it.
		logger.Warn("scorer missing from roster", slog.Int("player_id", goal.PlayerID))
	}

	data := render(goal, renderInput{
		AnnounceName: s.announceName,
		Jersey:       jersey,
		JerseyKnown:  found,
		ClockMode:    s.clockMode,
	})

	s.metrics.RecordAnnouncement(string(domain.StatusGoal))
	return domain.Announcement{Status: domain.StatusGoal, Data: &data}, nil
}
