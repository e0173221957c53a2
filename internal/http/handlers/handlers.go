// Package handlers wires HTTP routes to the announcement pipeline.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"goal-announcer/internal/app/announce"
	"goal-announcer/internal/domain"
	"goal-announcer/internal/logging"
	"goal-announcer/internal/poller"
	"goal-announcer/internal/speech"
)

// GameResolver finds today's game id, consulting the cache first.
type GameResolver interface {
	ResolveToday(ctx context.Context) (string, bool)
}

// GoalDescriber renders the latest goal of a game.
type GoalDescriber interface {
	DescribeLatestGoal(ctx context.Context, gameID string) (domain.Announcement, error)
}

// Info is the static service identity exposed on /config.
type Info struct {
	Team         string
	AnnounceName string
	ClockMode    speech.ClockMode
	Version      string
}

// Handler wires HTTP routes to the domain services.
type Handler struct {
	resolver  GameResolver
	describer GoalDescriber
	info      Info
	logger    *slog.Logger
	statusFn  func() poller.Status
}

// NewHandler constructs a Handler.
func NewHandler(resolver GameResolver, describer GoalDescriber, info Info, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		resolver:  resolver,
		describer: describer,
		info:      info,
		logger:    logger,
		statusFn:  statusFn,
	}
}

// Root answers liveness probes with an empty response.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, r, http.StatusNotFound, "not found", h.logger)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Announce resolves today's game and describes its latest goal. No game
// today is an empty response, not an error.
func (h *Handler) Announce(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	gameID, found := h.resolver.ResolveToday(r.Context())
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	ann, err := h.describer.DescribeLatestGoal(r.Context(), gameID)
	if err != nil {
		logger := loggerFromContext(r, h.logger)
		if logger != nil {
			logger.Error("describe latest goal failed",
				slog.String(logging.FieldGameID, gameID),
				"err", err,
			)
		}
		writeError(w, r, http.StatusBadGateway, "upstream game detail unavailable", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ann, h.logger)
}

// GameID exposes the resolved game id for today, if any.
func (h *Handler) GameID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	gameID, found := h.resolver.ResolveToday(r.Context())
	if !found {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"gameId": gameID}, h.logger)
}

// Demo returns a sample announcement rendered through the real pipeline.
func (h *Handler) Demo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, announce.Demo(h.info.AnnounceName, h.info.ClockMode), h.logger)
}

// Config reports the static service identity.
func (h *Handler) Config(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"teamAbbrev":   h.info.Team,
		"announceName": h.info.AnnounceName,
		"version":      h.info.Version,
	}, h.logger)
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil || h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	writeError(w, r, http.StatusServiceUnavailable, "not ready", h.logger)
}
