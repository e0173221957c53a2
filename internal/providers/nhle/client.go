// Package nhle talks to the NHL api-web API: weekly club schedules, season
// rosters, and the gamecenter landing feed goals are read from.
package nhle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"goal-announcer/internal/domain"
	"goal-announcer/internal/providers"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches NHL data and maps it to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchWeekSchedule retrieves the team's games for the current week.
func (c *Client) FetchWeekSchedule(ctx context.Context, team string) ([]domain.ScheduledGame, error) {
	endpoint := fmt.Sprintf("%s/club-schedule/%s/week/now", c.baseURL, url.PathEscape(team))

	var payload scheduleResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return mapSchedule(payload), nil
}

// FetchRoster retrieves the team's roster for a season, forwards first,
// then defensemen, then goalies.
func (c *Client) FetchRoster(ctx context.Context, team, season string) ([]domain.Player, error) {
	endpoint := fmt.Sprintf("%s/roster/%s/%s", c.baseURL, url.PathEscape(team), url.PathEscape(season))

	var payload rosterResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return nil, err
	}
	return mapRoster(payload), nil
}

// FetchGameDetail retrieves the live detail of one game.
func (c *Client) FetchGameDetail(ctx context.Context, gameID string) (domain.GameDetail, error) {
	endpoint := fmt.Sprintf("%s/gamecenter/%s/landing", c.baseURL, url.PathEscape(gameID))

	var payload landingResponse
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return domain.GameDetail{}, err
	}
	return mapGameDetail(payload), nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &providers.StatusError{
			Provider:   providerName,
			Endpoint:   req.URL.Path,
			StatusCode: resp.StatusCode,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode %s: %w", providerName, req.URL.Path, err)
	}
	return nil
}
