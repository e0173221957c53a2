package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"goal-announcer/internal/domain"
	"goal-announcer/internal/poller"
	"goal-announcer/internal/speech"
	"goal-announcer/internal/testutil"
)

type stubResolver struct {
	gameID string
	found  bool
	calls  int
}

func (r *stubResolver) ResolveToday(_ context.Context) (string, bool) {
	r.calls++
	return r.gameID, r.found
}

type stubDescriber struct {
	result domain.Announcement
	err    error
	gotID  string
}

func (d *stubDescriber) DescribeLatestGoal(_ context.Context, gameID string) (domain.Announcement, error) {
	d.gotID = gameID
	if d.err != nil {
		return domain.Announcement{}, d.err
	}
	return d.result, nil
}

func testInfo() Info {
	return Info{Team: "BOS", AnnounceName: "Boston", ClockMode: speech.ModeRaw, Version: "test"}
}

func newHandler(resolver *stubResolver, describer *stubDescriber) *Handler {
	logger, _ := testutil.NewBufferLogger()
	return NewHandler(resolver, describer, testInfo(), logger, nil)
}

func TestRootReturnsNoContent(t *testing.T) {
	h := newHandler(&stubResolver{}, &stubDescriber{})
	rr := testutil.Serve(http.HandlerFunc(h.Root), http.MethodGet, "/", nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
}

func TestRootUnknownPath(t *testing.T) {
	h := newHandler(&stubResolver{}, &stubDescriber{})
	rr := testutil.Serve(http.HandlerFunc(h.Root), http.MethodGet, "/nope", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestAnnounceNoGameToday(t *testing.T) {
	h := newHandler(&stubResolver{}, &stubDescriber{})
	rr := testutil.Serve(http.HandlerFunc(h.Announce), http.MethodGet, "/announce", nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 on an off day, got %d", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rr.Body.String())
	}
}

func TestAnnounceReturnsPayload(t *testing.T) {
	short := "Lindholm (2nd), Marchand & McAvoy (A) @ 01:07"
	describer := &stubDescriber{result: domain.Announcement{
		Status: domain.StatusGoal,
		Data:   &domain.GoalAnnouncement{ShortText: short},
	}}
	resolver := &stubResolver{gameID: "2024020345", found: true}
	h := newHandler(resolver, describer)

	rr := testutil.Serve(http.HandlerFunc(h.Announce), http.MethodGet, "/announce", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if describer.gotID != "2024020345" {
		t.Fatalf("describer called with %q", describer.gotID)
	}
	var got domain.Announcement
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Status != domain.StatusGoal || got.Data == nil || got.Data.ShortText != short {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestAnnounceStatusOnlyOutcome(t *testing.T) {
	describer := &stubDescriber{result: domain.Announcement{Status: domain.StatusNotStarted}}
	h := newHandler(&stubResolver{gameID: "1", found: true}, describer)

	rr := testutil.Serve(http.HandlerFunc(h.Announce), http.MethodGet, "/announce", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `"status":"NOT_STARTED"`) {
		t.Fatalf("expected status in body, got %s", body)
	}
	if strings.Contains(body, `"data"`) {
		t.Fatalf("expected data omitted, got %s", body)
	}
}

func TestAnnounceUpstreamFailure(t *testing.T) {
	describer := &stubDescriber{err: errors.New("boom")}
	h := newHandler(&stubResolver{gameID: "1", found: true}, describer)

	rr := testutil.Serve(http.HandlerFunc(h.Announce), http.MethodGet, "/announce", nil)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "error") {
		t.Fatalf("expected error body, got %s", rr.Body.String())
	}
}

func TestGameIDFound(t *testing.T) {
	h := newHandler(&stubResolver{gameID: "2024020345", found: true}, &stubDescriber{})
	rr := testutil.Serve(http.HandlerFunc(h.GameID), http.MethodGet, "/gameId", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"gameId":"2024020345"`) {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestGameIDNoGame(t *testing.T) {
	h := newHandler(&stubResolver{}, &stubDescriber{})
	rr := testutil.Serve(http.HandlerFunc(h.GameID), http.MethodGet, "/gameId", nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
}

func TestDemoRendersSample(t *testing.T) {
	h := newHandler(&stubResolver{}, &stubDescriber{})
	rr := testutil.Serve(http.HandlerFunc(h.Demo), http.MethodGet, "/demo", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var got domain.Announcement
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.Status != domain.StatusGoal || got.Data == nil {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if !strings.Contains(got.Data.Announcement, "Boston goal") {
		t.Fatalf("expected configured announce name, got: %s", got.Data.Announcement)
	}
}

func TestConfigReportsIdentity(t *testing.T) {
	h := newHandler(&stubResolver{}, &stubDescriber{})
	rr := testutil.Serve(http.HandlerFunc(h.Config), http.MethodGet, "/config", nil)

	var got map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got["teamAbbrev"] != "BOS" || got["announceName"] != "Boston" || got["version"] != "test" {
		t.Fatalf("unexpected config: %v", got)
	}
}

func TestHealth(t *testing.T) {
	h := newHandler(&stubResolver{}, &stubDescriber{})
	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestReadyFollowsPollerStatus(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	status := poller.Status{}
	h := NewHandler(&stubResolver{}, &stubDescriber{}, testInfo(), logger, func() poller.Status { return status })

	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before first cycle, got %d", rr.Code)
	}

	status.LastCycle = time.Now()
	status.Cycles = 1
	rr = testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 after a cycle, got %d", rr.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := newHandler(&stubResolver{}, &stubDescriber{})
	for name, fn := range map[string]http.HandlerFunc{
		"announce": h.Announce,
		"gameId":   h.GameID,
		"demo":     h.Demo,
		"config":   h.Config,
	} {
		rr := testutil.Serve(fn, http.MethodPost, "/"+name, nil)
		if rr.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s: expected 405, got %d", name, rr.Code)
		}
	}
}
