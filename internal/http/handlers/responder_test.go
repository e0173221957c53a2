package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"goal-announcer/internal/testutil"
)

func TestWriteJSONSetsContentType(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusOK, map[string]string{"k": "v"}, nil)

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(rr.Body.String(), `"k":"v"`) {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestWriteErrorIncludesRequestIDHeader(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/announce", nil)
	req.Header.Set("X-Request-ID", "req-7")

	writeError(rr, req, http.StatusBadGateway, "upstream down", logger)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `"error":"upstream down"`) || !strings.Contains(body, `"requestId":"req-7"`) {
		t.Fatalf("unexpected body: %s", body)
	}
}
