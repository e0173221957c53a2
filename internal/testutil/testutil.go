// Package testutil provides helpers shared across package tests.
package testutil

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
)

// NewBufferLogger returns a logger writing to an in-memory buffer.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, buf
}

// ServeRequest runs the handler against the request and returns the recorder.
func ServeRequest(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

// Serve builds a request and runs it through the handler.
func Serve(handler http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	return ServeRequest(handler, httptest.NewRequest(method, target, body))
}
