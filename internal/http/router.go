// Package http assembles the route table.
package http

import (
	nethttp "net/http"

	"goal-announcer/internal/http/handlers"
)

// NewRouter registers the service routes on a ServeMux. The Prometheus
// scrape endpoint lives on its own listener, not here.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/", handler.Root)
	mux.HandleFunc("/announce", handler.Announce)
	mux.HandleFunc("/gameId", handler.GameID)
	mux.HandleFunc("/demo", handler.Demo)
	mux.HandleFunc("/config", handler.Config)
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	return mux
}
