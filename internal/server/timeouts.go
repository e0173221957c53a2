package server

import "time"

const (
	// Requests are bodyless GETs, so reads are cheap.
	readTimeout = 5 * time.Second
	// An /announce miss can chain schedule, roster, and game-detail
	// fetches, each capped by the upstream client's 10s timeout.
	writeTimeout = 35 * time.Second
	idleTimeout  = 90 * time.Second
)

// shutdownTimeout is a var so tests can shorten it.
var shutdownTimeout = 10 * time.Second
