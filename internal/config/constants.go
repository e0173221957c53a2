package config

import "time"

const (
	envPort         = "PORT"
	envTeam         = "TEAM_ABBREV"
	envAnnounceName = "ANNOUNCE_NAME"
	envTimezone     = "TZ_NAME"
	envClockMode    = "CLOCK_MODE"
	envProvider     = "PROVIDER"
	envPollInterval = "POLL_INTERVAL"
	envStore        = "STORE"
	envRedisAddr    = "REDIS_ADDR"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort         = "3000"
	defaultTeam         = "BOS"
	defaultAnnounceName = "Boston"
	defaultTimezone     = "America/New_York"
	defaultClockMode    = "raw"
	defaultProvider     = "nhle"
	defaultStore        = "memory"
	defaultRedisAddr    = "localhost:6379"
	defaultMetricsPort  = "9090"
	// Upstream publishes goal events within seconds of the play; a short
	// interval keeps the cached game id and roster warm without hammering it.
	defaultPollInterval = 30 * Duration(time.Second)
)
