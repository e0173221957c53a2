package config

import (
	"fmt"

	"goal-announcer/internal/timeutil"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	Team         string
	AnnounceName string
	Timezone     string
	ClockMode    string
	Provider     string
	PollInterval Duration
	Nhle         NhleConfig
	Store        StoreConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		Team:         envOrDefault(envTeam, defaultTeam),
		AnnounceName: envOrDefault(envAnnounceName, defaultAnnounceName),
		Timezone:     envOrDefault(envTimezone, defaultTimezone),
		ClockMode:    envOrDefault(envClockMode, defaultClockMode),
		Provider:     envOrDefault(envProvider, defaultProvider),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Nhle:         loadNhle(),
		Store:        loadStore(),
		Metrics:      loadMetrics(),
	}
}

// Validate rejects configuration the process cannot safely start with.
func (c Config) Validate() error {
	if !timeutil.ValidZone(c.Timezone) {
		return fmt.Errorf("config: unknown time zone %q", c.Timezone)
	}
	if c.Team == "" {
		return fmt.Errorf("config: team abbreviation must not be empty")
	}
	return nil
}
