package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Team != defaultTeam {
		t.Fatalf("expected default team %s, got %s", defaultTeam, cfg.Team)
	}
	if cfg.AnnounceName != defaultAnnounceName {
		t.Fatalf("expected default announce name %s, got %s", defaultAnnounceName, cfg.AnnounceName)
	}
	if cfg.Timezone != defaultTimezone {
		t.Fatalf("expected default timezone %s, got %s", defaultTimezone, cfg.Timezone)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval %s, got %s", defaultPollInterval, cfg.PollInterval)
	}
	if cfg.Nhle.BaseURL != defaultNhleBaseURL {
		t.Fatalf("expected default nhle base url %s, got %s", defaultNhleBaseURL, cfg.Nhle.BaseURL)
	}
	if cfg.Store.Backend != defaultStore {
		t.Fatalf("expected default store %s, got %s", defaultStore, cfg.Store.Backend)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envTeam, "WSH")
	t.Setenv(envAnnounceName, "Washington")
	t.Setenv(envTimezone, "America/Chicago")
	t.Setenv(envClockMode, "human")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envPollInterval, "45s")
	t.Setenv(envStore, "redis")
	t.Setenv(envRedisAddr, "redis:6379")
	t.Setenv(envNhleBaseURL, "http://example.com/v1")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Team != "WSH" || cfg.AnnounceName != "Washington" {
		t.Fatalf("expected team override, got %s/%s", cfg.Team, cfg.AnnounceName)
	}
	if cfg.Timezone != "America/Chicago" {
		t.Fatalf("expected timezone override, got %s", cfg.Timezone)
	}
	if cfg.ClockMode != "human" {
		t.Fatalf("expected clock mode override, got %s", cfg.ClockMode)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if cfg.PollInterval != 45*time.Second {
		t.Fatalf("expected poll interval 45s, got %s", cfg.PollInterval)
	}
	if cfg.Store.Backend != "redis" || cfg.Store.RedisAddr != "redis:6379" {
		t.Fatalf("expected store override, got %+v", cfg.Store)
	}
	if cfg.Nhle.BaseURL != "http://example.com/v1" {
		t.Fatalf("expected nhle base url override, got %s", cfg.Nhle.BaseURL)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on invalid value, got %s", cfg.PollInterval)
	}
}

func TestValidate(t *testing.T) {
	cfg := Load()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config to validate, got %v", err)
	}

	cfg.Timezone = "Not/AZone"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected invalid timezone to fail validation")
	}

	cfg = Load()
	cfg.Team = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected empty team to fail validation")
	}
}
