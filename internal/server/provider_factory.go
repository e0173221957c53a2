package server

import (
	"log/slog"
	"strings"
	"time"

	"goal-announcer/internal/config"
	"goal-announcer/internal/metrics"
	"goal-announcer/internal/providers"
	"goal-announcer/internal/providers/fixture"
	"goal-announcer/internal/providers/nhle"
)

// providerFactory assembles the data provider with the shared
// instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config, loc *time.Location) providers.DataProvider {
	name := normalizeProviderName(cfg.Provider)
	base := selectProvider(name, cfg, loc)
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics, name)
}

func selectProvider(name string, cfg config.Config, loc *time.Location) providers.DataProvider {
	switch name {
	case "fixture":
		return fixture.New(cfg.Team, loc)
	default:
		return nhle.NewClient(nhle.Config{BaseURL: cfg.Nhle.BaseURL})
	}
}

func normalizeProviderName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return "nhle"
	}
	return name
}
