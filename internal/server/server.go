// Package server wires configuration, providers, stores, services, and the
// HTTP surface into a runnable process.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"goal-announcer/internal/app/announce"
	"goal-announcer/internal/app/roster"
	"goal-announcer/internal/app/schedule"
	"goal-announcer/internal/config"
	httpserver "goal-announcer/internal/http"
	"goal-announcer/internal/http/handlers"
	"goal-announcer/internal/http/middleware"
	"goal-announcer/internal/logging"
	"goal-announcer/internal/metrics"
	"goal-announcer/internal/poller"
	"goal-announcer/internal/providers"
	"goal-announcer/internal/speech"
	"goal-announcer/internal/timeutil"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	scheduleSvc   *schedule.Service
	announceSvc   *announce.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	storeClose    func() error
	metricsStop   func(context.Context) error
}

// New constructs a server with default provider and store wiring.
func New(cfg config.Config, logger *slog.Logger, version string) *Server {
	return newServerWithProvider(cfg, logger, version, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, version string, provider providers.DataProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)
	loc := timeutil.ResolveZone(cfg.Timezone)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg, loc)
	}

	st, storeClose := buildStore(cfg, loc, logger)
	rosterSvc := roster.NewService(st, provider, logger)
	scheduleSvc := schedule.NewService(st, rosterSvc, provider, cfg.Team, loc, logger, recorder)
	announceSvc := announce.NewService(provider, rosterSvc, cfg.Team, cfg.AnnounceName, parseClockMode(cfg.ClockMode), logger, recorder)

	plr := poller.New(scheduleSvc, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, scheduleSvc, announceSvc, logger, recorder, plr, version)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		scheduleSvc:   scheduleSvc,
		announceSvc:   announceSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		storeClose:    storeClose,
		metricsStop:   metricsShutdown,
	}
}

func parseClockMode(raw string) speech.ClockMode {
	if raw == "human" {
		return speech.ModeHuman
	}
	return speech.ModeRaw
}

func buildHTTPServer(cfg config.Config, scheduleSvc *schedule.Service, announceSvc *announce.Service, logger *slog.Logger, recorder *metrics.Recorder, plr Poller, version string) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	info := handlers.Info{
		Team:         cfg.Team,
		AnnounceName: cfg.AnnounceName,
		ClockMode:    parseClockMode(cfg.ClockMode),
		Version:      version,
	}
	handler := handlers.NewHandler(scheduleSvc, announceSvc, info, logger, statusFn)
	router := httpserver.NewRouter(handler)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.Logging(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return stdHTTPServer{srv: srv}
}

// Run starts the poller and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	launchServer("http", s.httpServer, s.logger, func(error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.storeClose != nil {
		if err := s.storeClose(); err != nil && s.logger != nil {
			s.logger.Warn("store close failed", "error", err)
		}
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", handler)
		metricsSrv = stdHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: mux,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
