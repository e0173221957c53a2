package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"goal-announcer/internal/config"
	"goal-announcer/internal/domain"
	"goal-announcer/internal/store"
)

// Store is the full state-store surface the pipeline services share.
type Store interface {
	GameRef(ctx context.Context) (domain.GameRef, bool, error)
	SetGameRef(ctx context.Context, ref domain.GameRef) error
	Roster(ctx context.Context) ([]domain.Player, error)
	SetRoster(ctx context.Context, roster []domain.Player) error
	ClearRoster(ctx context.Context) error
}

// buildStore selects the configured backend. The returned closer releases
// backend resources on shutdown; for the in-memory store it is a no-op.
func buildStore(cfg config.Config, loc *time.Location, logger *slog.Logger) (Store, func() error) {
	switch cfg.Store.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.Store.RedisAddr})
		if logger != nil {
			logger.Info("using redis store", slog.String("addr", cfg.Store.RedisAddr))
		}
		return store.NewRedisStore(client, loc), client.Close
	default:
		return store.NewMemoryStore(), func() error { return nil }
	}
}
