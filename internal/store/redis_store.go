package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"goal-announcer/internal/domain"
	"goal-announcer/internal/timeutil"
)

const (
	// GameRefKey holds the cached game reference as JSON.
	GameRefKey = "goal-announcer:game_ref"
	// RosterKey holds the current roster as JSON.
	RosterKey = "goal-announcer:roster"
)

// RedisStore shares the game reference and roster across processes. Values
// expire at the end of the team-local day, matching the date key that makes
// them valid in the first place.
type RedisStore struct {
	client *redis.Client
	loc    *time.Location
	now    func() time.Time
}

// NewRedisStore returns a RedisStore using the given client, expiring
// entries at local midnight in loc.
func NewRedisStore(client *redis.Client, loc *time.Location) *RedisStore {
	if loc == nil {
		loc = time.UTC
	}
	return &RedisStore{
		client: client,
		loc:    loc,
		now:    time.Now,
	}
}

// GameRef returns the cached game reference, if one is stored.
func (s *RedisStore) GameRef(ctx context.Context) (domain.GameRef, bool, error) {
	raw, err := s.client.Get(ctx, GameRefKey).Result()
	if errors.Is(err, redis.Nil) {
		return domain.GameRef{}, false, nil
	}
	if err != nil {
		return domain.GameRef{}, false, fmt.Errorf("get game ref: %w", err)
	}

	var ref domain.GameRef
	if err := json.Unmarshal([]byte(raw), &ref); err != nil {
		return domain.GameRef{}, false, fmt.Errorf("decode game ref: %w", err)
	}
	return ref, true, nil
}

// SetGameRef overwrites the cached game reference.
func (s *RedisStore) SetGameRef(ctx context.Context, ref domain.GameRef) error {
	b, err := json.Marshal(ref)
	if err != nil {
		return fmt.Errorf("marshal game ref: %w", err)
	}
	return s.client.Set(ctx, GameRefKey, string(b), s.ttl()).Err()
}

// Roster returns the stored roster, or an empty slice when none is stored.
func (s *RedisStore) Roster(ctx context.Context) ([]domain.Player, error) {
	raw, err := s.client.Get(ctx, RosterKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get roster: %w", err)
	}

	var roster []domain.Player
	if err := json.Unmarshal([]byte(raw), &roster); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	return roster, nil
}

// SetRoster replaces the stored roster wholesale.
func (s *RedisStore) SetRoster(ctx context.Context, roster []domain.Player) error {
	b, err := json.Marshal(roster)
	if err != nil {
		return fmt.Errorf("marshal roster: %w", err)
	}
	return s.client.Set(ctx, RosterKey, string(b), s.ttl()).Err()
}

// ClearRoster removes the stored roster.
func (s *RedisStore) ClearRoster(ctx context.Context) error {
	return s.client.Del(ctx, RosterKey).Err()
}

func (s *RedisStore) ttl() time.Duration {
	return time.Until(timeutil.EndOfDay(s.now(), s.loc))
}
