package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"goal-announcer/internal/domain"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisStore(client, time.UTC), mr
}

func TestRedisStoreGameRefRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newRedisStore(t)

	if _, ok, err := s.GameRef(ctx); ok || err != nil {
		t.Fatalf("expected empty store, ok=%v err=%v", ok, err)
	}

	ref := domain.GameRef{Team: "BOS", Date: "2024-01-01", GameID: "42", Season: "20232024"}
	if err := s.SetGameRef(ctx, ref); err != nil {
		t.Fatalf("SetGameRef: %v", err)
	}

	got, ok, err := s.GameRef(ctx)
	if err != nil || !ok {
		t.Fatalf("expected stored ref, ok=%v err=%v", ok, err)
	}
	if got != ref {
		t.Fatalf("expected %+v, got %+v", ref, got)
	}
}

func TestRedisStoreGameRefExpiresAtEndOfDay(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t)

	fixed := time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	if err := s.SetGameRef(ctx, domain.GameRef{Date: "2024-01-01", GameID: "42"}); err != nil {
		t.Fatalf("SetGameRef: %v", err)
	}

	ttl := mr.TTL(GameRefKey)
	if ttl <= 0 || ttl > 2*time.Hour {
		t.Fatalf("expected ttl within the local day, got %s", ttl)
	}

	mr.FastForward(3 * time.Hour)
	if _, ok, _ := s.GameRef(ctx); ok {
		t.Fatal("expected ref to expire with the day")
	}
}

func TestRedisStoreRoster(t *testing.T) {
	ctx := context.Background()
	s, _ := newRedisStore(t)

	roster, err := s.Roster(ctx)
	if err != nil || len(roster) != 0 {
		t.Fatalf("expected empty roster, got %v err=%v", roster, err)
	}

	players := []domain.Player{
		{ID: 1, Jersey: 63, FirstName: "Brad", LastName: "Marchand"},
		{ID: 2, Jersey: 73, FirstName: "Charlie", LastName: "McAvoy"},
	}
	if err := s.SetRoster(ctx, players); err != nil {
		t.Fatalf("SetRoster: %v", err)
	}

	roster, err = s.Roster(ctx)
	if err != nil {
		t.Fatalf("Roster: %v", err)
	}
	if len(roster) != 2 || roster[1].Jersey != 73 {
		t.Fatalf("unexpected roster: %+v", roster)
	}

	if err := s.ClearRoster(ctx); err != nil {
		t.Fatalf("ClearRoster: %v", err)
	}
	roster, _ = s.Roster(ctx)
	if len(roster) != 0 {
		t.Fatalf("expected cleared roster, got %+v", roster)
	}
}

func TestRedisStoreUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	s := NewRedisStore(client, time.UTC)
	mr.Close()

	if _, _, err := s.GameRef(context.Background()); err == nil {
		t.Fatal("expected error from closed redis")
	}
}
