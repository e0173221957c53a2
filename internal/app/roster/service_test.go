package roster

import (
	"context"
	"errors"
	"testing"

	"goal-announcer/internal/domain"
	"goal-announcer/internal/store"
	"goal-announcer/internal/testutil"
)

func TestReloadReplacesRoster(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	_ = st.SetRoster(ctx, []domain.Player{{ID: 99, Jersey: 4, LastName: "Orr"}})

	provider := &testutil.StubProvider{
		RosterResult: []domain.Player{
			{ID: 1, Jersey: 63, FirstName: "Brad", LastName: "Marchand"},
		},
	}
	svc := NewService(st, provider, nil)

	if err := svc.Reload(ctx, "BOS", "20232024"); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if provider.RosterCalls != 1 {
		t.Fatalf("expected 1 fetch, got %d", provider.RosterCalls)
	}

	jersey, ok := svc.JerseyNumber(ctx, 1)
	if !ok || jersey != 63 {
		t.Fatalf("expected jersey 63, got %d ok=%v", jersey, ok)
	}
	if _, ok := svc.JerseyNumber(ctx, 99); ok {
		t.Fatal("expected old roster to be replaced")
	}
}

func TestReloadFailureLeavesRosterEmpty(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	_ = st.SetRoster(ctx, []domain.Player{{ID: 99, Jersey: 4, LastName: "Orr"}})

	provider := &testutil.StubProvider{RosterErr: errors.New("upstream down")}
	svc := NewService(st, provider, nil)

	if err := svc.Reload(ctx, "BOS", "20232024"); err == nil {
		t.Fatal("expected error")
	}
	if svc.Loaded(ctx) {
		t.Fatal("expected empty roster after failed reload")
	}
}

func TestJerseyNumberMissingPlayer(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	svc := NewService(st, &testutil.StubProvider{}, nil)

	if _, ok := svc.JerseyNumber(ctx, 42); ok {
		t.Fatal("expected lookup miss on empty roster")
	}
}
