package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"travel-planner/internal/travel"
	"travel-planner/internal/travel/repository"
)

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	repo := New(2, time.Hour)

	s := travel.NewSession("s1", time.Now())
	s.Slots.Preferences = []string{"맛집"}
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Mutating the caller's copy must not leak into the store.
	s.Slots.Preferences[0] = "쇼핑"

	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Slots.Preferences[0] != "맛집" {
		t.Errorf("stored state was aliased: %v", got.Slots.Preferences)
	}

	got.Slots.Preferences[0] = "휴식"
	again, _ := repo.Get(ctx, "s1")
	if again.Slots.Preferences[0] != "맛집" {
		t.Errorf("returned state was aliased: %v", again.Slots.Preferences)
	}

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := repo.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "s1"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSessionRepository_Eviction(t *testing.T) {
	ctx := context.Background()
	repo := New(2, time.Hour)

	for _, id := range []string{"a", "b", "c"} {
		_ = repo.Save(ctx, travel.NewSession(id, time.Now()))
	}

	if _, err := repo.Get(ctx, "a"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected oldest session to be evicted, got %v", err)
	}
	if _, err := repo.Get(ctx, "c"); err != nil {
		t.Errorf("expected newest session to be kept: %v", err)
	}
}

func TestSessionRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	repo := New(10, 20*time.Millisecond)

	_ = repo.Save(ctx, travel.NewSession("short", time.Now()))
	time.Sleep(60 * time.Millisecond)

	if _, err := repo.Get(ctx, "short"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected expired session, got %v", err)
	}
}
