package store

import (
	"context"
	"testing"
	"time"
)

func TestOnlineExcludesCaller(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Touch(ctx, "alice", "01J00000000000000000000001")
	s.Touch(ctx, "bob", "01J00000000000000000000002")

	players, err := s.Online(ctx, "alice", DefaultLiveness)
	if err != nil {
		t.Fatalf("online: %v", err)
	}
	if len(players) != 1 || players[0] != "bob" {
		t.Errorf("expected [bob], got %v", players)
	}
}

func TestOnlineIgnoresStaleSessions(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Touch(ctx, "bob", "01J00000000000000000000001")

	stale := time.Now().UTC().Add(-time.Hour).Format(time.RFC3339)
	if _, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET last_seen = ? WHERE player = ?`, stale, "bob"); err != nil {
		t.Fatalf("age session: %v", err)
	}

	players, err := s.Online(ctx, "alice", DefaultLiveness)
	if err != nil {
		t.Fatalf("online: %v", err)
	}
	if len(players) != 0 {
		t.Errorf("expected no live players, got %v", players)
	}

	live, err := s.Resolve(ctx, "bob", DefaultLiveness)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if live {
		t.Error("expected stale session to resolve as offline")
	}
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Touch(ctx, "Bob", "01J00000000000000000000001")

	live, err := s.Resolve(ctx, "bob", DefaultLiveness)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !live {
		t.Error("expected bob online")
	}

	live, _ = s.Resolve(ctx, "carol", DefaultLiveness)
	if live {
		t.Error("expected carol offline")
	}
}

func TestInboxDrainDeliversOnce(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.Enqueue(ctx, "bob", "first")
	s.Enqueue(ctx, "bob", "second")
	s.Enqueue(ctx, "carol", "other")

	got, err := s.Drain(ctx, "bob")
	if err != nil {
		t.Fatalf("drain: %v", err)
	}
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Errorf("expected [first second], got %v", got)
	}

	again, err := s.Drain(ctx, "bob")
	if err != nil {
		t.Fatalf("second drain: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("expected empty second drain, got %v", again)
	}

	carol, _ := s.Drain(ctx, "carol")
	if len(carol) != 1 || carol[0] != "other" {
		t.Errorf("expected carol's message intact, got %v", carol)
	}
}
