package viewer

import (
	"context"
	"testing"
	"time"

	"pgngrid/internal/board"
	"pgngrid/internal/pgn"
)

func TestCreateAndGet(t *testing.T) {
	h := NewHub(pgn.ChessRules{})
	s := h.Create()
	if s.Orientation != board.White {
		t.Fatalf("expected white orientation, got %q", s.Orientation)
	}
	got, ok := h.Get(s.ID)
	if !ok || got != s {
		t.Fatalf("session not found")
	}
}

func TestSessionPersistenceBeforeSweep(t *testing.T) {
	h := NewHub(pgn.ChessRules{})
	s := h.Create()

	s.Mu.Lock()
	s.LastSeen = time.Now().Add(-23 * time.Hour)
	s.Mu.Unlock()

	if n := h.Sweep(IdleTimeout); n != 0 {
		t.Fatalf("session removed before 24 hours of inactivity")
	}

	s.Mu.Lock()
	s.LastSeen = time.Now().Add(-25 * time.Hour)
	s.Mu.Unlock()

	if n := h.Sweep(IdleTimeout); n != 1 {
		t.Fatalf("expected 1 session swept, got %d", n)
	}
	if _, ok := h.Get(s.ID); ok {
		t.Fatalf("session not removed after 24 hours of inactivity")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	h := NewHub(pgn.ChessRules{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx, time.Millisecond) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Run did not stop")
	}
}
