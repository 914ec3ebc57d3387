package viewer

import (
	"context"
	"time"

	"github.com/google/uuid"

	"pgngrid/internal/board"
	"pgngrid/internal/logging"
	"pgngrid/internal/pgn"
)

// IdleTimeout is how long an untouched session survives.
const IdleTimeout = 24 * time.Hour

// NewHub creates an empty hub whose sessions use rules.
func NewHub(rules pgn.Rules) *Hub {
	return &Hub{Sessions: make(map[uuid.UUID]*Session), rules: rules}
}

// Create opens a new empty session.
func (h *Hub) Create() *Session {
	s := &Session{
		ID:          uuid.New(),
		Orientation: board.White,
		LastSeen:    time.Now(),
		rules:       h.rules,
	}
	h.Mu.Lock()
	h.Sessions[s.ID] = s
	h.Mu.Unlock()
	return s
}

// Get returns the session with the given id.
func (h *Hub) Get(id uuid.UUID) (*Session, bool) {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	s, ok := h.Sessions[id]
	return s, ok
}

// Sweep drops sessions idle for longer than idle and reports how many went.
func (h *Hub) Sweep(idle time.Duration) int {
	h.Mu.Lock()
	defer h.Mu.Unlock()
	removed := 0
	for id, s := range h.Sessions {
		s.Mu.Lock()
		stale := time.Since(s.LastSeen) > idle
		s.Mu.Unlock()
		if stale {
			delete(h.Sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is done.
func (h *Hub) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := h.Sweep(IdleTimeout); n > 0 {
				logging.Debugf("swept %d idle sessions", n)
			}
		}
	}
}
