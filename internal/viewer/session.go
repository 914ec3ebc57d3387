package viewer

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pgngrid/internal/board"
	"pgngrid/internal/pgn"
)

var (
	// ErrNoGame is returned when a game index does not exist in the session.
	ErrNoGame = errors.New("viewer: no such game")
	// ErrStale is returned when the game list was replaced while a game was
	// being walked.
	ErrStale = errors.New("viewer: game list changed")
)

// Touch updates the last seen timestamp.
func (s *Session) Touch() {
	s.Mu.Lock()
	s.LastSeen = time.Now()
	s.Mu.Unlock()
}

// Load ingests raw text and renders its first game.
//
// Empty input leaves the session untouched. When no game loads, the previous
// game list and plies are dropped. When the first game cannot be replayed the
// new game list is kept and the previous plies stay on screen.
func (s *Session) Load(raw string) (*pgn.Collection, error) {
	c, err := pgn.Ingest(raw, s.rules)
	if errors.Is(err, pgn.ErrNoValidGames) {
		s.Mu.Lock()
		s.replaceGames(uuid.Nil, nil)
		s.Plies = nil
		s.Current = 0
		s.Mu.Unlock()
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	s.Mu.Lock()
	s.replaceGames(uuid.Nil, c.Games)
	gen := s.gen
	s.Mu.Unlock()

	plies, err := pgn.Walk(c.Games[0], s.rules)
	if err != nil {
		return c, err
	}
	s.commit(gen, 0, plies)
	return c, nil
}

// Adopt replaces the games with an already validated list, e.g. a stored document.
func (s *Session) Adopt(docID uuid.UUID, games []pgn.GameRecord) error {
	if len(games) == 0 {
		return pgn.ErrNoValidGames
	}
	s.Mu.Lock()
	s.replaceGames(docID, games)
	gen := s.gen
	s.Mu.Unlock()

	plies, err := pgn.Walk(games[0], s.rules)
	if err != nil {
		return err
	}
	s.commit(gen, 0, plies)
	return nil
}

// replaceGames installs a new game list (must be called with lock held).
func (s *Session) replaceGames(docID uuid.UUID, games []pgn.GameRecord) {
	s.gen++
	s.Games = games
	s.Selected = 0
	s.DocumentID = docID
	s.LastSeen = time.Now()
}

// commit stores the plies of game i unless the game list changed since gen.
func (s *Session) commit(gen uint64, i int, plies []pgn.Ply) bool {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	if s.gen != gen {
		return false
	}
	s.Plies = plies
	s.Selected = i
	s.Current = 0
	return true
}

// SetDocument records the stored document the games came from.
func (s *Session) SetDocument(id uuid.UUID) {
	s.Mu.Lock()
	s.DocumentID = id
	s.Mu.Unlock()
}

// Select renders game i. On failure the previous plies stay in place.
func (s *Session) Select(i int) error {
	s.Mu.Lock()
	if i < 0 || i >= len(s.Games) {
		s.Mu.Unlock()
		return fmt.Errorf("%w: %d", ErrNoGame, i)
	}
	rec := s.Games[i]
	gen := s.gen
	s.Mu.Unlock()

	plies, err := pgn.Walk(rec, s.rules)
	if err != nil {
		return err
	}
	if !s.commit(gen, i, plies) {
		return ErrStale
	}
	return nil
}

// Jump moves the cursor to ply i, clamped to the ply range.
func (s *Session) Jump(i int) int {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.Current = clamp(i, len(s.Plies))
	return s.Current
}

// Step moves the cursor by delta plies.
func (s *Session) Step(delta int) int {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	s.Current = clamp(s.Current+delta, len(s.Plies))
	return s.Current
}

// ToggleOrientation flips the board. Plies are not recomputed.
func (s *Session) ToggleOrientation() {
	s.Mu.Lock()
	s.Orientation = s.Orientation.Flip()
	s.Mu.Unlock()
}

// SetOrientation puts side o at the bottom. Plies are not recomputed.
func (s *Session) SetOrientation(o board.Orientation) {
	s.Mu.Lock()
	s.Orientation = o
	s.Mu.Unlock()
}

// StateLocked returns the session snapshot (must be called with lock held).
func (s *Session) StateLocked() State {
	st := State{
		ID:          s.ID.String(),
		Games:       make([]GameSummary, 0, len(s.Games)),
		Selected:    s.Selected,
		Current:     s.Current,
		Orientation: s.Orientation,
		Plies:       s.Plies,
	}
	if s.DocumentID != uuid.Nil {
		st.DocumentID = s.DocumentID.String()
	}
	for i, g := range s.Games {
		st.Games = append(st.Games, GameSummary{Index: i, Title: g.Title(i), Header: g.Header})
	}
	if s.Selected < len(s.Games) {
		st.Title = s.Games[s.Selected].Title(s.Selected)
	}
	if st.Plies == nil {
		st.Plies = []pgn.Ply{}
	}
	return st
}

// State returns the session snapshot.
func (s *Session) State() State {
	s.Mu.Lock()
	defer s.Mu.Unlock()
	return s.StateLocked()
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
