package pgn

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the raw text holds no game segment at all.
	ErrEmptyInput = errors.New("pgn: no games found in input")
	// ErrNoValidGames is returned when every segment was rejected by the rules engine.
	ErrNoValidGames = errors.New("pgn: no game could be loaded")
)

// LoadError records a single segment the rules engine refused to load.
type LoadError struct {
	Ordinal int
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("pgn: game %d: %v", e.Ordinal+1, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ReplayError is returned when re-applying a game's history fails.
// Ply is the zero-based index of the offending half-move, or -1 when the
// failure happened before any move was applied.
type ReplayError struct {
	Ply int
	SAN string
	Err error
}

func (e *ReplayError) Error() string {
	if e.Ply < 0 {
		return fmt.Sprintf("pgn: replay: %v", e.Err)
	}
	return fmt.Sprintf("pgn: replay ply %d (%s): %v", e.Ply+1, e.SAN, e.Err)
}

func (e *ReplayError) Unwrap() error { return e.Err }
