package viewer

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"pgngrid/internal/board"
	"pgngrid/internal/pgn"
)

// Hub holds every open viewer session.
type Hub struct {
	Mu       sync.Mutex
	Sessions map[uuid.UUID]*Session
	rules    pgn.Rules
}

// Session is the state behind one browser tab: the loaded games, the plies of
// the selected game and the cursor into them.
type Session struct {
	Mu          sync.Mutex
	ID          uuid.UUID
	DocumentID  uuid.UUID
	Games       []pgn.GameRecord
	Plies       []pgn.Ply
	Selected    int
	Current     int
	Orientation board.Orientation
	LastSeen    time.Time
	rules       pgn.Rules
	// gen counts game list replacements.
	gen uint64
}

// GameSummary is one entry of the game selector.
type GameSummary struct {
	Index  int               `json:"index"`
	Title  string            `json:"title"`
	Header map[string]string `json:"header"`
}

// State is the JSON snapshot of a session.
type State struct {
	ID          string            `json:"id"`
	DocumentID  string            `json:"documentId,omitempty"`
	Title       string            `json:"title"`
	Games       []GameSummary     `json:"games"`
	Selected    int               `json:"selected"`
	Current     int               `json:"current"`
	Orientation board.Orientation `json:"orientation"`
	Plies       []pgn.Ply         `json:"plies"`
}
