package pgn

import "fmt"

// Color is the side that made a move, "w" or "b".
type Color string

const (
	White Color = "w"
	Black Color = "b"
)

// GameRecord is one loadable game: header-complete PGN plus its scanned tags.
type GameRecord struct {
	PGN    string            `json:"pgn"`
	Header map[string]string `json:"header"`
}

// Title is the label shown in the game selector.
func (g GameRecord) Title(ordinal int) string {
	if ev := g.Header["Event"]; ev != "" {
		return ev
	}
	return defaultEvent(ordinal)
}

// Ply is the board state after one half-move.
type Ply struct {
	FEN      string `json:"fen"`
	MoveText string `json:"moveText"`
	Color    Color  `json:"color"`
	From     string `json:"from"`
	To       string `json:"to"`
}

// Collection is the result of one ingestion. It is replaced, never edited.
type Collection struct {
	Games   []GameRecord
	Skipped []*LoadError
}

func defaultEvent(ordinal int) string {
	return fmt.Sprintf("Partia %d", ordinal+1)
}
