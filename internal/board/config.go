// Package board describes what the browser board widget should draw for each
// ply. It never walks a game: views are cut from an existing ply list, so
// flipping the board or moving the cursor costs no replay.
package board

import (
	"fmt"

	"pgngrid/internal/pgn"
	"pgngrid/pkg/utils"
)

// DefaultPieceTheme is the widget's piece image URL template, served by the
// same CDN as the widget script.
const DefaultPieceTheme = "https://unpkg.com/@chrisoakman/chessboardjs@1.0.0/img/chesspieces/wikipedia/{piece}.png"

// Orientation is the side drawn at the bottom of the board.
type Orientation string

const (
	White Orientation = "white"
	Black Orientation = "black"
)

// ParseOrientation accepts "white" or "black".
func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(s) {
	case White, Black:
		return Orientation(s), nil
	}
	return "", fmt.Errorf("board: unknown orientation %q", s)
}

// Flip returns the other orientation.
func (o Orientation) Flip() Orientation {
	if o == Black {
		return White
	}
	return Black
}

// Side is the move color drawn at the bottom.
func (o Orientation) Side() pgn.Color {
	if o == Black {
		return pgn.Black
	}
	return pgn.White
}

// Config is the full set of options the board widget recognises.
type Config struct {
	ContainerID  string      `json:"containerId"`
	Position     string      `json:"position"`
	Orientation  Orientation `json:"orientation"`
	Draggable    bool        `json:"draggable"`
	PieceTheme   string      `json:"pieceTheme"`
	ShowNotation bool        `json:"showNotation"`
}

// NewConfig returns a static board for fen.
func NewConfig(fen string, o Orientation, pieceTheme string) Config {
	if pieceTheme == "" {
		pieceTheme = DefaultPieceTheme
	}
	return Config{
		ContainerID: "board-" + utils.RandomHex(6),
		Position:    fen,
		Orientation: o,
		PieceTheme:  pieceTheme,
	}
}
