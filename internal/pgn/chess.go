package pgn

import (
	"errors"
	"fmt"
	"strings"

	"github.com/corentings/chess/v2"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ChessRules implements Rules on github.com/corentings/chess/v2.
type ChessRules struct{}

// Load implements Rules.
func (ChessRules) Load(text string) (Game, error) {
	opt, err := chess.PGN(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	return &chessGame{g: chess.NewGame(opt)}, nil
}

// New implements Rules.
func (ChessRules) New(fen string) (Game, error) {
	if fen == "" {
		return &chessGame{g: chess.NewGame()}, nil
	}
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, err
	}
	return &chessGame{g: chess.NewGame(opt)}, nil
}

type chessGame struct {
	g *chess.Game
}

func (c *chessGame) Tag(name string) (string, bool) {
	v := c.g.GetTagPair(name)
	return v, v != ""
}

// History reads the main line without moving the game: each move's parent
// node carries the position it was played from.
func (c *chessGame) History() ([]Move, error) {
	moves := c.g.Moves()
	out := make([]Move, 0, len(moves))
	for i, m := range moves {
		parent := m.Parent()
		if parent == nil || parent.Position() == nil {
			return nil, fmt.Errorf("move %d has no prior position", i+1)
		}
		pos := parent.Position()
		out = append(out, Move{
			Color: colorOf(pos.Turn()),
			From:  m.S1().String(),
			To:    m.S2().String(),
			SAN:   chess.AlgebraicNotation{}.Encode(pos, m),
		})
	}
	return out, nil
}

func (c *chessGame) Apply(m Move) error {
	if turn := colorOf(c.g.Position().Turn()); turn != m.Color {
		return fmt.Errorf("%s to move, got %s move %s", turn, m.Color, m.SAN)
	}
	if m.SAN == "" {
		return errors.New("empty move")
	}
	return c.g.PushMove(m.SAN, &chess.PushMoveOptions{ForceMainline: true})
}

func (c *chessGame) FEN() string {
	return c.g.Position().String()
}

func colorOf(c chess.Color) Color {
	if c == chess.Black {
		return Black
	}
	return White
}
