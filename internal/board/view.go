package board

import "pgngrid/internal/pgn"

// Cell is one small board of the grid.
type Cell struct {
	Config   Config `json:"config"`
	MoveText string `json:"moveText"`
	Emphasis bool   `json:"emphasis"`
	From     string `json:"from"`
	To       string `json:"to"`
}

// Grid returns one cell per ply. Moves by the side at the bottom are emphasised.
func Grid(plies []pgn.Ply, o Orientation, pieceTheme string) []Cell {
	cells := make([]Cell, 0, len(plies))
	for _, p := range plies {
		cells = append(cells, Cell{
			Config:   NewConfig(p.FEN, o, pieceTheme),
			MoveText: p.MoveText,
			Emphasis: p.Color == o.Side(),
			From:     p.From,
			To:       p.To,
		})
	}
	return cells
}

// BigBoard is the enlarged single-board view with its move list.
type BigBoard struct {
	Config  Config   `json:"config"`
	Index   int      `json:"index"`
	From    string   `json:"from"`
	To      string   `json:"to"`
	HasPrev bool     `json:"hasPrev"`
	HasNext bool     `json:"hasNext"`
	Moves   []string `json:"moves"`
}

// Big returns the view of ply index. ok is false when index is out of range.
func Big(plies []pgn.Ply, index int, o Orientation, pieceTheme string) (BigBoard, bool) {
	if index < 0 || index >= len(plies) {
		return BigBoard{}, false
	}
	p := plies[index]
	cfg := NewConfig(p.FEN, o, pieceTheme)
	cfg.ContainerID = "big-board"
	cfg.ShowNotation = true

	moves := make([]string, len(plies))
	for i, ply := range plies {
		moves[i] = ply.MoveText
	}
	return BigBoard{
		Config:  cfg,
		Index:   index,
		From:    p.From,
		To:      p.To,
		HasPrev: index > 0,
		HasNext: index < len(plies)-1,
		Moves:   moves,
	}, true
}
