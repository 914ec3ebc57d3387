package pgn

import (
	"fmt"
	"strconv"
	"strings"

	"pgngrid/internal/logging"
)

// Walk replays rec and returns the position after every half-move.
//
// The history is read from one engine instance and re-applied on a second,
// freshly seeded one, so nothing depends on state the loader leaves behind.
// On error no plies are returned.
func Walk(rec GameRecord, rules Rules) ([]Ply, error) {
	plies, err := walk(rec, rules)
	if err != nil {
		logging.Errorf("rendering game %q failed: %v", rec.Header["Event"], err)
		return nil, err
	}
	logging.Debugf("walked %d plies", len(plies))
	return plies, nil
}

func walk(rec GameRecord, rules Rules) ([]Ply, error) {
	loaded, err := rules.Load(rec.PGN)
	if err != nil {
		return nil, &ReplayError{Ply: -1, Err: err}
	}

	fen, _ := loaded.Tag("FEN")
	startMove := StartMoveNumber(fen)

	history, err := loaded.History()
	if err != nil {
		return nil, &ReplayError{Ply: -1, Err: err}
	}

	board, err := rules.New(fen)
	if err != nil {
		return nil, &ReplayError{Ply: -1, Err: fmt.Errorf("start position: %w", err)}
	}

	plies := make([]Ply, 0, len(history))
	for i, m := range history {
		if err := board.Apply(m); err != nil {
			return nil, &ReplayError{Ply: i, SAN: m.SAN, Err: err}
		}
		plies = append(plies, Ply{
			FEN:      board.FEN(),
			MoveText: MoveText(startMove, i, m),
			Color:    m.Color,
			From:     m.From,
			To:       m.To,
		})
	}
	return plies, nil
}

// StartMoveNumber reads the full-move field of fen. An empty or unusable
// field yields 1.
func StartMoveNumber(fen string) int {
	fields := strings.Fields(fen)
	if len(fields) < 6 {
		return 1
	}
	n, err := strconv.Atoi(fields[5])
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// MoveText labels the i-th half-move: "12. Nf3" for White, "12... Nf6" for Black.
func MoveText(startMove, i int, m Move) string {
	n := startMove + i/2
	if m.Color == Black {
		return fmt.Sprintf("%d... %s", n, m.SAN)
	}
	return fmt.Sprintf("%d. %s", n, m.SAN)
}
