package pgn

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func activeColor(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

func TestWalkStandardGame(t *testing.T) {
	rec := Normalize("1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 *", 0)
	plies, err := Walk(rec, ChessRules{})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	var labels []string
	for _, p := range plies {
		labels = append(labels, p.MoveText)
	}
	want := []string{"1. e4", "1... e5", "2. Nf3", "2... Nc6", "3. Bb5", "3... a6"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if plies[0].From != "e2" || plies[0].To != "e4" || plies[0].Color != White {
		t.Fatalf("unexpected first ply %+v", plies[0])
	}
	if plies[2].From != "g1" || plies[2].To != "f3" {
		t.Fatalf("unexpected third ply %+v", plies[2])
	}
	if !strings.HasPrefix(plies[5].FEN, "r1bqkbnr/1ppp1ppp/p1n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq") {
		t.Fatalf("unexpected final FEN %q", plies[5].FEN)
	}
}

func TestWalkActiveColorAlternates(t *testing.T) {
	rec := Normalize("1. d4 Nf6 2. c4 e6 3. Nc3 Bb4 4. Qc2 O-O 5. a3 Bxc3+ 6. Qxc3 *", 0)
	plies, err := Walk(rec, ChessRules{})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(plies) != 11 {
		t.Fatalf("expected 11 plies, got %d", len(plies))
	}
	for i, p := range plies {
		want := "b"
		if i%2 == 1 {
			want = "w"
		}
		if got := activeColor(p.FEN); got != want {
			t.Fatalf("ply %d side to move = %q, want %q", i, got, want)
		}
	}
	if plies[7].MoveText != "4... O-O" || plies[7].From != "e8" || plies[7].To != "g8" {
		t.Fatalf("unexpected castling ply %+v", plies[7])
	}
	if plies[9].MoveText != "5... Bxc3+" {
		t.Fatalf("unexpected check label %q", plies[9].MoveText)
	}
}

func TestWalkFromFENHeader(t *testing.T) {
	pgn := "[Event \"Study\"]\n" +
		"[SetUp \"1\"]\n" +
		"[FEN \"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 2 10\"]\n\n" +
		"10... Nf6 11. Nc3 *"
	plies, err := Walk(GameRecord{PGN: pgn}, ChessRules{})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(plies) != 2 {
		t.Fatalf("expected 2 plies, got %d", len(plies))
	}
	if !strings.HasPrefix(plies[0].MoveText, "10... ") || plies[0].Color != Black {
		t.Fatalf("unexpected first ply %+v", plies[0])
	}
	if got := activeColor(plies[0].FEN); got != "w" {
		t.Fatalf("side to move after first ply = %q", got)
	}
}

func TestWalkMoveTextFormula(t *testing.T) {
	f := &fakeRules{
		tags: map[string]string{"FEN": "8/8/8/8/8/8/8/K6k w - - 0 5"},
		history: []Move{
			{Color: White, SAN: "a"},
			{Color: Black, SAN: "b"},
			{Color: White, SAN: "c"},
			{Color: Black, SAN: "d"},
		},
	}
	plies, err := Walk(GameRecord{PGN: "x"}, f)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	var labels []string
	for _, p := range plies {
		labels = append(labels, p.MoveText)
	}
	want := []string{"5. a", "5... b", "6. c", "6... d"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	if f.newCalls != 1 {
		t.Fatalf("expected one fresh engine instance, got %d", f.newCalls)
	}
}

func TestWalkEmptyHistory(t *testing.T) {
	plies, err := Walk(GameRecord{PGN: "stub"}, &fakeRules{})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(plies) != 0 {
		t.Fatalf("expected no plies, got %d", len(plies))
	}
}

func TestWalkReplayFailure(t *testing.T) {
	f := &fakeRules{
		history: []Move{{Color: White, SAN: "e4"}, {Color: Black, SAN: "e5"}},
		failPly: 2,
	}
	plies, err := Walk(GameRecord{PGN: "x"}, f)
	if plies != nil {
		t.Fatalf("expected no partial plies, got %d", len(plies))
	}
	var re *ReplayError
	if !errors.As(err, &re) {
		t.Fatalf("expected ReplayError, got %v", err)
	}
	if re.Ply != 1 || re.SAN != "e5" {
		t.Fatalf("unexpected replay error %+v", re)
	}
}

func TestWalkLoadFailure(t *testing.T) {
	_, err := Walk(GameRecord{PGN: "broken"}, &fakeRules{})
	var re *ReplayError
	if !errors.As(err, &re) || re.Ply != -1 {
		t.Fatalf("expected load-stage ReplayError, got %v", err)
	}
}

func TestStartMoveNumber(t *testing.T) {
	tests := []struct {
		fen  string
		want int
	}{
		{"", 1},
		{StartFEN, 1},
		{"8/8/8/8/8/8/8/K6k b - - 3 42", 42},
		{"8/8/8/8/8/8/8/K6k b - - 3 x", 1},
		{"8/8/8/8/8/8/8/K6k b - -", 1},
	}
	for _, tt := range tests {
		if got := StartMoveNumber(tt.fen); got != tt.want {
			t.Errorf("StartMoveNumber(%q) = %d, want %d", tt.fen, got, tt.want)
		}
	}
}
