package pgn

// Rules is the chess rules engine the pipeline drives. Implementations parse
// PGN, know the legal moves and produce SAN and FEN.
type Rules interface {
	// Load parses header and movetext into a fresh game.
	Load(text string) (Game, error)
	// New starts a fresh game at fen, or at the standard position when fen is empty.
	New(fen string) (Game, error)
}

// Game is one engine game instance.
type Game interface {
	// Tag returns a header value from the engine's own parsed tags.
	Tag(name string) (string, bool)
	// History lists the loaded main line in play order.
	History() ([]Move, error)
	// Apply plays m on the current position.
	Apply(m Move) error
	// FEN is the current position.
	FEN() string
}

// Move is one verbose history entry.
type Move struct {
	Color Color
	From  string
	To    string
	SAN   string
}
