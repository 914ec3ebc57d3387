package pgn

import (
	"errors"
	"strings"
)

// fakeRules is a scripted engine: text containing "broken" fails to load and
// every game yields the same history.
type fakeRules struct {
	tags     map[string]string
	history  []Move
	failPly  int
	newCalls int
}

func (f *fakeRules) Load(text string) (Game, error) {
	if strings.Contains(text, "broken") {
		return nil, errors.New("unparsable movetext")
	}
	return &fakeGame{rules: f}, nil
}

func (f *fakeRules) New(fen string) (Game, error) {
	f.newCalls++
	return &fakeGame{rules: f, fen: fen}, nil
}

type fakeGame struct {
	rules   *fakeRules
	fen     string
	applied int
}

func (g *fakeGame) Tag(name string) (string, bool) {
	v, ok := g.rules.tags[name]
	return v, ok
}

func (g *fakeGame) History() ([]Move, error) { return g.rules.history, nil }

func (g *fakeGame) Apply(m Move) error {
	if g.rules.failPly > 0 && g.applied+1 == g.rules.failPly {
		return errors.New("illegal move")
	}
	g.applied++
	return nil
}

func (g *fakeGame) FEN() string {
	return g.fen + "#" + strings.Repeat("+", g.applied)
}
