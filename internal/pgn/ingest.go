package pgn

import "pgngrid/internal/logging"

// Ingest runs the whole load pipeline over raw input: segmentation, comment
// stripping, header completion and a load check per game.
//
// A segment the engine refuses is skipped with a warning. The call fails only
// when nothing was found (ErrEmptyInput) or nothing loaded (ErrNoValidGames).
func Ingest(raw string, rules Rules) (*Collection, error) {
	segments, err := Segment(raw)
	if err != nil {
		return nil, err
	}

	c := &Collection{Games: make([]GameRecord, 0, len(segments))}
	for i, seg := range segments {
		rec := Normalize(Clean(seg), i)
		if _, err := rules.Load(rec.PGN); err != nil {
			le := &LoadError{Ordinal: i, Err: err}
			logging.Warnf("could not load PGN for game %d: %v", i+1, err)
			c.Skipped = append(c.Skipped, le)
			continue
		}
		c.Games = append(c.Games, rec)
	}

	if len(c.Games) == 0 {
		return nil, ErrNoValidGames
	}
	logging.Infof("ingested %d of %d games", len(c.Games), len(segments))
	return c, nil
}
