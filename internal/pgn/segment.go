package pgn

import (
	"regexp"
	"strings"
)

const (
	eventTag   = "[Event"
	eventDelim = "[Event "
)

var (
	blankLines = regexp.MustCompile(`\n\s*\n`)
	comments   = regexp.MustCompile(`\{[^}]*\}`)
	commands   = regexp.MustCompile(`\[%[^\]]*\]`)
)

// Segment splits raw input into one text per game.
//
// Input carrying at least one Event tag is cut at every "[Event " and the
// delimiter is put back on each piece. Header-less input is cut at blank lines.
func Segment(raw string) ([]string, error) {
	var out []string
	if strings.Contains(raw, eventTag) {
		for _, part := range strings.Split(raw, eventDelim) {
			if strings.TrimSpace(part) == "" {
				continue
			}
			out = append(out, eventDelim+part)
		}
	} else {
		for _, part := range blankLines.Split(raw, -1) {
			if strings.TrimSpace(part) == "" {
				continue
			}
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptyInput
	}
	return out, nil
}

// Clean removes {comments} and [%command] annotations from one segment.
func Clean(segment string) string {
	return commands.ReplaceAllString(comments.ReplaceAllString(segment, ""), "")
}
