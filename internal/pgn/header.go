package pgn

import (
	"fmt"
	"regexp"
	"strings"
)

// One [Tag "value"] per match. Escaped quotes inside values are not supported.
var tagPair = regexp.MustCompile(`\[(\w+)\s+"(.*?)"\]`)

// ParseHeaders collects every tag pair found in text. Later duplicates win.
func ParseHeaders(text string) map[string]string {
	headers := make(map[string]string)
	for _, m := range tagPair.FindAllStringSubmatch(text, -1) {
		headers[m[1]] = m[2]
	}
	return headers
}

// WithDefaultHeaders prepends the seven-tag roster when segment has no Event tag.
func WithDefaultHeaders(segment string, ordinal int) string {
	if strings.HasPrefix(segment, eventTag) {
		return segment
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "[Event %q]\n", defaultEvent(ordinal))
	sb.WriteString(`[Site "Online"]` + "\n")
	sb.WriteString(`[Date "????.??.??"]` + "\n")
	sb.WriteString(`[Round "?"]` + "\n")
	sb.WriteString(`[White "?"]` + "\n")
	sb.WriteString(`[Black "?"]` + "\n")
	sb.WriteString(`[Result "*"]` + "\n")
	sb.WriteString("\n")
	sb.WriteString(segment)
	return sb.String()
}

// Normalize turns a cleaned segment into a header-complete GameRecord.
func Normalize(segment string, ordinal int) GameRecord {
	text := WithDefaultHeaders(segment, ordinal)
	return GameRecord{PGN: text, Header: ParseHeaders(text)}
}
