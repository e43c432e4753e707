package pgn

import (
	"fmt"
	"strings"
)

// maxLineLength is the movetext wrap column conventional for PGN files.
const maxLineLength = 80

// tagPair is one bracketed PGN header line.
type tagPair struct {
	name, value string
}

// renderGame produces a complete PGN game: the seven tag roster with
// placeholder values, an optional Termination tag, a blank line, and the
// numbered movetext ending in the result token.
func renderGame(sans []string, result, termination string) string {
	tags := []tagPair{
		{"Event", "?"},
		{"Site", "?"},
		{"Date", "????.??.??"},
		{"Round", "?"},
		{"White", "?"},
		{"Black", "?"},
		{"Result", result},
	}
	if termination != "" {
		tags = append(tags, tagPair{"Termination", termination})
	}

	var sb strings.Builder
	for _, tag := range tags {
		fmt.Fprintf(&sb, "[%s %q]\n", tag.name, tag.value)
	}
	sb.WriteByte('\n')

	tokens := make([]string, 0, len(sans)*3/2+1)
	for i, san := range sans {
		if i%2 == 0 {
			tokens = append(tokens, fmt.Sprintf("%d.", i/2+1))
		}
		tokens = append(tokens, san)
	}
	tokens = append(tokens, result)

	sb.WriteString(wrapTokens(tokens, maxLineLength))
	sb.WriteByte('\n')
	return sb.String()
}

// wrapTokens joins tokens with spaces, breaking lines before the wrap
// column. A token longer than the column gets a line of its own.
func wrapTokens(tokens []string, width int) string {
	var sb strings.Builder
	lineLen := 0
	for _, tok := range tokens {
		switch {
		case lineLen == 0:
			sb.WriteString(tok)
			lineLen = len(tok)
		case lineLen+1+len(tok) > width:
			sb.WriteByte('\n')
			sb.WriteString(tok)
			lineLen = len(tok)
		default:
			sb.WriteByte(' ')
			sb.WriteString(tok)
			lineLen += 1 + len(tok)
		}
	}
	return sb.String()
}
