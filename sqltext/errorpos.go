package sqltext

import (
	"regexp"
	"strconv"
	"strings"
)

// ErrorPosition is a 1-based line/column position reported by the remote
// query engine inside a free-text error message.
type ErrorPosition struct {
	Line   int
	Column int
}

// The engine embeds positions as "Line: 3, Column 14"; older releases write
// a colon after Column as well.
var errorPositionPattern = regexp.MustCompile(`Line:\s*(\d+),\s*Column:?\s*(\d+)`)

// ParsePosition extracts the first line/column position embedded anywhere in
// an error message.
func ParsePosition(message string) (ErrorPosition, bool) {
	m := errorPositionPattern.FindStringSubmatch(message)
	if m == nil {
		return ErrorPosition{}, false
	}
	line, errLine := strconv.Atoi(m[1])
	column, errCol := strconv.Atoi(m[2])
	if errLine != nil || errCol != nil {
		return ErrorPosition{}, false
	}
	return ErrorPosition{Line: line, Column: column}, true
}

// ErrorHighlightRange resolves a 1-based line/column to the span of the token
// under it, so the editor can underline what the remote engine complained
// about. A position inside whitespace or a comment snaps forward to the next
// meaningful token; a position at or past the end of the text resolves to the
// last meaningful token. There is no result when the line does not exist, the
// offset lands beyond the text, or the text holds no meaningful token.
func ErrorHighlightRange(line, column int, text string) (Span, bool) {
	if line < 1 || column < 1 {
		return Span{}, false
	}
	offset := 0
	for l := 1; l < line; l++ {
		nl := strings.IndexByte(text[offset:], '\n')
		if nl < 0 {
			return Span{}, false
		}
		offset += nl + 1
	}
	offset += column - 1
	if offset > len(text) {
		return Span{}, false
	}

	tokens := Tokenize(text)
	for idx, tok := range tokens {
		if offset >= tok.Span.End {
			continue
		}
		// Tokens are gapless, so the offset falls inside tok. Snap forward
		// over trivia.
		for j := idx; j < len(tokens); j++ {
			if !tokens[j].IsTrivia() {
				return tokens[j].Span, true
			}
		}
		break
	}
	// At or past end of text, or inside trailing trivia.
	for j := len(tokens) - 1; j >= 0; j-- {
		if !tokens[j].IsTrivia() {
			return tokens[j].Span, true
		}
	}
	return Span{}, false
}
