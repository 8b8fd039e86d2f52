package sqltext

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Style is a display class assigned by Classify. The editor maps styles to
// theme colors.
type Style int

const (
	StyleKeyword Style = iota
	StyleFunction
	StyleString
	StyleNumber
	StyleComment
)

func (s Style) String() string {
	switch s {
	case StyleKeyword:
		return "keyword"
	case StyleFunction:
		return "function"
	case StyleString:
		return "string"
	case StyleNumber:
		return "number"
	case StyleComment:
		return "comment"
	}
	return "unknown"
}

// StyledSpan pairs a source span with its display style.
type StyledSpan struct {
	Span  Span
	Style Style
}

var highlightLexer = lexers.Get("sql")

// Classify assigns display styles to keywords, functions, literals and
// comments. It deliberately runs chroma's pattern lexer instead of Tokenize:
// the lexer's compiled states keep highlighting stable on half-typed,
// invalid SQL, and already treat string and comment runs as opaque, so a
// keyword inside either stays styled as the enclosing run. Plain-name tokens
// are checked against the function vocabulary so completions and highlighting
// agree on what counts as a function.
func Classify(text string) []StyledSpan {
	if highlightLexer == nil || text == "" {
		return nil
	}
	it, err := highlightLexer.Tokenise(nil, text)
	if err != nil {
		return nil
	}
	var spans []StyledSpan
	offset := 0
	for _, tok := range it.Tokens() {
		n := len(tok.Value)
		if style, ok := styleFor(tok.Type, tok.Value); ok {
			spans = append(spans, StyledSpan{Span: Span{offset, offset + n}, Style: style})
		}
		offset += n
	}
	return spans
}

func styleFor(t chroma.TokenType, value string) (Style, bool) {
	if t == chroma.NameBuiltin || t == chroma.NameFunction {
		return StyleFunction, true
	}
	switch {
	case t.InCategory(chroma.Keyword):
		return StyleKeyword, true
	// LiteralString and LiteralNumber share the Literal category, so the
	// comparison must be at sub-category level or numbers style as strings.
	case t.InSubCategory(chroma.LiteralString):
		return StyleString, true
	case t.InSubCategory(chroma.LiteralNumber):
		return StyleNumber, true
	case t.InCategory(chroma.Comment):
		return StyleComment, true
	case t.InCategory(chroma.Name) && functionSet[strings.ToUpper(value)]:
		return StyleFunction, true
	}
	return 0, false
}
