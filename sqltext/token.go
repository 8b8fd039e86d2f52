// Package sqltext is the text-analysis engine behind the SQL query editor:
// a lossless tokenizer, a locator for the SELECT column list, a mapper from
// remote-engine error positions to editor spans, context-sensitive
// completions, and a syntax classifier for display styling.
//
// Every function in this package is a pure, synchronous function of its
// input. Nothing here performs I/O, blocks, or fails: malformed or half-typed
// SQL yields an empty or absent result, never an error. The editor calls
// these on every keystroke, so they are safe to run concurrently on
// independent snapshots of the buffer.
package sqltext

// Span is a half-open [Start, End) byte range over the analyzed text.
type Span struct {
	Start int
	End   int
}

// TokenKind classifies a token produced by Tokenize.
type TokenKind int

const (
	KindKeyword TokenKind = iota
	KindIdentifier
	KindQuotedIdentifier
	KindStringLiteral
	KindNumber
	KindComma
	KindStar
	KindLeftParen
	KindRightParen
	KindWhitespace
	KindLineComment
	KindBlockComment
	KindOther
)

// Token is one classified slice of the input. Text carries the processed
// payload: canonical uppercase for keywords, unescaped content for string
// literals and quoted identifiers, the raw source slice otherwise.
type Token struct {
	Kind TokenKind
	Span Span
	Text string
}

// IsTrivia reports whether the token is whitespace or a comment: it occupies
// a span but has no structural significance.
func (t Token) IsTrivia() bool {
	return t.Kind == KindWhitespace || t.Kind == KindLineComment || t.Kind == KindBlockComment
}
