package sqltext

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits text into an ordered, gapless token sequence. Concatenating
// the source slice of every token reproduces the input exactly. It never
// fails: unterminated strings, quoted identifiers and block comments consume
// to end of input, and any unrecognized character becomes an Other token.
func Tokenize(text string) []Token {
	var tokens []Token
	i := 0
	for i < len(text) {
		start := i
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			for i < len(text) && (text[i] == ' ' || text[i] == '\t' || text[i] == '\r' || text[i] == '\n') {
				i++
			}
			tokens = append(tokens, Token{Kind: KindWhitespace, Span: Span{start, i}, Text: text[start:i]})

		case c == '-' && i+1 < len(text) && text[i+1] == '-':
			for i < len(text) && text[i] != '\n' {
				i++
			}
			tokens = append(tokens, Token{Kind: KindLineComment, Span: Span{start, i}, Text: text[start:i]})

		case c == '/' && i+1 < len(text) && text[i+1] == '*':
			if end := strings.Index(text[i+2:], "*/"); end < 0 {
				i = len(text)
			} else {
				i += 2 + end + 2
			}
			tokens = append(tokens, Token{Kind: KindBlockComment, Span: Span{start, i}, Text: text[start:i]})

		case c == '\'':
			content, next := scanQuoted(text, i, '\'')
			i = next
			tokens = append(tokens, Token{Kind: KindStringLiteral, Span: Span{start, i}, Text: content})

		case c == '"':
			content, next := scanQuoted(text, i, '"')
			i = next
			tokens = append(tokens, Token{Kind: KindQuotedIdentifier, Span: Span{start, i}, Text: content})

		case c == '(':
			i++
			tokens = append(tokens, Token{Kind: KindLeftParen, Span: Span{start, i}, Text: "("})

		case c == ')':
			i++
			tokens = append(tokens, Token{Kind: KindRightParen, Span: Span{start, i}, Text: ")"})

		case c == ',':
			i++
			tokens = append(tokens, Token{Kind: KindComma, Span: Span{start, i}, Text: ","})

		case c == '*':
			i++
			tokens = append(tokens, Token{Kind: KindStar, Span: Span{start, i}, Text: "*"})

		case isDigitByte(c) || (c == '.' && i+1 < len(text) && isDigitByte(text[i+1])):
			i = scanNumber(text, i)
			tokens = append(tokens, Token{Kind: KindNumber, Span: Span{start, i}, Text: text[start:i]})

		default:
			r, size := utf8.DecodeRuneInString(text[i:])
			if r == '_' || unicode.IsLetter(r) {
				i += size
				for i < len(text) {
					r, size = utf8.DecodeRuneInString(text[i:])
					if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
						break
					}
					i += size
				}
				word := text[start:i]
				if upper := strings.ToUpper(word); keywordSet[upper] {
					tokens = append(tokens, Token{Kind: KindKeyword, Span: Span{start, i}, Text: upper})
				} else {
					tokens = append(tokens, Token{Kind: KindIdentifier, Span: Span{start, i}, Text: word})
				}
			} else {
				i += size
				tokens = append(tokens, Token{Kind: KindOther, Span: Span{start, i}, Text: text[start:i]})
			}
		}
	}
	return tokens
}

// scanQuoted consumes a quoted run starting at the opening quote, treating a
// doubled quote as an escaped literal quote. It returns the unescaped content
// and the index just past the closing quote, or end of input when
// unterminated.
func scanQuoted(text string, start int, quote byte) (string, int) {
	var b strings.Builder
	i := start + 1
	for i < len(text) {
		if text[i] == quote {
			if i+1 < len(text) && text[i+1] == quote {
				b.WriteByte(quote)
				i += 2
				continue
			}
			return b.String(), i + 1
		}
		b.WriteByte(text[i])
		i++
	}
	return b.String(), i
}

// scanNumber consumes digits and dots, then an optional exponent. The
// exponent is only taken when it is followed by at least one digit, so
// "1e" stays a number followed by an identifier.
func scanNumber(text string, start int) int {
	i := start
	for i < len(text) && (isDigitByte(text[i]) || text[i] == '.') {
		i++
	}
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		j := i + 1
		if j < len(text) && (text[j] == '+' || text[j] == '-') {
			j++
		}
		if j < len(text) && isDigitByte(text[j]) {
			for j < len(text) && isDigitByte(text[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
