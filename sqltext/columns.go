package sqltext

// SelectColumnListRange locates the projection list of a SELECT statement:
// everything between SELECT [DISTINCT] and the first FROM keyword outside any
// parentheses, with trailing whitespace and comments trimmed. Replacing the
// returned span swaps exactly the column list while leaving comments,
// subqueries and formatting intact. Because the boundary test looks at token
// kinds, a "from" inside a string literal, quoted identifier, comment or
// nested subquery never terminates the list.
func SelectColumnListRange(text string) (Span, bool) {
	tokens := Tokenize(text)
	i := 0
	skipTrivia := func() {
		for i < len(tokens) && tokens[i].IsTrivia() {
			i++
		}
	}

	skipTrivia()
	if i >= len(tokens) || tokens[i].Kind != KindKeyword || tokens[i].Text != "SELECT" {
		return Span{}, false
	}
	i++
	skipTrivia()
	if i < len(tokens) && tokens[i].Kind == KindKeyword && tokens[i].Text == "DISTINCT" {
		i++
		skipTrivia()
	}
	if i >= len(tokens) {
		return Span{}, false
	}

	startIdx := i
	depth := 0
	fromIdx := -1
	for j := startIdx; j < len(tokens) && fromIdx < 0; j++ {
		switch tok := tokens[j]; {
		case tok.Kind == KindLeftParen:
			depth++
		case tok.Kind == KindRightParen:
			if depth > 0 {
				depth--
			}
		case depth == 0 && tok.Kind == KindKeyword && tok.Text == "FROM":
			fromIdx = j
		}
	}
	if fromIdx < 0 || fromIdx == startIdx {
		return Span{}, false
	}

	last := fromIdx - 1
	for last > startIdx && tokens[last].IsTrivia() {
		last--
	}
	return Span{tokens[startIdx].Span.Start, tokens[last].Span.End}, true
}
