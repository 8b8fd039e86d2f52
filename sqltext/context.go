package sqltext

// Context describes what kind of identifier the cursor position expects.
type Context int

const (
	ContextGeneral Context = iota
	ContextTableRef
	ContextColumnRef
	ContextAfterOrder
	ContextAfterGroup
)

var tableRefKeywords = map[string]bool{
	"FROM": true, "JOIN": true, "INNER": true, "LEFT": true, "RIGHT": true,
	"FULL": true, "CROSS": true, "NATURAL": true, "INTO": true,
}

var columnRefKeywords = map[string]bool{
	"SELECT": true, "WHERE": true, "AND": true, "OR": true, "ON": true,
	"HAVING": true, "SET": true, "BY": true, "WHEN": true, "THEN": true,
	"ELSE": true, "CASE": true, "DISTINCT": true, "NOT": true,
	"BETWEEN": true, "LIKE": true, "IN": true, "IS": true,
}

// DetermineContext classifies the completion context from the text preceding
// the cursor, excluding the word currently being typed. The decision looks at
// the last meaningful token; after a comma it walks back to the nearest
// clause keyword to tell a column list from a table list.
func DetermineContext(before string) Context {
	var sig []Token
	for _, tok := range Tokenize(before) {
		if !tok.IsTrivia() {
			sig = append(sig, tok)
		}
	}
	if len(sig) == 0 {
		return ContextGeneral
	}

	last := sig[len(sig)-1]
	switch last.Kind {
	case KindKeyword:
		switch {
		case tableRefKeywords[last.Text]:
			return ContextTableRef
		case columnRefKeywords[last.Text]:
			return ContextColumnRef
		case last.Text == "ORDER":
			return ContextAfterOrder
		case last.Text == "GROUP":
			return ContextAfterGroup
		}
	case KindComma:
		for j := len(sig) - 2; j >= 0; j-- {
			if sig[j].Kind != KindKeyword {
				continue
			}
			switch sig[j].Text {
			case "SELECT", "BY", "WHERE", "HAVING", "ON":
				return ContextColumnRef
			case "FROM", "JOIN":
				return ContextTableRef
			}
		}
		return ContextColumnRef
	}
	return ContextGeneral
}
