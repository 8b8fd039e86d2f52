package sqltext

import (
	"sort"
	"strings"
)

// CompletionKind categorizes a completion item.
type CompletionKind int

const (
	CompletionKeyword CompletionKind = iota
	CompletionFunction
	CompletionTable
	CompletionColumn
)

// SchemaField describes one column of a stream schema as loaded from the
// remote engine. Completions consume Name and surface Type as the detail.
type SchemaField struct {
	Name        string
	Type        string
	Mode        string
	Description string
}

// CompletionItem is a single suggestion. Text is what the popup shows;
// InsertText is what lands in the buffer. The two differ for tables, which
// display quoted but insert bare.
type CompletionItem struct {
	Text       string
	Kind       CompletionKind
	Detail     string
	InsertText string
}

// Completions suggests identifiers for the word being typed at cursor. It
// returns the suggestions, the word prefix they complete, and the prefix's
// span (the range the editor replaces on accept). The candidate pool depends
// on the clause context: table names after FROM/JOIN, schema fields and
// functions after SELECT/WHERE and friends, BY after ORDER/GROUP, everything
// otherwise. A lone suggestion that merely restates what was already typed is
// dropped.
func Completions(text string, cursor int, tables []string, fields []SchemaField) ([]CompletionItem, string, Span) {
	if cursor < 0 || cursor > len(text) {
		return nil, "", Span{}
	}
	start := cursor
	for start > 0 && isWordByte(text[start-1]) {
		start--
	}
	prefix := text[start:cursor]
	span := Span{start, cursor}
	if prefix == "" {
		return nil, "", span
	}
	upper := strings.ToUpper(prefix)

	var items []CompletionItem
	addTables := func() {
		for _, name := range sortedCopy(tables) {
			if strings.HasPrefix(strings.ToUpper(name), upper) {
				items = append(items, CompletionItem{
					Text:       `"` + name + `"`,
					Kind:       CompletionTable,
					InsertText: name,
				})
			}
		}
	}
	addFields := func() {
		sorted := append([]SchemaField(nil), fields...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
		for _, f := range sorted {
			if strings.HasPrefix(strings.ToUpper(f.Name), upper) {
				items = append(items, CompletionItem{
					Text:       f.Name,
					Kind:       CompletionColumn,
					Detail:     f.Type,
					InsertText: f.Name,
				})
			}
		}
	}
	addFunctions := func() {
		for _, fn := range sortedFunctions {
			if strings.HasPrefix(fn, upper) {
				items = append(items, CompletionItem{Text: fn, Kind: CompletionFunction, InsertText: fn})
			}
		}
	}
	addKeywords := func() {
		for _, kw := range sortedKeywords {
			if strings.HasPrefix(kw, upper) {
				items = append(items, CompletionItem{Text: kw, Kind: CompletionKeyword, InsertText: kw})
			}
		}
	}

	switch DetermineContext(text[:start]) {
	case ContextTableRef:
		addTables()
	case ContextColumnRef:
		addFields()
		addFunctions()
	case ContextAfterOrder, ContextAfterGroup:
		if strings.HasPrefix("BY", upper) {
			items = append(items, CompletionItem{Text: "BY", Kind: CompletionKeyword, InsertText: "BY"})
		}
	default:
		addKeywords()
		addFunctions()
		addTables()
		addFields()
	}

	if len(items) == 1 && strings.EqualFold(items[0].InsertText, prefix) {
		return nil, prefix, span
	}
	return items, prefix, span
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}
