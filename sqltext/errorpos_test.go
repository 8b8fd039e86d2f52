package sqltext

import "testing"

func TestParsePosition(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    ErrorPosition
		ok      bool
	}{
		{
			"engine message",
			"Expected: an expression, found: FROM at Line: 1, Column 15",
			ErrorPosition{Line: 1, Column: 15},
			true,
		},
		{
			"colon after column",
			"sql parser error at Line: 3, Column: 7",
			ErrorPosition{Line: 3, Column: 7},
			true,
		},
		{
			"first occurrence wins",
			"Line: 2, Column 4 (was Line: 9, Column 1)",
			ErrorPosition{Line: 2, Column: 4},
			true,
		},
		{"no position", "stream not found", ErrorPosition{}, false},
		{"line only", "error at Line: 4", ErrorPosition{}, false},
	}
	for _, c := range cases {
		got, ok := ParsePosition(c.message)
		if ok != c.ok || got != c.want {
			t.Errorf("%s: expected (%v, %v), got (%v, %v)", c.name, c.want, c.ok, got, ok)
		}
	}
}

func TestErrorHighlightRange(t *testing.T) {
	src := "SELEC * FROM t"
	cases := []struct {
		name         string
		line, column int
		text         string
		want         Span
		ok           bool
	}{
		{"first token", 1, 1, src, Span{0, 5}, true},
		{"inside token", 1, 3, src, Span{0, 5}, true},
		{"whitespace snaps forward", 1, 6, src, Span{6, 7}, true},
		{"second line", 2, 1, "SELECT a\nFROM t", Span{9, 13}, true},
		{"column one past end resolves to last token", 1, 15, src, Span{13, 14}, true},
		{"offset beyond text", 1, 100, src, Span{}, false},
		{"missing line", 3, 1, src, Span{}, false},
		{"trailing trivia falls back to last token", 1, 10, "SELECT a   ", Span{7, 8}, true},
		{"comment snaps forward", 1, 2, "/* x */ SELECT 1", Span{8, 14}, true},
		{"only trivia", 1, 1, "   ", Span{}, false},
		{"empty text", 1, 1, "", Span{}, false},
	}
	for _, c := range cases {
		got, ok := ErrorHighlightRange(c.line, c.column, c.text)
		if ok != c.ok || got != c.want {
			t.Errorf("%s: expected (%v, %v), got (%v, %v)", c.name, c.want, c.ok, got, ok)
		}
	}
}
