package sqltext

import "testing"

func TestDetermineContext(t *testing.T) {
	cases := []struct {
		before string
		want   Context
	}{
		{"", ContextGeneral},
		{"SELECT ", ContextColumnRef},
		{"select\n\t", ContextColumnRef},
		{"FROM ", ContextTableRef},
		{"SELECT * FROM t JOIN ", ContextTableRef},
		{"INSERT INTO ", ContextTableRef},
		{"SELECT a FROM t WHERE ", ContextColumnRef},
		{"SELECT a FROM t WHERE x = 1 AND ", ContextColumnRef},
		{"ORDER ", ContextAfterOrder},
		{"GROUP ", ContextAfterGroup},
		{"SELECT a FROM t ORDER BY ", ContextColumnRef},
		{"SELECT a, ", ContextColumnRef},
		{"SELECT a FROM t, ", ContextTableRef},
		{"SELECT a FROM t WHERE x IN (1, ", ContextColumnRef},
		{"x, ", ContextColumnRef},
		{"SELECT * ", ContextGeneral},
		{"SELECT count(", ContextGeneral},
		{"SELECT a FROM -- trailing\n", ContextTableRef},
		{"SELECT 'FROM ' ", ContextGeneral},
	}
	for _, c := range cases {
		if got := DetermineContext(c.before); got != c.want {
			t.Errorf("before %q: expected %v, got %v", c.before, c.want, got)
		}
	}
}
