package dialect

import (
	"strings"
	"testing"
)

// FuzzQuote checks the quoting contract on arbitrary identifiers: safe
// names pass through untouched, everything else comes back wrapped with
// the embedded close-quote character doubled.
func FuzzQuote(f *testing.F) {
	seeds := []string{
		"users",
		"_private",
		"select",
		"ORDER",
		"col\"name",
		"col`name",
		"col]name",
		`"already_quoted"`,
		"my table",
		"users; DROP TABLE users--",
		"café",
		strings.Repeat("a", 300),
		"",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, ident string) {
		if strings.Contains(ident, ".") {
			// Qualified names quote per segment; the single-segment
			// contract below does not apply.
			return
		}
		for _, d := range []Dialect{Postgres, MySQL, SQLite, MSSQL} {
			got := Quote(d, ident)
			c := Cap(d)
			if !NeedsQuoting(ident) {
				if got != ident {
					t.Fatalf("Quote(%s, %q) = %q, safe identifier should pass through", d, ident, got)
				}
				continue
			}
			if len(got) < 2 || got[0] != c.QuoteChar || got[len(got)-1] != c.CloseQuote {
				t.Fatalf("Quote(%s, %q) = %q, not wrapped in quote chars", d, ident, got)
			}
			inner := got[1 : len(got)-1]
			// Every close-quote char inside must appear in pairs.
			for i := 0; i < len(inner); i++ {
				if inner[i] != c.CloseQuote {
					continue
				}
				run := 0
				for i < len(inner) && inner[i] == c.CloseQuote {
					run++
					i++
				}
				if run%2 != 0 {
					t.Fatalf("Quote(%s, %q) = %q, unpaired quote char inside", d, ident, got)
				}
			}
		}
	})
}
