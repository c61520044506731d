package dialect

import "testing"

func TestNeedsQuoting(t *testing.T) {
	tests := []struct {
		ident string
		want  bool
	}{
		{"users", false},
		{"_private", false},
		{"user_accounts", false},
		{"col2", false},
		{"", true},
		{"2fast", true},
		{"my-table", true},
		{"my table", true},
		{"col\"name", true},
		{"café", true},
		{"select", true},
		{"SELECT", true},
		{"Order", true},
		{"public", true},
		{"selection", false},
	}
	for _, tt := range tests {
		if got := NeedsQuoting(tt.ident); got != tt.want {
			t.Errorf("NeedsQuoting(%q) = %v, want %v", tt.ident, got, tt.want)
		}
	}
}

func TestQuoteReservedWord(t *testing.T) {
	tests := []struct {
		dialect Dialect
		want    string
	}{
		{Postgres, `"select"`},
		{MySQL, "`select`"},
		{SQLite, `"select"`},
		{MSSQL, "[select]"},
	}
	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			if got := Quote(tt.dialect, "select"); got != tt.want {
				t.Errorf("Quote(%s, %q) = %q, want %q", tt.dialect, "select", got, tt.want)
			}
		})
	}
}

func TestQuoteLeavesSafeIdentifiersBare(t *testing.T) {
	for _, d := range []Dialect{Postgres, MySQL, SQLite, MSSQL} {
		if got := Quote(d, "users"); got != "users" {
			t.Errorf("Quote(%s, %q) = %q, want bare identifier", d, "users", got)
		}
	}
}

func TestQuoteQualifiedName(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		ident   string
		want    string
	}{
		{"both safe", Postgres, "app.users", "app.users"},
		{"reserved segment", Postgres, "public.order", `"public"."order"`},
		{"mixed", MySQL, "app.order", "app.`order`"},
		{"mssql mixed", MSSQL, "dbo.select", "dbo.[select]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quote(tt.dialect, tt.ident); got != tt.want {
				t.Errorf("Quote(%s, %q) = %q, want %q", tt.dialect, tt.ident, got, tt.want)
			}
		})
	}
}

func TestQuoteEscapesEmbeddedQuoteChar(t *testing.T) {
	tests := []struct {
		dialect Dialect
		ident   string
		want    string
	}{
		{Postgres, `col"name`, `"col""name"`},
		{MySQL, "col`name", "`col``name`"},
		{MSSQL, "col]name", "[col]]name]"},
	}
	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			if got := Quote(tt.dialect, tt.ident); got != tt.want {
				t.Errorf("Quote(%s, %q) = %q, want %q", tt.dialect, tt.ident, got, tt.want)
			}
		})
	}
}

func TestQuoteQualified(t *testing.T) {
	if got := QuoteQualified(Postgres, "", "users"); got != "users" {
		t.Errorf("QuoteQualified with empty schema = %q, want %q", got, "users")
	}
	if got := QuoteQualified(Postgres, "audit", "order"); got != `audit."order"` {
		t.Errorf("QuoteQualified(audit, order) = %q, want %q", got, `audit."order"`)
	}
}

func TestQuoteLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"active", "'active'"},
		{"O'Brien", "'O''Brien'"},
		{"", "''"},
	}
	for _, tt := range tests {
		if got := QuoteLiteral(tt.in); got != tt.want {
			t.Errorf("QuoteLiteral(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Dialect
		ok   bool
	}{
		{"postgres", Postgres, true},
		{"postgresql", Postgres, true},
		{"pg", Postgres, true},
		{"mysql", MySQL, true},
		{"mariadb", MySQL, true},
		{"sqlite", SQLite, true},
		{"sqlite3", SQLite, true},
		{"mssql", MSSQL, true},
		{"sqlserver", MSSQL, true},
		{"oracle", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCapabilityRegistry(t *testing.T) {
	for _, d := range []Dialect{Postgres, MySQL, SQLite, MSSQL} {
		if _, ok := All[d]; !ok {
			t.Fatalf("All missing entry for %s", d)
		}
	}
	if !Cap(Postgres).SupportsBeforeTrigger {
		t.Error("postgres should support BEFORE triggers")
	}
	if Cap(MSSQL).SupportsBeforeTrigger {
		t.Error("mssql should not support BEFORE triggers")
	}
	if Cap(MySQL).SupportsWhenCondition {
		t.Error("mysql should not support WHEN conditions")
	}
	if !Cap(Postgres).RequiresFunctionForTrigger {
		t.Error("postgres triggers should require a function")
	}
	if Cap(SQLite).SupportsFunctions {
		t.Error("sqlite should not support stored functions")
	}
	if c := Cap(MSSQL); c.QuoteChar != '[' || c.CloseQuote != ']' {
		t.Errorf("mssql quote chars = %c%c, want []", c.QuoteChar, c.CloseQuote)
	}
	if Cap("oracle").SupportsPolicies {
		t.Error("unknown dialect should get a zero capability matrix")
	}
}
