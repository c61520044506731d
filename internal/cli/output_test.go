package cli

import (
	"strings"
	"testing"
)

func init() {
	// Plain mode keeps rendered output deterministic.
	SetDefault(&Config{Mode: ModePlain})
}

func TestTableAlignsColumns(t *testing.T) {
	table := NewTable("KIND", "ADDED", "REMOVED")
	table.AddRow("tables", "2", "1")
	table.AddRow("indexes", "14", "0")

	out := table.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("rendered %d lines, want 4 (header, separator, 2 rows)", len(lines))
	}

	// "indexes" is wider than "KIND", so every line pads to it.
	if !strings.HasPrefix(lines[0], "KIND   ") {
		t.Errorf("header = %q, want KIND padded to widest cell", lines[0])
	}
	if !strings.Contains(lines[1], "───────") {
		t.Errorf("separator = %q, want dashes spanning the column", lines[1])
	}
	if !strings.Contains(lines[3], "indexes  14") {
		t.Errorf("row = %q, want two-space column gap", lines[3])
	}
}

func TestTablePadsShortRows(t *testing.T) {
	table := NewTable("TABLE", "CHANGE")
	table.AddRow("users")

	out := table.String()
	if !strings.Contains(out, "users") {
		t.Errorf("output = %q, want the short row rendered", out)
	}
	if got := len(table.rows[0]); got != 2 {
		t.Errorf("row has %d cells, want 2 after padding", got)
	}
}

func TestTableEmpty(t *testing.T) {
	if got := NewTable().String(); got != "" {
		t.Errorf("empty table String() = %q, want \"\"", got)
	}
}

func TestListMarkers(t *testing.T) {
	list := NewList()
	list.AddInfo("users: 1 modified column")
	list.AddWarning("orders: drops column total")
	list.AddError("audit_log: unknown dialect")

	out := list.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, want 3", len(lines))
	}

	wants := []string{
		"  → users: 1 modified column",
		"  ! orders: drops column total",
		"  ✗ audit_log: unknown dialect",
	}
	for i, want := range wants {
		if lines[i] != want {
			t.Errorf("line %d = %q, want %q", i, lines[i], want)
		}
	}
}

func TestListEmpty(t *testing.T) {
	if got := NewList().String(); got != "" {
		t.Errorf("empty list String() = %q, want \"\"", got)
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"users", 8, "users   "},
		{"audit_log", 5, "audit_log"},
		{"", 3, "   "},
	}

	for _, tt := range tests {
		if got := pad(tt.s, tt.width); got != tt.want {
			t.Errorf("pad(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}

func TestFormatKeyValue(t *testing.T) {
	got := FormatKeyValue("dialect", "postgres")
	if got != "dialect: postgres" {
		t.Errorf("FormatKeyValue = %q, want %q", got, "dialect: postgres")
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		count int
		want  string
	}{
		{0, "0 tables"},
		{1, "1 table"},
		{7, "7 tables"},
	}

	for _, tt := range tests {
		if got := FormatCount(tt.count, "table", "tables"); got != tt.want {
			t.Errorf("FormatCount(%d) = %q, want %q", tt.count, got, tt.want)
		}
	}
}
