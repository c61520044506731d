package cli

import (
	"fmt"
	"strings"
)

// Table renders rows under aligned headers, used for diff summaries.
// Column widths are computed from the widest cell at render time.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends one row. Short rows are padded with empty cells.
func (t *Table) AddRow(cells ...string) {
	for len(cells) < len(t.headers) {
		cells = append(cells, "")
	}
	t.rows = append(t.rows, cells)
}

func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	return widths
}

// String renders the table with a header row and a dim separator line.
func (t *Table) String() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := t.columnWidths()
	var b strings.Builder

	for i, h := range t.headers {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(Header(pad(h, widths[i])))
	}
	b.WriteString("\n")

	for i, w := range widths {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(Dim(strings.Repeat("─", w)))
	}
	b.WriteString("\n")

	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(pad(cell, widths[i]))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// List renders status lines: drifted tables, generated files, validation
// problems. Each entry carries its own marker and style.
type List struct {
	items []listItem
}

type listItem struct {
	marker  string
	content string
	style   func(string) string
}

// NewList creates an empty list.
func NewList() *List {
	return &List{}
}

func (l *List) add(marker, content string, style func(string) string) {
	l.items = append(l.items, listItem{marker: marker, content: content, style: style})
}

// AddInfo appends a neutral entry.
func (l *List) AddInfo(content string) {
	l.add("→", content, Info)
}

// AddWarning appends an entry flagging a risky change.
func (l *List) AddWarning(content string) {
	l.add("!", content, Warning)
}

// AddError appends an entry for a failure.
func (l *List) AddError(content string) {
	l.add("✗", content, Failed)
}

// String renders the list, one indented marker-prefixed line per entry.
// Only the marker is styled so the content stays copy-pasteable.
func (l *List) String() string {
	var b strings.Builder
	for _, item := range l.items {
		b.WriteString("  ")
		b.WriteString(item.style(item.marker))
		b.WriteString(" ")
		b.WriteString(item.content)
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// FormatKeyValue renders "key: value" with the key dimmed.
func FormatKeyValue(key, value string) string {
	return fmt.Sprintf("%s: %s", Dim(key), value)
}

// FormatCount renders a count with the right plural form.
func FormatCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
