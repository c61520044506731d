package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zqlz/ddlkit/internal/dialect"
	"github.com/zqlz/ddlkit/internal/schema"
)

// BuildCreate validates the design and synthesizes its CREATE TABLE
// statement, followed by one CREATE INDEX statement per non-primary
// index, separated by blank lines.
func BuildCreate(d Design) (string, error) {
	if errs := Validate(d); len(errs) > 0 {
		return "", errs
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", dialect.Quote(d.Dialect, d.Name))

	defs := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		defs[i] = columnDef(c, d.Dialect)
	}
	b.WriteString(strings.Join(defs, ",\n"))

	// A single-column key goes inline on the column; only a composite
	// key becomes a table constraint.
	var pk []string
	for _, c := range d.Columns {
		if c.PrimaryKey {
			pk = append(pk, dialect.Quote(d.Dialect, c.Name))
		}
	}
	if len(pk) > 1 {
		b.WriteString(",\n  PRIMARY KEY (" + strings.Join(pk, ", ") + ")")
	}

	for _, fk := range d.ForeignKeys {
		b.WriteString(",\n")
		b.WriteString(fkConstraint(fk, d.Dialect))
	}

	b.WriteString("\n)")
	b.WriteString(tableOptions(d.Options, d.Dialect))
	b.WriteString(";")

	for _, idx := range d.Indexes {
		if idx.Primary {
			continue
		}
		b.WriteString("\n\n")
		b.WriteString(createIndex(d.Name, idx, d.Dialect))
	}

	return b.String(), nil
}

// BuildDrop synthesizes DROP TABLE IF EXISTS for the design's table.
func BuildDrop(d Design) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s;", dialect.Quote(d.Dialect, d.Name))
}

func columnDef(c Column, d dialect.Dialect) string {
	var b strings.Builder
	b.WriteString("  " + dialect.Quote(d, c.Name) + " " + typeSpec(c))

	if !c.Nullable {
		b.WriteString(" NOT NULL")
	}
	if c.PrimaryKey && !c.CompositePK {
		b.WriteString(" PRIMARY KEY")
		if c.AutoIncrement {
			b.WriteString(autoIncrementClause(d))
		}
	}
	// Suffix-style auto-increment can also sit on a keyed non-PK column.
	if c.AutoIncrement && !c.PrimaryKey {
		if m := dialect.Cap(d); m.AutoIncrementStyle == dialect.AutoIncrementSuffix {
			b.WriteString(" " + m.AutoIncrementKeyword)
		}
	}
	if c.Unique && !c.PrimaryKey {
		b.WriteString(" UNIQUE")
	}
	if c.Default != nil {
		b.WriteString(" DEFAULT " + *c.Default)
	}
	if c.Generated != "" {
		storage := "VIRTUAL"
		if c.GeneratedStored {
			storage = "STORED"
		}
		fmt.Fprintf(&b, " GENERATED ALWAYS AS (%s) %s", c.Generated, storage)
	}
	return b.String()
}

// autoIncrementClause renders the matrix's auto-increment spelling for a
// primary key column. TypeName dialects (PostgreSQL SERIAL) carry the
// behavior in the column type and emit nothing extra.
func autoIncrementClause(d dialect.Dialect) string {
	c := dialect.Cap(d)
	switch c.AutoIncrementStyle {
	case dialect.AutoIncrementSuffix, dialect.AutoIncrementGenerated:
		return " " + c.AutoIncrementKeyword
	default:
		return ""
	}
}

// typeSpec renders the data type with its optional length and scale.
func typeSpec(c Column) string {
	if c.Length == nil {
		return c.DataType
	}
	if c.Scale != nil {
		return fmt.Sprintf("%s(%d, %d)", c.DataType, *c.Length, *c.Scale)
	}
	return fmt.Sprintf("%s(%d)", c.DataType, *c.Length)
}

func fkConstraint(fk ForeignKey, d dialect.Dialect) string {
	var b strings.Builder
	b.WriteString("  ")
	if fk.Name != "" {
		b.WriteString("CONSTRAINT " + dialect.Quote(d, fk.Name) + " ")
	}
	b.WriteString("FOREIGN KEY (" + quoteList(d, fk.Columns) + ")")
	fmt.Fprintf(&b, " REFERENCES %s (%s)",
		dialect.Quote(d, fk.ReferencedTable),
		quoteList(d, fk.ReferencedColumns))

	if fk.OnUpdate != "" && fk.OnUpdate != schema.NoAction {
		b.WriteString(" ON UPDATE " + string(fk.OnUpdate))
	}
	if fk.OnDelete != "" && fk.OnDelete != schema.NoAction {
		b.WriteString(" ON DELETE " + string(fk.OnDelete))
	}
	return b.String()
}

func createIndex(table string, idx Index, d dialect.Dialect) string {
	unique := ""
	if idx.Unique {
		unique = "UNIQUE "
	}
	return fmt.Sprintf("CREATE %sINDEX %s ON %s (%s);",
		unique,
		dialect.Quote(d, idx.Name),
		dialect.Quote(d, table),
		quoteList(d, idx.Columns))
}

func tableOptions(o Options, d dialect.Dialect) string {
	switch d {
	case dialect.MySQL:
		var opts []string
		if o.Engine != "" {
			opts = append(opts, "ENGINE="+o.Engine)
		}
		if o.Charset != "" {
			opts = append(opts, "DEFAULT CHARSET="+o.Charset)
		}
		if o.Collation != "" {
			opts = append(opts, "COLLATE="+o.Collation)
		}
		if o.AutoIncrementStart > 0 {
			opts = append(opts, "AUTO_INCREMENT="+strconv.Itoa(o.AutoIncrementStart))
		}
		if o.RowFormat != "" {
			opts = append(opts, "ROW_FORMAT="+o.RowFormat)
		}
		if len(opts) == 0 {
			return ""
		}
		return " " + strings.Join(opts, " ")
	case dialect.SQLite:
		var opts []string
		if o.WithoutRowid {
			opts = append(opts, "WITHOUT ROWID")
		}
		if o.Strict {
			opts = append(opts, "STRICT")
		}
		if len(opts) == 0 {
			return ""
		}
		return " " + strings.Join(opts, ", ")
	}
	return ""
}

func quoteList(d dialect.Dialect, names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = dialect.Quote(d, n)
	}
	return strings.Join(quoted, ", ")
}
