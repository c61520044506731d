// Package table synthesizes CREATE TABLE DDL from a table design and
// computes ordered ALTER TABLE sequences between two designs. Unlike the
// other object kinds, validation collects every problem instead of
// stopping at the first, since a designed table usually has several
// fields worth reporting together.
package table

import (
	"fmt"
	"strings"

	"github.com/zqlz/ddlkit/internal/dialect"
	"github.com/zqlz/ddlkit/internal/schema"
)

// Column is one designed column. Length and Scale refine the data type
// (VARCHAR(255), DECIMAL(10, 2)). Default and Generated are emitted
// verbatim when set.
type Column struct {
	Name            string  `json:"name" yaml:"name"`
	DataType        string  `json:"data_type" yaml:"data_type"`
	Length          *int    `json:"length,omitempty" yaml:"length,omitempty"`
	Scale           *int    `json:"scale,omitempty" yaml:"scale,omitempty"`
	Nullable        bool    `json:"nullable" yaml:"nullable"`
	PrimaryKey      bool    `json:"primary_key,omitempty" yaml:"primary_key,omitempty"`
	CompositePK     bool    `json:"composite_pk,omitempty" yaml:"composite_pk,omitempty"`
	AutoIncrement   bool    `json:"auto_increment,omitempty" yaml:"auto_increment,omitempty"`
	Unique          bool    `json:"unique,omitempty" yaml:"unique,omitempty"`
	Default         *string `json:"default,omitempty" yaml:"default,omitempty"`
	Generated       string  `json:"generated,omitempty" yaml:"generated,omitempty"`
	GeneratedStored bool    `json:"generated_stored,omitempty" yaml:"generated_stored,omitempty"`
}

// ForeignKey is one designed foreign key constraint. An empty Name emits
// an anonymous constraint.
type ForeignKey struct {
	Name              string                  `json:"name,omitempty" yaml:"name,omitempty"`
	Columns           []string                `json:"columns" yaml:"columns"`
	ReferencedTable   string                  `json:"referenced_table" yaml:"referenced_table"`
	ReferencedColumns []string                `json:"referenced_columns" yaml:"referenced_columns"`
	OnUpdate          schema.ForeignKeyAction `json:"on_update,omitempty" yaml:"on_update,omitempty"`
	OnDelete          schema.ForeignKeyAction `json:"on_delete,omitempty" yaml:"on_delete,omitempty"`
}

// Index is one designed index. Primary indexes are never emitted as
// CREATE INDEX; they exist so alter generation can skip them.
type Index struct {
	Name    string   `json:"name" yaml:"name"`
	Columns []string `json:"columns" yaml:"columns"`
	Unique  bool     `json:"unique,omitempty" yaml:"unique,omitempty"`
	Primary bool     `json:"primary,omitempty" yaml:"primary,omitempty"`
}

// Options are the dialect-specific table suffix options. MySQL reads
// Engine through RowFormat; SQLite reads WithoutRowid and Strict;
// PostgreSQL and SQL Server emit none of them.
type Options struct {
	Engine             string `json:"engine,omitempty" yaml:"engine,omitempty"`
	Charset            string `json:"charset,omitempty" yaml:"charset,omitempty"`
	Collation          string `json:"collation,omitempty" yaml:"collation,omitempty"`
	AutoIncrementStart int    `json:"auto_increment_start,omitempty" yaml:"auto_increment_start,omitempty"`
	RowFormat          string `json:"row_format,omitempty" yaml:"row_format,omitempty"`
	WithoutRowid       bool   `json:"without_rowid,omitempty" yaml:"without_rowid,omitempty"`
	Strict             bool   `json:"strict,omitempty" yaml:"strict,omitempty"`
}

func (o Options) empty() bool {
	return o == Options{}
}

// Design is a complete table specification bound to one dialect.
type Design struct {
	Name        string          `json:"name" yaml:"name"`
	Dialect     dialect.Dialect `json:"dialect" yaml:"dialect"`
	Columns     []Column        `json:"columns" yaml:"columns"`
	ForeignKeys []ForeignKey    `json:"foreign_keys,omitempty" yaml:"foreign_keys,omitempty"`
	Indexes     []Index         `json:"indexes,omitempty" yaml:"indexes,omitempty"`
	Options     Options         `json:"options,omitempty" yaml:"options,omitempty"`
}

// Column returns the column with the given name, or nil if absent.
func (d *Design) Column(name string) *Column {
	for i := range d.Columns {
		if d.Columns[i].Name == name {
			return &d.Columns[i]
		}
	}
	return nil
}

// ValidationError is one problem found in a design.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors is the full set of problems in a design.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return "invalid table design: " + strings.Join(msgs, "; ")
}

// Validate collects every problem in the design: missing names, unknown
// dialect, duplicate columns, and index or foreign key references to
// columns that do not exist.
func Validate(d Design) ValidationErrors {
	var errs ValidationErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(d.Name) == "" {
		add("name", "table name cannot be empty")
	}
	if !d.Dialect.Valid() {
		add("dialect", "unknown dialect %q", string(d.Dialect))
	}
	if len(d.Columns) == 0 {
		add("columns", "a table needs at least one column")
	}

	seen := make(map[string]bool, len(d.Columns))
	for i, c := range d.Columns {
		field := fmt.Sprintf("columns[%d]", i)
		if strings.TrimSpace(c.Name) == "" {
			add(field, "column name cannot be empty")
			continue
		}
		if strings.TrimSpace(c.DataType) == "" {
			add(field, "column %s has no data type", c.Name)
		}
		if seen[c.Name] {
			add(field, "duplicate column name %s", c.Name)
		}
		seen[c.Name] = true
	}

	for i, idx := range d.Indexes {
		field := fmt.Sprintf("indexes[%d]", i)
		if strings.TrimSpace(idx.Name) == "" {
			add(field, "index name cannot be empty")
		}
		for _, col := range idx.Columns {
			if !seen[col] {
				add(field, "index %s references unknown column %s", idx.Name, col)
			}
		}
	}

	for i, fk := range d.ForeignKeys {
		field := fmt.Sprintf("foreign_keys[%d]", i)
		if len(fk.Columns) == 0 {
			add(field, "foreign key has no columns")
		}
		if strings.TrimSpace(fk.ReferencedTable) == "" {
			add(field, "foreign key has no referenced table")
		}
		if len(fk.Columns) != len(fk.ReferencedColumns) {
			add(field, "foreign key column count %d does not match referenced count %d",
				len(fk.Columns), len(fk.ReferencedColumns))
		}
		for _, col := range fk.Columns {
			if !seen[col] {
				add(field, "foreign key references unknown column %s", col)
			}
		}
	}

	return errs
}
