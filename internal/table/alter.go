package table

import (
	"fmt"
	"strings"

	"github.com/zqlz/ddlkit/internal/dialect"
)

// GenerateAlter diffs two designs of the same table and returns the
// ALTER statements that turn original into modified, ordered for
// referential safety: rename first, then column drops before adds, then
// per-column alterations, then foreign keys, then indexes. A design pair
// with no comparable changes yields no statements.
//
// The dialect is taken from modified; renamed keys and indexes surface
// as drop plus add, matched by name.
func GenerateAlter(original, modified Design) ([]string, error) {
	if errs := Validate(modified); len(errs) > 0 {
		return nil, errs
	}

	d := modified.Dialect
	var stmts []string

	table := dialect.Quote(d, original.Name)
	if original.Name != modified.Name {
		stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s RENAME TO %s;",
			table, dialect.Quote(d, modified.Name)))
	}
	// Everything after a rename targets the new name.
	table = dialect.Quote(d, modified.Name)

	// Drops run before adds so a re-added name never collides.
	for _, col := range original.Columns {
		if modified.Column(col.Name) == nil {
			stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s;",
				table, dialect.Quote(d, col.Name)))
		}
	}
	for _, col := range modified.Columns {
		if original.Column(col.Name) == nil {
			stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s;",
				table, strings.TrimSpace(columnDef(col, d))))
		}
	}
	for _, col := range modified.Columns {
		if old := original.Column(col.Name); old != nil {
			stmts = append(stmts, columnAlterations(table, modified.Name, *old, col, d)...)
		}
	}

	for _, fk := range original.ForeignKeys {
		if fk.Name == "" || hasFK(modified.ForeignKeys, fk.Name) {
			continue
		}
		if d == dialect.MySQL {
			stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s DROP FOREIGN KEY %s;",
				table, dialect.Quote(d, fk.Name)))
		} else {
			stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT %s;",
				table, dialect.Quote(d, fk.Name)))
		}
	}
	for _, fk := range modified.ForeignKeys {
		if hasFK(original.ForeignKeys, fk.Name) {
			continue
		}
		stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s ADD %s;",
			table, strings.TrimSpace(fkConstraint(fk, d))))
	}

	for _, idx := range original.Indexes {
		if idx.Primary || hasIndex(modified.Indexes, idx.Name) {
			continue
		}
		if d == dialect.MySQL {
			stmts = append(stmts, fmt.Sprintf("DROP INDEX %s ON %s;",
				dialect.Quote(d, idx.Name), table))
		} else {
			stmts = append(stmts, fmt.Sprintf("DROP INDEX IF EXISTS %s;",
				dialect.Quote(d, idx.Name)))
		}
	}
	for _, idx := range modified.Indexes {
		if idx.Primary || hasIndex(original.Indexes, idx.Name) {
			continue
		}
		stmts = append(stmts, createIndex(modified.Name, idx, d))
	}

	return stmts, nil
}

// columnAlterations emits the statements for one column present in both
// designs. PostgreSQL alters each property separately; MySQL re-specifies
// the whole column with MODIFY COLUMN; SQLite cannot alter column
// properties at all and degrades to an explanatory comment; SQL Server
// re-specifies type and nullability but cannot rewrite an anonymous
// default constraint.
func columnAlterations(table, rawTable string, old, upd Column, d dialect.Dialect) []string {
	col := dialect.Quote(d, upd.Name)
	var stmts []string

	typeChanged := old.DataType != upd.DataType ||
		!intPtrEq(old.Length, upd.Length) || !intPtrEq(old.Scale, upd.Scale)
	nullableChanged := old.Nullable != upd.Nullable
	defaultChanged := !strPtrEq(old.Default, upd.Default)
	uniqueChanged := old.Unique != upd.Unique

	switch d {
	case dialect.Postgres:
		if typeChanged {
			stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s TYPE %s;",
				table, col, typeSpec(upd)))
		}
		if nullableChanged {
			action := "SET NOT NULL"
			if upd.Nullable {
				action = "DROP NOT NULL"
			}
			stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s %s;", table, col, action))
		}
		if defaultChanged {
			if upd.Default != nil {
				stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s SET DEFAULT %s;",
					table, col, *upd.Default))
			} else {
				stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s DROP DEFAULT;", table, col))
			}
		}
	case dialect.MySQL:
		if typeChanged || nullableChanged || defaultChanged {
			stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s MODIFY COLUMN %s;",
				table, strings.TrimSpace(columnDef(upd, d))))
		}
	case dialect.MSSQL:
		if typeChanged || nullableChanged {
			null := " NOT NULL"
			if upd.Nullable {
				null = " NULL"
			}
			stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s %s%s;",
				table, col, typeSpec(upd), null))
		}
		if defaultChanged {
			stmts = append(stmts, fmt.Sprintf(
				"-- SQL Server stores defaults as named constraints; drop the DEFAULT constraint on %s before adding a new one.", col))
		}
	default:
		if typeChanged || nullableChanged || defaultChanged {
			stmts = append(stmts,
				fmt.Sprintf("-- SQLite does not support ALTER COLUMN for type/nullable/default changes on %s.", col),
				fmt.Sprintf("-- Consider recreating the table to apply changes to column %s.", col))
		}
	}

	if uniqueChanged && !upd.PrimaryKey {
		name := fmt.Sprintf("%s_%s_unique", rawTable, upd.Name)
		switch d {
		case dialect.Postgres:
			if upd.Unique {
				stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s UNIQUE (%s);",
					table, dialect.Quote(d, name), col))
			} else {
				stmts = append(stmts, fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s;",
					table, dialect.Quote(d, name)))
			}
		case dialect.MySQL:
			if upd.Unique {
				stmts = append(stmts, fmt.Sprintf("CREATE UNIQUE INDEX %s ON %s (%s);",
					dialect.Quote(d, name), table, col))
			} else {
				stmts = append(stmts, fmt.Sprintf("DROP INDEX %s ON %s;",
					dialect.Quote(d, name), table))
			}
		}
	}

	return stmts
}

func hasFK(fks []ForeignKey, name string) bool {
	for _, fk := range fks {
		if fk.Name == name {
			return true
		}
	}
	return false
}

func hasIndex(idxs []Index, name string) bool {
	for _, idx := range idxs {
		if idx.Name == name {
			return true
		}
	}
	return false
}

func intPtrEq(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func strPtrEq(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
