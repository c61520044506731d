// Package dialect defines the SQL dialects ddlkit targets, the static
// capability data that gates clause emission, and identifier quoting.
// Everything in this package is immutable, process-wide constant data;
// validators and synthesizers consult it but never mutate it.
package dialect

// Dialect is the tag that selects a SQL flavor. All per-dialect branching
// in ddlkit is a single switch on this tag.
type Dialect string

const (
	Postgres Dialect = "postgres"
	MySQL    Dialect = "mysql"
	SQLite   Dialect = "sqlite"
	MSSQL    Dialect = "mssql"
)

// Names returns the supported dialect names in display order.
func Names() []string {
	return []string{string(Postgres), string(MySQL), string(SQLite), string(MSSQL)}
}

// Parse resolves a user-supplied dialect name, accepting common aliases.
// The boolean is false for unknown names.
func Parse(name string) (Dialect, bool) {
	switch name {
	case "postgres", "postgresql", "pg":
		return Postgres, true
	case "mysql", "mariadb":
		return MySQL, true
	case "sqlite", "sqlite3":
		return SQLite, true
	case "mssql", "sqlserver":
		return MSSQL, true
	}
	return "", false
}

// Valid reports whether d is one of the supported dialects.
func (d Dialect) Valid() bool {
	switch d {
	case Postgres, MySQL, SQLite, MSSQL:
		return true
	}
	return false
}

func (d Dialect) String() string {
	return string(d)
}
