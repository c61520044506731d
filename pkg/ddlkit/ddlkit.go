// Package ddlkit is the public face of the DDL synthesis toolkit. It
// re-exports the spec, design, snapshot, and diff types and wraps the
// internal builders in top-level functions, so one import covers the
// whole surface.
//
// Example:
//
//	design := ddlkit.TableDesign{
//	    Name:    "users",
//	    Dialect: ddlkit.Postgres,
//	    Columns: []ddlkit.Column{
//	        {Name: "id", DataType: "BIGINT", PrimaryKey: true, AutoIncrement: true},
//	        {Name: "email", DataType: "VARCHAR", Length: ddlkit.Int(255), Unique: true},
//	    },
//	}
//	sql, err := ddlkit.CreateTableSQL(design)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sql)
package ddlkit

import (
	"github.com/zqlz/ddlkit/internal/compare"
	"github.com/zqlz/ddlkit/internal/dialect"
	"github.com/zqlz/ddlkit/internal/drift"
	"github.com/zqlz/ddlkit/internal/function"
	"github.com/zqlz/ddlkit/internal/migrate"
	"github.com/zqlz/ddlkit/internal/policy"
	"github.com/zqlz/ddlkit/internal/schema"
	"github.com/zqlz/ddlkit/internal/table"
	"github.com/zqlz/ddlkit/internal/trigger"
)

// Dialect selects the SQL flavor every builder targets.
type Dialect = dialect.Dialect

// Supported dialects.
const (
	Postgres = dialect.Postgres
	MySQL    = dialect.MySQL
	SQLite   = dialect.SQLite
	MSSQL    = dialect.MSSQL
)

// ParseDialect resolves a user-supplied dialect name, accepting common
// aliases like "pg" and "sqlserver".
func ParseDialect(name string) (Dialect, bool) {
	return dialect.Parse(name)
}

// Quote wraps an identifier in the dialect's quote characters when it
// needs quoting, escaping embedded quote characters.
func Quote(d Dialect, name string) string {
	return dialect.Quote(d, name)
}

// Spec types for the single-object builders.
type (
	PolicySpec   = policy.Spec
	TriggerSpec  = trigger.Spec
	FunctionSpec = function.Spec

	TableDesign = table.Design
	Column      = table.Column
	ForeignKey  = table.ForeignKey
	Index       = table.Index
)

// Snapshot and diff types for schema comparison.
type (
	Snapshot   = schema.Snapshot
	TableInfo  = schema.TableInfo
	ColumnInfo = schema.ColumnInfo
	SchemaDiff = compare.SchemaDiff
	TableDiff  = compare.TableDiff
	Migration  = migrate.Migration
)

// CreatePolicySQL validates the spec and synthesizes its CREATE POLICY
// statement. Policies are a PostgreSQL feature.
func CreatePolicySQL(spec PolicySpec, d Dialect) (string, error) {
	return policy.BuildCreate(spec, d)
}

// CreateTriggerSQL validates the spec and synthesizes its CREATE
// TRIGGER statement for the dialect.
func CreateTriggerSQL(spec TriggerSpec, d Dialect) (string, error) {
	return trigger.BuildCreate(spec, d)
}

// CreateFunctionSQL validates the spec and synthesizes its CREATE
// FUNCTION statement for the dialect.
func CreateFunctionSQL(spec FunctionSpec, d Dialect) (string, error) {
	return function.BuildCreate(spec, d)
}

// CreateTableSQL validates the design and synthesizes CREATE TABLE
// plus one CREATE INDEX per non-primary index.
func CreateTableSQL(design TableDesign) (string, error) {
	return table.BuildCreate(design)
}

// AlterTableSQL computes the ordered ALTER TABLE statements that turn
// the original design into the modified one.
func AlterTableSQL(original, modified TableDesign) ([]string, error) {
	return table.GenerateAlter(original, modified)
}

// Compare diffs two snapshots with the default configuration. The
// first snapshot is the desired state, the second the baseline.
func Compare(source, target *Snapshot) SchemaDiff {
	return compare.New().CompareSnapshots(source, target)
}

// MergeDiffs combines several diffs into one.
func MergeDiffs(diffs ...SchemaDiff) SchemaDiff {
	return compare.New().MergeDiffs(diffs...)
}

// GenerateMigration turns a diff into up and down migration scripts
// for the dialect.
func GenerateMigration(diff *SchemaDiff, d Dialect) (Migration, error) {
	return migrate.WithConfig(migrate.ForDialect(d)).Generate(diff)
}

// Fingerprint computes the merkle fingerprint of a snapshot. Two
// snapshots with equal roots have identical schemas.
func Fingerprint(snap *Snapshot) (*drift.Fingerprint, error) {
	return drift.ComputeFingerprint(snap)
}

// Int returns a pointer to i, for the optional int fields on specs.
func Int(i int) *int { return &i }

// Int64 returns a pointer to i, for the optional int64 fields on
// snapshot types.
func Int64(i int64) *int64 { return &i }

// String returns a pointer to s, for the optional string fields on
// specs and snapshot types.
func String(s string) *string { return &s }
