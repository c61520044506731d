// Package schema defines the introspected shape of a database: tables with
// their columns, keys, and indexes, plus views, routines, triggers,
// sequences, and custom types. These are plain data carriers shared by the
// comparator, the migration generator, and drift detection; they hold no
// behavior beyond naming helpers.
package schema

// ForeignKeyAction is a referential action for ON UPDATE / ON DELETE.
type ForeignKeyAction string

const (
	NoAction   ForeignKeyAction = "NO ACTION"
	Restrict   ForeignKeyAction = "RESTRICT"
	Cascade    ForeignKeyAction = "CASCADE"
	SetNull    ForeignKeyAction = "SET NULL"
	SetDefault ForeignKeyAction = "SET DEFAULT"
)

// ConstraintType classifies a table constraint.
type ConstraintType string

const (
	ConstraintPrimaryKey ConstraintType = "primary_key"
	ConstraintForeignKey ConstraintType = "foreign_key"
	ConstraintUnique     ConstraintType = "unique"
	ConstraintCheck      ConstraintType = "check"
	ConstraintExclusion  ConstraintType = "exclusion"
)

// TypeKind classifies a custom database type.
type TypeKind string

const (
	TypeEnum      TypeKind = "enum"
	TypeComposite TypeKind = "composite"
	TypeDomain    TypeKind = "domain"
	TypeRange     TypeKind = "range"
	TypeBase      TypeKind = "base"
)

// -----------------------------------------------------------------------------
// Snapshot - one schema's complete object inventory
// -----------------------------------------------------------------------------

// Snapshot is the full set of objects in one schema at one point in time.
// Two snapshots are the inputs to comparison and drift detection.
type Snapshot struct {
	Name       string          `json:"name,omitempty" yaml:"name,omitempty"`
	Tables     []TableInfo     `json:"tables,omitempty" yaml:"tables,omitempty"`
	Views      []ViewInfo      `json:"views,omitempty" yaml:"views,omitempty"`
	Functions  []FunctionInfo  `json:"functions,omitempty" yaml:"functions,omitempty"`
	Procedures []ProcedureInfo `json:"procedures,omitempty" yaml:"procedures,omitempty"`
	Triggers   []TriggerInfo   `json:"triggers,omitempty" yaml:"triggers,omitempty"`
	Sequences  []SequenceInfo  `json:"sequences,omitempty" yaml:"sequences,omitempty"`
	Types      []TypeInfo      `json:"types,omitempty" yaml:"types,omitempty"`
}

// Table returns the table with the given name, or nil if absent.
func (s *Snapshot) Table(name string) *TableInfo {
	for i := range s.Tables {
		if s.Tables[i].Name == name {
			return &s.Tables[i]
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// TableInfo - table with full detail
// -----------------------------------------------------------------------------

// TableInfo is a table with its columns, keys, indexes, and constraints.
type TableInfo struct {
	Schema      string           `json:"schema,omitempty" yaml:"schema,omitempty"`
	Name        string           `json:"name" yaml:"name"`
	Columns     []ColumnInfo     `json:"columns,omitempty" yaml:"columns,omitempty"`
	PrimaryKey  *PrimaryKeyInfo  `json:"primary_key,omitempty" yaml:"primary_key,omitempty"`
	Indexes     []IndexInfo      `json:"indexes,omitempty" yaml:"indexes,omitempty"`
	ForeignKeys []ForeignKeyInfo `json:"foreign_keys,omitempty" yaml:"foreign_keys,omitempty"`
	Constraints []ConstraintInfo `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Comment     *string          `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// QualifiedName returns schema.name, or just name when no schema is set.
func (t *TableInfo) QualifiedName() string {
	if t.Schema == "" {
		return t.Name
	}
	return t.Schema + "." + t.Name
}

// Column returns the column with the given name, or nil if absent.
func (t *TableInfo) Column(name string) *ColumnInfo {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// ColumnInfo describes one column. Optional attributes are pointers so an
// absent value is distinguishable from an empty or zero one.
type ColumnInfo struct {
	Name          string  `json:"name" yaml:"name"`
	Ordinal       int     `json:"ordinal,omitempty" yaml:"ordinal,omitempty"`
	DataType      string  `json:"data_type" yaml:"data_type"`
	Nullable      bool    `json:"nullable" yaml:"nullable"`
	Default       *string `json:"default,omitempty" yaml:"default,omitempty"`
	MaxLength     *int64  `json:"max_length,omitempty" yaml:"max_length,omitempty"`
	Precision     *int    `json:"precision,omitempty" yaml:"precision,omitempty"`
	Scale         *int    `json:"scale,omitempty" yaml:"scale,omitempty"`
	PrimaryKey    bool    `json:"primary_key,omitempty" yaml:"primary_key,omitempty"`
	AutoIncrement bool    `json:"auto_increment,omitempty" yaml:"auto_increment,omitempty"`
	Unique        bool    `json:"unique,omitempty" yaml:"unique,omitempty"`
	Comment       *string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// PrimaryKeyInfo names the primary key constraint and its column list.
type PrimaryKeyInfo struct {
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Columns []string `json:"columns" yaml:"columns"`
}

// IndexInfo describes one index.
type IndexInfo struct {
	Name      string   `json:"name" yaml:"name"`
	Columns   []string `json:"columns" yaml:"columns"`
	Unique    bool     `json:"unique,omitempty" yaml:"unique,omitempty"`
	Primary   bool     `json:"primary,omitempty" yaml:"primary,omitempty"`
	IndexType string   `json:"index_type,omitempty" yaml:"index_type,omitempty"`
}

// ForeignKeyInfo describes one foreign key constraint.
type ForeignKeyInfo struct {
	Name              string           `json:"name" yaml:"name"`
	Columns           []string         `json:"columns" yaml:"columns"`
	ReferencedSchema  string           `json:"referenced_schema,omitempty" yaml:"referenced_schema,omitempty"`
	ReferencedTable   string           `json:"referenced_table" yaml:"referenced_table"`
	ReferencedColumns []string         `json:"referenced_columns" yaml:"referenced_columns"`
	OnUpdate          ForeignKeyAction `json:"on_update,omitempty" yaml:"on_update,omitempty"`
	OnDelete          ForeignKeyAction `json:"on_delete,omitempty" yaml:"on_delete,omitempty"`
}

// ConstraintInfo describes a CHECK, UNIQUE, or other table constraint.
type ConstraintInfo struct {
	Name       string         `json:"name" yaml:"name"`
	Type       ConstraintType `json:"type" yaml:"type"`
	Columns    []string       `json:"columns,omitempty" yaml:"columns,omitempty"`
	Definition *string        `json:"definition,omitempty" yaml:"definition,omitempty"`
}

// -----------------------------------------------------------------------------
// Non-table objects
// -----------------------------------------------------------------------------

// ViewInfo describes a view or materialized view.
type ViewInfo struct {
	Schema       string  `json:"schema,omitempty" yaml:"schema,omitempty"`
	Name         string  `json:"name" yaml:"name"`
	Materialized bool    `json:"materialized,omitempty" yaml:"materialized,omitempty"`
	Definition   *string `json:"definition,omitempty" yaml:"definition,omitempty"`
	Comment      *string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// QualifiedName returns schema.name, or just name when no schema is set.
func (v *ViewInfo) QualifiedName() string {
	if v.Schema == "" {
		return v.Name
	}
	return v.Schema + "." + v.Name
}

// ParameterMode is the direction of a routine parameter.
type ParameterMode string

const (
	ModeIn       ParameterMode = "in"
	ModeOut      ParameterMode = "out"
	ModeInOut    ParameterMode = "inout"
	ModeVariadic ParameterMode = "variadic"
)

// ParameterInfo describes one routine parameter.
type ParameterInfo struct {
	Name     string        `json:"name,omitempty" yaml:"name,omitempty"`
	DataType string        `json:"data_type" yaml:"data_type"`
	Mode     ParameterMode `json:"mode,omitempty" yaml:"mode,omitempty"`
	Default  *string       `json:"default,omitempty" yaml:"default,omitempty"`
	Ordinal  int           `json:"ordinal,omitempty" yaml:"ordinal,omitempty"`
}

// FunctionInfo describes a stored function.
type FunctionInfo struct {
	Schema     string          `json:"schema,omitempty" yaml:"schema,omitempty"`
	Name       string          `json:"name" yaml:"name"`
	Language   string          `json:"language,omitempty" yaml:"language,omitempty"`
	ReturnType string          `json:"return_type,omitempty" yaml:"return_type,omitempty"`
	Parameters []ParameterInfo `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Definition *string         `json:"definition,omitempty" yaml:"definition,omitempty"`
	Comment    *string         `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// ProcedureInfo describes a stored procedure.
type ProcedureInfo struct {
	Schema     string          `json:"schema,omitempty" yaml:"schema,omitempty"`
	Name       string          `json:"name" yaml:"name"`
	Language   string          `json:"language,omitempty" yaml:"language,omitempty"`
	Parameters []ParameterInfo `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Definition *string         `json:"definition,omitempty" yaml:"definition,omitempty"`
	Comment    *string         `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// TriggerInfo describes a trigger as introspected. Timing, events, and
// level are kept as plain strings here; the trigger package owns the
// typed enums used for synthesis.
type TriggerInfo struct {
	Schema     string   `json:"schema,omitempty" yaml:"schema,omitempty"`
	Name       string   `json:"name" yaml:"name"`
	Table      string   `json:"table" yaml:"table"`
	Timing     string   `json:"timing,omitempty" yaml:"timing,omitempty"`
	Events     []string `json:"events,omitempty" yaml:"events,omitempty"`
	ForEach    string   `json:"for_each,omitempty" yaml:"for_each,omitempty"`
	Definition *string  `json:"definition,omitempty" yaml:"definition,omitempty"`
	Enabled    bool     `json:"enabled" yaml:"enabled"`
}

// SequenceInfo describes a sequence.
type SequenceInfo struct {
	Schema      string `json:"schema,omitempty" yaml:"schema,omitempty"`
	Name        string `json:"name" yaml:"name"`
	DataType    string `json:"data_type,omitempty" yaml:"data_type,omitempty"`
	StartValue  int64  `json:"start_value,omitempty" yaml:"start_value,omitempty"`
	MinValue    int64  `json:"min_value,omitempty" yaml:"min_value,omitempty"`
	MaxValue    int64  `json:"max_value,omitempty" yaml:"max_value,omitempty"`
	IncrementBy int64  `json:"increment_by,omitempty" yaml:"increment_by,omitempty"`
}

// TypeInfo describes a custom database type. Values is set for enums only.
type TypeInfo struct {
	Schema     string   `json:"schema,omitempty" yaml:"schema,omitempty"`
	Name       string   `json:"name" yaml:"name"`
	Kind       TypeKind `json:"kind" yaml:"kind"`
	Values     []string `json:"values,omitempty" yaml:"values,omitempty"`
	Definition *string  `json:"definition,omitempty" yaml:"definition,omitempty"`
}

// -----------------------------------------------------------------------------
// Pointer helpers
// -----------------------------------------------------------------------------

// String returns a pointer to s. Convenient for optional fields.
func String(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Int64 returns a pointer to i.
func Int64(i int64) *int64 { return &i }
