// Package compare diffs two schema snapshots into typed per-kind change
// sets. The comparator is pure: it walks source (the desired or newer
// schema) against target (the current baseline) and reports what exists
// only in one side plus field-level differences for objects present in
// both. Added always means source-only and removed always means
// target-only, for every object kind.
package compare

import "github.com/zqlz/ddlkit/internal/schema"

// Change records an old and new value for one compared field. A nil
// *Change on a diff struct means the field did not change.
type Change[T any] struct {
	Old T `json:"old" yaml:"old"`
	New T `json:"new" yaml:"new"`
}

func changed[T any](from, to T) *Change[T] {
	return &Change[T]{Old: from, New: to}
}

// SchemaDiff is the complete difference between two snapshots. Slices are
// nil when a kind has no changes, so a zero SchemaDiff is empty.
type SchemaDiff struct {
	AddedTables    []schema.TableInfo `json:"added_tables,omitempty" yaml:"added_tables,omitempty"`
	RemovedTables  []schema.TableInfo `json:"removed_tables,omitempty" yaml:"removed_tables,omitempty"`
	ModifiedTables []TableDiff        `json:"modified_tables,omitempty" yaml:"modified_tables,omitempty"`

	AddedViews    []schema.ViewInfo `json:"added_views,omitempty" yaml:"added_views,omitempty"`
	RemovedViews  []schema.ViewInfo `json:"removed_views,omitempty" yaml:"removed_views,omitempty"`
	ModifiedViews []ViewDiff        `json:"modified_views,omitempty" yaml:"modified_views,omitempty"`

	AddedFunctions    []schema.FunctionInfo `json:"added_functions,omitempty" yaml:"added_functions,omitempty"`
	RemovedFunctions  []schema.FunctionInfo `json:"removed_functions,omitempty" yaml:"removed_functions,omitempty"`
	ModifiedFunctions []FunctionDiff        `json:"modified_functions,omitempty" yaml:"modified_functions,omitempty"`

	AddedProcedures    []schema.ProcedureInfo `json:"added_procedures,omitempty" yaml:"added_procedures,omitempty"`
	RemovedProcedures  []schema.ProcedureInfo `json:"removed_procedures,omitempty" yaml:"removed_procedures,omitempty"`
	ModifiedProcedures []ProcedureDiff        `json:"modified_procedures,omitempty" yaml:"modified_procedures,omitempty"`

	AddedTriggers    []schema.TriggerInfo `json:"added_triggers,omitempty" yaml:"added_triggers,omitempty"`
	RemovedTriggers  []schema.TriggerInfo `json:"removed_triggers,omitempty" yaml:"removed_triggers,omitempty"`
	ModifiedTriggers []TriggerDiff        `json:"modified_triggers,omitempty" yaml:"modified_triggers,omitempty"`

	AddedSequences    []schema.SequenceInfo `json:"added_sequences,omitempty" yaml:"added_sequences,omitempty"`
	RemovedSequences  []schema.SequenceInfo `json:"removed_sequences,omitempty" yaml:"removed_sequences,omitempty"`
	ModifiedSequences []SequenceDiff        `json:"modified_sequences,omitempty" yaml:"modified_sequences,omitempty"`

	AddedTypes    []schema.TypeInfo `json:"added_types,omitempty" yaml:"added_types,omitempty"`
	RemovedTypes  []schema.TypeInfo `json:"removed_types,omitempty" yaml:"removed_types,omitempty"`
	ModifiedTypes []TypeDiff        `json:"modified_types,omitempty" yaml:"modified_types,omitempty"`
}

// IsEmpty reports whether no kind has any change.
func (d *SchemaDiff) IsEmpty() bool {
	return d.ChangeCount() == 0
}

// ChangeCount returns the total number of added, removed, and modified
// objects across every kind.
func (d *SchemaDiff) ChangeCount() int {
	return len(d.AddedTables) + len(d.RemovedTables) + len(d.ModifiedTables) +
		len(d.AddedViews) + len(d.RemovedViews) + len(d.ModifiedViews) +
		len(d.AddedFunctions) + len(d.RemovedFunctions) + len(d.ModifiedFunctions) +
		len(d.AddedProcedures) + len(d.RemovedProcedures) + len(d.ModifiedProcedures) +
		len(d.AddedTriggers) + len(d.RemovedTriggers) + len(d.ModifiedTriggers) +
		len(d.AddedSequences) + len(d.RemovedSequences) + len(d.ModifiedSequences) +
		len(d.AddedTypes) + len(d.RemovedTypes) + len(d.ModifiedTypes)
}

// HasBreakingChanges reports whether applying the diff could lose objects
// or data: any removal, or a table modification that is not safe.
func (d *SchemaDiff) HasBreakingChanges() bool {
	for _, t := range d.ModifiedTables {
		if !t.IsSafe() {
			return true
		}
	}
	return len(d.RemovedTables) > 0 ||
		len(d.RemovedViews) > 0 ||
		len(d.RemovedFunctions) > 0 ||
		len(d.RemovedProcedures) > 0 ||
		len(d.RemovedTriggers) > 0 ||
		len(d.RemovedSequences) > 0 ||
		len(d.RemovedTypes) > 0
}

// TableDiff is the difference between two versions of one table.
type TableDiff struct {
	TableName string `json:"table_name" yaml:"table_name"`
	Schema    string `json:"schema,omitempty" yaml:"schema,omitempty"`

	AddedColumns    []schema.ColumnInfo `json:"added_columns,omitempty" yaml:"added_columns,omitempty"`
	RemovedColumns  []schema.ColumnInfo `json:"removed_columns,omitempty" yaml:"removed_columns,omitempty"`
	ModifiedColumns []ColumnDiff        `json:"modified_columns,omitempty" yaml:"modified_columns,omitempty"`

	AddedIndexes    []schema.IndexInfo `json:"added_indexes,omitempty" yaml:"added_indexes,omitempty"`
	RemovedIndexes  []schema.IndexInfo `json:"removed_indexes,omitempty" yaml:"removed_indexes,omitempty"`
	ModifiedIndexes []IndexDiff        `json:"modified_indexes,omitempty" yaml:"modified_indexes,omitempty"`

	AddedForeignKeys    []schema.ForeignKeyInfo `json:"added_foreign_keys,omitempty" yaml:"added_foreign_keys,omitempty"`
	RemovedForeignKeys  []schema.ForeignKeyInfo `json:"removed_foreign_keys,omitempty" yaml:"removed_foreign_keys,omitempty"`
	ModifiedForeignKeys []ForeignKeyDiff        `json:"modified_foreign_keys,omitempty" yaml:"modified_foreign_keys,omitempty"`

	AddedConstraints    []schema.ConstraintInfo `json:"added_constraints,omitempty" yaml:"added_constraints,omitempty"`
	RemovedConstraints  []schema.ConstraintInfo `json:"removed_constraints,omitempty" yaml:"removed_constraints,omitempty"`
	ModifiedConstraints []ConstraintDiff        `json:"modified_constraints,omitempty" yaml:"modified_constraints,omitempty"`

	PrimaryKeyChange *PrimaryKeyChange `json:"primary_key_change,omitempty" yaml:"primary_key_change,omitempty"`
}

// QualifiedName returns schema.table, or just the table name when no
// schema is set.
func (t *TableDiff) QualifiedName() string {
	if t.Schema == "" {
		return t.TableName
	}
	return t.Schema + "." + t.TableName
}

// IsEmpty reports whether the table has no changes at all.
func (t *TableDiff) IsEmpty() bool {
	return len(t.AddedColumns) == 0 && len(t.RemovedColumns) == 0 && len(t.ModifiedColumns) == 0 &&
		len(t.AddedIndexes) == 0 && len(t.RemovedIndexes) == 0 && len(t.ModifiedIndexes) == 0 &&
		len(t.AddedForeignKeys) == 0 && len(t.RemovedForeignKeys) == 0 && len(t.ModifiedForeignKeys) == 0 &&
		len(t.AddedConstraints) == 0 && len(t.RemovedConstraints) == 0 && len(t.ModifiedConstraints) == 0 &&
		t.PrimaryKeyChange == nil
}

// IsSafe reports whether every change is additive: no dropped columns,
// indexes, keys, or constraints, no column made NOT NULL, and at most a
// newly added primary key.
func (t *TableDiff) IsSafe() bool {
	for _, c := range t.ModifiedColumns {
		if !c.IsSafe() {
			return false
		}
	}
	if t.PrimaryKeyChange != nil && !t.PrimaryKeyChange.IsAdded() {
		return false
	}
	return len(t.RemovedColumns) == 0 &&
		len(t.RemovedIndexes) == 0 &&
		len(t.RemovedForeignKeys) == 0 &&
		len(t.RemovedConstraints) == 0
}

// ColumnDiff records field-level changes to one column.
type ColumnDiff struct {
	ColumnName      string            `json:"column_name" yaml:"column_name"`
	TypeChange      *Change[string]   `json:"type_change,omitempty" yaml:"type_change,omitempty"`
	NullableChange  *Change[bool]     `json:"nullable_change,omitempty" yaml:"nullable_change,omitempty"`
	DefaultChange   *Change[*string]  `json:"default_change,omitempty" yaml:"default_change,omitempty"`
	MaxLengthChange *Change[*int64]   `json:"max_length_change,omitempty" yaml:"max_length_change,omitempty"`
	PrecisionChange *Change[*int]     `json:"precision_change,omitempty" yaml:"precision_change,omitempty"`
	ScaleChange     *Change[*int]     `json:"scale_change,omitempty" yaml:"scale_change,omitempty"`
	CommentChange   *Change[*string]  `json:"comment_change,omitempty" yaml:"comment_change,omitempty"`
}

// IsEmpty reports whether no field changed.
func (c *ColumnDiff) IsEmpty() bool {
	return c.TypeChange == nil && c.NullableChange == nil && c.DefaultChange == nil &&
		c.MaxLengthChange == nil && c.PrecisionChange == nil && c.ScaleChange == nil &&
		c.CommentChange == nil
}

// IsSafe reports whether the change carries no data-loss risk. Tightening
// a nullable column to NOT NULL is the one unsafe column change.
func (c *ColumnDiff) IsSafe() bool {
	if c.NullableChange != nil && c.NullableChange.Old && !c.NullableChange.New {
		return false
	}
	return true
}

// IndexDiff holds both versions of an index whose definition differs.
type IndexDiff struct {
	IndexName string           `json:"index_name" yaml:"index_name"`
	Old       schema.IndexInfo `json:"old" yaml:"old"`
	New       schema.IndexInfo `json:"new" yaml:"new"`
}

// ForeignKeyDiff records field-level changes to one foreign key.
type ForeignKeyDiff struct {
	ForeignKeyName        string                           `json:"fk_name" yaml:"fk_name"`
	OnUpdateChange        *Change[schema.ForeignKeyAction] `json:"on_update_change,omitempty" yaml:"on_update_change,omitempty"`
	OnDeleteChange        *Change[schema.ForeignKeyAction] `json:"on_delete_change,omitempty" yaml:"on_delete_change,omitempty"`
	ReferencedTableChange *Change[string]                  `json:"referenced_table_change,omitempty" yaml:"referenced_table_change,omitempty"`
	ColumnsChange         *Change[[]string]                `json:"columns_change,omitempty" yaml:"columns_change,omitempty"`
}

func (f *ForeignKeyDiff) empty() bool {
	return f.OnUpdateChange == nil && f.OnDeleteChange == nil &&
		f.ReferencedTableChange == nil && f.ColumnsChange == nil
}

// ConstraintDiff holds both versions of a constraint whose definition
// differs.
type ConstraintDiff struct {
	ConstraintName string                `json:"constraint_name" yaml:"constraint_name"`
	Old            schema.ConstraintInfo `json:"old" yaml:"old"`
	New            schema.ConstraintInfo `json:"new" yaml:"new"`
}

// PrimaryKeyChange records a primary key being added, removed, or
// reshaped. Old is nil for an addition and New is nil for a removal;
// both are set when the column list changed.
type PrimaryKeyChange struct {
	Old *schema.PrimaryKeyInfo `json:"old,omitempty" yaml:"old,omitempty"`
	New *schema.PrimaryKeyInfo `json:"new,omitempty" yaml:"new,omitempty"`
}

// IsAdded reports whether the primary key exists only in the source.
func (p *PrimaryKeyChange) IsAdded() bool { return p.Old == nil && p.New != nil }

// IsRemoved reports whether the primary key exists only in the target.
func (p *PrimaryKeyChange) IsRemoved() bool { return p.Old != nil && p.New == nil }

// IsModified reports whether the key exists on both sides with different
// columns.
func (p *PrimaryKeyChange) IsModified() bool { return p.Old != nil && p.New != nil }

// ViewDiff records changes to one view.
type ViewDiff struct {
	ViewName           string           `json:"view_name" yaml:"view_name"`
	Schema             string           `json:"schema,omitempty" yaml:"schema,omitempty"`
	DefinitionChange   *Change[*string] `json:"definition_change,omitempty" yaml:"definition_change,omitempty"`
	MaterializedChange *Change[bool]    `json:"materialized_change,omitempty" yaml:"materialized_change,omitempty"`
}

// QualifiedName returns schema.view, or just the view name when no
// schema is set.
func (v *ViewDiff) QualifiedName() string {
	if v.Schema == "" {
		return v.ViewName
	}
	return v.Schema + "." + v.ViewName
}

func (v *ViewDiff) empty() bool {
	return v.DefinitionChange == nil && v.MaterializedChange == nil
}

// FunctionDiff records changes to one stored function.
type FunctionDiff struct {
	FunctionName     string           `json:"function_name" yaml:"function_name"`
	Schema           string           `json:"schema,omitempty" yaml:"schema,omitempty"`
	ReturnTypeChange *Change[string]  `json:"return_type_change,omitempty" yaml:"return_type_change,omitempty"`
	LanguageChange   *Change[string]  `json:"language_change,omitempty" yaml:"language_change,omitempty"`
	DefinitionChange *Change[*string] `json:"definition_change,omitempty" yaml:"definition_change,omitempty"`
}

func (f *FunctionDiff) empty() bool {
	return f.ReturnTypeChange == nil && f.LanguageChange == nil && f.DefinitionChange == nil
}

// ProcedureDiff records changes to one stored procedure.
type ProcedureDiff struct {
	ProcedureName    string           `json:"procedure_name" yaml:"procedure_name"`
	Schema           string           `json:"schema,omitempty" yaml:"schema,omitempty"`
	LanguageChange   *Change[string]  `json:"language_change,omitempty" yaml:"language_change,omitempty"`
	DefinitionChange *Change[*string] `json:"definition_change,omitempty" yaml:"definition_change,omitempty"`
}

func (p *ProcedureDiff) empty() bool {
	return p.LanguageChange == nil && p.DefinitionChange == nil
}

// TriggerDiff records changes to one trigger.
type TriggerDiff struct {
	TriggerName      string           `json:"trigger_name" yaml:"trigger_name"`
	TableName        string           `json:"table_name" yaml:"table_name"`
	Schema           string           `json:"schema,omitempty" yaml:"schema,omitempty"`
	DefinitionChange *Change[*string] `json:"definition_change,omitempty" yaml:"definition_change,omitempty"`
	EnabledChange    *Change[bool]    `json:"enabled_change,omitempty" yaml:"enabled_change,omitempty"`
}

func (t *TriggerDiff) empty() bool {
	return t.DefinitionChange == nil && t.EnabledChange == nil
}

// SequenceDiff records changes to one sequence's numeric configuration.
type SequenceDiff struct {
	SequenceName     string         `json:"sequence_name" yaml:"sequence_name"`
	Schema           string         `json:"schema,omitempty" yaml:"schema,omitempty"`
	StartValueChange *Change[int64] `json:"start_value_change,omitempty" yaml:"start_value_change,omitempty"`
	IncrementChange  *Change[int64] `json:"increment_change,omitempty" yaml:"increment_change,omitempty"`
	MinValueChange   *Change[int64] `json:"min_value_change,omitempty" yaml:"min_value_change,omitempty"`
	MaxValueChange   *Change[int64] `json:"max_value_change,omitempty" yaml:"max_value_change,omitempty"`
}

func (s *SequenceDiff) empty() bool {
	return s.StartValueChange == nil && s.IncrementChange == nil &&
		s.MinValueChange == nil && s.MaxValueChange == nil
}

// TypeDiff records changes to one custom type. ValuesChange is set for
// enums whose member lists differ.
type TypeDiff struct {
	TypeName         string            `json:"type_name" yaml:"type_name"`
	Schema           string            `json:"schema,omitempty" yaml:"schema,omitempty"`
	ValuesChange     *Change[[]string] `json:"values_change,omitempty" yaml:"values_change,omitempty"`
	DefinitionChange *Change[*string]  `json:"definition_change,omitempty" yaml:"definition_change,omitempty"`
}

func (t *TypeDiff) empty() bool {
	return t.ValuesChange == nil && t.DefinitionChange == nil
}
