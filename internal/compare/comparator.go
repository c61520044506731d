package compare

import (
	"slices"
	"strings"

	"github.com/zqlz/ddlkit/internal/schema"
)

// Config selects which object facets participate in comparison. Columns
// and primary keys are always compared; the flags gate the rest. Matching
// is name-keyed on both sides, so column and object order never affects
// the result.
type Config struct {
	CompareComments    bool `json:"compare_comments" yaml:"compare_comments"`
	CompareIndexes     bool `json:"compare_indexes" yaml:"compare_indexes"`
	CompareForeignKeys bool `json:"compare_foreign_keys" yaml:"compare_foreign_keys"`
	CompareConstraints bool `json:"compare_constraints" yaml:"compare_constraints"`
	CompareTriggers    bool `json:"compare_triggers" yaml:"compare_triggers"`
	CaseSensitive      bool `json:"case_sensitive" yaml:"case_sensitive"`
}

// DefaultConfig compares everything, case sensitively.
func DefaultConfig() Config {
	return Config{
		CompareComments:    true,
		CompareIndexes:     true,
		CompareForeignKeys: true,
		CompareConstraints: true,
		CompareTriggers:    true,
		CaseSensitive:      true,
	}
}

// WithoutComments disables comment comparison.
func (c Config) WithoutComments() Config { c.CompareComments = false; return c }

// WithoutIndexes disables index comparison.
func (c Config) WithoutIndexes() Config { c.CompareIndexes = false; return c }

// WithoutForeignKeys disables foreign key comparison.
func (c Config) WithoutForeignKeys() Config { c.CompareForeignKeys = false; return c }

// WithoutConstraints disables constraint comparison.
func (c Config) WithoutConstraints() Config { c.CompareConstraints = false; return c }

// WithoutTriggers disables trigger comparison.
func (c Config) WithoutTriggers() Config { c.CompareTriggers = false; return c }

// CaseInsensitive makes name matching fold case.
func (c Config) CaseInsensitive() Config { c.CaseSensitive = false; return c }

// Comparator diffs schema objects under one Config. The zero value is not
// useful; construct with New or WithConfig.
type Comparator struct {
	config Config
}

// New returns a comparator with the default configuration.
func New() *Comparator {
	return &Comparator{config: DefaultConfig()}
}

// WithConfig returns a comparator using the given configuration.
func WithConfig(cfg Config) *Comparator {
	return &Comparator{config: cfg}
}

// Config returns the comparator's configuration.
func (c *Comparator) Config() Config {
	return c.config
}

func (c *Comparator) normalizeName(name string) string {
	if c.config.CaseSensitive {
		return name
	}
	return strings.ToLower(name)
}

// CompareSnapshots diffs every object kind of two snapshots and returns
// the merged result.
func (c *Comparator) CompareSnapshots(source, target *schema.Snapshot) SchemaDiff {
	return c.MergeDiffs(
		c.CompareTables(source.Tables, target.Tables),
		c.CompareViews(source.Views, target.Views),
		c.CompareFunctions(source.Functions, target.Functions),
		c.CompareProcedures(source.Procedures, target.Procedures),
		c.CompareTriggers(source.Triggers, target.Triggers),
		c.CompareSequences(source.Sequences, target.Sequences),
		c.CompareTypes(source.Types, target.Types),
	)
}

// CompareTables diffs two table sets, descending into columns, indexes,
// foreign keys, constraints, and primary keys for tables on both sides.
func (c *Comparator) CompareTables(source, target []schema.TableInfo) SchemaDiff {
	var diff SchemaDiff

	targetByName := make(map[string]*schema.TableInfo, len(target))
	for i := range target {
		targetByName[c.normalizeName(target[i].Name)] = &target[i]
	}
	sourceNames := make(map[string]bool, len(source))
	for i := range source {
		sourceNames[c.normalizeName(source[i].Name)] = true
	}

	for i := range source {
		tbl := &source[i]
		other, ok := targetByName[c.normalizeName(tbl.Name)]
		if !ok {
			diff.AddedTables = append(diff.AddedTables, *tbl)
			continue
		}
		if td := c.CompareTable(tbl, other); td != nil {
			diff.ModifiedTables = append(diff.ModifiedTables, *td)
		}
	}
	for i := range target {
		if !sourceNames[c.normalizeName(target[i].Name)] {
			diff.RemovedTables = append(diff.RemovedTables, target[i])
		}
	}

	return diff
}

// CompareTable diffs one table present on both sides. It returns nil when
// nothing differs.
func (c *Comparator) CompareTable(source, target *schema.TableInfo) *TableDiff {
	td := &TableDiff{TableName: source.Name, Schema: source.Schema}

	c.compareColumns(source.Columns, target.Columns, td)
	if c.config.CompareIndexes {
		c.compareIndexes(source.Indexes, target.Indexes, td)
	}
	if c.config.CompareForeignKeys {
		c.compareForeignKeys(source.ForeignKeys, target.ForeignKeys, td)
	}
	if c.config.CompareConstraints {
		c.compareConstraints(source.Constraints, target.Constraints, td)
	}
	c.comparePrimaryKeys(source.PrimaryKey, target.PrimaryKey, td)

	if td.IsEmpty() {
		return nil
	}
	return td
}

func (c *Comparator) compareColumns(source, target []schema.ColumnInfo, td *TableDiff) {
	targetByName := make(map[string]*schema.ColumnInfo, len(target))
	for i := range target {
		targetByName[c.normalizeName(target[i].Name)] = &target[i]
	}
	sourceNames := make(map[string]bool, len(source))
	for i := range source {
		sourceNames[c.normalizeName(source[i].Name)] = true
	}

	for i := range source {
		col := &source[i]
		other, ok := targetByName[c.normalizeName(col.Name)]
		if !ok {
			td.AddedColumns = append(td.AddedColumns, *col)
			continue
		}
		if cd := c.compareColumn(col, other); cd != nil {
			td.ModifiedColumns = append(td.ModifiedColumns, *cd)
		}
	}
	for i := range target {
		if !sourceNames[c.normalizeName(target[i].Name)] {
			td.RemovedColumns = append(td.RemovedColumns, target[i])
		}
	}
}

func (c *Comparator) compareColumn(source, target *schema.ColumnInfo) *ColumnDiff {
	cd := &ColumnDiff{ColumnName: source.Name}

	if c.normalizeName(source.DataType) != c.normalizeName(target.DataType) {
		cd.TypeChange = changed(target.DataType, source.DataType)
	}
	if source.Nullable != target.Nullable {
		cd.NullableChange = changed(target.Nullable, source.Nullable)
	}
	if !ptrEq(source.Default, target.Default) {
		cd.DefaultChange = changed(target.Default, source.Default)
	}
	if !ptrEq(source.MaxLength, target.MaxLength) {
		cd.MaxLengthChange = changed(target.MaxLength, source.MaxLength)
	}
	if !ptrEq(source.Precision, target.Precision) {
		cd.PrecisionChange = changed(target.Precision, source.Precision)
	}
	if !ptrEq(source.Scale, target.Scale) {
		cd.ScaleChange = changed(target.Scale, source.Scale)
	}
	if c.config.CompareComments && !ptrEq(source.Comment, target.Comment) {
		cd.CommentChange = changed(target.Comment, source.Comment)
	}

	if cd.IsEmpty() {
		return nil
	}
	return cd
}

func (c *Comparator) compareIndexes(source, target []schema.IndexInfo, td *TableDiff) {
	targetByName := make(map[string]*schema.IndexInfo, len(target))
	for i := range target {
		targetByName[c.normalizeName(target[i].Name)] = &target[i]
	}
	sourceNames := make(map[string]bool, len(source))
	for i := range source {
		sourceNames[c.normalizeName(source[i].Name)] = true
	}

	for i := range source {
		idx := &source[i]
		other, ok := targetByName[c.normalizeName(idx.Name)]
		if !ok {
			td.AddedIndexes = append(td.AddedIndexes, *idx)
			continue
		}
		if !c.indexesEqual(idx, other) {
			td.ModifiedIndexes = append(td.ModifiedIndexes, IndexDiff{
				IndexName: idx.Name,
				Old:       *other,
				New:       *idx,
			})
		}
	}
	for i := range target {
		if !sourceNames[c.normalizeName(target[i].Name)] {
			td.RemovedIndexes = append(td.RemovedIndexes, target[i])
		}
	}
}

func (c *Comparator) indexesEqual(a, b *schema.IndexInfo) bool {
	return slices.Equal(a.Columns, b.Columns) &&
		a.Unique == b.Unique &&
		a.Primary == b.Primary &&
		c.normalizeName(a.IndexType) == c.normalizeName(b.IndexType)
}

func (c *Comparator) compareForeignKeys(source, target []schema.ForeignKeyInfo, td *TableDiff) {
	targetByName := make(map[string]*schema.ForeignKeyInfo, len(target))
	for i := range target {
		targetByName[c.normalizeName(target[i].Name)] = &target[i]
	}
	sourceNames := make(map[string]bool, len(source))
	for i := range source {
		sourceNames[c.normalizeName(source[i].Name)] = true
	}

	for i := range source {
		fk := &source[i]
		other, ok := targetByName[c.normalizeName(fk.Name)]
		if !ok {
			td.AddedForeignKeys = append(td.AddedForeignKeys, *fk)
			continue
		}
		if fd := c.compareForeignKey(fk, other); fd != nil {
			td.ModifiedForeignKeys = append(td.ModifiedForeignKeys, *fd)
		}
	}
	for i := range target {
		if !sourceNames[c.normalizeName(target[i].Name)] {
			td.RemovedForeignKeys = append(td.RemovedForeignKeys, target[i])
		}
	}
}

func (c *Comparator) compareForeignKey(source, target *schema.ForeignKeyInfo) *ForeignKeyDiff {
	fd := &ForeignKeyDiff{ForeignKeyName: source.Name}

	if source.OnUpdate != target.OnUpdate {
		fd.OnUpdateChange = changed(target.OnUpdate, source.OnUpdate)
	}
	if source.OnDelete != target.OnDelete {
		fd.OnDeleteChange = changed(target.OnDelete, source.OnDelete)
	}
	if c.normalizeName(source.ReferencedTable) != c.normalizeName(target.ReferencedTable) {
		fd.ReferencedTableChange = changed(target.ReferencedTable, source.ReferencedTable)
	}
	if !slices.Equal(source.Columns, target.Columns) {
		fd.ColumnsChange = changed(target.Columns, source.Columns)
	}

	if fd.empty() {
		return nil
	}
	return fd
}

func (c *Comparator) compareConstraints(source, target []schema.ConstraintInfo, td *TableDiff) {
	targetByName := make(map[string]*schema.ConstraintInfo, len(target))
	for i := range target {
		targetByName[c.normalizeName(target[i].Name)] = &target[i]
	}
	sourceNames := make(map[string]bool, len(source))
	for i := range source {
		sourceNames[c.normalizeName(source[i].Name)] = true
	}

	for i := range source {
		con := &source[i]
		other, ok := targetByName[c.normalizeName(con.Name)]
		if !ok {
			td.AddedConstraints = append(td.AddedConstraints, *con)
			continue
		}
		if !constraintsEqual(con, other) {
			td.ModifiedConstraints = append(td.ModifiedConstraints, ConstraintDiff{
				ConstraintName: con.Name,
				Old:            *other,
				New:            *con,
			})
		}
	}
	for i := range target {
		if !sourceNames[c.normalizeName(target[i].Name)] {
			td.RemovedConstraints = append(td.RemovedConstraints, target[i])
		}
	}
}

func constraintsEqual(a, b *schema.ConstraintInfo) bool {
	return a.Type == b.Type &&
		slices.Equal(a.Columns, b.Columns) &&
		ptrEq(a.Definition, b.Definition)
}

func (c *Comparator) comparePrimaryKeys(source, target *schema.PrimaryKeyInfo, td *TableDiff) {
	switch {
	case source != nil && target == nil:
		td.PrimaryKeyChange = &PrimaryKeyChange{New: source}
	case source == nil && target != nil:
		td.PrimaryKeyChange = &PrimaryKeyChange{Old: target}
	case source != nil && target != nil && !slices.Equal(source.Columns, target.Columns):
		td.PrimaryKeyChange = &PrimaryKeyChange{Old: target, New: source}
	}
}

// CompareViews diffs two view sets.
func (c *Comparator) CompareViews(source, target []schema.ViewInfo) SchemaDiff {
	var diff SchemaDiff

	targetByName := make(map[string]*schema.ViewInfo, len(target))
	for i := range target {
		targetByName[c.normalizeName(target[i].Name)] = &target[i]
	}
	sourceNames := make(map[string]bool, len(source))
	for i := range source {
		sourceNames[c.normalizeName(source[i].Name)] = true
	}

	for i := range source {
		v := &source[i]
		other, ok := targetByName[c.normalizeName(v.Name)]
		if !ok {
			diff.AddedViews = append(diff.AddedViews, *v)
			continue
		}
		vd := ViewDiff{ViewName: v.Name, Schema: v.Schema}
		if !ptrEq(v.Definition, other.Definition) {
			vd.DefinitionChange = changed(other.Definition, v.Definition)
		}
		if v.Materialized != other.Materialized {
			vd.MaterializedChange = changed(other.Materialized, v.Materialized)
		}
		if !vd.empty() {
			diff.ModifiedViews = append(diff.ModifiedViews, vd)
		}
	}
	for i := range target {
		if !sourceNames[c.normalizeName(target[i].Name)] {
			diff.RemovedViews = append(diff.RemovedViews, target[i])
		}
	}

	return diff
}

// CompareFunctions diffs two function sets, matched by name only; the
// diff compares return type, language, and definition.
func (c *Comparator) CompareFunctions(source, target []schema.FunctionInfo) SchemaDiff {
	var diff SchemaDiff

	targetByName := make(map[string]*schema.FunctionInfo, len(target))
	for i := range target {
		targetByName[c.normalizeName(target[i].Name)] = &target[i]
	}
	sourceNames := make(map[string]bool, len(source))
	for i := range source {
		sourceNames[c.normalizeName(source[i].Name)] = true
	}

	for i := range source {
		fn := &source[i]
		other, ok := targetByName[c.normalizeName(fn.Name)]
		if !ok {
			diff.AddedFunctions = append(diff.AddedFunctions, *fn)
			continue
		}
		fd := FunctionDiff{FunctionName: fn.Name, Schema: fn.Schema}
		if c.normalizeName(fn.ReturnType) != c.normalizeName(other.ReturnType) {
			fd.ReturnTypeChange = changed(other.ReturnType, fn.ReturnType)
		}
		if c.normalizeName(fn.Language) != c.normalizeName(other.Language) {
			fd.LanguageChange = changed(other.Language, fn.Language)
		}
		if !ptrEq(fn.Definition, other.Definition) {
			fd.DefinitionChange = changed(other.Definition, fn.Definition)
		}
		if !fd.empty() {
			diff.ModifiedFunctions = append(diff.ModifiedFunctions, fd)
		}
	}
	for i := range target {
		if !sourceNames[c.normalizeName(target[i].Name)] {
			diff.RemovedFunctions = append(diff.RemovedFunctions, target[i])
		}
	}

	return diff
}

// CompareProcedures diffs two procedure sets.
func (c *Comparator) CompareProcedures(source, target []schema.ProcedureInfo) SchemaDiff {
	var diff SchemaDiff

	targetByName := make(map[string]*schema.ProcedureInfo, len(target))
	for i := range target {
		targetByName[c.normalizeName(target[i].Name)] = &target[i]
	}
	sourceNames := make(map[string]bool, len(source))
	for i := range source {
		sourceNames[c.normalizeName(source[i].Name)] = true
	}

	for i := range source {
		p := &source[i]
		other, ok := targetByName[c.normalizeName(p.Name)]
		if !ok {
			diff.AddedProcedures = append(diff.AddedProcedures, *p)
			continue
		}
		pd := ProcedureDiff{ProcedureName: p.Name, Schema: p.Schema}
		if c.normalizeName(p.Language) != c.normalizeName(other.Language) {
			pd.LanguageChange = changed(other.Language, p.Language)
		}
		if !ptrEq(p.Definition, other.Definition) {
			pd.DefinitionChange = changed(other.Definition, p.Definition)
		}
		if !pd.empty() {
			diff.ModifiedProcedures = append(diff.ModifiedProcedures, pd)
		}
	}
	for i := range target {
		if !sourceNames[c.normalizeName(target[i].Name)] {
			diff.RemovedProcedures = append(diff.RemovedProcedures, target[i])
		}
	}

	return diff
}

// CompareTriggers diffs two trigger sets. Returns an empty diff when
// trigger comparison is disabled.
func (c *Comparator) CompareTriggers(source, target []schema.TriggerInfo) SchemaDiff {
	var diff SchemaDiff
	if !c.config.CompareTriggers {
		return diff
	}

	targetByName := make(map[string]*schema.TriggerInfo, len(target))
	for i := range target {
		targetByName[c.normalizeName(target[i].Name)] = &target[i]
	}
	sourceNames := make(map[string]bool, len(source))
	for i := range source {
		sourceNames[c.normalizeName(source[i].Name)] = true
	}

	for i := range source {
		tr := &source[i]
		other, ok := targetByName[c.normalizeName(tr.Name)]
		if !ok {
			diff.AddedTriggers = append(diff.AddedTriggers, *tr)
			continue
		}
		td := TriggerDiff{TriggerName: tr.Name, TableName: tr.Table, Schema: tr.Schema}
		if !ptrEq(tr.Definition, other.Definition) {
			td.DefinitionChange = changed(other.Definition, tr.Definition)
		}
		if tr.Enabled != other.Enabled {
			td.EnabledChange = changed(other.Enabled, tr.Enabled)
		}
		if !td.empty() {
			diff.ModifiedTriggers = append(diff.ModifiedTriggers, td)
		}
	}
	for i := range target {
		if !sourceNames[c.normalizeName(target[i].Name)] {
			diff.RemovedTriggers = append(diff.RemovedTriggers, target[i])
		}
	}

	return diff
}

// CompareSequences diffs two sequence sets on their numeric bounds.
func (c *Comparator) CompareSequences(source, target []schema.SequenceInfo) SchemaDiff {
	var diff SchemaDiff

	targetByName := make(map[string]*schema.SequenceInfo, len(target))
	for i := range target {
		targetByName[c.normalizeName(target[i].Name)] = &target[i]
	}
	sourceNames := make(map[string]bool, len(source))
	for i := range source {
		sourceNames[c.normalizeName(source[i].Name)] = true
	}

	for i := range source {
		sq := &source[i]
		other, ok := targetByName[c.normalizeName(sq.Name)]
		if !ok {
			diff.AddedSequences = append(diff.AddedSequences, *sq)
			continue
		}
		sd := SequenceDiff{SequenceName: sq.Name, Schema: sq.Schema}
		if sq.StartValue != other.StartValue {
			sd.StartValueChange = changed(other.StartValue, sq.StartValue)
		}
		if sq.IncrementBy != other.IncrementBy {
			sd.IncrementChange = changed(other.IncrementBy, sq.IncrementBy)
		}
		if sq.MinValue != other.MinValue {
			sd.MinValueChange = changed(other.MinValue, sq.MinValue)
		}
		if sq.MaxValue != other.MaxValue {
			sd.MaxValueChange = changed(other.MaxValue, sq.MaxValue)
		}
		if !sd.empty() {
			diff.ModifiedSequences = append(diff.ModifiedSequences, sd)
		}
	}
	for i := range target {
		if !sourceNames[c.normalizeName(target[i].Name)] {
			diff.RemovedSequences = append(diff.RemovedSequences, target[i])
		}
	}

	return diff
}

// CompareTypes diffs two custom type sets on enum values and definition.
func (c *Comparator) CompareTypes(source, target []schema.TypeInfo) SchemaDiff {
	var diff SchemaDiff

	targetByName := make(map[string]*schema.TypeInfo, len(target))
	for i := range target {
		targetByName[c.normalizeName(target[i].Name)] = &target[i]
	}
	sourceNames := make(map[string]bool, len(source))
	for i := range source {
		sourceNames[c.normalizeName(source[i].Name)] = true
	}

	for i := range source {
		ty := &source[i]
		other, ok := targetByName[c.normalizeName(ty.Name)]
		if !ok {
			diff.AddedTypes = append(diff.AddedTypes, *ty)
			continue
		}
		td := TypeDiff{TypeName: ty.Name, Schema: ty.Schema}
		if !slices.Equal(ty.Values, other.Values) {
			td.ValuesChange = changed(other.Values, ty.Values)
		}
		if !ptrEq(ty.Definition, other.Definition) {
			td.DefinitionChange = changed(other.Definition, ty.Definition)
		}
		if !td.empty() {
			diff.ModifiedTypes = append(diff.ModifiedTypes, td)
		}
	}
	for i := range target {
		if !sourceNames[c.normalizeName(target[i].Name)] {
			diff.RemovedTypes = append(diff.RemovedTypes, target[i])
		}
	}

	return diff
}

// MergeDiffs concatenates any number of diffs into one, preserving order.
func (c *Comparator) MergeDiffs(diffs ...SchemaDiff) SchemaDiff {
	var merged SchemaDiff
	for _, d := range diffs {
		merged.AddedTables = append(merged.AddedTables, d.AddedTables...)
		merged.RemovedTables = append(merged.RemovedTables, d.RemovedTables...)
		merged.ModifiedTables = append(merged.ModifiedTables, d.ModifiedTables...)
		merged.AddedViews = append(merged.AddedViews, d.AddedViews...)
		merged.RemovedViews = append(merged.RemovedViews, d.RemovedViews...)
		merged.ModifiedViews = append(merged.ModifiedViews, d.ModifiedViews...)
		merged.AddedFunctions = append(merged.AddedFunctions, d.AddedFunctions...)
		merged.RemovedFunctions = append(merged.RemovedFunctions, d.RemovedFunctions...)
		merged.ModifiedFunctions = append(merged.ModifiedFunctions, d.ModifiedFunctions...)
		merged.AddedProcedures = append(merged.AddedProcedures, d.AddedProcedures...)
		merged.RemovedProcedures = append(merged.RemovedProcedures, d.RemovedProcedures...)
		merged.ModifiedProcedures = append(merged.ModifiedProcedures, d.ModifiedProcedures...)
		merged.AddedTriggers = append(merged.AddedTriggers, d.AddedTriggers...)
		merged.RemovedTriggers = append(merged.RemovedTriggers, d.RemovedTriggers...)
		merged.ModifiedTriggers = append(merged.ModifiedTriggers, d.ModifiedTriggers...)
		merged.AddedSequences = append(merged.AddedSequences, d.AddedSequences...)
		merged.RemovedSequences = append(merged.RemovedSequences, d.RemovedSequences...)
		merged.ModifiedSequences = append(merged.ModifiedSequences, d.ModifiedSequences...)
		merged.AddedTypes = append(merged.AddedTypes, d.AddedTypes...)
		merged.RemovedTypes = append(merged.RemovedTypes, d.RemovedTypes...)
		merged.ModifiedTypes = append(merged.ModifiedTypes, d.ModifiedTypes...)
	}
	return merged
}

// ptrEq compares two optional values: both nil, or both set and equal.
func ptrEq[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
