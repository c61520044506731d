package compare

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zqlz/ddlkit/internal/schema"
)

func usersTable() schema.TableInfo {
	return schema.TableInfo{
		Name: "users",
		Columns: []schema.ColumnInfo{
			{Name: "id", DataType: "INTEGER", PrimaryKey: true},
			{Name: "email", DataType: "VARCHAR", MaxLength: schema.Int64(255)},
			{Name: "bio", DataType: "TEXT", Nullable: true},
		},
		PrimaryKey: &schema.PrimaryKeyInfo{Name: "users_pkey", Columns: []string{"id"}},
		Indexes: []schema.IndexInfo{
			{Name: "idx_users_email", Columns: []string{"email"}, Unique: true},
		},
		ForeignKeys: []schema.ForeignKeyInfo{
			{
				Name:              "fk_users_org",
				Columns:           []string{"org_id"},
				ReferencedTable:   "orgs",
				ReferencedColumns: []string{"id"},
				OnDelete:          schema.Cascade,
			},
		},
		Constraints: []schema.ConstraintInfo{
			{Name: "chk_email", Type: schema.ConstraintCheck, Definition: schema.String("email <> ''")},
		},
	}
}

func snapshot() *schema.Snapshot {
	return &schema.Snapshot{
		Name:   "public",
		Tables: []schema.TableInfo{usersTable()},
		Views: []schema.ViewInfo{
			{Name: "active_users", Definition: schema.String("SELECT * FROM users")},
		},
		Functions: []schema.FunctionInfo{
			{Name: "add_numbers", Language: "sql", ReturnType: "integer"},
		},
		Sequences: []schema.SequenceInfo{
			{Name: "users_id_seq", StartValue: 1, IncrementBy: 1},
		},
		Types: []schema.TypeInfo{
			{Name: "mood", Kind: schema.TypeEnum, Values: []string{"happy", "sad"}},
		},
	}
}

func TestCompareSnapshotsIdentical(t *testing.T) {
	diff := New().CompareSnapshots(snapshot(), snapshot())
	if !diff.IsEmpty() {
		t.Fatalf("identical snapshots must produce an empty diff, got %d changes", diff.ChangeCount())
	}
}

func TestCompareTablesSymmetry(t *testing.T) {
	a := []schema.TableInfo{usersTable(), {Name: "orders"}}
	b := []schema.TableInfo{usersTable()}

	c := New()
	forward := c.CompareTables(a, b)
	backward := c.CompareTables(b, a)

	if d := cmp.Diff(forward.AddedTables, backward.RemovedTables); d != "" {
		t.Errorf("added/removed symmetry broken:\n%s", d)
	}
	if len(forward.AddedTables) != 1 || forward.AddedTables[0].Name != "orders" {
		t.Errorf("AddedTables = %+v", forward.AddedTables)
	}
	if len(forward.ModifiedTables) != 0 {
		t.Errorf("identical shared table reported as modified: %+v", forward.ModifiedTables)
	}
}

func TestCompareColumnChanges(t *testing.T) {
	source := usersTable()
	target := usersTable()

	// target is the baseline; source carries the new shape
	source.Columns[1].DataType = "TEXT"
	source.Columns[1].MaxLength = nil
	source.Columns[2].Nullable = false
	source.Columns[2].Default = schema.String("''")

	td := New().CompareTable(&source, &target)
	if td == nil {
		t.Fatal("expected a table diff")
	}
	if len(td.ModifiedColumns) != 2 {
		t.Fatalf("ModifiedColumns = %+v", td.ModifiedColumns)
	}

	email := td.ModifiedColumns[0]
	if email.ColumnName != "email" {
		t.Fatalf("first modified column = %q", email.ColumnName)
	}
	wantType := &Change[string]{Old: "VARCHAR", New: "TEXT"}
	if d := cmp.Diff(wantType, email.TypeChange); d != "" {
		t.Errorf("TypeChange mismatch:\n%s", d)
	}
	if email.MaxLengthChange == nil || email.MaxLengthChange.New != nil {
		t.Errorf("MaxLengthChange = %+v", email.MaxLengthChange)
	}

	bio := td.ModifiedColumns[1]
	if bio.NullableChange == nil || !bio.NullableChange.Old || bio.NullableChange.New {
		t.Errorf("NullableChange = %+v", bio.NullableChange)
	}
	if bio.DefaultChange == nil || bio.DefaultChange.Old != nil || *bio.DefaultChange.New != "''" {
		t.Errorf("DefaultChange = %+v", bio.DefaultChange)
	}

	// nullable true -> false risks rejecting existing rows
	if bio.IsSafe() {
		t.Error("NOT NULL tightening must not be safe")
	}
	if td.IsSafe() {
		t.Error("table with unsafe column change must not be safe")
	}
}

func TestCompareColumnCommentGating(t *testing.T) {
	source := usersTable()
	target := usersTable()
	source.Columns[0].Comment = schema.String("surrogate key")

	if td := WithConfig(DefaultConfig().WithoutComments()).CompareTable(&source, &target); td != nil {
		t.Errorf("comment change should be ignored, got %+v", td)
	}
	td := New().CompareTable(&source, &target)
	if td == nil || len(td.ModifiedColumns) != 1 || td.ModifiedColumns[0].CommentChange == nil {
		t.Errorf("comment change should be reported, got %+v", td)
	}
}

func TestCompareIndexAndConstraintGating(t *testing.T) {
	source := usersTable()
	target := usersTable()
	source.Indexes[0].Unique = false
	source.Constraints[0].Definition = schema.String("email LIKE '%@%'")

	td := New().CompareTable(&source, &target)
	if td == nil {
		t.Fatal("expected a table diff")
	}
	if len(td.ModifiedIndexes) != 1 {
		t.Fatalf("ModifiedIndexes = %+v", td.ModifiedIndexes)
	}
	idx := td.ModifiedIndexes[0]
	if !idx.Old.Unique || idx.New.Unique {
		t.Errorf("index old/new orientation wrong: %+v", idx)
	}
	if len(td.ModifiedConstraints) != 1 || td.ModifiedConstraints[0].ConstraintName != "chk_email" {
		t.Errorf("ModifiedConstraints = %+v", td.ModifiedConstraints)
	}

	cfg := DefaultConfig().WithoutIndexes().WithoutConstraints()
	if td := WithConfig(cfg).CompareTable(&source, &target); td != nil {
		t.Errorf("gated facets should be ignored, got %+v", td)
	}
}

func TestCompareForeignKeyChanges(t *testing.T) {
	source := usersTable()
	target := usersTable()
	source.ForeignKeys[0].OnDelete = schema.SetNull
	source.ForeignKeys[0].ReferencedTable = "organizations"

	td := New().CompareTable(&source, &target)
	if td == nil || len(td.ModifiedForeignKeys) != 1 {
		t.Fatalf("ModifiedForeignKeys = %+v", td)
	}
	fd := td.ModifiedForeignKeys[0]
	want := &Change[schema.ForeignKeyAction]{Old: schema.Cascade, New: schema.SetNull}
	if d := cmp.Diff(want, fd.OnDeleteChange); d != "" {
		t.Errorf("OnDeleteChange mismatch:\n%s", d)
	}
	if fd.ReferencedTableChange == nil || fd.ReferencedTableChange.New != "organizations" {
		t.Errorf("ReferencedTableChange = %+v", fd.ReferencedTableChange)
	}
	if fd.OnUpdateChange != nil || fd.ColumnsChange != nil {
		t.Errorf("unchanged fields must stay nil: %+v", fd)
	}
}

func TestComparePrimaryKeys(t *testing.T) {
	withPK := usersTable()
	noPK := usersTable()
	noPK.PrimaryKey = nil
	reshaped := usersTable()
	reshaped.PrimaryKey = &schema.PrimaryKeyInfo{Name: "users_pkey", Columns: []string{"id", "email"}}

	c := New()

	td := c.CompareTable(&withPK, &noPK)
	if td == nil || td.PrimaryKeyChange == nil || !td.PrimaryKeyChange.IsAdded() {
		t.Errorf("source-only key should be an addition: %+v", td)
	}
	if !td.IsSafe() {
		t.Error("adding a primary key is a safe change")
	}

	td = c.CompareTable(&noPK, &withPK)
	if td == nil || td.PrimaryKeyChange == nil || !td.PrimaryKeyChange.IsRemoved() {
		t.Errorf("target-only key should be a removal: %+v", td)
	}
	if td.IsSafe() {
		t.Error("dropping a primary key is not safe")
	}

	td = c.CompareTable(&reshaped, &withPK)
	if td == nil || td.PrimaryKeyChange == nil || !td.PrimaryKeyChange.IsModified() {
		t.Errorf("column change should be a modification: %+v", td)
	}
	if got := td.PrimaryKeyChange.New.Columns; len(got) != 2 {
		t.Errorf("New should carry the source key, got %+v", got)
	}
}

func TestCaseInsensitiveMatching(t *testing.T) {
	source := []schema.TableInfo{{Name: "Users", Columns: []schema.ColumnInfo{{Name: "ID", DataType: "INTEGER"}}}}
	target := []schema.TableInfo{{Name: "users", Columns: []schema.ColumnInfo{{Name: "id", DataType: "integer"}}}}

	if diff := New().CompareTables(source, target); len(diff.AddedTables) != 1 || len(diff.RemovedTables) != 1 {
		t.Errorf("case sensitive compare should miss the match: %+v", diff)
	}

	diff := WithConfig(DefaultConfig().CaseInsensitive()).CompareTables(source, target)
	if !diff.IsEmpty() {
		t.Errorf("case insensitive compare should be empty, got %d changes", diff.ChangeCount())
	}
}

func TestCompareViews(t *testing.T) {
	source := []schema.ViewInfo{
		{Name: "v1", Definition: schema.String("SELECT 2"), Materialized: true},
		{Name: "v2", Definition: schema.String("SELECT 1")},
	}
	target := []schema.ViewInfo{
		{Name: "v1", Definition: schema.String("SELECT 1")},
		{Name: "v3", Definition: schema.String("SELECT 3")},
	}

	diff := New().CompareViews(source, target)
	if len(diff.AddedViews) != 1 || diff.AddedViews[0].Name != "v2" {
		t.Errorf("AddedViews = %+v", diff.AddedViews)
	}
	if len(diff.RemovedViews) != 1 || diff.RemovedViews[0].Name != "v3" {
		t.Errorf("RemovedViews = %+v", diff.RemovedViews)
	}
	if len(diff.ModifiedViews) != 1 {
		t.Fatalf("ModifiedViews = %+v", diff.ModifiedViews)
	}
	vd := diff.ModifiedViews[0]
	if vd.DefinitionChange == nil || *vd.DefinitionChange.Old != "SELECT 1" || *vd.DefinitionChange.New != "SELECT 2" {
		t.Errorf("DefinitionChange = %+v", vd.DefinitionChange)
	}
	if vd.MaterializedChange == nil || vd.MaterializedChange.Old || !vd.MaterializedChange.New {
		t.Errorf("MaterializedChange = %+v", vd.MaterializedChange)
	}
}

func TestCompareFunctions(t *testing.T) {
	source := []schema.FunctionInfo{{Name: "f", Language: "plpgsql", ReturnType: "text"}}
	target := []schema.FunctionInfo{{Name: "f", Language: "sql", ReturnType: "text"}}

	diff := New().CompareFunctions(source, target)
	if len(diff.ModifiedFunctions) != 1 {
		t.Fatalf("ModifiedFunctions = %+v", diff.ModifiedFunctions)
	}
	fd := diff.ModifiedFunctions[0]
	if fd.LanguageChange == nil || fd.LanguageChange.Old != "sql" || fd.LanguageChange.New != "plpgsql" {
		t.Errorf("LanguageChange = %+v", fd.LanguageChange)
	}
	if fd.ReturnTypeChange != nil {
		t.Errorf("unchanged return type must stay nil: %+v", fd.ReturnTypeChange)
	}
}

func TestCompareTriggersGating(t *testing.T) {
	source := []schema.TriggerInfo{{Name: "trg", Table: "users", Enabled: true}}
	target := []schema.TriggerInfo{{Name: "trg", Table: "users", Enabled: false}}

	diff := New().CompareTriggers(source, target)
	if len(diff.ModifiedTriggers) != 1 || diff.ModifiedTriggers[0].EnabledChange == nil {
		t.Errorf("ModifiedTriggers = %+v", diff.ModifiedTriggers)
	}

	diff = WithConfig(DefaultConfig().WithoutTriggers()).CompareTriggers(source, target)
	if !diff.IsEmpty() {
		t.Errorf("disabled trigger compare should be empty, got %+v", diff)
	}
}

func TestCompareSequences(t *testing.T) {
	source := []schema.SequenceInfo{{Name: "s", StartValue: 100, IncrementBy: 10, MaxValue: 1000}}
	target := []schema.SequenceInfo{{Name: "s", StartValue: 1, IncrementBy: 10, MaxValue: 500}}

	diff := New().CompareSequences(source, target)
	if len(diff.ModifiedSequences) != 1 {
		t.Fatalf("ModifiedSequences = %+v", diff.ModifiedSequences)
	}
	sd := diff.ModifiedSequences[0]
	if sd.StartValueChange == nil || sd.StartValueChange.Old != 1 || sd.StartValueChange.New != 100 {
		t.Errorf("StartValueChange = %+v", sd.StartValueChange)
	}
	if sd.MaxValueChange == nil || sd.IncrementChange != nil || sd.MinValueChange != nil {
		t.Errorf("unexpected changes: %+v", sd)
	}
}

func TestCompareTypes(t *testing.T) {
	source := []schema.TypeInfo{{Name: "mood", Kind: schema.TypeEnum, Values: []string{"happy", "sad", "ok"}}}
	target := []schema.TypeInfo{{Name: "mood", Kind: schema.TypeEnum, Values: []string{"happy", "sad"}}}

	diff := New().CompareTypes(source, target)
	if len(diff.ModifiedTypes) != 1 {
		t.Fatalf("ModifiedTypes = %+v", diff.ModifiedTypes)
	}
	td := diff.ModifiedTypes[0]
	if td.ValuesChange == nil || len(td.ValuesChange.New) != 3 {
		t.Errorf("ValuesChange = %+v", td.ValuesChange)
	}
}

func TestMergeDiffsAndChangeCount(t *testing.T) {
	c := New()
	a := SchemaDiff{AddedTables: []schema.TableInfo{{Name: "t1"}}}
	b := SchemaDiff{
		RemovedViews:      []schema.ViewInfo{{Name: "v1"}},
		ModifiedSequences: []SequenceDiff{{SequenceName: "s1"}},
	}

	merged := c.MergeDiffs(a, b)
	if merged.ChangeCount() != 3 {
		t.Errorf("ChangeCount = %d, want 3", merged.ChangeCount())
	}
	if merged.IsEmpty() {
		t.Error("merged diff must not be empty")
	}
	empty := c.MergeDiffs()
	if empty.ChangeCount() != 0 {
		t.Error("merging nothing must yield an empty diff")
	}
}

func TestHasBreakingChanges(t *testing.T) {
	additive := SchemaDiff{
		AddedTables: []schema.TableInfo{{Name: "t"}},
		ModifiedTables: []TableDiff{
			{TableName: "u", AddedColumns: []schema.ColumnInfo{{Name: "c", DataType: "TEXT"}}},
		},
	}
	if additive.HasBreakingChanges() {
		t.Error("pure additions are not breaking")
	}

	dropping := SchemaDiff{RemovedTables: []schema.TableInfo{{Name: "t"}}}
	if !dropping.HasBreakingChanges() {
		t.Error("a removed table is breaking")
	}

	tightening := SchemaDiff{
		ModifiedTables: []TableDiff{
			{
				TableName: "u",
				ModifiedColumns: []ColumnDiff{
					{ColumnName: "c", NullableChange: &Change[bool]{Old: true, New: false}},
				},
			},
		},
	}
	if !tightening.HasBreakingChanges() {
		t.Error("a NOT NULL tightening is breaking")
	}
}

func TestQualifiedNames(t *testing.T) {
	td := TableDiff{TableName: "users", Schema: "app"}
	if got := td.QualifiedName(); got != "app.users" {
		t.Errorf("QualifiedName = %q", got)
	}
	td.Schema = ""
	if got := td.QualifiedName(); got != "users" {
		t.Errorf("QualifiedName = %q", got)
	}
}
