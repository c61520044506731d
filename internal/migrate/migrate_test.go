package migrate

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/zqlz/ddlkit/internal/compare"
	"github.com/zqlz/ddlkit/internal/dialect"
	"github.com/zqlz/ddlkit/internal/schema"
)

func TestGenerateEmptyDiff(t *testing.T) {
	m, err := New().Generate(&compare.SchemaDiff{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !m.IsEmpty() {
		t.Errorf("empty diff must yield an empty migration: %+v", m)
	}
	if m.UpScript() != "" || m.DownScript() != "" {
		t.Errorf("scripts of an empty migration must be empty")
	}
}

func TestGenerateCreateTable(t *testing.T) {
	diff := &compare.SchemaDiff{
		AddedTables: []schema.TableInfo{
			{
				Name: "users",
				Columns: []schema.ColumnInfo{
					{Name: "id", DataType: "INTEGER"},
					{Name: "email", DataType: "VARCHAR", MaxLength: schema.Int64(255), Default: schema.String("''")},
					{Name: "bio", DataType: "TEXT", Nullable: true},
				},
				PrimaryKey: &schema.PrimaryKeyInfo{Name: "users_pkey", Columns: []string{"id"}},
			},
		},
	}

	m, err := New().Generate(diff)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	wantUp := "CREATE TABLE users (\n" +
		"  id INTEGER NOT NULL,\n" +
		"  email VARCHAR(255) NOT NULL DEFAULT '',\n" +
		"  bio TEXT,\n" +
		"  CONSTRAINT users_pkey PRIMARY KEY (id)\n" +
		")"
	if d := cmp.Diff([]string{wantUp}, m.Up); d != "" {
		t.Errorf("up mismatch:\n%s", d)
	}
	if d := cmp.Diff([]string{"DROP TABLE IF EXISTS users"}, m.Down); d != "" {
		t.Errorf("down mismatch:\n%s", d)
	}
}

func TestGenerateDropTableCascade(t *testing.T) {
	diff := &compare.SchemaDiff{
		RemovedTables: []schema.TableInfo{{Name: "old_stuff", Schema: "app"}},
	}

	m, err := WithConfig(DefaultConfig().WithCascade(true)).Generate(diff)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if m.Up[0] != "DROP TABLE IF EXISTS app.old_stuff CASCADE" {
		t.Errorf("Up = %q", m.Up[0])
	}

	// CASCADE is a postgres spelling; other dialects must not emit it
	m, err = WithConfig(ForDialect(dialect.MySQL).WithCascade(true)).Generate(diff)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Contains(m.Up[0], "CASCADE") {
		t.Errorf("mysql drop must not cascade: %q", m.Up[0])
	}
}

func TestGenerateAlterTableColumns(t *testing.T) {
	diff := &compare.SchemaDiff{
		ModifiedTables: []compare.TableDiff{
			{
				TableName: "users",
				AddedColumns: []schema.ColumnInfo{
					{Name: "age", DataType: "INTEGER", Nullable: true},
				},
				RemovedColumns: []schema.ColumnInfo{
					{Name: "legacy", DataType: "TEXT", Nullable: true},
				},
			},
		},
	}

	m, err := New().Generate(diff)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	wantUp := []string{
		"ALTER TABLE users ADD COLUMN age INTEGER",
		"ALTER TABLE users DROP COLUMN IF EXISTS legacy",
	}
	if d := cmp.Diff(wantUp, m.Up); d != "" {
		t.Errorf("up mismatch:\n%s", d)
	}
	wantDown := []string{
		"ALTER TABLE users DROP COLUMN IF EXISTS age",
		"ALTER TABLE users ADD COLUMN legacy TEXT",
	}
	if d := cmp.Diff(wantDown, m.Down); d != "" {
		t.Errorf("down mismatch:\n%s", d)
	}
}

func TestGenerateAlterColumnType(t *testing.T) {
	diff := &compare.SchemaDiff{
		ModifiedTables: []compare.TableDiff{
			{
				TableName: "users",
				ModifiedColumns: []compare.ColumnDiff{
					{ColumnName: "email", TypeChange: &compare.Change[string]{Old: "VARCHAR(100)", New: "TEXT"}},
				},
			},
		},
	}

	tests := []struct {
		dialect  dialect.Dialect
		wantUp   string
		wantDown string
	}{
		{dialect.Postgres, "ALTER TABLE users ALTER COLUMN email TYPE TEXT", "ALTER TABLE users ALTER COLUMN email TYPE VARCHAR(100)"},
		{dialect.MySQL, "ALTER TABLE users MODIFY COLUMN email TEXT", "ALTER TABLE users MODIFY COLUMN email VARCHAR(100)"},
		{dialect.MSSQL, "ALTER TABLE users ALTER COLUMN email TEXT", "ALTER TABLE users ALTER COLUMN email VARCHAR(100)"},
	}
	for _, tt := range tests {
		t.Run(string(tt.dialect), func(t *testing.T) {
			m, err := WithConfig(ForDialect(tt.dialect)).Generate(diff)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if m.Up[0] != tt.wantUp {
				t.Errorf("Up = %q, want %q", m.Up[0], tt.wantUp)
			}
			if m.Down[0] != tt.wantDown {
				t.Errorf("Down = %q, want %q", m.Down[0], tt.wantDown)
			}
		})
	}

	t.Run("sqlite degrades to comments", func(t *testing.T) {
		m, err := WithConfig(ForDialect(dialect.SQLite)).Generate(diff)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(m.Up) != 1 || !strings.HasPrefix(m.Up[0], "--") {
			t.Errorf("Up = %+v", m.Up)
		}
		m, err = WithConfig(ForDialect(dialect.SQLite).WithComments(false)).Generate(diff)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if !m.IsEmpty() {
			t.Errorf("with comments off there is nothing to emit: %+v", m)
		}
	})
}

func TestGenerateNullableAndDefaultChanges(t *testing.T) {
	diff := &compare.SchemaDiff{
		ModifiedTables: []compare.TableDiff{
			{
				TableName: "users",
				ModifiedColumns: []compare.ColumnDiff{
					{
						ColumnName:     "bio",
						NullableChange: &compare.Change[bool]{Old: true, New: false},
						DefaultChange:  &compare.Change[*string]{Old: nil, New: schema.String("''")},
					},
				},
			},
		},
	}

	m, err := New().Generate(diff)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	wantUp := []string{
		"ALTER TABLE users ALTER COLUMN bio SET NOT NULL",
		"ALTER TABLE users ALTER COLUMN bio SET DEFAULT ''",
	}
	if d := cmp.Diff(wantUp, m.Up); d != "" {
		t.Errorf("up mismatch:\n%s", d)
	}
	wantDown := []string{
		"ALTER TABLE users ALTER COLUMN bio DROP NOT NULL",
		"ALTER TABLE users ALTER COLUMN bio DROP DEFAULT",
	}
	if d := cmp.Diff(wantDown, m.Down); d != "" {
		t.Errorf("down mismatch:\n%s", d)
	}
}

func TestGenerateIndexesAndForeignKeys(t *testing.T) {
	diff := &compare.SchemaDiff{
		ModifiedTables: []compare.TableDiff{
			{
				TableName: "orders",
				AddedIndexes: []schema.IndexInfo{
					{Name: "idx_orders_user", Columns: []string{"user_id"}, Unique: false},
				},
				AddedForeignKeys: []schema.ForeignKeyInfo{
					{
						Name:              "fk_orders_user",
						Columns:           []string{"user_id"},
						ReferencedTable:   "users",
						ReferencedColumns: []string{"id"},
						OnUpdate:          schema.NoAction,
						OnDelete:          schema.Cascade,
					},
				},
			},
		},
	}

	m, err := New().Generate(diff)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	wantUp := []string{
		"CREATE INDEX idx_orders_user ON orders (user_id)",
		"ALTER TABLE orders ADD CONSTRAINT fk_orders_user FOREIGN KEY (user_id) REFERENCES users (id) ON UPDATE NO ACTION ON DELETE CASCADE",
	}
	if d := cmp.Diff(wantUp, m.Up); d != "" {
		t.Errorf("up mismatch:\n%s", d)
	}

	// MySQL drops foreign keys with their own clause and indexes by table
	m, err = WithConfig(ForDialect(dialect.MySQL)).Generate(diff)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	wantDown := []string{
		"DROP INDEX idx_orders_user ON orders",
		"ALTER TABLE orders DROP FOREIGN KEY fk_orders_user",
	}
	if d := cmp.Diff(wantDown, m.Down); d != "" {
		t.Errorf("mysql down mismatch:\n%s", d)
	}
}

func TestGeneratePrimaryKeyChange(t *testing.T) {
	diff := &compare.SchemaDiff{
		ModifiedTables: []compare.TableDiff{
			{
				TableName: "users",
				PrimaryKeyChange: &compare.PrimaryKeyChange{
					Old: &schema.PrimaryKeyInfo{Columns: []string{"id"}},
					New: &schema.PrimaryKeyInfo{Name: "users_pk", Columns: []string{"id", "tenant_id"}},
				},
			},
		},
	}

	m, err := New().Generate(diff)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	wantUp := "ALTER TABLE users DROP PRIMARY KEY;\n" +
		"ALTER TABLE users ADD CONSTRAINT users_pk PRIMARY KEY (id, tenant_id)"
	if m.Up[0] != wantUp {
		t.Errorf("Up = %q, want %q", m.Up[0], wantUp)
	}
	wantDown := "ALTER TABLE users DROP PRIMARY KEY;\n" +
		"ALTER TABLE users ADD PRIMARY KEY (id)"
	if m.Down[0] != wantDown {
		t.Errorf("Down = %q, want %q", m.Down[0], wantDown)
	}
}

func TestGenerateConstraints(t *testing.T) {
	diff := &compare.SchemaDiff{
		ModifiedTables: []compare.TableDiff{
			{
				TableName: "users",
				AddedConstraints: []schema.ConstraintInfo{
					{Name: "chk_age", Type: schema.ConstraintCheck, Definition: schema.String("age >= 0")},
					{Name: "uq_email", Type: schema.ConstraintUnique, Columns: []string{"email"}},
				},
			},
		},
	}

	m, err := New().Generate(diff)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	wantUp := []string{
		"ALTER TABLE users ADD CONSTRAINT chk_age CHECK (age >= 0)",
		"ALTER TABLE users ADD CONSTRAINT uq_email UNIQUE (email)",
	}
	if d := cmp.Diff(wantUp, m.Up); d != "" {
		t.Errorf("up mismatch:\n%s", d)
	}

	diff.ModifiedTables[0].AddedConstraints[0].Type = schema.ConstraintExclusion
	if _, err := New().Generate(diff); err == nil {
		t.Error("exclusion constraints have no portable ADD CONSTRAINT form")
	}
}

func TestGenerateViews(t *testing.T) {
	added := &compare.SchemaDiff{
		AddedViews: []schema.ViewInfo{
			{Name: "totals", Definition: schema.String("SELECT SUM(x) FROM t"), Materialized: true},
		},
	}
	m, err := New().Generate(added)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if m.Up[0] != "CREATE MATERIALIZED VIEW totals AS SELECT SUM(x) FROM t" {
		t.Errorf("Up = %q", m.Up[0])
	}
	if m.Down[0] != "DROP MATERIALIZED VIEW IF EXISTS totals" {
		t.Errorf("Down = %q", m.Down[0])
	}

	modified := &compare.SchemaDiff{
		ModifiedViews: []compare.ViewDiff{
			{
				ViewName: "totals",
				DefinitionChange: &compare.Change[*string]{
					Old: schema.String("SELECT 1"),
					New: schema.String("SELECT 2"),
				},
			},
		},
	}
	m, err = New().Generate(modified)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if m.Up[0] != "CREATE OR REPLACE VIEW totals AS SELECT 2" {
		t.Errorf("Up = %q", m.Up[0])
	}

	// SQL Server has no CREATE OR REPLACE VIEW
	m, err = WithConfig(ForDialect(dialect.MSSQL)).Generate(modified)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasPrefix(m.Up[0], "DROP VIEW IF EXISTS totals;\nCREATE VIEW totals AS SELECT 2") {
		t.Errorf("Up = %q", m.Up[0])
	}
}

func TestGenerateSequences(t *testing.T) {
	diff := &compare.SchemaDiff{
		ModifiedSequences: []compare.SequenceDiff{
			{
				SequenceName:     "users_id_seq",
				StartValueChange: &compare.Change[int64]{Old: 1, New: 1000},
				IncrementChange:  &compare.Change[int64]{Old: 1, New: 10},
			},
		},
	}

	m, err := New().Generate(diff)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if m.Up[0] != "ALTER SEQUENCE users_id_seq RESTART WITH 1000 INCREMENT BY 10" {
		t.Errorf("Up = %q", m.Up[0])
	}
	if m.Down[0] != "ALTER SEQUENCE users_id_seq RESTART WITH 1 INCREMENT BY 1" {
		t.Errorf("Down = %q", m.Down[0])
	}
}

func TestGenerateEnumTypes(t *testing.T) {
	created := &compare.SchemaDiff{
		AddedTypes: []schema.TypeInfo{
			{Name: "mood", Kind: schema.TypeEnum, Values: []string{"happy", "it's fine"}},
		},
	}
	m, err := New().Generate(created)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if m.Up[0] != "CREATE TYPE mood AS ENUM ('happy', 'it''s fine')" {
		t.Errorf("Up = %q", m.Up[0])
	}

	altered := &compare.SchemaDiff{
		ModifiedTypes: []compare.TypeDiff{
			{
				TypeName: "mood",
				ValuesChange: &compare.Change[[]string]{
					Old: []string{"happy", "sad"},
					New: []string{"happy", "sad", "ok"},
				},
			},
		},
	}
	m, err = New().Generate(altered)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if m.Up[0] != "ALTER TYPE mood ADD VALUE 'ok'" {
		t.Errorf("Up = %q", m.Up[0])
	}
	if !strings.HasPrefix(m.Down[0], "--") {
		t.Errorf("added enum values cannot be rolled back, Down = %q", m.Down[0])
	}
}

func TestGenerateTriggers(t *testing.T) {
	diff := &compare.SchemaDiff{
		AddedTriggers: []schema.TriggerInfo{
			{
				Name:       "audit_users",
				Table:      "users",
				Timing:     "after",
				Events:     []string{"insert", "update"},
				ForEach:    "row",
				Definition: schema.String("EXECUTE FUNCTION audit()"),
			},
		},
		ModifiedTriggers: []compare.TriggerDiff{
			{
				TriggerName:   "audit_users",
				TableName:     "users",
				EnabledChange: &compare.Change[bool]{Old: true, New: false},
			},
		},
	}

	m, err := New().Generate(diff)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	wantCreate := "CREATE TRIGGER audit_users AFTER INSERT OR UPDATE ON users FOR EACH ROW EXECUTE FUNCTION audit()"
	if m.Up[0] != wantCreate {
		t.Errorf("Up = %q, want %q", m.Up[0], wantCreate)
	}
	if m.Down[0] != "DROP TRIGGER IF EXISTS audit_users ON users" {
		t.Errorf("Down = %q", m.Down[0])
	}
	if m.Up[1] != "ALTER TABLE users DISABLE TRIGGER audit_users" {
		t.Errorf("Up[1] = %q", m.Up[1])
	}
	if m.Down[1] != "ALTER TABLE users ENABLE TRIGGER audit_users" {
		t.Errorf("Down[1] = %q", m.Down[1])
	}
}

func TestUpScriptTermination(t *testing.T) {
	m := Migration{Up: []string{"CREATE TABLE a ()", "CREATE TABLE b ()"}}
	want := "CREATE TABLE a ();\n\nCREATE TABLE b ();"
	if got := m.UpScript(); got != want {
		t.Errorf("UpScript = %q, want %q", got, want)
	}
}
