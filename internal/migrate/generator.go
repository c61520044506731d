package migrate

import (
	"fmt"
	"strings"

	"github.com/zqlz/ddlkit/internal/compare"
	"github.com/zqlz/ddlkit/internal/dialect"
	"github.com/zqlz/ddlkit/internal/schema"
)

// Generator produces migrations from schema diffs under one Config.
type Generator struct {
	config Config
}

// New returns a generator with the default configuration.
func New() *Generator {
	return &Generator{config: DefaultConfig()}
}

// WithConfig returns a generator using the given configuration.
func WithConfig(cfg Config) *Generator {
	return &Generator{config: cfg}
}

// Config returns the generator's configuration.
func (g *Generator) Config() Config {
	return g.config
}

func (g *Generator) quote(name string) string {
	return dialect.Quote(g.config.Dialect, name)
}

func (g *Generator) qualified(schemaName, name string) string {
	return dialect.QuoteQualified(g.config.Dialect, schemaName, name)
}

func (g *Generator) ifExists() string {
	if g.config.UseIfExists {
		return "IF EXISTS "
	}
	return ""
}

func (g *Generator) cascade() string {
	if g.config.UseCascade && dialect.Cap(g.config.Dialect).SupportsCascade {
		return " CASCADE"
	}
	return ""
}

// Generate builds a migration from the diff. Statement order follows
// object dependencies: types, sequences, tables, views, functions,
// procedures, triggers. An empty diff yields an empty migration.
func (g *Generator) Generate(diff *compare.SchemaDiff) (Migration, error) {
	var m Migration
	if diff.IsEmpty() {
		return m, nil
	}

	for i := range diff.AddedTypes {
		m.add(g.createType(&diff.AddedTypes[i]), g.dropTypeSQL(&diff.AddedTypes[i]))
	}
	for i := range diff.ModifiedTypes {
		up, down := g.alterType(&diff.ModifiedTypes[i])
		if up != "" {
			m.add(up, down)
		}
	}
	for i := range diff.RemovedTypes {
		m.add(g.dropTypeSQL(&diff.RemovedTypes[i]), g.createType(&diff.RemovedTypes[i]))
	}

	for i := range diff.AddedSequences {
		m.add(g.createSequence(&diff.AddedSequences[i]), g.dropSequenceSQL(&diff.AddedSequences[i]))
	}
	for i := range diff.ModifiedSequences {
		up, down := g.alterSequence(&diff.ModifiedSequences[i])
		m.add(up, down)
	}
	for i := range diff.RemovedSequences {
		m.add(g.dropSequenceSQL(&diff.RemovedSequences[i]), g.createSequence(&diff.RemovedSequences[i]))
	}

	for i := range diff.AddedTables {
		m.add(g.createTable(&diff.AddedTables[i]), g.dropTableSQL(&diff.AddedTables[i]))
	}
	for i := range diff.ModifiedTables {
		alter, err := g.alterTable(&diff.ModifiedTables[i])
		if err != nil {
			return Migration{}, err
		}
		m.merge(alter)
	}
	for i := range diff.RemovedTables {
		m.add(g.dropTableSQL(&diff.RemovedTables[i]), g.createTable(&diff.RemovedTables[i]))
	}

	for i := range diff.AddedViews {
		m.add(g.createView(&diff.AddedViews[i]), g.dropViewSQL(&diff.AddedViews[i]))
	}
	for i := range diff.ModifiedViews {
		up, down := g.alterView(&diff.ModifiedViews[i])
		if up != "" {
			m.add(up, down)
		}
	}
	for i := range diff.RemovedViews {
		m.add(g.dropViewSQL(&diff.RemovedViews[i]), g.createView(&diff.RemovedViews[i]))
	}

	for i := range diff.AddedFunctions {
		m.add(g.createFunction(&diff.AddedFunctions[i]), g.dropFunctionSQL(&diff.AddedFunctions[i]))
	}
	for i := range diff.RemovedFunctions {
		m.add(g.dropFunctionSQL(&diff.RemovedFunctions[i]), g.createFunction(&diff.RemovedFunctions[i]))
	}

	for i := range diff.AddedProcedures {
		m.add(g.createProcedure(&diff.AddedProcedures[i]), g.dropProcedureSQL(&diff.AddedProcedures[i]))
	}
	for i := range diff.RemovedProcedures {
		m.add(g.dropProcedureSQL(&diff.RemovedProcedures[i]), g.createProcedure(&diff.RemovedProcedures[i]))
	}

	for i := range diff.AddedTriggers {
		m.add(g.createTrigger(&diff.AddedTriggers[i]), g.dropTriggerSQL(&diff.AddedTriggers[i]))
	}
	for i := range diff.ModifiedTriggers {
		up, down := g.alterTrigger(&diff.ModifiedTriggers[i])
		if up != "" {
			m.add(up, down)
		}
	}
	for i := range diff.RemovedTriggers {
		m.add(g.dropTriggerSQL(&diff.RemovedTriggers[i]), g.createTrigger(&diff.RemovedTriggers[i]))
	}

	return m, nil
}

// Table statements

func (g *Generator) createTable(t *schema.TableInfo) string {
	name := g.qualified(t.Schema, t.Name)
	if len(t.Columns) == 0 {
		return fmt.Sprintf("CREATE TABLE %s ()", name)
	}

	defs := make([]string, 0, len(t.Columns)+1)
	for i := range t.Columns {
		defs = append(defs, "  "+g.columnDefinition(&t.Columns[i]))
	}
	if t.PrimaryKey != nil {
		pk := "  "
		if t.PrimaryKey.Name != "" {
			pk += "CONSTRAINT " + g.quote(t.PrimaryKey.Name) + " "
		}
		pk += "PRIMARY KEY (" + g.quoteList(t.PrimaryKey.Columns) + ")"
		defs = append(defs, pk)
	}
	return fmt.Sprintf("CREATE TABLE %s (\n%s\n)", name, strings.Join(defs, ",\n"))
}

func (g *Generator) dropTableSQL(t *schema.TableInfo) string {
	return fmt.Sprintf("DROP TABLE %s%s%s", g.ifExists(), g.qualified(t.Schema, t.Name), g.cascade())
}

func (g *Generator) alterTable(td *compare.TableDiff) (Migration, error) {
	var m Migration
	table := g.qualified(td.Schema, td.TableName)

	for i := range td.AddedColumns {
		col := &td.AddedColumns[i]
		m.add(
			fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", table, g.columnDefinition(col)),
			fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s%s", table, g.ifExists(), g.quote(col.Name)),
		)
	}
	for i := range td.ModifiedColumns {
		m.merge(g.alterColumn(table, &td.ModifiedColumns[i]))
	}
	for i := range td.RemovedColumns {
		col := &td.RemovedColumns[i]
		m.add(
			fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s%s", table, g.ifExists(), g.quote(col.Name)),
			fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", table, g.columnDefinition(col)),
		)
	}

	for i := range td.AddedIndexes {
		idx := &td.AddedIndexes[i]
		m.add(g.createIndex(table, idx), g.dropIndexSQL(table, idx.Name))
	}
	for i := range td.ModifiedIndexes {
		id := &td.ModifiedIndexes[i]
		m.add(
			g.dropIndexSQL(table, id.Old.Name)+";\n"+g.createIndex(table, &id.New),
			g.dropIndexSQL(table, id.New.Name)+";\n"+g.createIndex(table, &id.Old),
		)
	}
	for i := range td.RemovedIndexes {
		idx := &td.RemovedIndexes[i]
		m.add(g.dropIndexSQL(table, idx.Name), g.createIndex(table, idx))
	}

	for i := range td.AddedForeignKeys {
		fk := &td.AddedForeignKeys[i]
		m.add(g.addForeignKey(table, fk), g.dropForeignKeySQL(table, fk.Name))
	}
	for i := range td.ModifiedForeignKeys {
		// The diff carries field deltas, not the full key, so a changed
		// key can only be dropped; recreating it needs the source info.
		fd := &td.ModifiedForeignKeys[i]
		m.add(g.dropForeignKeySQL(table, fd.ForeignKeyName), g.dropForeignKeySQL(table, fd.ForeignKeyName))
	}
	for i := range td.RemovedForeignKeys {
		fk := &td.RemovedForeignKeys[i]
		m.add(g.dropForeignKeySQL(table, fk.Name), g.addForeignKey(table, fk))
	}

	for i := range td.AddedConstraints {
		con := &td.AddedConstraints[i]
		sql, err := g.constraintSQL(con)
		if err != nil {
			return Migration{}, err
		}
		m.add(
			fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s", table, g.quote(con.Name), sql),
			g.dropConstraintSQL(table, con.Name),
		)
	}
	for i := range td.RemovedConstraints {
		con := &td.RemovedConstraints[i]
		sql, err := g.constraintSQL(con)
		if err != nil {
			return Migration{}, err
		}
		m.add(
			g.dropConstraintSQL(table, con.Name),
			fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s %s", table, g.quote(con.Name), sql),
		)
	}

	if td.PrimaryKeyChange != nil {
		m.merge(g.primaryKeyChange(table, td.PrimaryKeyChange))
	}

	return m, nil
}

func (g *Generator) alterColumn(table string, cd *compare.ColumnDiff) Migration {
	var m Migration
	col := g.quote(cd.ColumnName)
	d := g.config.Dialect

	if ch := cd.TypeChange; ch != nil {
		if dialect.Cap(d).SupportsAlterColumnType {
			m.add(g.alterColumnType(table, col, ch.New), g.alterColumnType(table, col, ch.Old))
		} else if g.config.IncludeComments {
			m.add(
				fmt.Sprintf("-- SQLite cannot alter the type of %s; recreate the table to move to %s", col, ch.New),
				fmt.Sprintf("-- SQLite cannot alter the type of %s; recreate the table to move to %s", col, ch.Old),
			)
		}
	}

	if ch := cd.NullableChange; ch != nil {
		switch d {
		case dialect.Postgres:
			set := fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s SET NOT NULL", table, col)
			drop := fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s DROP NOT NULL", table, col)
			if ch.New {
				m.add(drop, set)
			} else {
				m.add(set, drop)
			}
		default:
			if g.config.IncludeComments {
				m.add(
					fmt.Sprintf("-- %s nullability change on %s needs the full column definition", d, col),
					fmt.Sprintf("-- %s nullability change on %s needs the full column definition", d, col),
				)
			}
		}
	}

	if ch := cd.DefaultChange; ch != nil {
		switch d {
		case dialect.Postgres, dialect.MSSQL:
			m.add(g.setDefault(table, col, ch.New), g.setDefault(table, col, ch.Old))
		default:
			if g.config.IncludeComments {
				m.add(
					fmt.Sprintf("-- default change on %s is not expressible as ALTER COLUMN in %s", col, d),
					fmt.Sprintf("-- default change on %s is not expressible as ALTER COLUMN in %s", col, d),
				)
			}
		}
	}

	return m
}

func (g *Generator) alterColumnType(table, col, typ string) string {
	switch g.config.Dialect {
	case dialect.MySQL:
		return fmt.Sprintf("ALTER TABLE %s MODIFY COLUMN %s %s", table, col, typ)
	case dialect.MSSQL:
		return fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s %s", table, col, typ)
	default:
		return fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s TYPE %s", table, col, typ)
	}
}

func (g *Generator) setDefault(table, col string, value *string) string {
	if value == nil {
		return fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s DROP DEFAULT", table, col)
	}
	return fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s SET DEFAULT %s", table, col, *value)
}

func (g *Generator) columnDefinition(col *schema.ColumnInfo) string {
	def := g.quote(col.Name) + " " + col.DataType

	if col.MaxLength != nil {
		def += fmt.Sprintf("(%d)", *col.MaxLength)
	} else if col.Precision != nil || col.Scale != nil {
		precision := 0
		if col.Precision != nil {
			precision = *col.Precision
		}
		if col.Scale != nil {
			def += fmt.Sprintf("(%d, %d)", precision, *col.Scale)
		} else {
			def += fmt.Sprintf("(%d)", precision)
		}
	}

	if !col.Nullable {
		def += " NOT NULL"
	}
	if col.Default != nil {
		def += " DEFAULT " + *col.Default
	}
	return def
}

// Index statements

func (g *Generator) createIndex(table string, idx *schema.IndexInfo) string {
	unique := ""
	if idx.Unique {
		unique = "UNIQUE "
	}
	return fmt.Sprintf("CREATE %sINDEX %s ON %s (%s)",
		unique, g.quote(idx.Name), table, g.quoteList(idx.Columns))
}

func (g *Generator) dropIndexSQL(table, name string) string {
	if g.config.Dialect == dialect.MySQL {
		return fmt.Sprintf("DROP INDEX %s ON %s", g.quote(name), table)
	}
	return fmt.Sprintf("DROP INDEX %s%s", g.ifExists(), g.quote(name))
}

// Foreign key and constraint statements

func (g *Generator) addForeignKey(table string, fk *schema.ForeignKeyInfo) string {
	onUpdate := fk.OnUpdate
	if onUpdate == "" {
		onUpdate = schema.NoAction
	}
	onDelete := fk.OnDelete
	if onDelete == "" {
		onDelete = schema.NoAction
	}
	return fmt.Sprintf(
		"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s) ON UPDATE %s ON DELETE %s",
		table,
		g.quote(fk.Name),
		g.quoteList(fk.Columns),
		g.qualified(fk.ReferencedSchema, fk.ReferencedTable),
		g.quoteList(fk.ReferencedColumns),
		onUpdate,
		onDelete,
	)
}

func (g *Generator) dropForeignKeySQL(table, name string) string {
	if g.config.Dialect == dialect.MySQL {
		return fmt.Sprintf("ALTER TABLE %s DROP FOREIGN KEY %s", table, g.quote(name))
	}
	return g.dropConstraintSQL(table, name)
}

func (g *Generator) dropConstraintSQL(table, name string) string {
	return fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT %s%s", table, g.ifExists(), g.quote(name))
}

func (g *Generator) constraintSQL(con *schema.ConstraintInfo) (string, error) {
	switch con.Type {
	case schema.ConstraintCheck:
		def := "true"
		if con.Definition != nil {
			def = *con.Definition
		}
		return "CHECK (" + def + ")", nil
	case schema.ConstraintUnique:
		return "UNIQUE (" + g.quoteList(con.Columns) + ")", nil
	}
	return "", unsupported("constraint type %s", con.Type)
}

func (g *Generator) primaryKeyChange(table string, change *compare.PrimaryKeyChange) Migration {
	var m Migration
	drop := fmt.Sprintf("ALTER TABLE %s DROP PRIMARY KEY", table)

	switch {
	case change.IsAdded():
		m.add(g.addPrimaryKey(table, change.New), drop)
	case change.IsRemoved():
		m.add(drop, g.addPrimaryKey(table, change.Old))
	case change.IsModified():
		m.add(
			drop+";\n"+g.addPrimaryKey(table, change.New),
			drop+";\n"+g.addPrimaryKey(table, change.Old),
		)
	}
	return m
}

func (g *Generator) addPrimaryKey(table string, pk *schema.PrimaryKeyInfo) string {
	name := ""
	if pk.Name != "" {
		name = "CONSTRAINT " + g.quote(pk.Name) + " "
	}
	return fmt.Sprintf("ALTER TABLE %s ADD %sPRIMARY KEY (%s)", table, name, g.quoteList(pk.Columns))
}

// View statements

func (g *Generator) createView(v *schema.ViewInfo) string {
	mat := ""
	if v.Materialized {
		mat = "MATERIALIZED "
	}
	return fmt.Sprintf("CREATE %sVIEW %s AS %s",
		mat, g.qualified(v.Schema, v.Name), definitionOr(v.Definition, "SELECT 1"))
}

func (g *Generator) dropViewSQL(v *schema.ViewInfo) string {
	mat := ""
	if v.Materialized {
		mat = "MATERIALIZED "
	}
	return fmt.Sprintf("DROP %sVIEW %s%s%s",
		mat, g.ifExists(), g.qualified(v.Schema, v.Name), g.cascade())
}

func (g *Generator) alterView(vd *compare.ViewDiff) (up, down string) {
	if vd.DefinitionChange == nil {
		return "", ""
	}
	view := g.qualified(vd.Schema, vd.ViewName)
	newDef := definitionOr(vd.DefinitionChange.New, "SELECT 1")
	oldDef := definitionOr(vd.DefinitionChange.Old, "SELECT 1")

	if dialect.Cap(g.config.Dialect).SupportsCreateOrReplaceView {
		return fmt.Sprintf("CREATE OR REPLACE VIEW %s AS %s", view, newDef),
			fmt.Sprintf("CREATE OR REPLACE VIEW %s AS %s", view, oldDef)
	}
	return fmt.Sprintf("DROP VIEW IF EXISTS %s;\nCREATE VIEW %s AS %s", view, view, newDef),
		fmt.Sprintf("DROP VIEW IF EXISTS %s;\nCREATE VIEW %s AS %s", view, view, oldDef)
}

// Sequence statements

func (g *Generator) createSequence(s *schema.SequenceInfo) string {
	return fmt.Sprintf("CREATE SEQUENCE %s START WITH %d INCREMENT BY %d MINVALUE %d MAXVALUE %d",
		g.qualified(s.Schema, s.Name), s.StartValue, s.IncrementBy, s.MinValue, s.MaxValue)
}

func (g *Generator) dropSequenceSQL(s *schema.SequenceInfo) string {
	return fmt.Sprintf("DROP SEQUENCE %s%s", g.ifExists(), g.qualified(s.Schema, s.Name))
}

func (g *Generator) alterSequence(sd *compare.SequenceDiff) (up, down string) {
	name := g.qualified(sd.Schema, sd.SequenceName)
	upParts := []string{"ALTER SEQUENCE " + name}
	downParts := []string{"ALTER SEQUENCE " + name}

	if ch := sd.StartValueChange; ch != nil {
		upParts = append(upParts, fmt.Sprintf("RESTART WITH %d", ch.New))
		downParts = append(downParts, fmt.Sprintf("RESTART WITH %d", ch.Old))
	}
	if ch := sd.IncrementChange; ch != nil {
		upParts = append(upParts, fmt.Sprintf("INCREMENT BY %d", ch.New))
		downParts = append(downParts, fmt.Sprintf("INCREMENT BY %d", ch.Old))
	}
	if ch := sd.MinValueChange; ch != nil {
		upParts = append(upParts, fmt.Sprintf("MINVALUE %d", ch.New))
		downParts = append(downParts, fmt.Sprintf("MINVALUE %d", ch.Old))
	}
	if ch := sd.MaxValueChange; ch != nil {
		upParts = append(upParts, fmt.Sprintf("MAXVALUE %d", ch.New))
		downParts = append(downParts, fmt.Sprintf("MAXVALUE %d", ch.Old))
	}
	return strings.Join(upParts, " "), strings.Join(downParts, " ")
}

// Type statements

func (g *Generator) createType(t *schema.TypeInfo) string {
	name := g.qualified(t.Schema, t.Name)
	if t.Kind == schema.TypeEnum {
		values := make([]string, len(t.Values))
		for i, v := range t.Values {
			values[i] = dialect.QuoteLiteral(v)
		}
		return fmt.Sprintf("CREATE TYPE %s AS ENUM (%s)", name, strings.Join(values, ", "))
	}
	if t.Definition != nil {
		return fmt.Sprintf("CREATE TYPE %s AS %s", name, *t.Definition)
	}
	return "CREATE TYPE " + name
}

func (g *Generator) dropTypeSQL(t *schema.TypeInfo) string {
	return fmt.Sprintf("DROP TYPE %s%s", g.ifExists(), g.qualified(t.Schema, t.Name))
}

// alterType handles enum value additions. Values cannot be removed from
// an enum in place, so removals surface as comments on the down side.
func (g *Generator) alterType(td *compare.TypeDiff) (up, down string) {
	if td.ValuesChange == nil {
		return "", ""
	}
	name := g.qualified(td.Schema, td.TypeName)

	oldSet := make(map[string]bool, len(td.ValuesChange.Old))
	for _, v := range td.ValuesChange.Old {
		oldSet[v] = true
	}
	newSet := make(map[string]bool, len(td.ValuesChange.New))
	for _, v := range td.ValuesChange.New {
		newSet[v] = true
	}

	var ups []string
	for _, v := range td.ValuesChange.New {
		if !oldSet[v] {
			ups = append(ups, fmt.Sprintf("ALTER TYPE %s ADD VALUE %s", name, dialect.QuoteLiteral(v)))
		}
	}
	var downs []string
	for _, v := range td.ValuesChange.Old {
		if !newSet[v] && g.config.IncludeComments {
			downs = append(downs, fmt.Sprintf("-- cannot remove enum value %s in place", dialect.QuoteLiteral(v)))
		}
	}
	if len(downs) == 0 && g.config.IncludeComments {
		downs = append(downs, "-- added enum values cannot be rolled back")
	}
	return strings.Join(ups, ";\n"), strings.Join(downs, ";\n")
}

// Function and procedure statements

func (g *Generator) createFunction(f *schema.FunctionInfo) string {
	return fmt.Sprintf("CREATE OR REPLACE FUNCTION %s RETURNS %s LANGUAGE %s AS $$%s$$",
		g.qualified(f.Schema, f.Name), f.ReturnType, f.Language,
		definitionOr(f.Definition, "BEGIN END"))
}

func (g *Generator) dropFunctionSQL(f *schema.FunctionInfo) string {
	return fmt.Sprintf("DROP FUNCTION %s%s", g.ifExists(), g.qualified(f.Schema, f.Name))
}

func (g *Generator) createProcedure(p *schema.ProcedureInfo) string {
	return fmt.Sprintf("CREATE OR REPLACE PROCEDURE %s LANGUAGE %s AS $$%s$$",
		g.qualified(p.Schema, p.Name), p.Language,
		definitionOr(p.Definition, "BEGIN END"))
}

func (g *Generator) dropProcedureSQL(p *schema.ProcedureInfo) string {
	return fmt.Sprintf("DROP PROCEDURE %s%s", g.ifExists(), g.qualified(p.Schema, p.Name))
}

// Trigger statements

func (g *Generator) createTrigger(t *schema.TriggerInfo) string {
	forEach := "FOR EACH ROW"
	if strings.EqualFold(t.ForEach, "statement") {
		forEach = "FOR EACH STATEMENT"
	}
	events := make([]string, len(t.Events))
	for i, e := range t.Events {
		events[i] = strings.ToUpper(e)
	}
	return fmt.Sprintf("CREATE TRIGGER %s %s %s ON %s %s %s",
		g.quote(t.Name),
		strings.ToUpper(t.Timing),
		strings.Join(events, " OR "),
		g.qualified(t.Schema, t.Table),
		forEach,
		definitionOr(t.Definition, "EXECUTE FUNCTION trigger_fn()"))
}

func (g *Generator) dropTriggerSQL(t *schema.TriggerInfo) string {
	return fmt.Sprintf("DROP TRIGGER %s%s ON %s",
		g.ifExists(), g.quote(t.Name), g.qualified(t.Schema, t.Table))
}

// alterTrigger toggles the enabled flag; a definition change has no
// portable ALTER form and degrades to a comment.
func (g *Generator) alterTrigger(td *compare.TriggerDiff) (up, down string) {
	trigger := g.quote(td.TriggerName)
	table := g.qualified(td.Schema, td.TableName)

	if ch := td.EnabledChange; ch != nil {
		toggle := func(enabled bool) string {
			if enabled {
				return fmt.Sprintf("ALTER TABLE %s ENABLE TRIGGER %s", table, trigger)
			}
			return fmt.Sprintf("ALTER TABLE %s DISABLE TRIGGER %s", table, trigger)
		}
		return toggle(ch.New), toggle(ch.Old)
	}
	if !g.config.IncludeComments {
		return "", ""
	}
	note := fmt.Sprintf("-- trigger %s definition changed; drop and recreate it by hand", trigger)
	return note, note
}

func (g *Generator) quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = g.quote(n)
	}
	return strings.Join(quoted, ", ")
}

func definitionOr(def *string, fallback string) string {
	if def == nil {
		return fallback
	}
	return *def
}
