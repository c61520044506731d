package trigger

import (
	"fmt"
	"strings"

	"github.com/zqlz/ddlkit/internal/dialect"
)

// Validate checks a spec against d's capability matrix. Checks run in a
// fixed order and stop at the first failure: empty name, empty table, no
// events, then each capability gate, then the function-or-body rule.
func Validate(s Spec, d dialect.Dialect) error {
	c := dialect.Cap(d)

	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(s.Table) == "" {
		return ErrEmptyTable
	}
	if len(s.Events) == 0 {
		return ErrNoEvents
	}
	if s.timing() == Before && !c.SupportsBeforeTrigger {
		return ErrBeforeNotSupported
	}
	if s.timing() == InsteadOf && !c.SupportsInsteadOfTrigger {
		return ErrInsteadOfNotSupported
	}
	if s.hasEvent(Truncate) && !c.SupportsTruncateTrigger {
		return ErrTruncateNotSupported
	}
	if s.level() == Statement && !c.SupportsStatementLevel {
		return ErrStatementLevelNotSupported
	}
	if s.When != "" && !c.SupportsWhenCondition {
		return ErrWhenConditionNotSupported
	}
	if len(s.UpdateColumns) > 0 && !c.SupportsUpdateColumns {
		return ErrUpdateColumnsNotSupported
	}
	if c.RequiresFunctionForTrigger && s.Function == "" {
		return ErrMissingFunction
	}
	if !c.RequiresFunctionForTrigger && s.Body == "" {
		return ErrMissingBody
	}
	return nil
}

// BuildCreate validates s and synthesizes its CREATE TRIGGER statement
// in d's grammar.
func BuildCreate(s Spec, d dialect.Dialect) (string, error) {
	if err := Validate(s, d); err != nil {
		return "", err
	}
	switch d {
	case dialect.MySQL:
		return buildMySQL(s, d), nil
	case dialect.SQLite:
		return buildSQLite(s, d), nil
	case dialect.MSSQL:
		return buildMSSQL(s, d), nil
	default:
		return buildPostgres(s, d), nil
	}
}

func buildPostgres(s Spec, d dialect.Dialect) string {
	when := ""
	if s.When != "" {
		when = fmt.Sprintf("\n    WHEN (%s)", s.When)
	}
	return fmt.Sprintf("CREATE TRIGGER %s\n    %s %s\n    ON %s\n    %s%s\n    EXECUTE FUNCTION %s()",
		dialect.Quote(d, s.Name),
		s.timing().SQL(),
		eventsClause(s, d),
		dialect.QuoteQualified(d, s.Schema, s.Table),
		s.level().SQL(),
		when,
		s.Function)
}

// buildMySQL emits one event only; MySQL has no OR-composed event lists,
// and validation does not split a multi-event spec for the caller.
func buildMySQL(s Spec, d dialect.Dialect) string {
	return fmt.Sprintf("CREATE TRIGGER %s\n%s %s ON %s\nFOR EACH ROW\nBEGIN\n%s\nEND",
		dialect.Quote(d, s.Name),
		s.timing().SQL(),
		s.Events[0].SQL(),
		dialect.QuoteQualified(d, s.Schema, s.Table),
		s.Body)
}

func buildSQLite(s Spec, d dialect.Dialect) string {
	when := ""
	if s.When != "" {
		when = fmt.Sprintf("\n    WHEN %s", s.When)
	}
	return fmt.Sprintf("CREATE TRIGGER %s\n    %s %s\n    ON %s\n    FOR EACH ROW%s\nBEGIN\n%s\nEND",
		dialect.Quote(d, s.Name),
		s.timing().SQL(),
		eventsClause(s, d),
		dialect.QuoteQualified(d, s.Schema, s.Table),
		when,
		s.Body)
}

// buildMSSQL folds timing to AFTER or INSTEAD OF; validation has already
// rejected BEFORE.
func buildMSSQL(s Spec, d dialect.Dialect) string {
	timing := "AFTER"
	if s.timing() == InsteadOf {
		timing = "INSTEAD OF"
	}
	events := make([]string, len(s.Events))
	for i, e := range s.Events {
		events[i] = e.SQL()
	}
	return fmt.Sprintf("CREATE TRIGGER %s\n    ON %s\n    %s %s\nAS\nBEGIN\n%s\nEND",
		dialect.Quote(d, s.Name),
		dialect.QuoteQualified(d, s.Schema, s.Table),
		timing,
		strings.Join(events, ", "),
		s.Body)
}

// eventsClause joins the events with OR, expanding UPDATE to UPDATE OF
// when update columns are set.
func eventsClause(s Spec, d dialect.Dialect) string {
	parts := make([]string, 0, len(s.Events))
	for _, e := range s.Events {
		if e == Update && len(s.UpdateColumns) > 0 {
			cols := make([]string, len(s.UpdateColumns))
			for i, c := range s.UpdateColumns {
				cols[i] = dialect.Quote(d, c)
			}
			parts = append(parts, "UPDATE OF "+strings.Join(cols, ", "))
			continue
		}
		parts = append(parts, e.SQL())
	}
	return strings.Join(parts, " OR ")
}

// BuildDrop synthesizes DROP TRIGGER in d's grammar. PostgreSQL names
// the table; MySQL and SQLite qualify the trigger name with the schema;
// SQL Server has no IF EXISTS and uses an OBJECT_ID guard instead.
func BuildDrop(s Spec, d dialect.Dialect, ifExists bool) string {
	exists := ""
	if ifExists {
		exists = "IF EXISTS "
	}
	switch d {
	case dialect.Postgres:
		if s.Table == "" {
			return fmt.Sprintf("DROP TRIGGER %s%s", exists, dialect.Quote(d, s.Name))
		}
		return fmt.Sprintf("DROP TRIGGER %s%s ON %s",
			exists, dialect.Quote(d, s.Name), dialect.QuoteQualified(d, s.Schema, s.Table))
	case dialect.MSSQL:
		if ifExists {
			return fmt.Sprintf("IF OBJECT_ID(%s, 'TR') IS NOT NULL DROP TRIGGER %s",
				dialect.QuoteLiteral(qualifiedName(s)),
				dialect.QuoteQualified(d, s.Schema, s.Name))
		}
		return fmt.Sprintf("DROP TRIGGER %s", dialect.QuoteQualified(d, s.Schema, s.Name))
	default:
		return fmt.Sprintf("DROP TRIGGER %s%s",
			exists, dialect.QuoteQualified(d, s.Schema, s.Name))
	}
}

// BuildEnable synthesizes the statement that re-enables a disabled
// trigger. Only PostgreSQL and SQL Server can toggle triggers; the
// boolean is false for the rest.
func BuildEnable(s Spec, d dialect.Dialect) (string, bool) {
	return toggle(s, d, "ENABLE")
}

// BuildDisable synthesizes the statement that disables a trigger without
// dropping it.
func BuildDisable(s Spec, d dialect.Dialect) (string, bool) {
	return toggle(s, d, "DISABLE")
}

func toggle(s Spec, d dialect.Dialect, action string) (string, bool) {
	if s.Table == "" {
		return "", false
	}
	switch d {
	case dialect.Postgres:
		return fmt.Sprintf("ALTER TABLE %s %s TRIGGER %s",
			dialect.QuoteQualified(d, s.Schema, s.Table),
			action,
			dialect.Quote(d, s.Name)), true
	case dialect.MSSQL:
		return fmt.Sprintf("%s TRIGGER %s ON %s",
			action,
			dialect.QuoteQualified(d, s.Schema, s.Name),
			dialect.QuoteQualified(d, s.Schema, s.Table)), true
	}
	return "", false
}

// BuildComment synthesizes COMMENT ON TRIGGER. PostgreSQL only; an empty
// comment clears it with IS NULL.
func BuildComment(s Spec, comment string, d dialect.Dialect) (string, bool) {
	if d != dialect.Postgres {
		return "", false
	}
	value := "NULL"
	if comment != "" {
		value = dialect.QuoteLiteral(comment)
	}
	return fmt.Sprintf("COMMENT ON TRIGGER %s ON %s IS %s",
		dialect.Quote(d, s.Name),
		dialect.QuoteQualified(d, s.Schema, s.Table),
		value), true
}

func qualifiedName(s Spec) string {
	if s.Schema == "" {
		return s.Name
	}
	return s.Schema + "." + s.Name
}
