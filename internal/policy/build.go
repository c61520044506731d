package policy

import (
	"fmt"
	"strings"

	"github.com/zqlz/ddlkit/internal/dialect"
)

// Validate checks a spec against d and the command's expression rules.
// Checks run in a fixed order and stop at the first failure: empty name,
// empty table, dialect support, command rules, blank expressions.
func Validate(s Spec, d dialect.Dialect) error {
	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(s.Table) == "" {
		return ErrEmptyTable
	}
	if !dialect.Cap(d).SupportsPolicies {
		return notSupported(string(d))
	}

	switch s.command() {
	case Insert:
		// INSERT policies filter new rows only; USING never applies.
		if s.Check == nil {
			return ErrInsertRequiresCheck
		}
	case Select, Delete:
		if s.Using == nil {
			return ErrNoExpression
		}
		if s.Check != nil {
			return ErrSelectDeleteNoCheck
		}
	default:
		// UPDATE and ALL accept either or both.
		if s.Using == nil && s.Check == nil {
			return ErrNoExpression
		}
	}

	if s.Using != nil && strings.TrimSpace(*s.Using) == "" {
		return ErrEmptyExpression
	}
	if s.Check != nil && strings.TrimSpace(*s.Check) == "" {
		return ErrEmptyExpression
	}
	return nil
}

// BuildCreate validates s and synthesizes its CREATE POLICY statement.
// Default clauses are omitted: a permissive policy has no AS clause and
// an ALL policy has no FOR clause. Expressions appear verbatim.
func BuildCreate(s Spec, d dialect.Dialect) (string, error) {
	if err := Validate(s, d); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "CREATE POLICY %s ON %s",
		dialect.Quote(d, s.Name),
		dialect.QuoteQualified(d, s.Schema, s.Table))

	if s.policyType() != Permissive {
		b.WriteString(" " + s.policyType().SQL())
	}
	if s.command() != All {
		b.WriteString(" FOR " + s.command().SQL())
	}
	b.WriteString(" TO " + rolesClause(d, s.Roles))
	if s.Using != nil {
		fmt.Fprintf(&b, " USING (%s)", *s.Using)
	}
	if s.Check != nil {
		fmt.Fprintf(&b, " WITH CHECK (%s)", *s.Check)
	}
	return b.String(), nil
}

// BuildDrop synthesizes DROP POLICY for the spec's name and table.
func BuildDrop(s Spec, d dialect.Dialect, ifExists bool) (string, error) {
	if !dialect.Cap(d).SupportsPolicies {
		return "", notSupported(string(d))
	}
	exists := ""
	if ifExists {
		exists = "IF EXISTS "
	}
	return fmt.Sprintf("DROP POLICY %s%s ON %s",
		exists,
		dialect.Quote(d, s.Name),
		dialect.QuoteQualified(d, s.Schema, s.Table)), nil
}

// BuildRename synthesizes ALTER POLICY ... RENAME TO.
func BuildRename(s Spec, newName string, d dialect.Dialect) (string, error) {
	if !dialect.Cap(d).SupportsPolicies {
		return "", notSupported(string(d))
	}
	return fmt.Sprintf("ALTER POLICY %s ON %s RENAME TO %s",
		dialect.Quote(d, s.Name),
		dialect.QuoteQualified(d, s.Schema, s.Table),
		dialect.Quote(d, newName)), nil
}

// BuildAlterRoles synthesizes ALTER POLICY ... TO with a new role list.
// An empty list grants to PUBLIC.
func BuildAlterRoles(s Spec, roles []string, d dialect.Dialect) (string, error) {
	if !dialect.Cap(d).SupportsPolicies {
		return "", notSupported(string(d))
	}
	return fmt.Sprintf("ALTER POLICY %s ON %s TO %s",
		dialect.Quote(d, s.Name),
		dialect.QuoteQualified(d, s.Schema, s.Table),
		rolesClause(d, roles)), nil
}

// BuildAlterUsing synthesizes ALTER POLICY ... USING. A nil expression
// resets the policy to USING (true), since the clause cannot be removed.
func BuildAlterUsing(s Spec, expr *string, d dialect.Dialect) (string, error) {
	if !dialect.Cap(d).SupportsPolicies {
		return "", notSupported(string(d))
	}
	e := "true"
	if expr != nil {
		e = *expr
	}
	return fmt.Sprintf("ALTER POLICY %s ON %s USING (%s)",
		dialect.Quote(d, s.Name),
		dialect.QuoteQualified(d, s.Schema, s.Table), e), nil
}

// BuildAlterCheck synthesizes ALTER POLICY ... WITH CHECK. A nil
// expression resets the policy to WITH CHECK (true).
func BuildAlterCheck(s Spec, expr *string, d dialect.Dialect) (string, error) {
	if !dialect.Cap(d).SupportsPolicies {
		return "", notSupported(string(d))
	}
	e := "true"
	if expr != nil {
		e = *expr
	}
	return fmt.Sprintf("ALTER POLICY %s ON %s WITH CHECK (%s)",
		dialect.Quote(d, s.Name),
		dialect.QuoteQualified(d, s.Schema, s.Table), e), nil
}

// BuildEnableRLS synthesizes the ALTER TABLE statement that turns row
// security on. Policies have no effect until this runs.
func BuildEnableRLS(table, schema string, d dialect.Dialect) (string, error) {
	return rlsToggle(table, schema, d, "ENABLE")
}

// BuildDisableRLS synthesizes the ALTER TABLE statement that turns row
// security off.
func BuildDisableRLS(table, schema string, d dialect.Dialect) (string, error) {
	return rlsToggle(table, schema, d, "DISABLE")
}

// BuildForceRLS makes the table owner subject to policies too; owners
// bypass row security otherwise.
func BuildForceRLS(table, schema string, d dialect.Dialect) (string, error) {
	return rlsToggle(table, schema, d, "FORCE")
}

// BuildNoForceRLS restores the default owner bypass.
func BuildNoForceRLS(table, schema string, d dialect.Dialect) (string, error) {
	return rlsToggle(table, schema, d, "NO FORCE")
}

func rlsToggle(table, schema string, d dialect.Dialect, verb string) (string, error) {
	if !dialect.Cap(d).SupportsPolicies {
		return "", notSupported(string(d))
	}
	return fmt.Sprintf("ALTER TABLE %s %s ROW LEVEL SECURITY",
		dialect.QuoteQualified(d, schema, table), verb), nil
}

// RLSStatusQuery returns a catalog query reporting whether row security
// is enabled and forced on a table.
func RLSStatusQuery(table, schema string) string {
	return fmt.Sprintf(
		"SELECT c.relrowsecurity, c.relforcerowsecurity "+
			"FROM pg_class c "+
			"JOIN pg_namespace n ON c.relnamespace = n.oid "+
			"WHERE %sc.relname = %s",
		schemaClause(schema), dialect.QuoteLiteral(table))
}

// ListPoliciesQuery returns a catalog query listing every policy on a
// table with its command, type, expressions, and roles.
func ListPoliciesQuery(table, schema string) string {
	return fmt.Sprintf(
		"SELECT pol.polname AS name, "+
			"CASE pol.polcmd "+
			"WHEN 'r' THEN 'SELECT' "+
			"WHEN 'a' THEN 'INSERT' "+
			"WHEN 'w' THEN 'UPDATE' "+
			"WHEN 'd' THEN 'DELETE' "+
			"WHEN '*' THEN 'ALL' "+
			"END AS command, "+
			"CASE WHEN pol.polpermissive THEN 'PERMISSIVE' ELSE 'RESTRICTIVE' END AS type, "+
			"pg_get_expr(pol.polqual, pol.polrelid) AS using_expr, "+
			"pg_get_expr(pol.polwithcheck, pol.polrelid) AS check_expr, "+
			"ARRAY(SELECT rolname FROM pg_roles WHERE oid = ANY(pol.polroles)) AS roles "+
			"FROM pg_policy pol "+
			"JOIN pg_class c ON pol.polrelid = c.oid "+
			"JOIN pg_namespace n ON c.relnamespace = n.oid "+
			"WHERE %sc.relname = %s "+
			"ORDER BY pol.polname",
		schemaClause(schema), dialect.QuoteLiteral(table))
}

// ListRLSTablesQuery returns a catalog query listing tables with row
// security enabled, in schema when given, otherwise across all user
// schemas.
func ListRLSTablesQuery(schema string) string {
	where := "n.nspname NOT IN ('pg_catalog', 'information_schema')"
	if schema != "" {
		where = "n.nspname = " + dialect.QuoteLiteral(schema)
	}
	return fmt.Sprintf(
		"SELECT n.nspname AS schema, c.relname AS table, "+
			"c.relrowsecurity AS rls_enabled, "+
			"c.relforcerowsecurity AS rls_forced "+
			"FROM pg_class c "+
			"JOIN pg_namespace n ON c.relnamespace = n.oid "+
			"WHERE c.relkind = 'r' AND %s "+
			"AND c.relrowsecurity = true "+
			"ORDER BY n.nspname, c.relname",
		where)
}

func schemaClause(schema string) string {
	if schema == "" {
		return ""
	}
	return fmt.Sprintf("n.nspname = %s AND ", dialect.QuoteLiteral(schema))
}

func rolesClause(d dialect.Dialect, roles []string) string {
	if len(roles) == 0 {
		return "PUBLIC"
	}
	quoted := make([]string, len(roles))
	for i, r := range roles {
		quoted[i] = dialect.Quote(d, r)
	}
	return strings.Join(quoted, ", ")
}
