package function

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/zqlz/ddlkit/internal/dialect"
)

// Validate checks a spec against d's capability matrix. Checks run in a
// fixed order and stop at the first failure: empty name, empty return
// type (waived for RETURNS TABLE), empty body, dialect support, each
// parameter, RETURNS TABLE support.
func Validate(s Spec, d dialect.Dialect) error {
	c := dialect.Cap(d)

	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(s.ReturnType) == "" && len(s.TableColumns) == 0 {
		return ErrEmptyReturnType
	}
	if strings.TrimSpace(s.Body) == "" {
		return ErrEmptyBody
	}
	if !c.SupportsFunctions {
		return ErrFunctionsNotSupported
	}
	for _, p := range s.Parameters {
		if strings.TrimSpace(p.Name) == "" {
			return ErrEmptyParameterName
		}
		if strings.TrimSpace(p.DataType) == "" {
			return ErrEmptyParameterType
		}
		if p.mode().output() && !c.SupportsOutParameters {
			return ErrOutParametersNotSupported
		}
	}
	if len(s.TableColumns) > 0 && !c.SupportsReturnsTable {
		return ErrReturnsTableNotSupported
	}
	return nil
}

// BuildCreate validates s and synthesizes its CREATE FUNCTION statement
// in d's grammar.
func BuildCreate(s Spec, d dialect.Dialect) (string, error) {
	if err := Validate(s, d); err != nil {
		return "", err
	}
	switch d {
	case dialect.MySQL:
		return buildMySQL(s, d), nil
	case dialect.MSSQL:
		return buildMSSQL(s, d), nil
	default:
		return buildPostgres(s, d), nil
	}
}

// BuildCreateOrReplace synthesizes the idempotent variant: CREATE OR
// REPLACE on PostgreSQL, CREATE OR ALTER on SQL Server. MySQL has
// neither and must drop first.
func BuildCreateOrReplace(s Spec, d dialect.Dialect) (string, error) {
	if err := Validate(s, d); err != nil {
		return "", err
	}
	switch d {
	case dialect.Postgres:
		sql := buildPostgres(s, d)
		return strings.Replace(sql, "CREATE FUNCTION", "CREATE OR REPLACE FUNCTION", 1), nil
	case dialect.MSSQL:
		sql := buildMSSQL(s, d)
		return strings.Replace(sql, "CREATE FUNCTION", "CREATE OR ALTER FUNCTION", 1), nil
	default:
		return "", invalidParameter(string(d) + " does not support CREATE OR REPLACE for functions")
	}
}

func buildPostgres(s Spec, d dialect.Dialect) string {
	attrs := []string{"LANGUAGE " + string(s.language())}
	if s.volatility() != Volatile {
		attrs = append(attrs, s.volatility().SQL())
	}
	if nb := s.nullBehavior(); nb == Strict || nb == ReturnsNullOnNullInput {
		attrs = append(attrs, nb.SQL())
	}
	if s.security() == Definer {
		attrs = append(attrs, s.security().SQL())
	}
	if s.ParallelSafe {
		attrs = append(attrs, "PARALLEL SAFE")
	}
	if s.Cost > 0 {
		attrs = append(attrs, "COST "+strconv.Itoa(s.Cost))
	}
	if s.Rows > 0 {
		attrs = append(attrs, "ROWS "+strconv.Itoa(s.Rows))
	}

	// Dollar quoting collides when the body itself uses $$.
	delim := "$$"
	if strings.Contains(s.Body, "$$") {
		delim = "$func$"
	}

	return fmt.Sprintf("CREATE FUNCTION %s(%s)\nRETURNS %s\n%s\nAS %s\n%s\n%s",
		dialect.QuoteQualified(d, s.Schema, s.Name),
		paramsClause(s.Parameters),
		returnsClause(s),
		strings.Join(attrs, "\n"),
		delim,
		strings.TrimSpace(s.Body),
		delim)
}

func buildMySQL(s Spec, d dialect.Dialect) string {
	deterministic := "NOT DETERMINISTIC"
	if s.volatility() == Immutable {
		deterministic = "DETERMINISTIC"
	}
	security := "SQL SECURITY INVOKER"
	if s.security() == Definer {
		security = "SQL SECURITY DEFINER"
	}
	return fmt.Sprintf("CREATE FUNCTION %s(%s)\nRETURNS %s\n%s\n%s\nBEGIN\n%s\nEND",
		dialect.QuoteQualified(d, s.Schema, s.Name),
		paramsClause(s.Parameters),
		s.ReturnType,
		deterministic,
		security,
		strings.TrimSpace(s.Body))
}

func buildMSSQL(s Spec, d dialect.Dialect) string {
	name := dialect.QuoteQualified(d, s.Schema, s.Name)
	params := mssqlParamsClause(d, s.Parameters)
	body := strings.TrimSpace(s.Body)

	if len(s.TableColumns) > 0 {
		cols := make([]string, len(s.TableColumns))
		for i, c := range s.TableColumns {
			cols[i] = dialect.Quote(d, c.Name) + " " + c.DataType
		}
		return fmt.Sprintf("CREATE FUNCTION %s(%s)\nRETURNS TABLE (%s)\nAS\nRETURN (\n%s\n)",
			name, params, strings.Join(cols, ", "), body)
	}
	if s.ReturnsSet {
		return fmt.Sprintf("CREATE FUNCTION %s(%s)\nRETURNS @result TABLE (value %s)\nAS\nBEGIN\n%s\nRETURN\nEND",
			name, params, s.ReturnType, body)
	}
	return fmt.Sprintf("CREATE FUNCTION %s(%s)\nRETURNS %s\nAS\nBEGIN\n%s\nEND",
		name, params, s.ReturnType, body)
}

func paramsClause(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		var b strings.Builder
		if m := p.mode(); m != In {
			b.WriteString(m.SQL() + " ")
		}
		b.WriteString(p.Name + " " + p.DataType)
		if p.Default != "" {
			b.WriteString(" DEFAULT " + p.Default)
		}
		parts[i] = b.String()
	}
	return strings.Join(parts, ", ")
}

// mssqlParamsClause spells parameters in T-SQL: @name type [= default]
// [OUTPUT].
func mssqlParamsClause(d dialect.Dialect, params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		var b strings.Builder
		b.WriteString("@" + p.Name + " " + p.DataType)
		if p.Default != "" {
			b.WriteString(" = " + p.Default)
		}
		if p.mode().output() {
			b.WriteString(" OUTPUT")
		}
		parts[i] = b.String()
	}
	return strings.Join(parts, ", ")
}

func returnsClause(s Spec) string {
	if len(s.TableColumns) > 0 {
		cols := make([]string, len(s.TableColumns))
		for i, c := range s.TableColumns {
			cols[i] = c.Name + " " + c.DataType
		}
		return "TABLE (" + strings.Join(cols, ", ") + ")"
	}
	if s.ReturnsSet {
		return "SETOF " + s.ReturnType
	}
	return s.ReturnType
}

// BuildDrop synthesizes DROP FUNCTION. PostgreSQL addresses overloads
// with the parameter type signature and optionally cascades; SQL Server
// guards with OBJECT_ID instead of IF EXISTS.
func BuildDrop(s Spec, d dialect.Dialect, ifExists, cascade bool) string {
	exists := ""
	if ifExists {
		exists = "IF EXISTS "
	}
	name := dialect.QuoteQualified(d, s.Schema, s.Name)

	switch d {
	case dialect.Postgres:
		casc := ""
		if cascade {
			casc = " CASCADE"
		}
		return fmt.Sprintf("DROP FUNCTION %s%s(%s)%s",
			exists, name, strings.Join(s.ParamTypes(), ", "), casc)
	case dialect.MSSQL:
		if ifExists {
			return fmt.Sprintf("IF OBJECT_ID(%s, 'FN') IS NOT NULL DROP FUNCTION %s",
				dialect.QuoteLiteral(qualifiedName(s)), name)
		}
		return "DROP FUNCTION " + name
	default:
		return fmt.Sprintf("DROP FUNCTION %s%s", exists, name)
	}
}

// BuildComment synthesizes COMMENT ON FUNCTION. PostgreSQL only. An
// empty comment falls back to the spec's own comment; when both are
// empty the statement clears it with IS NULL.
func BuildComment(s Spec, comment string, d dialect.Dialect) (string, bool) {
	if d != dialect.Postgres {
		return "", false
	}
	if comment == "" {
		comment = s.Comment
	}
	value := "NULL"
	if comment != "" {
		value = dialect.QuoteLiteral(comment)
	}
	return fmt.Sprintf("COMMENT ON FUNCTION %s(%s) IS %s",
		dialect.QuoteQualified(d, s.Schema, s.Name),
		strings.Join(s.ParamTypes(), ", "),
		value), true
}

// BuildAlterOwner synthesizes ALTER FUNCTION ... OWNER TO. PostgreSQL
// only.
func BuildAlterOwner(s Spec, owner string, d dialect.Dialect) (string, bool) {
	if d != dialect.Postgres {
		return "", false
	}
	return fmt.Sprintf("ALTER FUNCTION %s(%s) OWNER TO %s",
		dialect.QuoteQualified(d, s.Schema, s.Name),
		strings.Join(s.ParamTypes(), ", "),
		dialect.Quote(d, owner)), true
}

func qualifiedName(s Spec) string {
	if s.Schema == "" {
		return s.Name
	}
	return s.Schema + "." + s.Name
}
