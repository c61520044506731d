// Package function validates and synthesizes CREATE FUNCTION DDL for the
// dialects that have stored functions, plus DROP, COMMENT, and owner
// changes where supported. SQLite has no stored functions and is rejected
// by validation.
package function

// ParamMode is the direction of a function parameter.
type ParamMode string

const (
	In       ParamMode = "in"
	Out      ParamMode = "out"
	InOut    ParamMode = "inout"
	Variadic ParamMode = "variadic"
)

// SQL returns the mode keyword.
func (m ParamMode) SQL() string {
	switch m {
	case Out:
		return "OUT"
	case InOut:
		return "INOUT"
	case Variadic:
		return "VARIADIC"
	default:
		return "IN"
	}
}

// output reports whether the mode carries a value back to the caller.
func (m ParamMode) output() bool {
	return m == Out || m == InOut
}

// Param is one function parameter, or one column of a RETURNS TABLE
// result. Default is emitted verbatim when non-empty.
type Param struct {
	Name     string    `json:"name" yaml:"name"`
	DataType string    `json:"data_type" yaml:"data_type"`
	Mode     ParamMode `json:"mode,omitempty" yaml:"mode,omitempty"`
	Default  string    `json:"default,omitempty" yaml:"default,omitempty"`
}

// NewParam returns an IN parameter.
func NewParam(name, dataType string) Param {
	return Param{Name: name, DataType: dataType, Mode: In}
}

// WithMode sets the parameter direction.
func (p Param) WithMode(m ParamMode) Param {
	p.Mode = m
	return p
}

// WithDefault sets the default value expression.
func (p Param) WithDefault(expr string) Param {
	p.Default = expr
	return p
}

func (p Param) mode() ParamMode {
	if p.Mode == "" {
		return In
	}
	return p.Mode
}

// Volatility classifies how a function's result may vary between calls
// with the same arguments.
type Volatility string

const (
	Immutable Volatility = "immutable"
	Stable    Volatility = "stable"
	Volatile  Volatility = "volatile"
)

// SQL returns the volatility keyword.
func (v Volatility) SQL() string {
	switch v {
	case Immutable:
		return "IMMUTABLE"
	case Stable:
		return "STABLE"
	default:
		return "VOLATILE"
	}
}

// NullBehavior says what happens when an argument is NULL.
type NullBehavior string

const (
	CalledOnNullInput      NullBehavior = "called_on_null_input"
	ReturnsNullOnNullInput NullBehavior = "returns_null_on_null_input"
	Strict                 NullBehavior = "strict"
)

// SQL returns the null-behavior clause.
func (n NullBehavior) SQL() string {
	switch n {
	case ReturnsNullOnNullInput:
		return "RETURNS NULL ON NULL INPUT"
	case Strict:
		return "STRICT"
	default:
		return "CALLED ON NULL INPUT"
	}
}

// Security says whose privileges the function runs with.
type Security string

const (
	Invoker Security = "invoker"
	Definer Security = "definer"
)

// SQL returns the security clause.
func (s Security) SQL() string {
	if s == Definer {
		return "SECURITY DEFINER"
	}
	return "SECURITY INVOKER"
}

// Language is the implementation language named in the LANGUAGE clause.
// Any value is accepted; the constants cover the common ones.
type Language string

const (
	LanguageSQL     Language = "SQL"
	LanguagePLpgSQL Language = "plpgsql"
	LanguagePython  Language = "plpython3u"
)

// Spec fully describes one stored function. Build it with New and the
// With methods; the builders copy by value. Body and parameter defaults
// are emitted verbatim.
//
// TableColumns turns the function into a RETURNS TABLE one; setting it
// also marks the function set-returning and waives ReturnType.
type Spec struct {
	Name         string       `json:"name" yaml:"name"`
	Schema       string       `json:"schema,omitempty" yaml:"schema,omitempty"`
	Parameters   []Param      `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	ReturnType   string       `json:"return_type,omitempty" yaml:"return_type,omitempty"`
	ReturnsSet   bool         `json:"returns_set,omitempty" yaml:"returns_set,omitempty"`
	TableColumns []Param      `json:"table_columns,omitempty" yaml:"table_columns,omitempty"`
	Body         string       `json:"body,omitempty" yaml:"body,omitempty"`
	Language     Language     `json:"language,omitempty" yaml:"language,omitempty"`
	Volatility   Volatility   `json:"volatility,omitempty" yaml:"volatility,omitempty"`
	NullBehavior NullBehavior `json:"null_behavior,omitempty" yaml:"null_behavior,omitempty"`
	Security     Security     `json:"security,omitempty" yaml:"security,omitempty"`
	ParallelSafe bool         `json:"parallel_safe,omitempty" yaml:"parallel_safe,omitempty"`
	Cost         int          `json:"cost,omitempty" yaml:"cost,omitempty"`
	Rows         int          `json:"rows,omitempty" yaml:"rows,omitempty"`
	Comment      string       `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// New returns a Spec for a volatile SQL-language function.
func New(name, returnType string) Spec {
	return Spec{
		Name:       name,
		ReturnType: returnType,
		Language:   LanguageSQL,
		Volatility: Volatile,
	}
}

// WithSchema sets the function's schema.
func (s Spec) WithSchema(schema string) Spec {
	s.Schema = schema
	return s
}

// WithParameter appends one parameter.
func (s Spec) WithParameter(p Param) Spec {
	s.Parameters = append(s.Parameters[:len(s.Parameters):len(s.Parameters)], p)
	return s
}

// WithParameters replaces the parameter list.
func (s Spec) WithParameters(params ...Param) Spec {
	s.Parameters = params
	return s
}

// ReturningSet marks the function as set-returning (SETOF).
func (s Spec) ReturningSet() Spec {
	s.ReturnsSet = true
	return s
}

// ReturningTable marks the function as RETURNS TABLE with the given
// columns; this implies set-returning.
func (s Spec) ReturningTable(columns ...Param) Spec {
	s.TableColumns = columns
	s.ReturnsSet = true
	return s
}

// WithBody sets the function body.
func (s Spec) WithBody(body string) Spec {
	s.Body = body
	return s
}

// WithLanguage sets the implementation language.
func (s Spec) WithLanguage(l Language) Spec {
	s.Language = l
	return s
}

// WithVolatility sets the volatility class.
func (s Spec) WithVolatility(v Volatility) Spec {
	s.Volatility = v
	return s
}

// WithNullBehavior sets the NULL argument behavior.
func (s Spec) WithNullBehavior(n NullBehavior) Spec {
	s.NullBehavior = n
	return s
}

// WithSecurity sets the security mode.
func (s Spec) WithSecurity(sec Security) Spec {
	s.Security = sec
	return s
}

// ParallelSafety marks the function as parallel safe.
func (s Spec) ParallelSafety() Spec {
	s.ParallelSafe = true
	return s
}

// WithCost sets the planner's estimated execution cost.
func (s Spec) WithCost(cost int) Spec {
	s.Cost = cost
	return s
}

// WithRows sets the planner's estimated row count for set-returning
// functions.
func (s Spec) WithRows(rows int) Spec {
	s.Rows = rows
	return s
}

// WithComment sets the function comment.
func (s Spec) WithComment(comment string) Spec {
	s.Comment = comment
	return s
}

// ParamTypes returns the parameter data types in order, the signature
// PostgreSQL needs to address an overloaded function.
func (s Spec) ParamTypes() []string {
	types := make([]string, len(s.Parameters))
	for i, p := range s.Parameters {
		types[i] = p.DataType
	}
	return types
}

func (s Spec) language() Language {
	if s.Language == "" {
		return LanguageSQL
	}
	return s.Language
}

func (s Spec) volatility() Volatility {
	if s.Volatility == "" {
		return Volatile
	}
	return s.Volatility
}

func (s Spec) nullBehavior() NullBehavior {
	if s.NullBehavior == "" {
		return CalledOnNullInput
	}
	return s.NullBehavior
}

func (s Spec) security() Security {
	if s.Security == "" {
		return Invoker
	}
	return s.Security
}
