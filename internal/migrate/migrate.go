// Package migrate turns a schema diff into paired up and down SQL
// scripts. Statements are generated in dependency order: types first,
// then sequences, tables, views, functions, procedures, and triggers,
// so created objects exist before anything references them. Every up
// statement gets a matching down statement that restores the previous
// shape as far as the dialect allows; where a dialect cannot express
// the reverse, the down side degrades to an explanatory comment.
package migrate

import (
	"fmt"

	"github.com/zqlz/ddlkit/internal/dialect"
)

// Code identifies a migration generation failure.
type Code int

const (
	// CodeUnsupportedOperation means the diff contains an object the
	// target dialect has no DDL for.
	CodeUnsupportedOperation Code = iota + 1
	// CodeInvalidElement means a diff entry is missing required data.
	CodeInvalidElement
)

// Error is a migration generation failure with a stable code.
type Error struct {
	Code   Code
	Reason string
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeUnsupportedOperation:
		return "unsupported operation: " + e.Reason
	case CodeInvalidElement:
		return "invalid schema element: " + e.Reason
	}
	return "migration error: " + e.Reason
}

// Is matches by code so errors.Is works against the sentinel values.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrUnsupportedOperation = &Error{Code: CodeUnsupportedOperation}
	ErrInvalidElement       = &Error{Code: CodeInvalidElement}
)

func unsupported(format string, args ...any) *Error {
	return &Error{Code: CodeUnsupportedOperation, Reason: fmt.Sprintf(format, args...)}
}

// Config controls migration generation.
type Config struct {
	Dialect         dialect.Dialect `json:"dialect" yaml:"dialect"`
	UseIfExists     bool            `json:"use_if_exists" yaml:"use_if_exists"`
	UseCascade      bool            `json:"use_cascade" yaml:"use_cascade"`
	IncludeComments bool            `json:"include_comments" yaml:"include_comments"`
}

// DefaultConfig targets PostgreSQL with IF EXISTS guards and comments
// on, CASCADE off.
func DefaultConfig() Config {
	return Config{
		Dialect:         dialect.Postgres,
		UseIfExists:     true,
		UseCascade:      false,
		IncludeComments: true,
	}
}

// ForDialect returns the default configuration retargeted at d.
func ForDialect(d dialect.Dialect) Config {
	cfg := DefaultConfig()
	cfg.Dialect = d
	return cfg
}

// WithIfExists toggles IF EXISTS guards on drop statements.
func (c Config) WithIfExists(on bool) Config { c.UseIfExists = on; return c }

// WithCascade toggles CASCADE on drops, where the dialect supports it.
func (c Config) WithCascade(on bool) Config { c.UseCascade = on; return c }

// WithComments toggles explanatory comment statements in the output.
func (c Config) WithComments(on bool) Config { c.IncludeComments = on; return c }

// Migration is a pair of SQL statement lists: Up applies the diff,
// Down reverts it.
type Migration struct {
	Up   []string `json:"up" yaml:"up"`
	Down []string `json:"down" yaml:"down"`
}

// IsEmpty reports whether the migration has no statements either way.
func (m *Migration) IsEmpty() bool {
	return len(m.Up) == 0 && len(m.Down) == 0
}

// UpScript joins the up statements into one terminated script.
func (m *Migration) UpScript() string { return script(m.Up) }

// DownScript joins the down statements into one terminated script.
func (m *Migration) DownScript() string { return script(m.Down) }

func script(stmts []string) string {
	if len(stmts) == 0 {
		return ""
	}
	out := stmts[0]
	for _, s := range stmts[1:] {
		out += ";\n\n" + s
	}
	return out + ";"
}

func (m *Migration) add(up, down string) {
	m.Up = append(m.Up, up)
	m.Down = append(m.Down, down)
}

func (m *Migration) merge(other Migration) {
	m.Up = append(m.Up, other.Up...)
	m.Down = append(m.Down, other.Down...)
}
