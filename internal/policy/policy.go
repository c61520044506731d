// Package policy validates and synthesizes PostgreSQL row-level security
// DDL: CREATE POLICY, ALTER POLICY, DROP POLICY, and the ALTER TABLE
// statements that switch row security on and off. Policies are a
// PostgreSQL feature; every entry point rejects other dialects once the
// spec names a policy and a table.
package policy

// Command is the statement class a policy applies to.
type Command string

const (
	Select Command = "select"
	Insert Command = "insert"
	Update Command = "update"
	Delete Command = "delete"
	All    Command = "all"
)

// SQL returns the command keyword as it appears in CREATE POLICY.
func (c Command) SQL() string {
	switch c {
	case Select:
		return "SELECT"
	case Insert:
		return "INSERT"
	case Update:
		return "UPDATE"
	case Delete:
		return "DELETE"
	default:
		return "ALL"
	}
}

// Type distinguishes permissive policies, which are ORed together, from
// restrictive ones, which are ANDed with the permissive set.
type Type string

const (
	Permissive  Type = "permissive"
	Restrictive Type = "restrictive"
)

// SQL returns the policy type keyword for the AS clause.
func (t Type) SQL() string {
	if t == Restrictive {
		return "AS RESTRICTIVE"
	}
	return "AS PERMISSIVE"
}

// Spec fully describes one row-level security policy. Build it with New
// and the With methods, then hand it to Validate or BuildCreate; the
// builders copy by value, so a Spec never changes after construction.
//
// Using and Check are pointers because an absent expression and an empty
// one are different validation outcomes. Expressions are emitted verbatim
// inside their parentheses; callers own their correctness.
type Spec struct {
	Name    string   `json:"name" yaml:"name"`
	Table   string   `json:"table" yaml:"table"`
	Schema  string   `json:"schema,omitempty" yaml:"schema,omitempty"`
	Command Command  `json:"command,omitempty" yaml:"command,omitempty"`
	Type    Type     `json:"type,omitempty" yaml:"type,omitempty"`
	Roles   []string `json:"roles,omitempty" yaml:"roles,omitempty"`
	Using   *string  `json:"using,omitempty" yaml:"using,omitempty"`
	Check   *string  `json:"check,omitempty" yaml:"check,omitempty"`
}

// New returns a Spec for a policy on table, defaulting to a permissive
// ALL policy granted to PUBLIC.
func New(name, table string) Spec {
	return Spec{
		Name:    name,
		Table:   table,
		Command: All,
		Type:    Permissive,
	}
}

// WithSchema sets the table's schema.
func (s Spec) WithSchema(schema string) Spec {
	s.Schema = schema
	return s
}

// WithCommand sets the statement class the policy applies to.
func (s Spec) WithCommand(cmd Command) Spec {
	s.Command = cmd
	return s
}

// WithType sets the policy type.
func (s Spec) WithType(t Type) Spec {
	s.Type = t
	return s
}

// WithRoles replaces the role list. An empty list means PUBLIC.
func (s Spec) WithRoles(roles ...string) Spec {
	s.Roles = roles
	return s
}

// ForRole appends one role to the role list.
func (s Spec) ForRole(role string) Spec {
	s.Roles = append(s.Roles[:len(s.Roles):len(s.Roles)], role)
	return s
}

// WithUsing sets the USING expression.
func (s Spec) WithUsing(expr string) Spec {
	s.Using = &expr
	return s
}

// WithCheck sets the WITH CHECK expression.
func (s Spec) WithCheck(expr string) Spec {
	s.Check = &expr
	return s
}

// command returns the effective command, treating the zero value as ALL
// so specs decoded from YAML behave like ones built with New.
func (s Spec) command() Command {
	if s.Command == "" {
		return All
	}
	return s.Command
}

// policyType returns the effective type, treating the zero value as
// permissive.
func (s Spec) policyType() Type {
	if s.Type == "" {
		return Permissive
	}
	return s.Type
}
