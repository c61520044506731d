// Package trigger validates and synthesizes CREATE TRIGGER DDL across the
// supported dialects, plus DROP, ENABLE/DISABLE, and COMMENT statements
// where the dialect has them. Validation consults the dialect capability
// matrix, so a spec that validates always synthesizes.
package trigger

// Timing says when the trigger fires relative to the triggering statement.
type Timing string

const (
	Before    Timing = "before"
	After     Timing = "after"
	InsteadOf Timing = "instead_of"
)

// SQL returns the timing keyword.
func (t Timing) SQL() string {
	switch t {
	case Before:
		return "BEFORE"
	case InsteadOf:
		return "INSTEAD OF"
	default:
		return "AFTER"
	}
}

// Event is a statement class that can fire a trigger.
type Event string

const (
	Insert   Event = "insert"
	Update   Event = "update"
	Delete   Event = "delete"
	Truncate Event = "truncate"
)

// SQL returns the event keyword.
func (e Event) SQL() string {
	switch e {
	case Update:
		return "UPDATE"
	case Delete:
		return "DELETE"
	case Truncate:
		return "TRUNCATE"
	default:
		return "INSERT"
	}
}

// Level says whether the trigger fires per affected row or once per
// statement.
type Level string

const (
	Row       Level = "row"
	Statement Level = "statement"
)

// SQL returns the FOR EACH clause.
func (l Level) SQL() string {
	if l == Statement {
		return "FOR EACH STATEMENT"
	}
	return "FOR EACH ROW"
}

// Spec fully describes one trigger. Build it with New and the With
// methods; the builders copy by value. Function names a trigger function
// for dialects that require one (PostgreSQL); Body carries an inline
// trigger body for the rest. When and Body are emitted verbatim.
type Spec struct {
	Name          string   `json:"name" yaml:"name"`
	Table         string   `json:"table" yaml:"table"`
	Schema        string   `json:"schema,omitempty" yaml:"schema,omitempty"`
	Timing        Timing   `json:"timing,omitempty" yaml:"timing,omitempty"`
	Events        []Event  `json:"events,omitempty" yaml:"events,omitempty"`
	Level         Level    `json:"level,omitempty" yaml:"level,omitempty"`
	When          string   `json:"when,omitempty" yaml:"when,omitempty"`
	Function      string   `json:"function,omitempty" yaml:"function,omitempty"`
	Body          string   `json:"body,omitempty" yaml:"body,omitempty"`
	UpdateColumns []string `json:"update_columns,omitempty" yaml:"update_columns,omitempty"`
}

// New returns a Spec for a trigger on table, defaulting to an AFTER
// INSERT row-level trigger.
func New(name, table string) Spec {
	return Spec{
		Name:   name,
		Table:  table,
		Timing: After,
		Events: []Event{Insert},
		Level:  Row,
	}
}

// WithSchema sets the table's schema.
func (s Spec) WithSchema(schema string) Spec {
	s.Schema = schema
	return s
}

// WithTiming sets when the trigger fires.
func (s Spec) WithTiming(t Timing) Spec {
	s.Timing = t
	return s
}

// WithEvents replaces the event list.
func (s Spec) WithEvents(events ...Event) Spec {
	s.Events = events
	return s
}

// WithLevel sets row or statement granularity.
func (s Spec) WithLevel(l Level) Spec {
	s.Level = l
	return s
}

// WithWhen sets the WHEN condition.
func (s Spec) WithWhen(condition string) Spec {
	s.When = condition
	return s
}

// WithFunction names the trigger function to execute.
func (s Spec) WithFunction(name string) Spec {
	s.Function = name
	return s
}

// WithBody sets the inline trigger body.
func (s Spec) WithBody(body string) Spec {
	s.Body = body
	return s
}

// WithUpdateColumns restricts an UPDATE event to the given columns.
func (s Spec) WithUpdateColumns(columns ...string) Spec {
	s.UpdateColumns = columns
	return s
}

// timing returns the effective timing, treating the zero value as AFTER
// so specs decoded from YAML behave like ones built with New.
func (s Spec) timing() Timing {
	if s.Timing == "" {
		return After
	}
	return s.Timing
}

// level returns the effective level, treating the zero value as ROW.
func (s Spec) level() Level {
	if s.Level == "" {
		return Row
	}
	return s.Level
}

func (s Spec) hasEvent(e Event) bool {
	for _, ev := range s.Events {
		if ev == e {
			return true
		}
	}
	return false
}
