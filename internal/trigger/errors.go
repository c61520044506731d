package trigger

import "fmt"

// Code identifies one way a trigger spec can be rejected. The set is
// closed; callers match with errors.Is against the Err variables below.
type Code int

const (
	CodeEmptyName Code = iota + 1
	CodeEmptyTable
	CodeNoEvents
	CodeBeforeNotSupported
	CodeInsteadOfNotSupported
	CodeTruncateNotSupported
	CodeStatementLevelNotSupported
	CodeWhenConditionNotSupported
	CodeUpdateColumnsNotSupported
	CodeMissingFunction
	CodeMissingBody
)

// Error is a trigger validation failure with a stable code.
type Error struct {
	Code Code
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeEmptyName:
		return "trigger name cannot be empty"
	case CodeEmptyTable:
		return "table name cannot be empty"
	case CodeNoEvents:
		return "at least one trigger event must be specified"
	case CodeBeforeNotSupported:
		return "BEFORE triggers are not supported by this dialect"
	case CodeInsteadOfNotSupported:
		return "INSTEAD OF triggers are not supported by this dialect"
	case CodeTruncateNotSupported:
		return "TRUNCATE triggers are not supported by this dialect"
	case CodeStatementLevelNotSupported:
		return "statement-level triggers are not supported by this dialect"
	case CodeWhenConditionNotSupported:
		return "WHEN conditions are not supported by this dialect"
	case CodeUpdateColumnsNotSupported:
		return "UPDATE OF column lists are not supported by this dialect"
	case CodeMissingFunction:
		return "this dialect executes a trigger function; set one with WithFunction"
	case CodeMissingBody:
		return "this dialect requires an inline trigger body; set one with WithBody"
	default:
		return fmt.Sprintf("trigger error %d", e.Code)
	}
}

// Is matches by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrEmptyName                  = &Error{Code: CodeEmptyName}
	ErrEmptyTable                 = &Error{Code: CodeEmptyTable}
	ErrNoEvents                   = &Error{Code: CodeNoEvents}
	ErrBeforeNotSupported         = &Error{Code: CodeBeforeNotSupported}
	ErrInsteadOfNotSupported      = &Error{Code: CodeInsteadOfNotSupported}
	ErrTruncateNotSupported       = &Error{Code: CodeTruncateNotSupported}
	ErrStatementLevelNotSupported = &Error{Code: CodeStatementLevelNotSupported}
	ErrWhenConditionNotSupported  = &Error{Code: CodeWhenConditionNotSupported}
	ErrUpdateColumnsNotSupported  = &Error{Code: CodeUpdateColumnsNotSupported}
	ErrMissingFunction            = &Error{Code: CodeMissingFunction}
	ErrMissingBody                = &Error{Code: CodeMissingBody}
)
