package policy

import "fmt"

// Code identifies one way a policy spec can be rejected. The set is
// closed; callers match with errors.Is against the Err variables below.
type Code int

const (
	CodeEmptyName Code = iota + 1
	CodeEmptyTable
	CodeNoExpression
	CodeInsertRequiresCheck
	CodeSelectDeleteNoCheck
	CodeEmptyExpression
	CodeNotSupported
)

// Error is a policy validation failure with a stable code.
type Error struct {
	Code   Code
	Reason string
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeEmptyName:
		return "policy name cannot be empty"
	case CodeEmptyTable:
		return "table name cannot be empty"
	case CodeNoExpression:
		return "at least a USING or WITH CHECK expression is required"
	case CodeInsertRequiresCheck:
		return "INSERT policies require a WITH CHECK expression"
	case CodeSelectDeleteNoCheck:
		return "SELECT and DELETE policies cannot use WITH CHECK"
	case CodeEmptyExpression:
		return "policy expression cannot be empty"
	case CodeNotSupported:
		return e.Reason
	default:
		return fmt.Sprintf("policy error %d", e.Code)
	}
}

// Is matches by code, so errors.Is(err, ErrInsertRequiresCheck) works
// regardless of the Reason carried.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrEmptyName           = &Error{Code: CodeEmptyName}
	ErrEmptyTable          = &Error{Code: CodeEmptyTable}
	ErrNoExpression        = &Error{Code: CodeNoExpression}
	ErrInsertRequiresCheck = &Error{Code: CodeInsertRequiresCheck}
	ErrSelectDeleteNoCheck = &Error{Code: CodeSelectDeleteNoCheck}
	ErrEmptyExpression     = &Error{Code: CodeEmptyExpression}
	ErrNotSupported        = &Error{Code: CodeNotSupported}
)

// notSupported builds a NotSupported error naming the offending dialect.
func notSupported(d string) *Error {
	return &Error{
		Code:   CodeNotSupported,
		Reason: fmt.Sprintf("row-level security policies are not supported by %s", d),
	}
}
