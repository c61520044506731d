package function

import "fmt"

// Code identifies one way a function spec can be rejected. The set is
// closed; callers match with errors.Is against the Err variables below.
type Code int

const (
	CodeEmptyName Code = iota + 1
	CodeEmptyReturnType
	CodeEmptyBody
	CodeFunctionsNotSupported
	CodeEmptyParameterName
	CodeEmptyParameterType
	CodeOutParametersNotSupported
	CodeReturnsTableNotSupported
	CodeInvalidParameter
)

// Error is a function validation failure with a stable code.
type Error struct {
	Code   Code
	Reason string
}

func (e *Error) Error() string {
	switch e.Code {
	case CodeEmptyName:
		return "function name cannot be empty"
	case CodeEmptyReturnType:
		return "return type cannot be empty"
	case CodeEmptyBody:
		return "function body cannot be empty"
	case CodeFunctionsNotSupported:
		return "stored functions are not supported by this dialect"
	case CodeEmptyParameterName:
		return "parameter name cannot be empty"
	case CodeEmptyParameterType:
		return "parameter type cannot be empty"
	case CodeOutParametersNotSupported:
		return "OUT parameters are not supported by this dialect"
	case CodeReturnsTableNotSupported:
		return "RETURNS TABLE is not supported by this dialect"
	case CodeInvalidParameter:
		return "invalid parameter: " + e.Reason
	default:
		return fmt.Sprintf("function error %d", e.Code)
	}
}

// Is matches by code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrEmptyName                 = &Error{Code: CodeEmptyName}
	ErrEmptyReturnType           = &Error{Code: CodeEmptyReturnType}
	ErrEmptyBody                 = &Error{Code: CodeEmptyBody}
	ErrFunctionsNotSupported     = &Error{Code: CodeFunctionsNotSupported}
	ErrEmptyParameterName        = &Error{Code: CodeEmptyParameterName}
	ErrEmptyParameterType        = &Error{Code: CodeEmptyParameterType}
	ErrOutParametersNotSupported = &Error{Code: CodeOutParametersNotSupported}
	ErrReturnsTableNotSupported  = &Error{Code: CodeReturnsTableNotSupported}
	ErrInvalidParameter          = &Error{Code: CodeInvalidParameter}
)

func invalidParameter(reason string) *Error {
	return &Error{Code: CodeInvalidParameter, Reason: reason}
}
