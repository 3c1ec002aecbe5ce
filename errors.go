package urdf

import "fmt"

// ErrorCode classifies a constraint parse or export failure.
type ErrorCode string

const (
	ErrMissingName      ErrorCode = "missing_name"
	ErrMissingEndpoint  ErrorCode = "missing_endpoint"
	ErrMissingType      ErrorCode = "missing_type"
	ErrUnknownType      ErrorCode = "unknown_type"
	ErrMalformedOrigin  ErrorCode = "malformed_origin"
	ErrMalformedAxis    ErrorCode = "malformed_axis"
	ErrInvalidRatio     ErrorCode = "invalid_ratio"
	ErrUnknownClassType ErrorCode = "unknown_class_type"
)

// UnnamedConstraint is the placeholder used in errors raised before the
// name attribute has been read.
const UnnamedConstraint = "unnamed"

// ConstraintError is a terminal failure while parsing or exporting a
// single constraint. No partial constraint value accompanies it.
type ConstraintError struct {
	Code       ErrorCode
	Constraint string // constraint name, or UnnamedConstraint
	Field      string // offending attribute or child element tag
	Err        error  // underlying cause, if any
}

func (e *ConstraintError) Error() string {
	msg := fmt.Sprintf("constraint %q: %s", e.Constraint, e.Code)
	if e.Field != "" {
		msg += fmt.Sprintf(" (%s)", e.Field)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConstraintError) Unwrap() error { return e.Err }

func constraintErr(code ErrorCode, name, field string, err error) *ConstraintError {
	return &ConstraintError{Code: code, Constraint: name, Field: field, Err: err}
}
