package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest  = 4000
	CodeInvalidInstant  = 4001
	CodeInvalidLocation = 4002
	CodeInvalidPeriod   = 4003

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeArithmeticOverflow = 5001
)

// Base error types
var (
	// ErrInvalidInstant is returned when a time value is malformed or uninitialised
	ErrInvalidInstant = errors.New("invalid instant")

	// ErrInvalidLocation is returned when a time zone name cannot be resolved
	ErrInvalidLocation = errors.New("invalid time zone location")

	// ErrInvalidPeriod is returned when an ISO-8601 period cannot be parsed or applied
	ErrInvalidPeriod = errors.New("invalid ISO-8601 period")

	// ErrArithmeticOverflow is returned when a value does not fit the requested numeric type
	ErrArithmeticOverflow = errors.New("arithmetic overflow")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInstant):
		return CodeInvalidInstant
	case errors.Is(err, ErrInvalidLocation):
		return CodeInvalidLocation
	case errors.Is(err, ErrInvalidPeriod):
		return CodeInvalidPeriod
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrArithmeticOverflow):
		return CodeArithmeticOverflow
	default:
		return CodeInternalServer
	}
}

// IsClientError reports whether err was caused by bad input rather than a server fault
func IsClientError(err error) bool {
	code := ErrorCode(err)
	return code >= 4000 && code < 5000
}

// InstantError describes a time value that could not be turned into an instant
type InstantError struct {
	Field string
	Value string
	Err   error
}

// Error implements the error interface for InstantError
func (e *InstantError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid instant %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid instant for %s %q: %v", e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying error
func (e *InstantError) Unwrap() error {
	return e.Err
}

// Is makes every InstantError match ErrInvalidInstant
func (e *InstantError) Is(target error) bool {
	return target == ErrInvalidInstant
}

// LogFields returns a map of fields for structured logging
func (e *InstantError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_instant",
		"field":      e.Field,
		"value":      e.Value,
		"error":      e.Err.Error(),
		"error_code": CodeInvalidInstant,
	}
}

// NewInstantError creates a detailed invalid instant error
func NewInstantError(field, value string, err error) error {
	return &InstantError{
		Field: field,
		Value: value,
		Err:   err,
	}
}

// WithField returns a copy of err attributed to the named input field.
// Errors that are not an *InstantError are returned unchanged.
func WithField(err error, field string) error {
	var ie *InstantError
	if !errors.As(err, &ie) {
		return err
	}
	return &InstantError{Field: field, Value: ie.Value, Err: ie.Err}
}

// OverflowError reports a quantity that does not fit its target representation
type OverflowError struct {
	Quantity string
	Value    string
	Limit    string
}

// Error implements the error interface
func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s %s exceeds %s: %v", e.Quantity, e.Value, e.Limit, ErrArithmeticOverflow)
}

// Is checks if the target error is an ErrArithmeticOverflow
func (e *OverflowError) Is(target error) bool {
	return target == ErrArithmeticOverflow
}

// LogFields returns a map of fields for structured logging
func (e *OverflowError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "arithmetic_overflow",
		"quantity":   e.Quantity,
		"value":      e.Value,
		"limit":      e.Limit,
		"error_code": CodeArithmeticOverflow,
	}
}

// NewOverflowError creates a new detailed overflow error
func NewOverflowError(quantity, value, limit string) error {
	return &OverflowError{
		Quantity: quantity,
		Value:    value,
		Limit:    limit,
	}
}

// LogFields extracts structured logging fields from err when it provides them
func LogFields(err error) map[string]any {
	var lf interface{ LogFields() map[string]any }
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{
		"error":      err.Error(),
		"error_code": ErrorCode(err),
	}
}

// IsInvalidInstantError checks if the error is related to a malformed instant
func IsInvalidInstantError(err error) bool {
	return errors.Is(err, ErrInvalidInstant)
}

// IsInvalidLocationError checks if the error is related to an unknown time zone
func IsInvalidLocationError(err error) bool {
	return errors.Is(err, ErrInvalidLocation)
}

// IsOverflowError checks if the error is an arithmetic overflow
func IsOverflowError(err error) bool {
	return errors.Is(err, ErrArithmeticOverflow)
}
