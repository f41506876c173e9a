package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInvalidInstant.Error() != "invalid instant" {
		t.Errorf("ErrInvalidInstant has unexpected message: %s", ErrInvalidInstant.Error())
	}
	if ErrArithmeticOverflow.Error() != "arithmetic overflow" {
		t.Errorf("ErrArithmeticOverflow has unexpected message: %s", ErrArithmeticOverflow.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidRequest", ErrInvalidRequest, 4000},
		{"InvalidInstant", ErrInvalidInstant, 4001},
		{"InvalidLocation", ErrInvalidLocation, 4002},
		{"InvalidPeriod", ErrInvalidPeriod, 4003},
		{"ArithmeticOverflow", ErrArithmeticOverflow, 5001},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidLocation), 4002},
		{"InstantError", NewInstantError("from", "nope", errors.New("bad layout")), 4001},
		{"OverflowError", NewOverflowError("duration", "1", "0"), 5001},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestIsClientError(t *testing.T) {
	if !IsClientError(ErrInvalidInstant) {
		t.Errorf("IsClientError(ErrInvalidInstant) = false, want true")
	}
	if IsClientError(ErrArithmeticOverflow) {
		t.Errorf("IsClientError(ErrArithmeticOverflow) = true, want false")
	}
	if IsClientError(errors.New("boom")) {
		t.Errorf("IsClientError(unknown) = true, want false")
	}
}

func TestInstantError(t *testing.T) {
	baseErr := errors.New("cannot parse")
	err := NewInstantError("to", "2013-13-01", baseErr)

	expectedErrMsg := `invalid instant for to "2013-13-01": cannot parse`
	if err.Error() != expectedErrMsg {
		t.Errorf("InstantError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	if !errors.Is(err, ErrInvalidInstant) {
		t.Errorf("errors.Is(err, ErrInvalidInstant) = false, want true")
	}
	if !errors.Is(err, baseErr) {
		t.Errorf("errors.Is(err, baseErr) = false, want true")
	}
	if !IsInvalidInstantError(err) {
		t.Errorf("IsInvalidInstantError(err) = false, want true")
	}

	fields := err.(*InstantError).LogFields()
	if fields["field"] != "to" || fields["error_code"] != CodeInvalidInstant {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestInstantErrorWithoutField(t *testing.T) {
	err := NewInstantError("", "x", errors.New("cannot parse"))
	if err.Error() != `invalid instant "x": cannot parse` {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestWithField(t *testing.T) {
	err := WithField(NewInstantError("", "x", errors.New("cannot parse")), "from")

	var ie *InstantError
	if !errors.As(err, &ie) {
		t.Fatalf("errors.As failed: not an *InstantError")
	}
	if ie.Field != "from" {
		t.Errorf("Field = %s, want from", ie.Field)
	}

	plain := errors.New("plain")
	if WithField(plain, "from") != plain {
		t.Errorf("WithField changed a non-instant error")
	}
}

func TestOverflowError(t *testing.T) {
	err := NewOverflowError("duration", "9223372036854775808ns", "9223372036854775807ns")

	if !errors.Is(err, ErrArithmeticOverflow) {
		t.Errorf("errors.Is(err, ErrArithmeticOverflow) = false, want true")
	}
	if !IsOverflowError(err) {
		t.Errorf("IsOverflowError(err) = false, want true")
	}

	expected := "duration 9223372036854775808ns exceeds 9223372036854775807ns: arithmetic overflow"
	if err.Error() != expected {
		t.Errorf("OverflowError.Error() = %s, want %s", err.Error(), expected)
	}
}

func TestLogFields(t *testing.T) {
	wrapped := fmt.Errorf("computing: %w", NewInstantError("from", "x", errors.New("cannot parse")))
	fields := LogFields(wrapped)
	if fields["error_type"] != "invalid_instant" {
		t.Errorf("LogFields did not unwrap to InstantError: %v", fields)
	}

	fields = LogFields(ErrInvalidLocation)
	if fields["error_code"] != CodeInvalidLocation {
		t.Errorf("LogFields(ErrInvalidLocation) = %v", fields)
	}
	if !IsInvalidLocationError(fmt.Errorf("x: %w", ErrInvalidLocation)) {
		t.Errorf("IsInvalidLocationError(wrapped) = false, want true")
	}
}
