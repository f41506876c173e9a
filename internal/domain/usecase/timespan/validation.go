package timespan

import (
	"fmt"
	"strings"

	"github.com/rickb777/period"

	errs "github.com/amirhossein-jamali/timespan/internal/domain/error"
	"github.com/amirhossein-jamali/timespan/internal/domain/port/usecase"
)

// RequestValidator provides validation for time span requests
type RequestValidator struct{}

// NewRequestValidator creates a new RequestValidator
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{}
}

// ValidateRequest validates the shape of a request; instants are parsed later
func (v *RequestValidator) ValidateRequest(req usecase.TimeSpanRequest) error {
	if err := v.validateEndpoints(req); err != nil {
		return err
	}

	if err := v.validatePeriod(req.Period); err != nil {
		return err
	}

	return nil
}

// validateEndpoints checks that the request names a span at all
func (v *RequestValidator) validateEndpoints(req usecase.TimeSpanRequest) error {
	from := strings.TrimSpace(req.From)
	to := strings.TrimSpace(req.To)
	p := strings.TrimSpace(req.Period)

	if from == "" && to == "" && p == "" {
		return fmt.Errorf("%w: one of from, to or period is required", errs.ErrInvalidRequest)
	}

	if to != "" && p != "" {
		return fmt.Errorf("%w: to and period are mutually exclusive", errs.ErrInvalidRequest)
	}

	return nil
}

// validatePeriod checks an optional ISO-8601 period
func (v *RequestValidator) validatePeriod(iso string) error {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return nil
	}

	if _, err := period.Parse(iso); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrInvalidPeriod, err.Error())
	}

	return nil
}
