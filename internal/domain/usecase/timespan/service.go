package timespan

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rickb777/period"

	"github.com/amirhossein-jamali/timespan/internal/domain/entity"
	errs "github.com/amirhossein-jamali/timespan/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timespan/internal/domain/port/core"
	"github.com/amirhossein-jamali/timespan/internal/domain/port/usecase"
)

// Service implements the time span use case on top of the decomposition engine
type Service struct {
	validator       *RequestValidator
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	defaultTimezone string
	maxSpanYears    int
}

// NewTimeSpanService creates a new time span service.
// Instants without an explicit offset are read in defaultTimezone unless the request names one.
func NewTimeSpanService(
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	defaultTimezone string,
) *Service {
	return &Service{
		validator:       NewRequestValidator(),
		timeProvider:    timeProvider,
		logger:          logger,
		defaultTimezone: defaultTimezone,
	}
}

// WithMaxSpanYears limits the number of calendar years a request may cover; 0 disables the limit
func (s *Service) WithMaxSpanYears(years int) *Service {
	s.maxSpanYears = years
	return s
}

var _ usecase.TimeSpanUseCase = (*Service)(nil)

// ValidateTimeSpanRequest checks the request shape
func (s *Service) ValidateTimeSpanRequest(req usecase.TimeSpanRequest) error {
	return s.validator.ValidateRequest(req)
}

// Compute resolves both ends of the request and decomposes the span between them
func (s *Service) Compute(ctx context.Context, req usecase.TimeSpanRequest) (*entity.TimeSpanResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.ValidateTimeSpanRequest(req); err != nil {
		s.logger.Warn("Invalid time span request", errs.LogFields(err))
		return nil, err
	}

	loc, err := s.location(req.Timezone)
	if err != nil {
		s.logger.Warn("Unknown time zone", errs.LogFields(err))
		return nil, err
	}

	start, err := s.resolveInstant("from", req.From, loc)
	if err != nil {
		s.logger.Warn("Invalid start instant", errs.LogFields(err))
		return nil, err
	}

	var target entity.Instant
	if p := strings.TrimSpace(req.Period); p != "" {
		target, err = applyPeriod(start, p)
	} else {
		target, err = s.resolveInstant("to", req.To, loc)
	}
	if err != nil {
		s.logger.Warn("Invalid target instant", errs.LogFields(err))
		return nil, err
	}

	return s.decompose(start, target)
}

// Between decomposes the span between two textual instants
func (s *Service) Between(ctx context.Context, from, to, timezone string) (*entity.TimeSpanResult, error) {
	return s.Compute(ctx, usecase.TimeSpanRequest{From: from, To: to, Timezone: timezone})
}

// Countdown decomposes the span from now until to
func (s *Service) Countdown(ctx context.Context, to, timezone string) (*entity.TimeSpanResult, error) {
	if strings.TrimSpace(to) == "" {
		return nil, fmt.Errorf("%w: countdown needs a target", errs.ErrInvalidRequest)
	}
	return s.Compute(ctx, usecase.TimeSpanRequest{To: to, Timezone: timezone})
}

// Since decomposes the span from from until now
func (s *Service) Since(ctx context.Context, from, timezone string) (*entity.TimeSpanResult, error) {
	if strings.TrimSpace(from) == "" {
		return nil, fmt.Errorf("%w: since needs a start", errs.ErrInvalidRequest)
	}
	return s.Compute(ctx, usecase.TimeSpanRequest{From: from, Timezone: timezone})
}

// AddPeriod decomposes the span from from to from plus isoPeriod
func (s *Service) AddPeriod(ctx context.Context, from, isoPeriod, timezone string) (*entity.TimeSpanResult, error) {
	if strings.TrimSpace(isoPeriod) == "" {
		return nil, fmt.Errorf("%w: empty period", errs.ErrInvalidPeriod)
	}
	return s.Compute(ctx, usecase.TimeSpanRequest{From: from, Period: isoPeriod, Timezone: timezone})
}

// decompose enforces the span limit and runs the engine
func (s *Service) decompose(start, target entity.Instant) (*entity.TimeSpanResult, error) {
	lo, hi := entity.NewSpan(start, target).Bounds()
	if years := hi.Year() - lo.Year(); s.maxSpanYears > 0 && years > s.maxSpanYears {
		err := fmt.Errorf("%w: span of %d years exceeds the limit of %d", errs.ErrInvalidRequest, years, s.maxSpanYears)
		s.logger.Warn("Time span rejected", errs.LogFields(err))
		return nil, err
	}

	result := Compute(start, target)

	s.logger.Debug("Time span decomposed", map[string]any{
		"from":      start.String(),
		"to":        target.String(),
		"units":     result.Map(),
		"leapYears": result.LeapYears(),
	})
	s.logger.Info("Time span computed", map[string]any{
		"sign":             result.Sign(),
		"iso8601":          result.ISO8601(),
		"leapCount":        result.LeapCount(),
		"totalNanoseconds": result.TotalNanoseconds().String(),
	})

	return result, nil
}

// location resolves a time zone name, falling back to the configured default
func (s *Service) location(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultTimezone
	}

	loc, err := s.timeProvider.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidLocation, name)
	}
	return loc, nil
}

// resolveInstant parses value in loc; an empty value means the current time
func (s *Service) resolveInstant(field, value string, loc *time.Location) (entity.Instant, error) {
	if strings.TrimSpace(value) == "" {
		return entity.NewInstant(s.timeProvider.Now().In(loc))
	}

	instant, err := entity.ParseInstant(value, loc)
	if err != nil {
		return entity.Instant{}, errs.WithField(err, field)
	}
	return instant, nil
}

// applyPeriod moves start by an ISO-8601 period. Years and months follow the same
// end-of-month clamping as the decomposition, so P1M from Jan 31 lands on the last
// day of February. Fractional calendar fields are rejected.
func applyPeriod(start entity.Instant, iso string) (entity.Instant, error) {
	p, err := period.Parse(iso)
	if err != nil {
		return entity.Instant{}, fmt.Errorf("%w: %s", errs.ErrInvalidPeriod, err.Error())
	}

	if _, precise := p.AddTo(start.Time()); !precise {
		return entity.Instant{}, fmt.Errorf("%w: %s cannot be applied exactly", errs.ErrInvalidPeriod, iso)
	}

	hms, _ := p.OnlyHMS().Duration()
	t := AddMonths(start.Time(), p.Years()*12+p.Months()).
		AddDate(0, 0, p.Weeks()*7+p.Days()).
		Add(hms)
	return entity.NewInstant(t)
}
