package usecase

import (
	"context"

	"github.com/amirhossein-jamali/timespan/internal/domain/entity"
)

// TimeSpanRequest represents an incoming time span query.
// From or To may be empty to mean "now"; Period may replace To.
type TimeSpanRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Timezone string `json:"timezone"`
	Period   string `json:"period"`
}

// TimeSpanUseCase defines the time span operations exposed to adapters
type TimeSpanUseCase interface {
	// Compute validates the request, resolves instants and decomposes the span
	Compute(ctx context.Context, req TimeSpanRequest) (*entity.TimeSpanResult, error)

	// Between decomposes the span between two textual instants read in timezone
	Between(ctx context.Context, from, to, timezone string) (*entity.TimeSpanResult, error)

	// Countdown decomposes the span from now until to
	Countdown(ctx context.Context, to, timezone string) (*entity.TimeSpanResult, error)

	// Since decomposes the span from from until now
	Since(ctx context.Context, from, timezone string) (*entity.TimeSpanResult, error)

	// AddPeriod decomposes the span from from to from plus an ISO-8601 period
	AddPeriod(ctx context.Context, from, isoPeriod, timezone string) (*entity.TimeSpanResult, error)

	// ValidateTimeSpanRequest checks the request shape without computing anything
	ValidateTimeSpanRequest(req TimeSpanRequest) error
}
