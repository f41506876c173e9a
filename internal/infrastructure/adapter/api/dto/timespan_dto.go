package dto

import (
	"github.com/amirhossein-jamali/timespan/internal/domain/entity"
)

// TimeSpanQuery represents the query string of GET /timespan
type TimeSpanQuery struct {
	From     string `form:"from"`
	To       string `form:"to"`
	Timezone string `form:"tz"`
	Period   string `form:"period"`
}

// TimeSpanRequest represents the API request body of POST /timespan
type TimeSpanRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Timezone string `json:"timezone"`
	Period   string `json:"period"`
}

// UnitAmountResponse is one row of the decomposition
type UnitAmountResponse struct {
	Unit   string `json:"unit"`
	Amount int64  `json:"amount"`
}

// TimeSpanResponse represents the API response for a decomposed time span
type TimeSpanResponse struct {
	Sign                  int                  `json:"sign"`
	Units                 []UnitAmountResponse `json:"units"`
	DurationInNanoseconds string               `json:"durationInNanoseconds"`
	LeapYears             []int                `json:"leapYears"`
	LeapCount             int                  `json:"leapCount"`
	ISO8601               string               `json:"iso8601"`
}

// NewTimeSpanResponse maps a result to its wire form. The total is a decimal string
// because it can exceed the range of a JSON number.
func NewTimeSpanResponse(r *entity.TimeSpanResult) TimeSpanResponse {
	entries := r.Entries()
	units := make([]UnitAmountResponse, len(entries))
	for i, e := range entries {
		units[i] = UnitAmountResponse{Unit: string(e.Unit), Amount: e.Amount}
	}

	return TimeSpanResponse{
		Sign:                  r.Sign(),
		Units:                 units,
		DurationInNanoseconds: r.TotalNanoseconds().String(),
		LeapYears:             r.LeapYears(),
		LeapCount:             r.LeapCount(),
		ISO8601:               r.ISO8601(),
	}
}

// HealthResponse represents the API response of GET /health
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}
