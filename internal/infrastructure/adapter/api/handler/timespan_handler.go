package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/timespan/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timespan/internal/domain/port/core"
	"github.com/amirhossein-jamali/timespan/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timespan/internal/infrastructure/adapter/api/dto"
)

// TimeSpanHandler handles time span HTTP requests
type TimeSpanHandler struct {
	timeSpanUseCase usecase.TimeSpanUseCase
	logger          coreport.Logger
}

// NewTimeSpanHandler creates a new time span handler instance
func NewTimeSpanHandler(
	timeSpanUseCase usecase.TimeSpanUseCase,
	logger coreport.Logger,
) *TimeSpanHandler {
	return &TimeSpanHandler{
		timeSpanUseCase: timeSpanUseCase,
		logger:          logger,
	}
}

// GetTimeSpan handles the GET /timespan endpoint.
// A missing from counts down from now; a missing to counts up to now.
func (h *TimeSpanHandler) GetTimeSpan(c *gin.Context) {
	var query dto.TimeSpanQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.badRequest(c, err)
		return
	}

	h.compute(c, usecase.TimeSpanRequest{
		From:     query.From,
		To:       query.To,
		Timezone: query.Timezone,
		Period:   query.Period,
	})
}

// PostTimeSpan handles the POST /timespan endpoint
func (h *TimeSpanHandler) PostTimeSpan(c *gin.Context) {
	var req dto.TimeSpanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	h.compute(c, usecase.TimeSpanRequest{
		From:     req.From,
		To:       req.To,
		Timezone: req.Timezone,
		Period:   req.Period,
	})
}

func (h *TimeSpanHandler) compute(c *gin.Context, req usecase.TimeSpanRequest) {
	result, err := h.timeSpanUseCase.Compute(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTimeSpanResponse(result))
}

func (h *TimeSpanHandler) badRequest(c *gin.Context, err error) {
	h.logger.Warn("Invalid time span request format", map[string]any{
		"error": err.Error(),
	})
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}

// respondError maps domain errors to HTTP status codes
func (h *TimeSpanHandler) respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	if domainerr.IsClientError(err) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	h.logger.Error("Error computing time span", domainerr.LogFields(err))
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
		Message: "Internal server error",
	})
}
