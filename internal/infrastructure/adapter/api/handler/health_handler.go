package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/timespan/internal/domain/port/core"
	"github.com/amirhossein-jamali/timespan/internal/infrastructure/adapter/api/dto"
)

// HealthHandler reports service liveness
type HealthHandler struct {
	timeProvider coreport.TimeProvider
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(timeProvider coreport.TimeProvider) *HealthHandler {
	return &HealthHandler{timeProvider: timeProvider}
}

// GetHealth handles the GET /health endpoint
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status: "ok",
		Time:   h.timeProvider.Now().UTC().Format(time.RFC3339Nano),
	})
}
