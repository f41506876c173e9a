package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/timespan/internal/domain/port/core"
	"github.com/amirhossein-jamali/timespan/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timespan/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	timeSpanHandler *handler.TimeSpanHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.GetHealth)

	timeSpanRoutes := router.Group("/timespan")
	{
		// GET /timespan?from=&to=&tz=&period=
		timeSpanRoutes.GET("", timeSpanHandler.GetTimeSpan)

		// POST /timespan
		timeSpanRoutes.POST("", timeSpanHandler.PostTimeSpan)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, clock coreport.TimeProvider) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, clock))
}
