package httpv1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/logtide/logtide/internal/metrics"
	"github.com/logtide/logtide/internal/service"
)

func RegisterRoutes(handler *echo.Echo, services *service.Services, counters *metrics.Counters, zone *time.Location) {
	controller := NewLogController(services.Ingest, services.Query, counters, zone)

	handler.GET("/", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"message": "logtide API is up"})
	})

	handler.POST("/logs", controller.CreateLog)
	handler.GET("/logs/service/:service", controller.GetLogsByService)
	handler.GET("/logs/level/:level", controller.GetLogsByLevel)
	handler.GET("/metrics/service/:service", controller.GetMetricsByService)
	handler.GET("/metrics/level/:level", controller.GetMetricsByLevel)
	handler.GET("/alerts", controller.GetAlerts)
}
