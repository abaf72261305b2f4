package httpv1

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	logginghelper "github.com/logtide/logtide/internal/controller/common/logging"
	"github.com/logtide/logtide/internal/controller/validators"
	"github.com/logtide/logtide/internal/metrics"
	"github.com/logtide/logtide/internal/service"
)

type LogController struct {
	ingestService service.Ingest
	queryService  service.Query
	counters      *metrics.Counters
	zone          *time.Location
}

func NewLogController(is service.Ingest, qs service.Query, cnt *metrics.Counters, zone *time.Location) *LogController {
	return &LogController{
		ingestService: is,
		queryService:  qs,
		counters:      cnt,
		zone:          zone,
	}
}

func (c *LogController) CreateLog(ctx echo.Context) error {
	var req CreateLogRequest
	if err := ctx.Bind(&req); err != nil {
		c.counters.HttpRequests.Inc("CreateLog", "failed")
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: "malformed request body"})
	}

	event, err := NewLogEventFromRequest(&req, c.zone)
	if err != nil {
		c.counters.HttpRequests.Inc("CreateLog", "failed")
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}
	if err := validators.Validate(event); err != nil {
		c.counters.HttpRequests.Inc("CreateLog", "failed")
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}

	logginghelper.LogReceived(event, "HTTP")

	result, err := c.ingestService.Ingest(ctx.Request().Context(), event)
	if err != nil {
		c.counters.HttpRequests.Inc("CreateLog", "failed")
		if errors.Is(err, service.ErrStorageUnavailable) {
			return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{Detail: "storage unavailable, retry later"})
		}
		if errors.Is(err, service.ErrInvalidEvent) {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal error"})
	}

	c.counters.HttpRequests.Inc("CreateLog", "ok")

	return ctx.JSON(http.StatusOK, CreateLogResponse{
		Message:        "Log accepted.",
		Count:          result.Count,
		Alert:          result.Alert,
		RawWriteFailed: result.RawWriteFailed,
	})
}

func (c *LogController) GetLogsByService(ctx echo.Context) error {
	limit, err := validators.ParseQueryLimit(ctx.QueryParam("limit"))
	if err != nil {
		c.counters.HttpRequests.Inc("GetLogsByService", "failed")
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}

	buckets, err := c.queryService.ListByService(ctx.Request().Context(), ctx.Param("service"), limit)
	if err != nil {
		c.counters.HttpRequests.Inc("GetLogsByService", "failed")
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal error"})
	}
	c.counters.HttpRequests.Inc("GetLogsByService", "ok")
	return ctx.JSON(http.StatusOK, ToMetricBucketResponses(buckets))
}

func (c *LogController) GetLogsByLevel(ctx echo.Context) error {
	limit, err := validators.ParseQueryLimit(ctx.QueryParam("limit"))
	if err != nil {
		c.counters.HttpRequests.Inc("GetLogsByLevel", "failed")
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}

	buckets, err := c.queryService.ListByLevel(ctx.Request().Context(), ctx.Param("level"), limit)
	if err != nil {
		c.counters.HttpRequests.Inc("GetLogsByLevel", "failed")
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal error"})
	}
	c.counters.HttpRequests.Inc("GetLogsByLevel", "ok")
	return ctx.JSON(http.StatusOK, ToMetricBucketResponses(buckets))
}
