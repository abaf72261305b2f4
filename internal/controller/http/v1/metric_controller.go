package httpv1

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/logtide/logtide/internal/controller/validators"
)

func (c *LogController) GetMetricsByService(ctx echo.Context) error {
	service := ctx.Param("service")
	from, to, err := timeRange(ctx, c.zone)
	if err != nil {
		c.counters.HttpRequests.Inc("GetMetricsByService", "failed")
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}

	totals, err := c.queryService.AggregateByService(ctx.Request().Context(), service, from, to)
	if err != nil {
		c.counters.HttpRequests.Inc("GetMetricsByService", "failed")
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal error"})
	}
	c.counters.HttpRequests.Inc("GetMetricsByService", "ok")
	return ctx.JSON(http.StatusOK, AggregateResponse{Service: service, Metrics: totals})
}

func (c *LogController) GetMetricsByLevel(ctx echo.Context) error {
	level := ctx.Param("level")
	from, to, err := timeRange(ctx, c.zone)
	if err != nil {
		c.counters.HttpRequests.Inc("GetMetricsByLevel", "failed")
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}

	totals, err := c.queryService.AggregateByLevel(ctx.Request().Context(), level, from, to)
	if err != nil {
		c.counters.HttpRequests.Inc("GetMetricsByLevel", "failed")
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal error"})
	}
	c.counters.HttpRequests.Inc("GetMetricsByLevel", "ok")
	return ctx.JSON(http.StatusOK, AggregateResponse{Level: level, Metrics: totals})
}

func (c *LogController) GetAlerts(ctx echo.Context) error {
	from, to, err := timeRange(ctx, c.zone)
	if err != nil {
		c.counters.HttpRequests.Inc("GetAlerts", "failed")
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}
	limit, err := validators.ParseQueryLimit(ctx.QueryParam("limit"))
	if err != nil {
		c.counters.HttpRequests.Inc("GetAlerts", "failed")
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Detail: err.Error()})
	}

	alerts, err := c.queryService.ListAlerts(
		ctx.Request().Context(),
		ctx.QueryParam("service"),
		ctx.QueryParam("level"),
		from, to,
		limit,
	)
	if err != nil {
		c.counters.HttpRequests.Inc("GetAlerts", "failed")
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Detail: "internal error"})
	}
	c.counters.HttpRequests.Inc("GetAlerts", "ok")
	return ctx.JSON(http.StatusOK, ToAlertResponses(alerts))
}

func timeRange(ctx echo.Context, zone *time.Location) (time.Time, time.Time, error) {
	var from, to time.Time

	if raw := ctx.QueryParam("start"); raw != "" {
		ts, err := validators.ParseTimestamp(raw, zone)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = ts
	}
	if raw := ctx.QueryParam("end"); raw != "" {
		ts, err := validators.ParseTimestamp(raw, zone)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = ts
	}
	return from, to, nil
}
