package httpv1

import (
	"time"

	"github.com/logtide/logtide/internal/controller/validators"
	"github.com/logtide/logtide/internal/domain"
)

type CreateLogRequest struct {
	Service   string         `json:"service"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Timestamp string         `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type CreateLogResponse struct {
	Message        string  `json:"message"`
	Count          int     `json:"count"`
	Alert          *string `json:"alert"`
	RawWriteFailed bool    `json:"raw_write_failed,omitempty"`
}

type MetricBucketResponse struct {
	Service   string `json:"service"`
	Level     string `json:"level"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
}

type AggregateResponse struct {
	Service string         `json:"service,omitempty"`
	Level   string         `json:"level,omitempty"`
	Metrics map[string]int `json:"metrics"`
}

type AlertResponse struct {
	Service   string `json:"service"`
	Level     string `json:"level"`
	Count     int    `json:"count"`
	Timestamp string `json:"timestamp"`
	Alert     string `json:"alert"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

func NewLogEventFromRequest(req *CreateLogRequest, zone *time.Location) (*domain.LogEvent, error) {
	ts, err := validators.ParseTimestamp(req.Timestamp, zone)
	if err != nil {
		return nil, err
	}
	return &domain.LogEvent{
		Service:   req.Service,
		Level:     req.Level,
		Message:   req.Message,
		Timestamp: ts,
		Metadata:  req.Metadata,
	}, nil
}

func ToMetricBucketResponses(buckets []domain.MetricBucket) []MetricBucketResponse {
	out := make([]MetricBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, MetricBucketResponse{
			Service:   b.Service,
			Level:     b.Level,
			Count:     b.Count,
			Timestamp: b.BucketStart.Format(time.RFC3339),
		})
	}
	return out
}

func ToAlertResponses(alerts []domain.AlertEntry) []AlertResponse {
	out := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, AlertResponse{
			Service:   a.Service,
			Level:     a.Level,
			Count:     a.Count,
			Timestamp: a.BucketStart.Format(time.RFC3339),
			Alert:     a.Alert,
		})
	}
	return out
}
