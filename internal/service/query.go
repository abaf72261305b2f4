package service

import (
	"context"
	"time"

	"github.com/logtide/logtide/internal/domain"
	"github.com/logtide/logtide/internal/repo"
	"github.com/logtide/logtide/internal/repo/repotypes"
	errorsUtils "github.com/logtide/logtide/pkg/errors"
)

const DefaultQueryLimit = 100

type QueryService struct {
	metricRepo repo.Metric
	threshold  int
}

func NewQueryService(mr repo.Metric, threshold int) *QueryService {
	return &QueryService{
		metricRepo: mr,
		threshold:  threshold,
	}
}

func (s *QueryService) ListByService(ctx context.Context, service string, limit int) ([]domain.MetricBucket, error) {
	buckets, err := s.metricRepo.List(ctx, repotypes.MetricFilter{
		Service: service,
		Limit:   normalizeLimit(limit),
	})
	if err != nil {
		return nil, errorsUtils.WrapPathErr(ErrCannotQuery)
	}
	return buckets, nil
}

func (s *QueryService) ListByLevel(ctx context.Context, level string, limit int) ([]domain.MetricBucket, error) {
	buckets, err := s.metricRepo.List(ctx, repotypes.MetricFilter{
		Level: level,
		Limit: normalizeLimit(limit),
	})
	if err != nil {
		return nil, errorsUtils.WrapPathErr(ErrCannotQuery)
	}
	return buckets, nil
}

// AggregateByService sums bucket counts per level for one service.
// The scan is unbounded: every bucket in the range contributes.
func (s *QueryService) AggregateByService(ctx context.Context, service string, from, to time.Time) (map[string]int, error) {
	buckets, err := s.metricRepo.List(ctx, repotypes.MetricFilter{
		Service: service,
		From:    from,
		To:      to,
	})
	if err != nil {
		return nil, errorsUtils.WrapPathErr(ErrCannotQuery)
	}

	totals := map[string]int{}
	for _, b := range buckets {
		totals[b.Level] += b.Count
	}
	return totals, nil
}

// AggregateByLevel sums bucket counts per service for one level.
func (s *QueryService) AggregateByLevel(ctx context.Context, level string, from, to time.Time) (map[string]int, error) {
	buckets, err := s.metricRepo.List(ctx, repotypes.MetricFilter{
		Level: level,
		From:  from,
		To:    to,
	})
	if err != nil {
		return nil, errorsUtils.WrapPathErr(ErrCannotQuery)
	}

	totals := map[string]int{}
	for _, b := range buckets {
		totals[b.Service] += b.Count
	}
	return totals, nil
}

// ListAlerts returns over-threshold buckets, newest first, each rendered with
// the same alert wording the ingestion path uses.
func (s *QueryService) ListAlerts(ctx context.Context, service, level string, from, to time.Time, limit int) ([]domain.AlertEntry, error) {
	buckets, err := s.metricRepo.List(ctx, repotypes.MetricFilter{
		Service:  service,
		Level:    level,
		From:     from,
		To:       to,
		MinCount: s.threshold,
		Limit:    normalizeLimit(limit),
	})
	if err != nil {
		return nil, errorsUtils.WrapPathErr(ErrCannotQuery)
	}

	alerts := make([]domain.AlertEntry, 0, len(buckets))
	for _, b := range buckets {
		alerts = append(alerts, domain.AlertEntry{
			Service:     b.Service,
			Level:       b.Level,
			Count:       b.Count,
			BucketStart: b.BucketStart,
			Alert:       RenderAlertEntry(b.Count, b.Service, b.Level, b.BucketStart),
		})
	}
	return alerts, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultQueryLimit
	}
	return limit
}
