package service

import (
	"context"
	"time"

	"github.com/logtide/logtide/internal/broker"
	"github.com/logtide/logtide/internal/domain"
	"github.com/logtide/logtide/internal/metrics"
	"github.com/logtide/logtide/internal/repo"
)

type Ingest interface {
	Ingest(ctx context.Context, event *domain.LogEvent) (domain.IngestResult, error)
}

type Query interface {
	ListByService(ctx context.Context, service string, limit int) ([]domain.MetricBucket, error)
	ListByLevel(ctx context.Context, level string, limit int) ([]domain.MetricBucket, error)
	AggregateByService(ctx context.Context, service string, from, to time.Time) (map[string]int, error)
	AggregateByLevel(ctx context.Context, level string, from, to time.Time) (map[string]int, error)
	ListAlerts(ctx context.Context, service, level string, from, to time.Time, limit int) ([]domain.AlertEntry, error)
}

type Services struct {
	Ingest
	Query
}

type ServicesDependencies struct {
	Repos          *repo.Repositories
	Counters       *metrics.Counters
	BrokerProducer broker.Producer
	AlertThreshold int
	BucketZone     *time.Location
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Ingest: NewIngestService(
			deps.Repos.Metric,
			deps.Repos.RawEvent,
			deps.BrokerProducer,
			deps.Counters,
			deps.AlertThreshold,
			deps.BucketZone,
		),
		Query: NewQueryService(deps.Repos.Metric, deps.AlertThreshold),
	}
}
