package repo

import (
	"context"

	"github.com/logtide/logtide/internal/domain"
	"github.com/logtide/logtide/internal/repo/pgdb"
	"github.com/logtide/logtide/internal/repo/repotypes"
	"github.com/logtide/logtide/pkg/postgres"
)

type Metric interface {
	// IncrementAndGet atomically creates the bucket with count=1 or bumps it
	// by one, returning the post-increment count.
	IncrementAndGet(ctx context.Context, key domain.BucketKey) (int, error)
	List(ctx context.Context, filter repotypes.MetricFilter) ([]domain.MetricBucket, error)
}

type RawEvent interface {
	Store(ctx context.Context, event *domain.LogEvent) (int64, error)
}

type Repositories struct {
	Metric
	RawEvent
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		Metric:   pgdb.NewMetricRepo(pg),
		RawEvent: pgdb.NewRawEventRepo(pg),
	}
}
