package pgdb

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/logtide/logtide/internal/domain"
	"github.com/logtide/logtide/internal/repo/repoerrs"
	"github.com/logtide/logtide/internal/repo/repotypes"
	errorsUtils "github.com/logtide/logtide/pkg/errors"
	"github.com/logtide/logtide/pkg/postgres"
)

// storageOpTimeout bounds every storage call; a deadline hit surfaces as
// ErrStorageUnavailable.
const storageOpTimeout = 5 * time.Second

type MetricRepo struct {
	*postgres.Postgres
}

func NewMetricRepo(pg *postgres.Postgres) *MetricRepo {
	return &MetricRepo{pg}
}

// IncrementAndGet is the single write path for log_metrics. The upsert is one
// statement, so concurrent callers on the same key are serialized by the
// row lock and each observes its own distinct post-increment count. The
// read-count-then-write pattern loses updates under contention and must not
// be reintroduced here.
func (r *MetricRepo) IncrementAndGet(ctx context.Context, key domain.BucketKey) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, storageOpTimeout)
	defer cancel()

	sql, args, _ := r.Builder.
		Insert("log_metrics").
		Columns("service", "level", "bucket_start", "count").
		Values(key.Service, key.Level, key.BucketStart, 1).
		Suffix("ON CONFLICT (service, level, bucket_start) DO UPDATE SET count = log_metrics.count + 1").
		Suffix("RETURNING count").
		ToSql()

	var count int
	err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&count)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(fmt.Errorf("%w: %v", repoerrs.ErrStorageUnavailable, err))
	}
	return count, nil
}

func (r *MetricRepo) List(ctx context.Context, filter repotypes.MetricFilter) ([]domain.MetricBucket, error) {
	ctx, cancel := context.WithTimeout(ctx, storageOpTimeout)
	defer cancel()

	conds, limit := BuildMetricQueryFilters(filter)

	query := r.Builder.
		Select("id", "service", "level", "count", "bucket_start").
		From("log_metrics").
		OrderBy("bucket_start DESC")

	if len(conds) > 0 {
		query = query.Where(sq.And(conds))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	sql, args, _ := query.ToSql()
	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)

	if err != nil {
		return []domain.MetricBucket{}, errorsUtils.WrapPathErr(fmt.Errorf("%w: %v", repoerrs.ErrStorageUnavailable, err))
	}
	defer rows.Close()

	buckets, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.MetricBucket])

	if err != nil {
		return []domain.MetricBucket{}, errorsUtils.WrapPathErr(err)
	}

	return buckets, nil
}
