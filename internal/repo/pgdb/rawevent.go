package pgdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/logtide/logtide/internal/domain"
	"github.com/logtide/logtide/internal/repo/repoerrs"
	errorsUtils "github.com/logtide/logtide/pkg/errors"
	"github.com/logtide/logtide/pkg/postgres"
)

type RawEventRepo struct {
	*postgres.Postgres
}

func NewRawEventRepo(pg *postgres.Postgres) *RawEventRepo {
	return &RawEventRepo{pg}
}

// Store appends the event verbatim. The table is schemaless on metadata and
// carries no constraints shared with log_metrics, so a failure here never
// implies anything about the aggregate write.
func (r *RawEventRepo) Store(ctx context.Context, event *domain.LogEvent) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, storageOpTimeout)
	defer cancel()

	metadata := event.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	payload, err := json.Marshal(metadata)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	sql, args, _ := r.Builder.
		Insert("raw_events").
		Columns("service", "level", "message", "event_timestamp", "metadata").
		Values(event.Service, event.Level, event.Message, event.Timestamp, payload).
		Suffix("RETURNING id").
		ToSql()

	var id int64
	err = r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(fmt.Errorf("%w: %v", repoerrs.ErrStorageUnavailable, err))
	}
	return id, nil
}
