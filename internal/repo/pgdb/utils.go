package pgdb

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/logtide/logtide/internal/repo/repotypes"
)

func BuildMetricQueryFilters(filter repotypes.MetricFilter) ([]sq.Sqlizer, uint64) {
	conds := []sq.Sqlizer{}

	if filter.Service != "" {
		conds = append(conds, sq.Eq{"service": filter.Service})
	}

	if filter.Level != "" {
		conds = append(conds, sq.Eq{"level": filter.Level})
	}

	if !filter.From.IsZero() {
		conds = append(conds, sq.GtOrEq{"bucket_start": filter.From})
	}

	if !filter.To.IsZero() {
		conds = append(conds, sq.LtOrEq{"bucket_start": filter.To})
	}

	if filter.MinCount > 0 {
		conds = append(conds, sq.GtOrEq{"count": filter.MinCount})
	}

	var limit uint64
	if filter.Limit > 0 {
		limit = uint64(filter.Limit)
	}

	return conds, limit
}
