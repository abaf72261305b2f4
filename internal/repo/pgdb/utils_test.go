package pgdb_test

import (
	"testing"
	"time"

	"github.com/logtide/logtide/internal/repo/pgdb"
	"github.com/logtide/logtide/internal/repo/repotypes"
	"github.com/stretchr/testify/assert"
)

func TestBuildMetricQueryFilters(t *testing.T) {
	from := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	to := from.Add(time.Hour)

	testCases := []struct {
		name      string
		filter    repotypes.MetricFilter
		wantConds int
		wantLimit uint64
	}{
		{
			name:      "empty filter",
			filter:    repotypes.MetricFilter{},
			wantConds: 0,
			wantLimit: 0,
		},
		{
			name:      "service only with limit",
			filter:    repotypes.MetricFilter{Service: "auth", Limit: 10},
			wantConds: 1,
			wantLimit: 10,
		},
		{
			name:      "level and time range",
			filter:    repotypes.MetricFilter{Level: "ERROR", From: from, To: to},
			wantConds: 3,
			wantLimit: 0,
		},
		{
			name:      "alerts filter adds min count",
			filter:    repotypes.MetricFilter{Service: "auth", Level: "ERROR", MinCount: 5, Limit: 100},
			wantConds: 3,
			wantLimit: 100,
		},
		{
			name:      "negative limit means no limit",
			filter:    repotypes.MetricFilter{Service: "auth", Limit: -1},
			wantConds: 1,
			wantLimit: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conds, limit := pgdb.BuildMetricQueryFilters(tc.filter)

			assert.Len(t, conds, tc.wantConds)
			assert.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestBuildMetricQueryFilters_CondsRenderSql(t *testing.T) {
	conds, _ := pgdb.BuildMetricQueryFilters(repotypes.MetricFilter{
		Service:  "auth",
		Level:    "ERROR",
		MinCount: 5,
	})

	var rendered []string
	for _, c := range conds {
		sql, args, err := c.ToSql()
		assert.NoError(t, err)
		assert.NotEmpty(t, args)
		rendered = append(rendered, sql)
	}

	assert.Contains(t, rendered, "service = ?")
	assert.Contains(t, rendered, "level = ?")
	assert.Contains(t, rendered, "count >= ?")
}
