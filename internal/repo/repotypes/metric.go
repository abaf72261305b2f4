package repotypes

import (
	"time"
)

// MetricFilter narrows a bucket scan. Zero-valued fields are skipped.
// Limit <= 0 means no limit (aggregation scans need the full range).
type MetricFilter struct {
	Service  string
	Level    string
	From     time.Time
	To       time.Time
	MinCount int
	Limit    int
}
