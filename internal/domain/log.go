package domain

import "time"

// LogEvent is a single application log submission. Metadata is opaque to
// aggregation and stored verbatim alongside the raw event.
type LogEvent struct {
	Service   string
	Level     string
	Message   string
	Timestamp time.Time
	Metadata  map[string]any
}

// BucketKey identifies one aggregation bucket. BucketStart is a wall-clock
// minute start in the reference zone, seconds and sub-seconds zeroed.
type BucketKey struct {
	Service     string
	Level       string
	BucketStart time.Time
}

// MetricBucket is one row of the aggregated counts table. Count starts at 1
// on creation and only ever grows.
type MetricBucket struct {
	ID          int64     `db:"id"`
	Service     string    `db:"service"`
	Level       string    `db:"level"`
	Count       int       `db:"count"`
	BucketStart time.Time `db:"bucket_start"`
}

// AlertDecision is derived per ingested event, never stored.
type AlertDecision struct {
	IsAlert bool
	Message string
}

// AlertEntry is a rendered row of the alerts listing.
type AlertEntry struct {
	Service     string
	Level       string
	Count       int
	BucketStart time.Time
	Alert       string
}

// IngestResult is returned to the caller of a single ingestion.
// Count is the authoritative post-increment value for the event's bucket.
type IngestResult struct {
	Accepted       bool
	Count          int
	Alert          *string
	RawWriteFailed bool
}
