package domain

import "time"

// BucketStart maps a timestamp to the start of its minute in zone.
// The input is first converted into zone, so two events naming the same
// absolute instant land in the same bucket regardless of their source offset.
// Idempotent: BucketStart(BucketStart(t)) == BucketStart(t).
func BucketStart(t time.Time, zone *time.Location) time.Time {
	local := t.In(zone)
	return time.Date(local.Year(), local.Month(), local.Day(), local.Hour(), local.Minute(), 0, 0, zone)
}

// NewBucketKey builds the aggregation key for an event.
func NewBucketKey(event *LogEvent, zone *time.Location) BucketKey {
	return BucketKey{
		Service:     event.Service,
		Level:       event.Level,
		BucketStart: BucketStart(event.Timestamp, zone),
	}
}
