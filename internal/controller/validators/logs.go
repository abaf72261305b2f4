package validators

import (
	"errors"
	"strconv"
	"time"

	"github.com/logtide/logtide/internal/domain"
)

var (
	ErrEmptyService     = errors.New("service must be specified")
	ErrEmptyLevel       = errors.New("level must be specified")
	ErrEmptyMessage     = errors.New("message must be specified")
	ErrInvalidTimestamp = errors.New("timestamp is missing or unparseable")
	ErrInvalidLimit     = errors.New("limit must be a positive integer")
)

// MaxQueryLimit bounds a single listing response.
const MaxQueryLimit = 1000

// timestampLayouts accepted on the wire. Offset-less timestamps are
// interpreted in the reference zone; Go's parser accepts fractional seconds
// after the seconds field with either layout.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func Validate(event *domain.LogEvent) error {
	if event.Service == "" {
		return ErrEmptyService
	}
	if event.Level == "" {
		return ErrEmptyLevel
	}
	if event.Message == "" {
		return ErrEmptyMessage
	}
	if event.Timestamp.IsZero() {
		return ErrInvalidTimestamp
	}
	return nil
}

// ParseTimestamp parses a submitted timestamp string. A value carrying an
// offset keeps its absolute instant; a naive value is taken as wall-clock
// time in zone. Both call sites (HTTP and queue) go through here so the two
// entry points cannot diverge on timezone handling.
func ParseTimestamp(value string, zone *time.Location) (time.Time, error) {
	if value == "" {
		return time.Time{}, ErrInvalidTimestamp
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.ParseInLocation(layout, value, zone); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, ErrInvalidTimestamp
}

// ParseQueryLimit parses the limit query parameter. An empty value defers to
// the service default; values above MaxQueryLimit are capped.
func ParseQueryLimit(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, ErrInvalidLimit
	}
	if limit > MaxQueryLimit {
		return MaxQueryLimit, nil
	}
	return limit, nil
}
