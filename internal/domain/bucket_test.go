package domain_test

import (
	"testing"
	"time"

	"github.com/logtide/logtide/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBucketStart(t *testing.T) {
	utc := time.UTC

	testCases := []struct {
		name string
		ts   time.Time
		zone *time.Location
		want time.Time
	}{
		{
			name: "zeroes seconds and sub-seconds",
			ts:   time.Date(2025, 3, 10, 12, 30, 45, 500_000_000, utc),
			zone: utc,
			want: time.Date(2025, 3, 10, 12, 30, 0, 0, utc),
		},
		{
			name: "already on minute boundary",
			ts:   time.Date(2025, 3, 10, 12, 30, 0, 0, utc),
			zone: utc,
			want: time.Date(2025, 3, 10, 12, 30, 0, 0, utc),
		},
		{
			name: "converts source offset into reference zone",
			ts:   time.Date(2025, 3, 10, 14, 30, 10, 0, time.FixedZone("CEST", 2*3600)),
			zone: utc,
			want: time.Date(2025, 3, 10, 12, 30, 0, 0, utc),
		},
		{
			name: "non-UTC reference zone",
			ts:   time.Date(2025, 3, 10, 12, 30, 59, 0, utc),
			zone: time.FixedZone("BRT", -3*3600),
			want: time.Date(2025, 3, 10, 9, 30, 0, 0, time.FixedZone("BRT", -3*3600)),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := domain.BucketStart(tc.ts, tc.zone)
			assert.True(t, tc.want.Equal(got), "want %v, got %v", tc.want, got)
		})
	}
}

func TestBucketStart_Idempotent(t *testing.T) {
	utc := time.UTC
	ts := time.Date(2025, 3, 10, 12, 30, 45, 123_456_789, utc)

	once := domain.BucketStart(ts, utc)
	twice := domain.BucketStart(once, utc)

	assert.True(t, once.Equal(twice))
}

func TestBucketStart_SameMinuteSameBucket(t *testing.T) {
	utc := time.UTC

	a := domain.BucketStart(time.Date(2025, 3, 10, 12, 30, 45, 500_000_000, utc), utc)
	b := domain.BucketStart(time.Date(2025, 3, 10, 12, 30, 0, 1_000_000, utc), utc)

	assert.True(t, a.Equal(b))
}

func TestBucketStart_CrossMinuteIsolation(t *testing.T) {
	utc := time.UTC

	a := domain.BucketStart(time.Date(2025, 3, 10, 12, 30, 59, 999_000_000, utc), utc)
	b := domain.BucketStart(time.Date(2025, 3, 10, 12, 31, 0, 0, utc), utc)

	assert.False(t, a.Equal(b))
	assert.True(t, b.Sub(a) == time.Minute)
}

func TestNewBucketKey(t *testing.T) {
	utc := time.UTC
	event := &domain.LogEvent{
		Service:   "auth",
		Level:     "ERROR",
		Message:   "boom",
		Timestamp: time.Date(2025, 3, 10, 12, 30, 45, 0, utc),
	}

	key := domain.NewBucketKey(event, utc)

	assert.Equal(t, "auth", key.Service)
	assert.Equal(t, "ERROR", key.Level)
	assert.True(t, key.BucketStart.Equal(time.Date(2025, 3, 10, 12, 30, 0, 0, utc)))
}
