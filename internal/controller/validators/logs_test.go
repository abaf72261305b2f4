package validators_test

import (
	"testing"
	"time"

	"github.com/logtide/logtide/internal/controller/validators"
	"github.com/logtide/logtide/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	valid := domain.LogEvent{
		Service:   "auth",
		Level:     "ERROR",
		Message:   "login failed",
		Timestamp: time.Now(),
	}

	testCases := []struct {
		name    string
		mutate  func(e *domain.LogEvent)
		wantErr error
	}{
		{
			name:    "valid event",
			mutate:  func(e *domain.LogEvent) {},
			wantErr: nil,
		},
		{
			name:    "empty service",
			mutate:  func(e *domain.LogEvent) { e.Service = "" },
			wantErr: validators.ErrEmptyService,
		},
		{
			name:    "empty level",
			mutate:  func(e *domain.LogEvent) { e.Level = "" },
			wantErr: validators.ErrEmptyLevel,
		},
		{
			name:    "empty message",
			mutate:  func(e *domain.LogEvent) { e.Message = "" },
			wantErr: validators.ErrEmptyMessage,
		},
		{
			name:    "zero timestamp",
			mutate:  func(e *domain.LogEvent) { e.Timestamp = time.Time{} },
			wantErr: validators.ErrInvalidTimestamp,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event := valid
			tc.mutate(&event)

			err := validators.Validate(&event)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	utc := time.UTC

	testCases := []struct {
		name    string
		value   string
		zone    *time.Location
		want    time.Time
		wantErr bool
	}{
		{
			name:  "RFC3339 with offset keeps the instant",
			value: "2025-03-10T14:30:45+02:00",
			zone:  utc,
			want:  time.Date(2025, 3, 10, 12, 30, 45, 0, utc),
		},
		{
			name:  "naive timestamp interpreted in reference zone",
			value: "2025-03-10T12:30:45",
			zone:  utc,
			want:  time.Date(2025, 3, 10, 12, 30, 45, 0, utc),
		},
		{
			name:  "naive with fractional seconds",
			value: "2025-03-10T12:30:45.500",
			zone:  utc,
			want:  time.Date(2025, 3, 10, 12, 30, 45, 500_000_000, utc),
		},
		{
			name:  "naive parsed in non-UTC reference zone",
			value: "2025-03-10T12:30:45",
			zone:  time.FixedZone("BRT", -3*3600),
			want:  time.Date(2025, 3, 10, 15, 30, 45, 0, utc),
		},
		{
			name:    "empty value",
			value:   "",
			zone:    utc,
			wantErr: true,
		},
		{
			name:    "garbage value",
			value:   "yesterday at noon",
			zone:    utc,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := validators.ParseTimestamp(tc.value, tc.zone)
			if tc.wantErr {
				assert.ErrorIs(t, err, validators.ErrInvalidTimestamp)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %v, got %v", tc.want, got)
		})
	}
}

func TestParseQueryLimit(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{
			name: "empty value defers to the default",
			raw:  "",
			want: 0,
		},
		{
			name: "positive value passes through",
			raw:  "25",
			want: 25,
		},
		{
			name: "value above the cap is capped",
			raw:  "5000",
			want: validators.MaxQueryLimit,
		},
		{
			name:    "non-numeric value is rejected",
			raw:     "lots",
			wantErr: true,
		},
		{
			name:    "zero is rejected",
			raw:     "0",
			wantErr: true,
		},
		{
			name:    "negative value is rejected",
			raw:     "-5",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := validators.ParseQueryLimit(tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, validators.ErrInvalidLimit)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
