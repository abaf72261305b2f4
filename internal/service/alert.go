package service

import (
	"fmt"
	"time"

	"github.com/logtide/logtide/internal/domain"
)

const alertTimeLayout = "2006-01-02 15:04:05"

// EvaluateAlert decides the alert state for one ingestion. It is evaluated
// on every event, so each event landing in an already-over-threshold bucket
// produces an alert again, not only the crossing one.
func EvaluateAlert(count, threshold int, service, level string) domain.AlertDecision {
	if count < threshold {
		return domain.AlertDecision{}
	}
	return domain.AlertDecision{
		IsAlert: true,
		Message: fmt.Sprintf("ALERT: %d occurrences of %s in service %s", count, level, service),
	}
}

// RenderAlertEntry formats a stored over-threshold bucket for the alerts
// listing, including the bucket start.
func RenderAlertEntry(count int, service, level string, bucketStart time.Time) string {
	return fmt.Sprintf("ALERT: %d occurrences of %s in service %s at %s",
		count, level, service, bucketStart.Format(alertTimeLayout))
}
