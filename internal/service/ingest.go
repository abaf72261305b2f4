package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/logtide/logtide/internal/broker"
	"github.com/logtide/logtide/internal/domain"
	"github.com/logtide/logtide/internal/metrics"
	"github.com/logtide/logtide/internal/repo"
	"github.com/logtide/logtide/internal/repo/repoerrs"
	errorsUtils "github.com/logtide/logtide/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type IngestService struct {
	metricRepo repo.Metric
	rawRepo    repo.RawEvent
	producer   broker.Producer
	counters   *metrics.Counters
	threshold  int
	zone       *time.Location
}

func NewIngestService(mr repo.Metric, rr repo.RawEvent, p broker.Producer, cnt *metrics.Counters, threshold int, zone *time.Location) *IngestService {
	return &IngestService{
		metricRepo: mr,
		rawRepo:    rr,
		producer:   p,
		counters:   cnt,
		threshold:  threshold,
		zone:       zone,
	}
}

// Ingest runs the ingestion path for one event: validate, truncate the
// timestamp to its minute bucket, append the raw event, apply the atomic
// increment, evaluate the alert.
//
// The raw write is best-effort. Its failure is logged, counted and exposed on
// the result, but never rolls back or blocks the increment: the raw store and
// the aggregate store are separate systems. A metric-store failure, by
// contrast, fails the whole call. The returned count is the authoritative
// post-increment value from this call's own increment.
func (s *IngestService) Ingest(ctx context.Context, event *domain.LogEvent) (domain.IngestResult, error) {
	if err := validateEvent(event); err != nil {
		return domain.IngestResult{}, err
	}

	key := domain.NewBucketKey(event, s.zone)

	rawFailed := false
	if _, err := s.rawRepo.Store(ctx, event); err != nil {
		rawFailed = true
		s.counters.RawWriteFailures.Inc(event.Service)
		log.WithFields(log.Fields{
			"service": event.Service,
			"level":   event.Level,
			"error":   err,
		}).Warn("Raw event write failed, ingestion continues")
	}

	count, err := s.metricRepo.IncrementAndGet(ctx, key)
	if err != nil {
		log.WithFields(log.Fields{
			"service": event.Service,
			"level":   event.Level,
			"error":   err,
		}).Error("Failed to ingest log event")
		if errors.Is(err, repoerrs.ErrStorageUnavailable) {
			return domain.IngestResult{}, errorsUtils.WrapPathErr(ErrStorageUnavailable)
		}
		return domain.IngestResult{}, errorsUtils.WrapPathErr(ErrCannotIngest)
	}

	s.counters.EventsIngested.Inc(event.Service, event.Level)
	log.WithFields(log.Fields{
		"service": event.Service,
		"level":   event.Level,
		"count":   count,
	}).Info("Log event ingested")

	result := domain.IngestResult{
		Accepted:       true,
		Count:          count,
		RawWriteFailed: rawFailed,
	}

	decision := EvaluateAlert(count, s.threshold, event.Service, event.Level)
	if decision.IsAlert {
		result.Alert = &decision.Message
		s.counters.AlertsRaised.Inc(event.Service, event.Level)
		s.notifyAlert(ctx, key, count, decision.Message)
	}

	return result, nil
}

func validateEvent(event *domain.LogEvent) error {
	if event == nil {
		return errorsUtils.WrapPathErr(ErrInvalidEvent)
	}
	if event.Service == "" || event.Level == "" || event.Message == "" || event.Timestamp.IsZero() {
		return errorsUtils.WrapPathErr(ErrInvalidEvent)
	}
	return nil
}

type alertNotification struct {
	Service     string    `json:"service"`
	Level       string    `json:"level"`
	Count       int       `json:"count"`
	BucketStart time.Time `json:"bucket_start"`
	Message     string    `json:"message"`
}

// notifyAlert publishes the alert to the notifications topic, fire-and-forget.
func (s *IngestService) notifyAlert(ctx context.Context, key domain.BucketKey, count int, message string) {
	if s.producer == nil {
		return
	}
	payload, err := json.Marshal(alertNotification{
		Service:     key.Service,
		Level:       key.Level,
		Count:       count,
		BucketStart: key.BucketStart,
		Message:     message,
	})
	if err != nil {
		return
	}
	// SendMessage logs its own failure; an unreachable broker must not fail
	// an ingestion that has already been counted.
	_ = s.producer.SendMessage(ctx, payload)
}
