package queue

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	logginghelper "github.com/logtide/logtide/internal/controller/common/logging"
	"github.com/logtide/logtide/internal/controller/validators"
	"github.com/logtide/logtide/internal/domain"
	"github.com/logtide/logtide/internal/service"
	log "github.com/sirupsen/logrus"
)

type logEventMessage struct {
	Service   string         `json:"service"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Timestamp string         `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// LogConsumer turns queued log event messages into ingestions. The queue
// delivers at least once and carries no idempotency key, so a redelivered
// message double-counts its bucket; that limitation is accepted.
type LogConsumer struct {
	ingestService service.Ingest
	zone          *time.Location
}

func NewLogConsumer(is service.Ingest, zone *time.Location) *LogConsumer {
	return &LogConsumer{
		ingestService: is,
		zone:          zone,
	}
}

// Handle implements broker.Handler. Malformed or invalid messages are
// terminal: they are logged and committed, since redelivery cannot fix them.
// A storage failure is returned so the message stays uncommitted and the
// queue redelivers it.
func (c *LogConsumer) Handle(ctx context.Context, value []byte) error {
	var msg logEventMessage
	if err := json.Unmarshal(value, &msg); err != nil {
		log.Errorf("Dropping malformed queue message: %v", err)
		return nil
	}

	ts, err := validators.ParseTimestamp(msg.Timestamp, c.zone)
	if err != nil {
		log.Errorf("Dropping queue message with bad timestamp %q: %v", msg.Timestamp, err)
		return nil
	}

	event := &domain.LogEvent{
		Service:   msg.Service,
		Level:     msg.Level,
		Message:   msg.Message,
		Timestamp: ts,
		Metadata:  msg.Metadata,
	}
	if err := validators.Validate(event); err != nil {
		log.Errorf("Dropping invalid queue message: %v", err)
		return nil
	}

	logginghelper.LogReceived(event, "queue")

	if _, err := c.ingestService.Ingest(ctx, event); err != nil {
		if errors.Is(err, service.ErrInvalidEvent) {
			logginghelper.LogError(event, err)
			return nil
		}
		return err
	}
	return nil
}
