package kafkabroker

import (
	"context"
	"errors"
	"time"

	"github.com/logtide/logtide/internal/broker"
	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
)

const (
	handleRetryDelay    = time.Second
	handleRetryMaxDelay = 30 * time.Second
)

type ConsumerConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

type Consumer struct {
	reader     *kafka.Reader
	topic      string
	retryDelay time.Duration
	maxDelay   time.Duration
}

func NewConsumer(cfg ConsumerConfig) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})
	return &Consumer{
		reader:     r,
		topic:      cfg.Topic,
		retryDelay: handleRetryDelay,
		maxDelay:   handleRetryMaxDelay,
	}
}

// Run fetches messages until ctx is cancelled. Delivery is at-least-once: a
// message processed before a lost offset commit is redelivered after a
// restart, and a redelivered log event double-counts its bucket.
func (c *Consumer) Run(ctx context.Context, handle broker.Handler) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		if err := c.handleUntilDone(ctx, handle, msg.Value); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			log.Errorf("Failed to commit offset on %s: %v", c.topic, err)
		}
	}
}

// handleUntilDone retries a failed message in place with backoff.
// Committing any later message would move the group offset past this one,
// so the offset must not advance until the handler succeeds.
func (c *Consumer) handleUntilDone(ctx context.Context, handle broker.Handler, value []byte) error {
	delay := c.retryDelay
	for {
		err := handle(ctx, value)
		if err == nil {
			return nil
		}
		log.Errorf("Failed to handle message from %s, retrying in %s: %v", c.topic, delay, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		if delay *= 2; delay > c.maxDelay {
			delay = c.maxDelay
		}
	}
}

func (c *Consumer) Close() error {
	log.Info("Closing Kafka consumer...")
	return c.reader.Close()
}
