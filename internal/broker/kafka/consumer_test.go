package kafkabroker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConsumer_HandleUntilDone(t *testing.T) {
	t.Run("transient failure is retried until the handler succeeds", func(t *testing.T) {
		c := &Consumer{
			topic:      "logs",
			retryDelay: time.Millisecond,
			maxDelay:   4 * time.Millisecond,
		}

		calls := 0
		handle := func(_ context.Context, _ []byte) error {
			calls++
			if calls < 3 {
				return errors.New("storage unavailable")
			}
			return nil
		}

		err := c.handleUntilDone(context.Background(), handle, []byte(`{}`))

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("failing message is never skipped, only cancellation ends the retry", func(t *testing.T) {
		c := &Consumer{
			topic:      "logs",
			retryDelay: time.Millisecond,
			maxDelay:   4 * time.Millisecond,
		}

		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		handle := func(_ context.Context, _ []byte) error {
			calls++
			if calls == 5 {
				cancel()
			}
			return errors.New("storage unavailable")
		}

		err := c.handleUntilDone(ctx, handle, []byte(`{}`))

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 5, calls)
	})
}
