package broker

import "context"

type Producer interface {
	SendMessage(ctx context.Context, value []byte) error
}

// Handler processes one delivered message. A nil return commits the message;
// an error leaves it uncommitted and the consumer retries it before moving on.
type Handler func(ctx context.Context, value []byte) error
