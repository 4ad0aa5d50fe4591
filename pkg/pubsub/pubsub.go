package pubsub

import (
	"context"
	"time"
)

// Pack is the unit carried by a topic.
type Pack struct {
	Key []byte
	Msg []byte
}

type Publisher interface {
	Publish(context.Context, string, *Pack) error
	Stop(context.Context) error
}

type SubscribeHandler func(context.Context, *Pack, time.Time)

type Subscriber interface {
	// Subscribe blocks until the subscriber joins its group, then keeps
	// consuming in background until ctx is done.
	Subscribe(ctx context.Context) error
	Stop(ctx context.Context) error
}

type nopPublisher struct{}

// NewNopPublisher discards everything, it is used when no broker is
// configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, string, *Pack) error { return nil }
func (nopPublisher) Stop(context.Context) error                   { return nil }
