package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

func TestBroker_publish(t *testing.T) {
	broker := NewBroker[string](noopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := broker.Subscribe(ctx)

	broker.Publish(CreatedEvent, "payload")

	assert.Equal(t, Event[string]{Type: CreatedEvent, Payload: "payload"}, <-sub)
}

func TestBroker_unsubscribeOnCancel(t *testing.T) {
	broker := NewBroker[string](noopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	sub := broker.Subscribe(ctx)

	cancel()

	// the channel is closed once the cancellation propagates
	for range sub {
	}
}

func TestBroker_unsubscribeFullSubscriber(t *testing.T) {
	broker := NewBroker[int](noopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := broker.Subscribe(ctx)

	for i := 0; i < subBufferSize+1; i++ {
		broker.Publish(UpdatedEvent, i)
	}

	// the subscriber was forcibly unsubscribed; only the buffered events
	// remain and the channel is closed
	var got int
	for range sub {
		got++
	}
	require.Equal(t, subBufferSize, got)
}
