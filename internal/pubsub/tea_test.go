package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestListenCmd_ReceivesEvent(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := broker.Subscribe(ctx)
	broker.Publish(CreatedEvent, "entry one")

	msg := ListenCmd(ctx, ch)()

	event, ok := msg.(Event[string])
	require.True(t, ok, "msg should be Event[string]")
	require.Equal(t, "entry one", event.Payload)
	require.Equal(t, CreatedEvent, event.Type)
}

func TestListenCmd_ContextCancelled(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := broker.Subscribe(ctx)

	cancel()
	time.Sleep(20 * time.Millisecond)

	msg := ListenCmd(ctx, ch)()
	require.Nil(t, msg, "should return nil when context cancelled")
}

func TestListenCmd_ChannelClosed(t *testing.T) {
	ch := make(chan Event[string])
	close(ch)

	msg := ListenCmd(context.Background(), ch)()
	require.Nil(t, msg, "should return nil when channel closed")
}

func TestContinuousListener_DrainsInOrder(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewContinuousListener(ctx, broker)

	broker.Publish(CreatedEvent, 1)
	broker.Publish(CreatedEvent, 2)
	broker.Publish(CreatedEvent, 3)

	for want := 1; want <= 3; want++ {
		msg := listener.Listen()()
		event, ok := msg.(Event[int])
		require.True(t, ok, "msg should be Event[int]")
		require.Equal(t, want, event.Payload)
	}
}
