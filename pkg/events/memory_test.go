package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/events"
)

type strength struct {
	Field string
	Score int
}

func TestMemoryBroadcaster(t *testing.T) {
	t.Run("delivers to every subscriber", func(t *testing.T) {
		bus := events.NewMemoryBroadcaster[strength](4)
		defer bus.Close()

		ctx := context.Background()
		a := bus.Subscribe(ctx)
		b := bus.Subscribe(ctx)

		msg := events.NewMessage(strength{Field: "password", Score: 3})
		require.NoError(t, bus.Broadcast(ctx, msg))

		for _, sub := range []events.Subscriber[strength]{a, b} {
			select {
			case got := <-sub.Receive(ctx):
				assert.Equal(t, msg.ID, got.ID)
				assert.Equal(t, 3, got.Data.Score)
			case <-time.After(time.Second):
				t.Fatal("message not delivered")
			}
		}
	})

	t.Run("messages carry unique ids", func(t *testing.T) {
		m1 := events.NewMessage(1)
		m2 := events.NewMessage(1)
		assert.NotEmpty(t, m1.ID)
		assert.NotEqual(t, m1.ID, m2.ID)
	})

	t.Run("cancelled context unsubscribes", func(t *testing.T) {
		bus := events.NewMemoryBroadcaster[strength](1)
		defer bus.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := bus.Subscribe(ctx)
		cancel()

		assert.Eventually(t, func() bool {
			select {
			case _, open := <-sub.Receive(context.Background()):
				return !open
			default:
				return false
			}
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("closed broadcaster returns closed subscribers", func(t *testing.T) {
		bus := events.NewMemoryBroadcaster[strength](1)
		require.NoError(t, bus.Close())
		require.NoError(t, bus.Close())

		sub := bus.Subscribe(context.Background())
		_, open := <-sub.Receive(context.Background())
		assert.False(t, open)
		assert.NoError(t, bus.Broadcast(context.Background(), events.NewMessage(strength{})))
	})
}
