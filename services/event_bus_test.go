package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBusDelivers(t *testing.T) {
	bus := NewEventBus()
	ch, cancel := bus.Subscribe()
	defer cancel()

	bus.Publish(Event{Kind: EventFoodSaved, UserID: 1})

	select {
	case e := <-ch:
		assert.Equal(t, EventFoodSaved, e.Kind)
		assert.Equal(t, int64(1), e.UserID)
	default:
		t.Fatal("event not delivered")
	}
}

func TestEventBusPublishNeverBlocks(t *testing.T) {
	bus := NewEventBus()
	_, cancel := bus.Subscribe() // subscriber that never reads
	defer cancel()

	// more events than the subscriber buffer holds; extras are dropped
	for i := 0; i < 100; i++ {
		bus.Publish(Event{Kind: EventGoalsUpdated, UserID: 1})
	}
}

func TestEventBusCancelStopsDelivery(t *testing.T) {
	bus := NewEventBus()
	ch, cancel := bus.Subscribe()
	cancel()
	cancel() // idempotent

	bus.Publish(Event{Kind: EventFoodSaved, UserID: 1})

	_, open := <-ch
	require.False(t, open, "channel must be closed after cancel")
}

func TestEventBusFanOut(t *testing.T) {
	bus := NewEventBus()
	ch1, cancel1 := bus.Subscribe()
	defer cancel1()
	ch2, cancel2 := bus.Subscribe()
	defer cancel2()

	bus.Publish(Event{Kind: EventFoodSaved, UserID: 7})

	assert.Len(t, ch1, 1)
	assert.Len(t, ch2, 1)
}
