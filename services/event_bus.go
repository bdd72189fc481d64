package services

import "sync"

// Event kinds broadcast on the bus. They mirror the change notifications the
// mini app listens for.
const (
	EventFoodSaved    = "foodSaved"
	EventGoalsUpdated = "goalsUpdated"
)

// Event is one change notification for one user.
type Event struct {
	Kind   string `json:"kind"`
	UserID int64  `json:"-"`
}

// EventBus is an in-process publish/subscribe channel with at-most-once
// delivery: publish never blocks, and a subscriber whose buffer is full
// misses the event. Consumers recompute their state on activation, so a
// missed event is not a correctness problem.
type EventBus struct {
	mu   sync.RWMutex
	subs map[chan Event]struct{}
}

func NewEventBus() *EventBus {
	return &EventBus{subs: make(map[chan Event]struct{})}
}

// Subscribe returns a receive channel and a cancel function. Cancel is
// idempotent and closes the channel.
func (b *EventBus) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 8)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
	}
	return ch, cancel
}

// Publish fans the event out without blocking. Slow subscribers drop it.
func (b *EventBus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}
