package publisher

import (
	"context"
	"log/slog"
	"sync"

	"comicvault/internal/domain"
)

// Bus fans favorite events out to in-process subscribers. Publishing never blocks: a
// subscriber whose buffer is full misses the event.
type Bus struct {
	mu     sync.RWMutex
	subs   map[uint64]chan domain.FavoriteEvent
	nextID uint64
	closed bool
	logger *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{
		subs:   make(map[uint64]chan domain.FavoriteEvent),
		logger: logger.With("component", "event_bus"),
	}
}

// Subscribe registers a subscriber. The returned cancel func unregisters it and closes
// the channel; calling it more than once is safe.
func (b *Bus) Subscribe(buffer int) (<-chan domain.FavoriteEvent, func()) {
	if buffer < 0 {
		buffer = 0
	}
	ch := make(chan domain.FavoriteEvent, buffer)

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
}

func (b *Bus) Notify(_ context.Context, event domain.FavoriteEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.logger.Warn("subscriber buffer full, event dropped",
				"subscriber", id,
				"type", event.Type,
			)
		}
	}
	return nil
}

// Subscribers returns the number of registered subscribers.
func (b *Bus) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close unregisters every subscriber and closes their channels.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
	b.closed = true
	return nil
}
