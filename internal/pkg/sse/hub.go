package sse

import (
	"sync"

	"github.com/cmlabs-hris/team-tracker-go/internal/domain/event"
	"github.com/google/uuid"
)

// Event represents an SSE event to be sent to subscribers
type Event struct {
	Event string
	Data  interface{}
}

// Hub fans store changes out to every connected stream
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]chan Event
	buffer      int
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]chan Event),
		buffer:      16,
	}
}

// Subscribe registers a new subscriber and returns its id, the event channel
// and a cleanup function
func (h *Hub) Subscribe() (string, <-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan Event, h.buffer)
	h.subscribers[id] = ch

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers, id)
			close(ch)
		})
	}

	return id, ch, cleanup
}

// Broadcast sends an event to all subscribers
func (h *Hub) Broadcast(e Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- e:
		default:
			// Skip if channel is full (non-blocking to prevent deadlock)
		}
	}
}

// Publish implements event.Publisher.
func (h *Hub) Publish(change event.Change) {
	h.Broadcast(Event{Event: change.Name(), Data: change})
}

// SubscriberCount returns the number of active subscribers
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers)
}
