// Package events implements the deferred, per-call-frame event dispatch of
// §5/§9: listeners registered on an Asset must never observe intermediate
// state mid-mutation. Each owner (an OriginalsAsset) holds one Bus; events
// queued during a mutating call are drained only after that call returns.
package events

import "sync"

// Event is a single emitted fact. Name is e.g. "resource:version:created",
// "asset:migrated", "credential:issued"; Data is event-specific.
type Event struct {
	Name string
	Data interface{}
}

// Handler receives delivered events.
type Handler func(Event)

// Bus is a single-producer, single-consumer deferred dispatcher scoped to
// one owner (one Asset). It is not safe for concurrent mutation from
// multiple goroutines on the same owner (§5 shared-resource policy), but
// distinct owners may run interleaved without interference since each has
// its own Bus.
type Bus struct {
	mu       sync.Mutex
	handlers []Handler
	pending  []Event
	depth    int
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	return &Bus{}
}

// On registers a handler. Order of registration is the delivery order for
// events of the same name.
func (b *Bus) On(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Enter marks the start of a mutating call frame. Frames may nest (a method
// calling another method on the same owner); delivery only happens once the
// outermost frame exits.
func (b *Bus) Enter() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.depth++
}

// Emit queues an event for delivery once the outermost call frame returns.
// Provenance-ordering guarantee: events are delivered in the order Emit was
// called, in commit order, never reordered.
func (b *Bus) Emit(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = append(b.pending, ev)
}

// Exit marks the end of a mutating call frame. On the outermost Exit, every
// event queued since the matching Enter (and any nested Enter/Exit pairs)
// is delivered synchronously, in order, to every registered handler.
func (b *Bus) Exit() {
	b.mu.Lock()
	b.depth--
	if b.depth > 0 {
		b.mu.Unlock()
		return
	}

	toDeliver := b.pending
	b.pending = nil
	handlers := append([]Handler{}, b.handlers...)
	b.mu.Unlock()

	for _, ev := range toDeliver {
		for _, h := range handlers {
			h(ev)
		}
	}
}
