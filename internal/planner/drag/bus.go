package drag

import "sync"

// ============================================================
// Pointer events
// ============================================================

type EventKind int

const (
	PointerMove EventKind = iota
	PointerUp
)

// Event is a pointer sample in viewport pixels.
type Event struct {
	Kind EventKind
	X, Y float64
}

// Bus fans pointer events out to subscribers. It plays the role of the
// window-level listener registry: the controller subscribes when a drag
// starts and unsubscribes when it ends.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Event)
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Event))}
}

// Subscribe registers fn and returns its unsubscribe function. Calling the
// returned function more than once is harmless.
func (b *Bus) Subscribe(fn func(Event)) func() {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Publish delivers e to every current subscriber, in no particular order.
// Subscribers may unsubscribe from inside the callback.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	fns := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}

// Subscribers reports how many listeners are attached.
func (b *Bus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
