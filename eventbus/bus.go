package eventbus

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// entry is the internal, payload-erased form of a subscription. Public
// Subscribe/Once wrap a typed Listener[P] into one of these by closing
// over a type assertion; Emit only ever sees `any`.
type entry struct {
	id   uint64
	fn   func(payload any)
	once bool
}

// Bus is a typed pub/sub dispatcher over a fixed set of events of type E
// (typically a small string or int enum). Payload types are carried
// per-event by the caller via the generic Subscribe/Once/Emit functions
// below; Bus itself stores payloads as `any`.
//
// The zero value is not usable; construct with New.
type Bus[E comparable] struct {
	mu        sync.RWMutex
	listeners map[E][]entry
	nextID    atomic.Uint64
	logger    zerolog.Logger
}

// Option configures a Bus at construction time.
type Option[E comparable] func(*Bus[E])

// WithLogger overrides the zerolog.Logger used to report recovered
// listener failures. The default is zerolog's global logger.
func WithLogger[E comparable](logger zerolog.Logger) Option[E] {
	return func(b *Bus[E]) {
		b.logger = logger
	}
}

// New constructs an empty Bus.
func New[E comparable](opts ...Option[E]) *Bus[E] {
	b := &Bus[E]{
		listeners: make(map[E][]entry),
		logger:    log.Logger,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// subscribe registers fn (already payload-erased) for event and returns
// an Unsubscribe handle. once marks the entry for automatic removal
// after its first dispatch, whether or not the listener panicked.
func (b *Bus[E]) subscribe(event E, fn func(any), once bool) Unsubscribe {
	id := b.nextID.Add(1)

	b.mu.Lock()
	b.listeners[event] = append(b.listeners[event], entry{id: id, fn: fn, once: once})
	b.mu.Unlock()

	var unsubscribed atomic.Bool
	return func() {
		if !unsubscribed.CompareAndSwap(false, true) {
			return // already unsubscribed; no-op
		}
		b.removeByID(event, id)
	}
}

func (b *Bus[E]) removeByID(event E, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries := b.listeners[event]
	for i, e := range entries {
		if e.id == id {
			b.listeners[event] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// RemoveAll removes every listener for event. If no event is given (the
// zero value of E), callers should iterate their own known events; Bus
// does not track "all events ever used" to keep the contract O(1).
func (b *Bus[E]) RemoveAll(event E) {
	b.mu.Lock()
	delete(b.listeners, event)
	b.mu.Unlock()
}

// ListenerCount returns the number of listeners currently registered for
// event, including pending once-listeners not yet fired.
func (b *Bus[E]) ListenerCount(event E) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.listeners[event])
}

// emit dispatches payload to every listener registered for event at the
// moment of the call. It takes a snapshot of the listener slice before
// iterating so a listener mutating the subscription list mid-dispatch
// (Subscribe/Unsubscribe) never corrupts this call's iteration, per the
// "iterate a snapshot" contract.
func (b *Bus[E]) emit(event E, payload any) {
	b.mu.RLock()
	snapshot := make([]entry, len(b.listeners[event]))
	copy(snapshot, b.listeners[event])
	b.mu.RUnlock()

	var onceIDs []uint64
	for _, e := range snapshot {
		b.dispatchOne(event, e, payload)
		if e.once {
			onceIDs = append(onceIDs, e.id)
		}
	}

	for _, id := range onceIDs {
		b.removeByID(event, id)
	}
}

// dispatchOne invokes a single listener, recovering from panics so one
// failing listener never interrupts dispatch to the rest and never
// reaches the emitter. This is the only listener-failure handling point
// in vgrid.
func (b *Bus[E]) dispatchOne(event E, e entry, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Warn().
				Interface("event", event).
				Interface("recovered", r).
				Msg("eventbus: listener panicked, dispatch continuing")
		}
	}()
	e.fn(payload)
}

// Subscribe registers a typed listener for event and returns a function
// that removes it. Subscribe is a free function (not a Bus method)
// because Go methods cannot carry their own type parameters; the payload
// type P is supplied at the call site instead.
func Subscribe[E comparable, P any](b *Bus[E], event E, fn Listener[P]) (Unsubscribe, error) {
	if fn == nil {
		return nil, ErrNilListener
	}
	wrapped := func(payload any) {
		p, ok := payload.(P)
		if !ok {
			// A payload of the wrong type for this event is a programmer
			// error in the emitting component, not a listener failure;
			// surface it loudly rather than silently dropping the event.
			panic(fmt.Sprintf("eventbus: payload type mismatch for event %v: got %T", event, payload))
		}
		fn(p)
	}
	return b.subscribe(event, wrapped, false), nil
}

// Once registers a listener that automatically unsubscribes itself after
// its first invocation.
func Once[E comparable, P any](b *Bus[E], event E, fn Listener[P]) (Unsubscribe, error) {
	if fn == nil {
		return nil, ErrNilListener
	}
	wrapped := func(payload any) {
		p, ok := payload.(P)
		if !ok {
			panic(fmt.Sprintf("eventbus: payload type mismatch for event %v: got %T", event, payload))
		}
		fn(p)
	}
	return b.subscribe(event, wrapped, true), nil
}

// Emit broadcasts payload to every listener currently subscribed to
// event. Emission happens synchronously and after the caller has already
// applied its mutation, so listeners observe post-mutation state.
func Emit[E comparable, P any](b *Bus[E], event E, payload P) {
	b.emit(event, payload)
}
