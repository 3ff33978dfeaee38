package gesture

// GestureEvent is the payload published for every recognized gesture.
// Handlers receive it by value and must treat the state snapshots as
// read-only; several handlers share the same pointers.
type GestureEvent struct {
	Kind     EventKind
	Raw      *TouchEvent
	Current  *TouchState
	Previous *TouchState // nil on the first sample after idle
	// SpreadChange is Current.Spread - Previous.Spread, valid for
	// TwoFingerMove only. It is 0 when Previous is nil.
	SpreadChange float64
}

// Publisher is the send side of a gesture bus.
type Publisher interface {
	Publish(ev GestureEvent)
}

// Subscriber is the receive side of a gesture bus.
type Subscriber interface {
	Subscribe(kind EventKind, fn func(GestureEvent)) CallbackHandle
}

// EntityStore is the interface for optional ECS integration.
// When set on a Bus, every published gesture is forwarded to it after the
// regular subscribers have run.
type EntityStore interface {
	EmitEvent(ev GestureEvent)
}

// --- Handler registry ---

// registry is implemented by everything that hands out CallbackHandles.
type registry interface {
	removeHandler(id uint32)
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id  uint32
	reg registry
}

// Remove unregisters this callback so it no longer fires. Removing twice, or
// removing a zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.removeHandler(h.id)
}

type gestureHandler struct {
	id uint32
	fn func(GestureEvent)
}

// Bus is a synchronous, string-keyed publish/subscribe hub for gesture
// events. Publish returns after every current subscriber has run.
// Bus is not safe for concurrent use; it lives on the input thread.
type Bus struct {
	handlers map[EventKind][]gestureHandler
	nextID   uint32
	store    EntityStore
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[EventKind][]gestureHandler)}
}

// Subscribe registers fn for events of the given kind. Subscribers run in
// registration order.
func (b *Bus) Subscribe(kind EventKind, fn func(GestureEvent)) CallbackHandle {
	b.nextID++
	id := b.nextID
	b.handlers[kind] = append(b.handlers[kind], gestureHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: b}
}

// Publish delivers ev to all subscribers of ev.Kind, then to the entity
// store if one is set.
func (b *Bus) Publish(ev GestureEvent) {
	for _, h := range b.handlers[ev.Kind] {
		h.fn(ev)
	}
	if b.store != nil {
		b.store.EmitEvent(ev)
	}
}

// NumSubscribers returns how many callbacks are registered for kind.
func (b *Bus) NumSubscribers(kind EventKind) int {
	return len(b.handlers[kind])
}

// SetEntityStore sets the optional ECS bridge. Pass nil to clear it.
func (b *Bus) SetEntityStore(store EntityStore) {
	b.store = store
}

func (b *Bus) removeHandler(id uint32) {
	for kind, s := range b.handlers {
		for i := range s {
			if s[i].id == id {
				// Full slice expression forces a fresh backing array so a
				// Publish iterating the old slice is not disturbed.
				b.handlers[kind] = append(s[:i:i], s[i+1:]...)
				return
			}
		}
	}
}
