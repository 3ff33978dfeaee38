package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType is the Donburi event type for gesture events.
// Subscribe to this in your ECS systems to receive drag and pinch gestures.
var GestureEventType = events.NewEventType[gesture.GestureEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
//
// Gestures are queued on GestureEventType, not delivered: bus subscribers
// have already run when an ECS subscriber sees one. Call
// GestureEventType.ProcessEvents(world) once per frame after the input for
// that frame has been dispatched (after Scene.Update); events published
// before that call are delivered in publish order, and nothing arrives
// until it is made.
func NewDonburiStore(world donburi.World) gesture.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(ev gesture.GestureEvent) {
	GestureEventType.Publish(s.world, ev)
}
