// Package ecs provides ECS adapters for gesture events.
//
// The primary adapter is [NewDonburiStore], which bridges published
// gestures (one-finger drag, two-finger pinch) into a [Donburi] world as
// typed events. Subscribe to [GestureEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.Bus().SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
