// Package ecs provides ECS adapters for sprig's component lifecycle events.
//
// The primary adapter is [NewDonburiStore], which bridges sprig component
// events (added, removed) into a [Donburi] world as typed events.
// Subscribe to [ComponentEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
