package ecs

import (
	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ComponentEventType is the Donburi event type for sprig component events.
// Subscribe to this in your ECS systems to learn when nodes gain or lose
// components.
var ComponentEventType = events.NewEventType[sprig.ComponentEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Component events are published to ComponentEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) sprig.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event sprig.ComponentEvent) {
	ComponentEventType.Publish(s.world, event)
}
