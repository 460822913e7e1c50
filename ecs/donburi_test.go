package ecs

import (
	"testing"

	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []sprig.ComponentEvent
	ComponentEventType.Subscribe(world, func(w donburi.World, e sprig.ComponentEvent) {
		received = append(received, e)
	})

	store.EmitEvent(sprig.ComponentEvent{
		Type:     sprig.EventComponentAdded,
		NodeID:   7,
		EntityID: 42,
		Tag:      sprig.TagRenderQuad,
	})
	store.EmitEvent(sprig.ComponentEvent{Type: sprig.EventComponentRemoved, NodeID: 7})

	// Events are queued; process them.
	ComponentEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != sprig.EventComponentAdded || e.EntityID != 42 || e.Tag != sprig.TagRenderQuad {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != sprig.EventComponentRemoved || e.NodeID != 7 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_SceneLifecycle(t *testing.T) {
	world := donburi.NewWorld()
	scene := sprig.NewScene()
	scene.SetEntityStore(NewDonburiStore(world))

	var types []sprig.EventType
	ComponentEventType.Subscribe(world, func(w donburi.World, e sprig.ComponentEvent) {
		types = append(types, e.Type)
	})

	n := sprig.NewColorNode("box", sprig.ColorWhite, sprig.Size{Width: 4, Height: 4})
	scene.Root().AddChild(n)
	n.RemoveComponentByTag(sprig.TagRenderQuad)
	n.AddComponent(sprig.NewRenderQuad(sprig.Size{}, sprig.ColorWhite))
	n.Dispose()
	events.ProcessAllEvents(world)

	// The quad from NewColorNode was attached before n joined the scene.
	want := []sprig.EventType{sprig.EventComponentRemoved, sprig.EventComponentAdded, sprig.EventComponentRemoved}
	if len(types) != len(want) {
		t.Fatalf("got %d events %v, want %v", len(types), types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %d, want %d", i, types[i], want[i])
		}
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store sprig.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}
