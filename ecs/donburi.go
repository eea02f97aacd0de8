package ecs

import (
	"github.com/phanxgames/eventsys"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for eventsys interaction
// events. Subscribe to this in your ECS systems to receive them.
var InteractionEventType = events.NewEventType[eventsys.InteractionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) eventsys.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event eventsys.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
