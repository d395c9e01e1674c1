package ecs

import (
	"github.com/phanxgames/slides"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for slideshow lifecycle
// events. Subscribe to this in your ECS systems to react to init, started,
// stopped, updated and animated.
var LifecycleEventType = events.NewEventType[slides.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to LifecycleEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) slides.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(event slides.Event) {
	LifecycleEventType.Publish(s.world, event)
}
