package ecs

import (
	"github.com/phanxgames/willowui"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEventType is the Donburi event type for willowui input events.
// Subscribe to this in your ECS systems to observe routed mouse, key and
// text input along with whether a widget handled it.
var InputEventType = events.NewEventType[willowui.InputEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Input
// events are published to InputEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) willowui.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitInput(event willowui.InputEvent) {
	InputEventType.Publish(s.world, event)
}

// Unhandled returns a subscriber that calls fn only for input no widget
// consumed, so gameplay systems can act on clicks that fell through the UI.
func Unhandled(fn func(w donburi.World, e willowui.InputEvent)) func(donburi.World, willowui.InputEvent) {
	return func(w donburi.World, e willowui.InputEvent) {
		if !e.Handled {
			fn(w, e)
		}
	}
}
