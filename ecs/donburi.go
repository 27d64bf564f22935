package ecs

import (
	"github.com/phanxgames/flexgrid"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LayoutEventType is the Donburi event type for flexgrid layout events.
var LayoutEventType = events.NewEventType[flexgrid.LayoutEvent]()

type donburiObserver struct {
	world donburi.World
}

// NewDonburiObserver creates an Observer backed by a Donburi world. Layout
// events are published to LayoutEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiObserver(world donburi.World) flexgrid.Observer {
	return &donburiObserver{world: world}
}

func (o *donburiObserver) LayoutEvent(event flexgrid.LayoutEvent) {
	LayoutEventType.Publish(o.world, event)
}
