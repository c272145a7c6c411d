package ecs

import (
	"github.com/phanxgames/burrow"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CaptureEventType is the Donburi event type for bunny captures.
var CaptureEventType = events.NewEventType[burrow.CaptureEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Captures
// are queued on CaptureEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) burrow.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitCapture(event burrow.CaptureEvent) {
	CaptureEventType.Publish(s.world, event)
}

// CaptureCounter tallies capture events delivered through a Donburi world.
type CaptureCounter struct {
	Total     int
	Remaining int
	LastX     float64
	LastY     float64
}

// SubscribeCounter registers a CaptureCounter on world and returns it. The
// counter is updated each time CaptureEventType.ProcessEvents runs.
func SubscribeCounter(world donburi.World) *CaptureCounter {
	c := &CaptureCounter{}
	CaptureEventType.Subscribe(world, func(w donburi.World, e burrow.CaptureEvent) {
		c.Total++
		c.Remaining = e.Remaining
		c.LastX, c.LastY = e.X, e.Y
	})
	return c
}
