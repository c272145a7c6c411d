package burrow

// CaptureEvent is emitted once for every bunny that falls into the hole.
type CaptureEvent struct {
	// Total is the captured count after this capture.
	Total int
	// Remaining is the live bunny count after this capture.
	Remaining int
	// X and Y are the bunny's position when captured.
	X, Y float64
}

// EventSink receives simulation events. The ecs package provides a Donburi
// backed implementation.
type EventSink interface {
	EmitCapture(event CaptureEvent)
}
