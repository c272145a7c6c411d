// Package ecs provides ECS adapters for burrow simulation events.
//
// The primary adapter is [NewDonburiSink], which forwards bunny captures into
// a [Donburi] world as typed events. Subscribe to [CaptureEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	world := donburi.NewWorld()
//	game := burrow.NewBunnyGame(surface, loader, burrow.BunnyOptions{
//		Sink: ecs.NewDonburiSink(world),
//	})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
