// Package ecs provides ECS adapters for flexgrid's layout lifecycle events.
//
// The primary adapter is [NewDonburiObserver], which publishes layout
// invalidations and completed passes into a [Donburi] world as typed events.
// Subscribe to [LayoutEventType] in your ECS systems to receive them, for
// example to rebuild visible cell entities after a pass.
//
// Usage:
//
//	obs := ecs.NewDonburiObserver(world)
//	grid.SetObserver(obs)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
