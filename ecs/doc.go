// Package ecs provides ECS adapters for eventsys interaction events.
//
// The primary adapter is [NewDonburiSink], which bridges dispatched events
// (hover, press, click, drag, selection, navigation) into a [Donburi] world
// as typed events. Subscribe to [InteractionEventType] in your ECS systems to
// receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	sys.SetEventSink(sink)
//
// Only nodes with a non-zero EntityID are forwarded.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
