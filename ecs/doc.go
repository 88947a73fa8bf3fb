// Package ecs provides ECS adapters for willowui's input events.
//
// The primary adapter is [NewDonburiSink], which forwards every routed
// input event (mouse, key, text) into a [Donburi] world as a typed event.
// Subscribe to [InputEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	ui.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
