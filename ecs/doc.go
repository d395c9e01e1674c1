// Package ecs provides ECS adapters for slideshow lifecycle events.
//
// [NewDonburiSink] bridges widget events (init, started, stopped, updated,
// animated) into a [Donburi] world as typed events. Subscribe to
// [LifecycleEventType] in your ECS systems to receive them.
//
// Usage:
//
//	cfg := slides.DefaultConfig()
//	cfg.Events = ecs.NewDonburiSink(world)
//	w := slides.New(root, cfg)
//
// or, after construction:
//
//	w.SetEventSink(ecs.NewDonburiSink(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
