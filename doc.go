// Package slides is a full-viewport slideshow for [Ebitengine].
//
// A [Widget] attaches to a node tree. The children of the container node are
// the slides; each is shown one at a time at the size of the viewport, with
// image slides scaled to cover it and centered. Transitions either slide the
// next panel in from the side or fade the current one out, eased via [gween].
//
// # Quick start
//
//	root := slides.NewContainer("show")
//	container := slides.NewContainer("slides-container")
//	root.AddChild(container)
//	for _, img := range images {
//		container.AddChild(slides.NewImage("photo", img))
//	}
//
//	cfg := slides.DefaultConfig()
//	cfg.Play = 5 * time.Second
//	w := slides.New(root, cfg)
//	slides.Run(w, slides.RunConfig{Title: "Slides", Width: 1280, Height: 720, Resizable: true})
//
// A Widget is an [ebiten.Game]; embed it in a larger game by calling
// [Widget.Update], [Widget.Draw] and [Widget.Layout] yourself.
//
// # Navigation
//
// [Widget.Next], [Widget.Prev] and [Widget.GoTo] stop autoplay and request a
// transition. A request made while a transition is running is dropped, not
// queued. Children of the nav node named "next" and "prev" become buttons.
//
// # Events
//
// The widget emits [EventInit], [EventStarted], [EventStopped],
// [EventUpdated] and [EventAnimated]. Subscribe with [Widget.On], or set
// [Config.Events] to receive the events emitted while [New] runs. The ecs
// subpackage forwards them into a [Donburi] world.
//
// # Timing
//
// Everything runs on the game loop goroutine. Autoplay, resize debouncing
// and tweens advance with [Widget.Advance], which Update calls with one tick.
// Tests drive Advance directly to step time deterministically.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package slides
