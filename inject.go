package slides

// syntheticPointerEvent is a queued pointer sample. Coordinates are the same
// ones a PointerSource reports, so injected input hits exactly what real
// input would.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

// InjectPress queues a left-button press at (x, y). The event is consumed on
// the next frame in place of the real pointer.
func (w *Widget) InjectPress(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectRelease queues a release at (x, y).
func (w *Widget) InjectRelease(x, y float64) {
	w.injectQueue = append(w.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: false,
		button:  MouseButtonLeft,
	})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two frames.
func (w *Widget) InjectClick(x, y float64) {
	w.InjectPress(x, y)
	w.InjectRelease(x, y)
}

// InjectClickNode queues a click at the center of n.
func (w *Widget) InjectClickNode(n *Node) {
	b := n.WorldBounds()
	w.InjectClick(b.X+b.Width/2, b.Y+b.Height/2)
}

// PendingInput returns the number of queued synthetic events.
func (w *Widget) PendingInput() int {
	return len(w.injectQueue)
}

// processInjectedInput pops one queued event and feeds it through
// processPointer. It reports whether an event was consumed.
func (w *Widget) processInjectedInput() bool {
	if len(w.injectQueue) == 0 {
		return false
	}
	evt := w.injectQueue[0]
	copy(w.injectQueue, w.injectQueue[1:])
	w.injectQueue = w.injectQueue[:len(w.injectQueue)-1]

	w.processPointer(evt.x, evt.y, evt.pressed, evt.button)
	return true
}
