package slides

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerSource reports the primary pointer once per frame, in the same
// coordinate space the widget's root is drawn in.
type PointerSource interface {
	Pointer() (x, y float64, pressed bool)
}

// PointerFunc adapts a function to PointerSource.
type PointerFunc func() (x, y float64, pressed bool)

// Pointer calls f.
func (f PointerFunc) Pointer() (x, y float64, pressed bool) { return f() }

// ebitenPointer reads the first touch if any finger is down, otherwise the
// mouse cursor and left button.
type ebitenPointer struct{}

func (ebitenPointer) Pointer() (float64, float64, bool) {
	var buf [1]ebiten.TouchID
	if ids := ebiten.AppendTouchIDs(buf[:0]); len(ids) > 0 {
		tx, ty := ebiten.TouchPosition(ids[0])
		return float64(tx), float64(ty), true
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// pointerState tracks one pointer between press and release.
type pointerState struct {
	down    bool
	startX  float64
	startY  float64
	hitNode *Node
	button  MouseButton
}

// SetPointerSource replaces the pointer the widget reads each frame. Nil
// restores mouse and touch input.
func (w *Widget) SetPointerSource(p PointerSource) {
	if p == nil {
		p = ebitenPointer{}
	}
	w.pointer = p
	w.pointerState = pointerState{}
}

// processInput feeds one pointer sample through press and release detection.
// A queued synthetic event replaces the real pointer for the frame.
func (w *Widget) processInput() {
	if w.processInjectedInput() {
		return
	}
	x, y, pressed := w.pointer.Pointer()
	w.processPointer(x, y, pressed, MouseButtonLeft)
}

// processPointer records the node under a press and clicks it if the release
// lands on the same node.
func (w *Widget) processPointer(x, y float64, pressed bool, button MouseButton) {
	ps := &w.pointerState
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.button = button
		ps.hitNode = w.hitTest(x, y)

	case !pressed && ps.down:
		hit := ps.hitNode
		ps.down = false
		ps.hitNode = nil
		if hit != nil && hit == w.hitTest(x, y) {
			w.fireClick(hit, x, y, ps.button)
		}
	}
}

func (w *Widget) fireClick(n *Node, x, y float64, button MouseButton) {
	if n.OnClick == nil {
		return
	}
	lx, ly := n.WorldToLocal(x, y)
	n.OnClick(ClickContext{
		Node:    n,
		GlobalX: x,
		GlobalY: y,
		LocalX:  lx,
		LocalY:  ly,
		Button:  button,
	})
}

// hitTest returns the topmost interactable node under (x, y) within the
// widget's subtree, or nil. Nodes outside a clipping ancestor's box are
// unreachable, as are hidden or disposed nodes.
func (w *Widget) hitTest(x, y float64) *Node {
	return hitTestNode(w.root, x, y)
}

func hitTestNode(n *Node, x, y float64) *Node {
	if !n.Visible || n.disposed {
		return nil
	}
	bounds := n.WorldBounds()
	if n.Clip && !bounds.Contains(x, y) {
		return nil
	}
	children := n.paintOrder()
	for i := len(children) - 1; i >= 0; i-- {
		if hit := hitTestNode(children[i], x, y); hit != nil {
			return hit
		}
	}
	if n.Interactable && !bounds.Empty() && bounds.Contains(x, y) {
		return n
	}
	return nil
}
