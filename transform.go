package slides

// Nodes carry a translation only: a node's world position is the sum of the
// X/Y offsets along its parent chain, and its world alpha is the product of
// the alphas.

// --- Property setters ---

// SetPosition sets the node's local X and Y.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
}

// SetSize sets the node's box width and height.
func (n *Node) SetSize(w, h float64) {
	n.Width = w
	n.Height = h
}

// SetAlpha sets the node's alpha.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
}

// --- Coordinate conversion ---

// WorldPosition returns the node's top-left corner in world space.
func (n *Node) WorldPosition() (x, y float64) {
	for p := n; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
	}
	return x, y
}

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	ox, oy := n.WorldPosition()
	return wx - ox, wy - oy
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	ox, oy := n.WorldPosition()
	return lx + ox, ly + oy
}

// WorldBounds returns the node's box in world space.
func (n *Node) WorldBounds() Rect {
	x, y := n.WorldPosition()
	return Rect{X: x, Y: y, Width: n.Width, Height: n.Height}
}

// worldAlpha returns the product of the alphas along the parent chain.
func (n *Node) worldAlpha() float64 {
	a := 1.0
	for p := n; p != nil; p = p.Parent {
		a *= p.Alpha
	}
	return a
}

// effectivelyVisible reports whether n and every ancestor are visible.
func (n *Node) effectivelyVisible() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.Visible {
			return false
		}
	}
	return true
}
