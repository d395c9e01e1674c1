package slides

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// ClickContext carries click event data.
type ClickContext struct {
	Node    *Node
	GlobalX float64
	GlobalY float64
	LocalX  float64
	LocalY  float64
	Button  MouseButton
}

// nodeIDCounter is a plain counter (no atomic; slides is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the element a widget lays out: the widget box, the control track,
// the slide container, each slide panel, and anything inside a panel. A single
// flat struct is used for all node types.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Box, relative to the parent.
	X, Y          float64
	Width, Height float64

	// Visibility & ordering
	Alpha   float64
	Visible bool
	ZIndex  int

	// Clip restricts drawing of the node's subtree to its own box.
	Clip bool

	// Image fields (NodeTypeImage). NaturalWidth and NaturalHeight are the
	// intrinsic pixel size, filled from Image by NewImage.
	Image         *ebiten.Image
	NaturalWidth  float64
	NaturalHeight float64
	aspect        float64 // cached by Scale; 0 until first computed

	// Rect fields (NodeTypeRect)
	Color Color

	// Interaction
	Interactable bool
	OnClick      func(ClickContext)

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted traversal order
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.childrenSorted = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewImage creates an image node. The node's box and natural size start at
// the image's pixel size; a nil image leaves both zero.
func NewImage(name string, img *ebiten.Image) *Node {
	n := &Node{Name: name, Type: NodeTypeImage, Image: img}
	nodeDefaults(n)
	if img != nil {
		b := img.Bounds()
		n.NaturalWidth = float64(b.Dx())
		n.NaturalHeight = float64(b.Dy())
		n.Width, n.Height = n.NaturalWidth, n.NaturalHeight
	}
	return n
}

// NewRect creates a solid-color rectangle node, typically used for navigation
// buttons and backgrounds.
func NewRect(name string, width, height float64, c Color) *Node {
	n := &Node{Name: name, Type: NodeTypeRect, Width: width, Height: height}
	nodeDefaults(n)
	n.Color = c
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	n.insertChild(child, len(n.children))
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if index < 0 || index > len(n.children) {
		panic("slides: child index out of range")
	}
	n.insertChild(child, index)
}

func (n *Node) insertChild(child *Node, index int) {
	if child == nil {
		panic("slides: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("slides: adding child would create a cycle")
	}
	if child.Parent != nil {
		if child.Parent == n && index > n.indexOf(child) {
			index--
		}
		child.Parent.removeChildByPtr(child)
	}
	if index > len(n.children) {
		index = len(n.children)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.childrenSorted = false
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("slides: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list in insertion order. The returned slice
// MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Find returns the first descendant named name in depth-first order, or nil.
func (n *Node) Find(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
		if found := c.Find(name); found != nil {
			return found
		}
	}
	return nil
}

// Walk calls fn for n and every descendant in depth-first insertion order.
// Returning false from fn skips that node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// paintOrder returns the children sorted by ZIndex, insertion order breaking
// ties. The slice is a reused buffer owned by n.
func (n *Node) paintOrder() []*Node {
	if !n.childrenSorted {
		n.sortedChildren = append(n.sortedChildren[:0], n.children...)
		sort.SliceStable(n.sortedChildren, func(i, j int) bool {
			return n.sortedChildren[i].ZIndex < n.sortedChildren[j].ZIndex
		})
		n.childrenSorted = true
	}
	return n.sortedChildren
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.Image = nil
	n.OnClick = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	i := n.indexOf(child)
	if i < 0 {
		return
	}
	copy(n.children[i:], n.children[i+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	n.childrenSorted = false
}
