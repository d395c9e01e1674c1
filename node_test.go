package slides

import "testing"

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	n := NewContainer("test")
	assertNodeDefaults(t, n, "test", NodeTypeContainer)
}

func TestNewImageNilDefaults(t *testing.T) {
	n := NewImage("img", nil)
	assertNodeDefaults(t, n, "img", NodeTypeImage)
	if n.NaturalWidth != 0 || n.Width != 0 {
		t.Errorf("nil image should leave sizes zero, got natural %v box %v", n.NaturalWidth, n.Width)
	}
}

func TestNewRectDefaults(t *testing.T) {
	c := Color{R: 0.5, A: 1}
	n := NewRect("button", 40, 20, c)
	assertNodeDefaults(t, n, "button", NodeTypeRect)
	if n.Width != 40 || n.Height != 20 {
		t.Errorf("size = (%v, %v), want (40, 20)", n.Width, n.Height)
	}
	if n.Color != c {
		t.Errorf("Color = %v, want %v", n.Color, c)
	}
}

func assertNodeDefaults(t *testing.T, n *Node, name string, typ NodeType) {
	t.Helper()
	if n.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if n.Name != name {
		t.Errorf("Name = %q, want %q", n.Name, name)
	}
	if n.Type != typ {
		t.Errorf("Type = %d, want %d", n.Type, typ)
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", n.Alpha)
	}
	if !n.Visible {
		t.Error("Visible should be true")
	}
	if n.ZIndex != 0 {
		t.Errorf("ZIndex = %d, want 0", n.ZIndex)
	}
}

// --- Unique IDs ---

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewRect("c", 1, 1, ColorWhite)
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- AddChild ---

func TestAddChildBasic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Error("child.Parent should be parent")
	}
	if parent.NumChildren() != 1 {
		t.Errorf("NumChildren = %d, want 1", parent.NumChildren())
	}
	if parent.ChildAt(0) != child {
		t.Error("ChildAt(0) should be child")
	}
}

func TestAddChildReparent(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")

	p1.AddChild(child)
	if p1.NumChildren() != 1 {
		t.Fatal("p1 should have 1 child")
	}

	p2.AddChild(child)
	if p1.NumChildren() != 0 {
		t.Error("p1 should have 0 children after reparent")
	}
	if p2.NumChildren() != 1 {
		t.Error("p2 should have 1 child")
	}
	if child.Parent != p2 {
		t.Error("child.Parent should be p2")
	}
}

func TestAddChildCyclePanic(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	parent.AddChild(child)
	child.AddChild(grandchild)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for cycle, got none")
		}
	}()
	grandchild.AddChild(parent) // should panic
}

func TestAddChildSelfPanic(t *testing.T) {
	n := NewContainer("self")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for self-add, got none")
		}
	}()
	n.AddChild(n)
}

func TestAddChildNilPanic(t *testing.T) {
	n := NewContainer("n")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for nil child, got none")
		}
	}()
	n.AddChild(nil)
}

func TestAddChildAt(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	parent.AddChild(a)
	parent.AddChild(c)

	parent.AddChildAt(b, 1) // insert between a and c

	if parent.NumChildren() != 3 {
		t.Fatalf("NumChildren = %d, want 3", parent.NumChildren())
	}
	if parent.ChildAt(0) != a || parent.ChildAt(1) != b || parent.ChildAt(2) != c {
		t.Error("children order should be [a, b, c]")
	}
}

func TestAddChildAtBeginning(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	parent.AddChild(a)
	parent.AddChildAt(b, 0)

	if parent.ChildAt(0) != b || parent.ChildAt(1) != a {
		t.Error("children order should be [b, a]")
	}
}

func TestAddChildAtEnd(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	parent.AddChild(a)
	parent.AddChildAt(b, 1)

	if parent.ChildAt(0) != a || parent.ChildAt(1) != b {
		t.Error("children order should be [a, b]")
	}
}

func TestRemoveChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	parent.RemoveChild(child)

	if parent.NumChildren() != 0 {
		t.Error("parent should have 0 children")
	}
	if child.Parent != nil {
		t.Error("child.Parent should be nil")
	}
}

func TestRemoveChildWrongParentPanic(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	child := NewContainer("child")
	p1.AddChild(child)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for wrong parent, got none")
		}
	}()
	p2.RemoveChild(child)
}

func TestRemoveFromParent(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)
	child.RemoveFromParent()

	if parent.NumChildren() != 0 {
		t.Error("parent should have 0 children")
	}
	if child.Parent != nil {
		t.Error("child.Parent should be nil")
	}
}

func TestRemoveFromParentNoOp(t *testing.T) {
	n := NewContainer("orphan")
	n.RemoveFromParent() // should not panic
	if n.Parent != nil {
		t.Error("Parent should remain nil")
	}
}

func TestDispose(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	root := NewContainer("root")
	root.AddChild(parent)
	parent.AddChild(child)
	child.AddChild(grandchild)

	parent.Dispose()

	if !parent.IsDisposed() {
		t.Error("parent should be disposed")
	}
	if !child.IsDisposed() {
		t.Error("child should be disposed")
	}
	if !grandchild.IsDisposed() {
		t.Error("grandchild should be disposed")
	}
	if parent.ID != 0 || child.ID != 0 || grandchild.ID != 0 {
		t.Error("disposed nodes should have ID = 0")
	}
	if root.NumChildren() != 0 {
		t.Error("root should have 0 children after dispose")
	}
}

func TestDisposeIdempotent(t *testing.T) {
	n := NewContainer("n")
	n.Dispose()
	n.Dispose() // should not panic
	if !n.IsDisposed() {
		t.Error("should still be disposed")
	}
}


func TestAddChildAtSameParentMovesChild(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	parent.AddChildAt(a, 3) // move a to the end

	if parent.NumChildren() != 3 {
		t.Fatalf("NumChildren = %d, want 3", parent.NumChildren())
	}
	if parent.ChildAt(0) != b || parent.ChildAt(1) != c || parent.ChildAt(2) != a {
		t.Error("children order should be [b, c, a]")
	}
}

func TestAddChildAtOutOfRangePanics(t *testing.T) {
	parent := NewContainer("parent")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for out-of-range index, got none")
		}
	}()
	parent.AddChildAt(NewContainer("x"), 2)
}

// --- Find / Walk ---

func TestFindDepthFirst(t *testing.T) {
	root := NewContainer("root")
	a := NewContainer("a")
	target := NewContainer("target")
	later := NewContainer("target")
	root.AddChild(a)
	a.AddChild(target)
	root.AddChild(later)

	if got := root.Find("target"); got != target {
		t.Errorf("Find returned %v, want the first match in depth-first order", got)
	}
	if root.Find("root") != nil {
		t.Error("Find should search descendants only")
	}
	if root.Find("missing") != nil {
		t.Error("Find should return nil for a missing name")
	}
}

func TestWalkSkipsSubtree(t *testing.T) {
	root := NewContainer("root")
	a := NewContainer("a")
	a.AddChild(NewContainer("a1"))
	root.AddChild(a)
	root.AddChild(NewContainer("b"))

	var visited []string
	root.Walk(func(n *Node) bool {
		visited = append(visited, n.Name)
		return n.Name != "a"
	})

	want := []string{"root", "a", "b"}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visited[%d] = %q, want %q", i, visited[i], want[i])
		}
	}
}

// --- Paint order ---

func TestPaintOrderByZIndexStable(t *testing.T) {
	parent := NewContainer("parent")
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	a.SetZIndex(2)
	c.SetZIndex(-1)

	order := parent.paintOrder()
	if order[0] != c || order[1] != b || order[2] != a {
		t.Errorf("paint order = [%s %s %s], want [c b a]", order[0].Name, order[1].Name, order[2].Name)
	}

	// Children order is untouched.
	if parent.ChildAt(0) != a {
		t.Error("SetZIndex should not reorder children")
	}

	b.SetZIndex(5)
	order = parent.paintOrder()
	if order[2] != b {
		t.Error("paint order should be recomputed after SetZIndex")
	}
}

func TestDisposedNodePanicsInDebug(t *testing.T) {
	old := globalDebug
	globalDebug = true
	defer func() { globalDebug = old }()

	parent := NewContainer("parent")
	child := NewContainer("child")
	child.Dispose()

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic adding a disposed node in debug mode")
		}
	}()
	parent.AddChild(child)
}
