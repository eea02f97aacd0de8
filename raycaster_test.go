package eventsys

import "testing"

// topHit raycasts r at (x, y) and returns the first ordered hit.
func topHit(r Raycaster, x, y float64) *Node {
	ev := NewPointerEvent(nil, 0)
	ev.Position = Vec2{x, y}
	hits := r.Raycast(ev, nil)
	SortHits(hits, nil)
	return FirstHit(hits).Node
}

func box(name string, x, y, w, h float64) *Node {
	n := NewNode(name)
	n.HitShape = HitRect{X: x, Y: y, Width: w, Height: h}
	return n
}

// --- Hit test traversal tests ---

func TestHitTest_TopmostNode(t *testing.T) {
	root := NewNode("root")
	// Two overlapping boxes at origin.
	a := box("a", 0, 0, 100, 100)
	b := box("b", 0, 0, 100, 100)
	root.AddChild(a)
	root.AddChild(b)

	hit := topHit(NewShapeRaycaster(root, nil), 50, 50)
	if hit != b {
		t.Errorf("expected topmost node b, got %v", hit)
	}
}

func TestHitTest_SkipsInvisible(t *testing.T) {
	root := NewNode("root")
	a := box("a", 0, 0, 100, 100)
	b := box("b", 0, 0, 100, 100)
	b.Visible = false
	root.AddChild(a)
	root.AddChild(b)

	hit := topHit(NewShapeRaycaster(root, nil), 50, 50)
	if hit != a {
		t.Errorf("expected node a (b is invisible), got %v", hit)
	}
}

func TestHitTest_SkipsNonInteractable(t *testing.T) {
	root := NewNode("root")
	a := box("a", 0, 0, 100, 100)
	b := box("b", 0, 0, 100, 100)
	b.Interactable = false
	root.AddChild(a)
	root.AddChild(b)

	hit := topHit(NewShapeRaycaster(root, nil), 50, 50)
	if hit != a {
		t.Errorf("expected node a (b is not interactable), got %v", hit)
	}
}

func TestHitTest_NonInteractableSubtreePruned(t *testing.T) {
	root := NewNode("root")
	panel := NewNode("panel")
	panel.Interactable = false
	child := box("child", 0, 0, 100, 100)
	panel.AddChild(child)
	root.AddChild(panel)

	if hit := topHit(NewShapeRaycaster(root, nil), 50, 50); hit != nil {
		t.Errorf("expected nil, got %v", hit)
	}
}

func TestHitTest_RespectsZIndex(t *testing.T) {
	root := NewNode("root")
	a := box("a", 0, 0, 100, 100)
	a.SetZIndex(10) // higher ZIndex → painted later → on top
	b := box("b", 0, 0, 100, 100)
	b.SetZIndex(0)
	root.AddChild(a)
	root.AddChild(b)

	hit := topHit(NewShapeRaycaster(root, nil), 50, 50)
	if hit != a {
		t.Errorf("expected node a (higher ZIndex), got %v", hit)
	}
}

func TestHitTest_ChildAboveParent(t *testing.T) {
	root := NewNode("root")
	parent := box("parent", 0, 0, 200, 200)
	child := box("child", 0, 0, 100, 100)
	parent.AddChild(child)
	root.AddChild(parent)

	r := NewShapeRaycaster(root, nil)
	if hit := topHit(r, 50, 50); hit != child {
		t.Errorf("expected child, got %v", hit)
	}
	if hit := topHit(r, 150, 150); hit != parent {
		t.Errorf("expected parent, got %v", hit)
	}
}

func TestHitTest_Miss(t *testing.T) {
	root := NewNode("root")
	root.AddChild(box("a", 0, 0, 100, 100))

	hit := topHit(NewShapeRaycaster(root, nil), 200, 200)
	if hit != nil {
		t.Errorf("expected nil, got %v", hit)
	}
}

func TestHitTest_ThroughCamera(t *testing.T) {
	root := NewNode("root")
	a := box("a", -10, -10, 20, 20) // around the world origin
	root.AddChild(a)

	cam := NewCamera(Rect{X: 0, Y: 0, Width: 800, Height: 600})
	r := NewShapeRaycaster(root, cam)

	// World origin is at the viewport center.
	if hit := topHit(r, 400, 300); hit != a {
		t.Errorf("expected a at viewport center, got %v", hit)
	}
	if hit := topHit(r, 10, 10); hit != nil {
		t.Errorf("expected miss at screen origin, got %v", hit)
	}

	cam.SetZoom(4)
	if hit := topHit(r, 430, 300); hit != a {
		t.Errorf("expected a within zoomed area, got %v", hit)
	}
}

func TestHitTest_OutsideViewport(t *testing.T) {
	root := NewNode("root")
	root.AddChild(box("a", -1000, -1000, 2000, 2000))

	cam := NewCamera(Rect{X: 0, Y: 0, Width: 100, Height: 100})
	if hit := topHit(NewShapeRaycaster(root, cam), 150, 50); hit != nil {
		t.Errorf("expected nil outside viewport, got %v", hit)
	}
}

func TestShapeRaycaster_HitFields(t *testing.T) {
	root := NewNode("root")
	a := box("a", 0, 0, 100, 100)
	a.SortingLayer = 2
	a.SortingOrder = 5
	root.AddChild(a)

	r := NewShapeRaycaster(root, nil)
	ev := NewPointerEvent(nil, 0)
	ev.Position = Vec2{10, 20}
	hits := r.Raycast(ev, nil)
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	h := hits[0]
	if h.Node != a || h.Module != r {
		t.Errorf("unexpected hit %v", h)
	}
	if h.SortingLayer != 2 || h.SortingOrder != 5 {
		t.Errorf("sorting keys = (%d, %d), want (2, 5)", h.SortingLayer, h.SortingOrder)
	}
	if h.ScreenPosition != (Vec2{10, 20}) || h.WorldPosition != (Vec2{10, 20}) {
		t.Errorf("positions = %v / %v", h.ScreenPosition, h.WorldPosition)
	}
}

func TestShapeRaycaster_Active(t *testing.T) {
	r := NewShapeRaycaster(nil, nil)
	if r.Active() {
		t.Error("raycaster without root should be inactive")
	}
	r.Root = NewNode("root")
	if !r.Active() {
		t.Error("raycaster with root should be active")
	}
	r.Disabled = true
	if r.Active() {
		t.Error("disabled raycaster should be inactive")
	}

	if _, ok := r.ViewDepth(); ok {
		t.Error("raycaster without camera should have no view depth")
	}
	r.Camera = NewCamera(Rect{})
	r.Camera.Depth = 3
	if d, ok := r.ViewDepth(); !ok || d != 3 {
		t.Errorf("ViewDepth = (%v, %v), want (3, true)", d, ok)
	}
}
