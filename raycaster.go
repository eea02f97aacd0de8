package eventsys

// ShapeRaycaster hit-tests the HitShapes of a Node subtree. Nodes are visited
// in painter order (depth-first, children sorted by ZIndex); every node whose
// shape contains the pointer is reported with Depth set to its painter index,
// so nodes drawn later sort first.
type ShapeRaycaster struct {
	// Root is the subtree to test.
	Root *Node
	// Camera converts screen positions to world space. Nil means screen and
	// world coincide and the raycaster has no view depth.
	Camera *Camera
	// SortPriority and RenderPriority are reported as the raycaster's
	// ordering priorities.
	SortPriority   int
	RenderPriority int
	// Disabled removes the raycaster from passes without unregistering it.
	Disabled bool

	buf []*Node
}

// NewShapeRaycaster creates a raycaster over root seen through cam.
func NewShapeRaycaster(root *Node, cam *Camera) *ShapeRaycaster {
	return &ShapeRaycaster{Root: root, Camera: cam}
}

// Active reports whether the raycaster has a root and is not disabled.
func (r *ShapeRaycaster) Active() bool {
	return !r.Disabled && r.Root != nil
}

// ViewDepth returns the camera depth, if a camera is set.
func (r *ShapeRaycaster) ViewDepth() (float64, bool) {
	if r.Camera == nil {
		return 0, false
	}
	return r.Camera.Depth, true
}

// SortOrderPriority implements Raycaster.
func (r *ShapeRaycaster) SortOrderPriority() int { return r.SortPriority }

// RenderOrderPriority implements Raycaster.
func (r *ShapeRaycaster) RenderOrderPriority() int { return r.RenderPriority }

// Raycast appends every node under ev.Position, topmost first.
func (r *ShapeRaycaster) Raycast(ev *PointerEvent, hits []HitResult) []HitResult {
	sx, sy := ev.Position.X, ev.Position.Y
	wx, wy := sx, sy
	if r.Camera != nil {
		if !r.Camera.InViewport(sx, sy) {
			return hits
		}
		wx, wy = r.Camera.ScreenToWorld(sx, sy)
	}

	r.buf = collectInteractable(r.Root, r.buf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(r.buf) - 1; i >= 0; i-- {
		n := r.buf[i]
		if !n.HitShape.Contains(wx, wy) {
			continue
		}
		hits = append(hits, HitResult{
			Node:           n,
			Module:         r,
			Depth:          i,
			SortingLayer:   n.SortingLayer,
			SortingOrder:   n.SortingOrder,
			Index:          len(hits),
			WorldPosition:  Vec2{wx, wy},
			ScreenPosition: ev.Position,
		})
	}
	return hits
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending nodes with a HitShape to buf. Skips Visible=false or
// Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil {
		buf = append(buf, n)
	}
	for _, child := range n.sortedByZ() {
		buf = collectInteractable(child, buf)
	}
	return buf
}
