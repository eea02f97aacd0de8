package eventsys

import "iter"

// nodeIDCounter is a plain counter (no atomic, eventsys is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// HitShape is a hit area in world coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// Node is an interactive object in the containment hierarchy. A single flat
// struct carries every capability: a capability is implemented when its
// callback field is non-nil, so each node declares exactly the subset of the
// event vocabulary it handles.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Visibility & interaction. Only consulted by ShapeRaycaster.
	Visible      bool
	Interactable bool
	HitShape     HitShape

	// Ordering keys reported in HitResult.
	ZIndex       int
	SortingLayer int
	SortingOrder int

	// Metadata
	UserData any
	EntityID uint32

	// Pointer capabilities
	OnPointerEnter            func(*PointerEvent)
	OnPointerExit             func(*PointerEvent)
	OnPointerDown             func(*PointerEvent)
	OnPointerUp               func(*PointerEvent)
	OnPointerClick            func(*PointerEvent)
	OnInitializePotentialDrag func(*PointerEvent)
	OnBeginDrag               func(*PointerEvent)
	OnDrag                    func(*PointerEvent)
	OnEndDrag                 func(*PointerEvent)
	OnDrop                    func(*PointerEvent)
	OnScroll                  func(*PointerEvent)

	// Selection and navigation capabilities
	OnUpdateSelected func(*BaseEvent)
	OnSelect         func(*BaseEvent)
	OnDeselect       func(*BaseEvent)
	OnMove           func(*AxisEvent)
	OnSubmit         func(*BaseEvent)
	OnCancel         func(*BaseEvent)

	childrenSorted bool
	sortedChildren []*Node // reused buffer for ZIndex-sorted hit order
}

// NewNode creates a visible, interactable node with no capabilities. Set a
// HitShape for ShapeRaycaster to report it.
func NewNode(name string) *Node {
	return &Node{
		ID:             nextNodeID(),
		Name:           name,
		Visible:        true,
		Interactable:   true,
		childrenSorted: true,
	}
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.Name
}

// Handles reports whether the node implements capability t.
func (n *Node) Handles(t EventType) bool {
	if n == nil {
		return false
	}
	switch t {
	case EventPointerEnter:
		return n.OnPointerEnter != nil
	case EventPointerExit:
		return n.OnPointerExit != nil
	case EventPointerDown:
		return n.OnPointerDown != nil
	case EventPointerUp:
		return n.OnPointerUp != nil
	case EventPointerClick:
		return n.OnPointerClick != nil
	case EventInitializePotentialDrag:
		return n.OnInitializePotentialDrag != nil
	case EventBeginDrag:
		return n.OnBeginDrag != nil
	case EventDrag:
		return n.OnDrag != nil
	case EventEndDrag:
		return n.OnEndDrag != nil
	case EventDrop:
		return n.OnDrop != nil
	case EventScroll:
		return n.OnScroll != nil
	case EventUpdateSelected:
		return n.OnUpdateSelected != nil
	case EventSelect:
		return n.OnSelect != nil
	case EventDeselect:
		return n.OnDeselect != nil
	case EventMove:
		return n.OnMove != nil
	case EventSubmit:
		return n.OnSubmit != nil
	case EventCancel:
		return n.OnCancel != nil
	}
	return false
}

// invoke calls the callback for t. The payload must be of the kind the
// capability expects; a mismatched payload is ignored and reported as false.
func (n *Node) invoke(t EventType, data EventData) bool {
	switch t {
	case EventSelect, EventDeselect, EventUpdateSelected, EventSubmit, EventCancel:
		base := data.baseEvent()
		switch t {
		case EventSelect:
			n.OnSelect(base)
		case EventDeselect:
			n.OnDeselect(base)
		case EventUpdateSelected:
			n.OnUpdateSelected(base)
		case EventSubmit:
			n.OnSubmit(base)
		case EventCancel:
			n.OnCancel(base)
		}
		return true
	case EventMove:
		ax, ok := data.(*AxisEvent)
		if !ok {
			return false
		}
		n.OnMove(ax)
		return true
	}

	pe, ok := data.(*PointerEvent)
	if !ok {
		return false
	}
	switch t {
	case EventPointerEnter:
		n.OnPointerEnter(pe)
	case EventPointerExit:
		n.OnPointerExit(pe)
	case EventPointerDown:
		n.OnPointerDown(pe)
	case EventPointerUp:
		n.OnPointerUp(pe)
	case EventPointerClick:
		n.OnPointerClick(pe)
	case EventInitializePotentialDrag:
		n.OnInitializePotentialDrag(pe)
	case EventBeginDrag:
		n.OnBeginDrag(pe)
	case EventDrag:
		n.OnDrag(pe)
	case EventEndDrag:
		n.OnEndDrag(pe)
	case EventDrop:
		n.OnDrop(pe)
	case EventScroll:
		n.OnScroll(pe)
	default:
		return false
	}
	return true
}

// Ancestry yields the node itself, then its parent, then its parent's parent,
// up to the root. A nil node yields nothing.
func (n *Node) Ancestry() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for p := n; p != nil; p = p.Parent {
			if !yield(p) {
				return
			}
		}
	}
}

// Root returns the topmost ancestor of n.
func (n *Node) Root() *Node {
	if n == nil {
		return nil
	}
	r := n
	for r.Parent != nil {
		r = r.Parent
	}
	return r
}

// CommonAncestor returns the nearest node present in the ancestry of both a
// and b, or nil when they belong to different trees.
func CommonAncestor(a, b *Node) *Node {
	for p := range a.Ancestry() {
		if isAncestor(p, b) {
			return p
		}
	}
	return nil
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("eventsys: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("eventsys: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("eventsys: child's parent is not this node")
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

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
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

// sortedByZ returns the children in ascending ZIndex order, stable on
// insertion order.
func (n *Node) sortedByZ() []*Node {
	if n.childrenSorted && n.sortedChildren != nil {
		return n.sortedChildren
	}
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	// Stable insertion sort by ZIndex.
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
	return n.sortedChildren
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
