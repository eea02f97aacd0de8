package eventsys

// PointerTracker owns one PointerEvent record per active pointer id and runs
// the per-pointer state machine: press, held (drag threshold), release (click
// or drop), hover enter/exit, and abandonment.
type PointerTracker struct {
	sys      *EventSystem
	pointers map[int]*PointerEvent
	ids      []int // creation order, for deterministic iteration
}

// NewPointerTracker creates an empty tracker dispatching through sys.
func NewPointerTracker(sys *EventSystem) *PointerTracker {
	return &PointerTracker{
		sys:      sys,
		pointers: make(map[int]*PointerEvent),
	}
}

// Get returns the record for id. When create is true a missing record is
// created lazily and created reports it.
func (t *PointerTracker) Get(id int, create bool) (ev *PointerEvent, created bool) {
	if ev, ok := t.pointers[id]; ok {
		return ev, false
	}
	if !create {
		return nil, false
	}
	ev = NewPointerEvent(t.sys, id)
	t.pointers[id] = ev
	t.ids = append(t.ids, id)
	return ev, true
}

// Remove discards the record for id without dispatching anything.
func (t *PointerTracker) Remove(id int) {
	if _, ok := t.pointers[id]; !ok {
		return
	}
	delete(t.pointers, id)
	for i, v := range t.ids {
		if v == id {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			break
		}
	}
}

// Len returns the number of tracked pointers.
func (t *PointerTracker) Len() int {
	return len(t.ids)
}

// Each calls fn for every record in creation order.
func (t *PointerTracker) Each(fn func(*PointerEvent)) {
	for _, id := range t.ids {
		fn(t.pointers[id])
	}
}

// ProcessPress applies the press and release transitions of one pass.
// touch selects touch semantics: the contact enters its target on press and
// exits everything on release, since a lifted finger hovers nothing.
//
// A pointer that is already down releases before it presses again, so every
// press is matched by exactly one release. When it was up, a press and
// release in the same pass are a press followed by its release.
func (t *PointerTracker) ProcessPress(ev *PointerEvent, pressed, released, touch bool) {
	switch {
	case pressed && ev.down:
		t.release(ev, touch)
		t.press(ev, touch)
	case pressed:
		t.press(ev, touch)
		if released {
			t.release(ev, touch)
		}
	case released:
		t.release(ev, touch)
	}
}

func (t *PointerTracker) press(ev *PointerEvent, touch bool) {
	cur := ev.CurrentNode()

	ev.down = true
	ev.EligibleForClick = true
	ev.Delta = Vec2{}
	ev.Dragging = false
	ev.UseDragThreshold = true
	ev.PressPosition = ev.Position
	ev.PressHit = ev.CurrentHit

	t.sys.deselectIfSelectionChanged(cur, ev)

	if touch && ev.Entered != cur {
		t.handleEnterExit(ev, cur)
	}

	// The press goes to the nearest press handler; without one, to
	// whatever would receive the click.
	newPressed := ExecuteFirst(cur, EventPointerDown, ev)
	if newPressed == nil {
		newPressed = HandlerFor(cur, EventPointerClick)
	}

	now := t.sys.now()
	if newPressed != nil && newPressed == ev.LastPressed {
		if now-ev.ClickTime < t.sys.multiClickWindow {
			ev.ClickCount++
		} else {
			ev.ClickCount = 1
		}
	} else {
		ev.ClickCount = 1
	}

	ev.setPressed(newPressed)
	ev.RawPressed = cur
	ev.ClickTime = now

	ev.DragTarget = HandlerFor(cur, EventDrag)
	if ev.DragTarget != nil {
		Execute(ev.DragTarget, EventInitializePotentialDrag, ev)
	}
}

func (t *PointerTracker) release(ev *PointerEvent, touch bool) {
	if !ev.down {
		// Release without a tracked press is hover-only input.
		return
	}
	cur := ev.CurrentNode()

	Execute(ev.Pressed, EventPointerUp, ev)

	upHandler := HandlerFor(cur, EventPointerClick)
	if ev.Pressed != nil && ev.Pressed == upHandler && ev.EligibleForClick {
		Execute(ev.Pressed, EventPointerClick, ev)
	} else if ev.DragTarget != nil && ev.Dragging {
		ExecuteAll(cur, EventDrop, ev)
	}

	ev.setPressed(nil)
	ev.RawPressed = nil
	ev.EligibleForClick = false

	if ev.DragTarget != nil && ev.Dragging {
		Execute(ev.DragTarget, EventEndDrag, ev)
	}
	ev.Dragging = false
	ev.DragTarget = nil
	ev.down = false

	if touch {
		t.handleEnterExit(ev, nil)
	}
}

// ProcessMove updates hover state: when the top hit differs from the entered
// object, exit and enter fire on the non-shared part of both ancestries.
func (t *PointerTracker) ProcessMove(ev *PointerEvent) {
	t.handleEnterExit(ev, ev.CurrentNode())
}

// ProcessDrag runs the held-state transition. Once movement since the press
// exceeds the drag threshold, begin-drag fires exactly once; from then on a
// drag event fires on every pass until release, moving or not.
func (t *PointerTracker) ProcessDrag(ev *PointerEvent) {
	if !ev.down || ev.DragTarget == nil {
		return
	}

	if !ev.Dragging && t.shouldStartDrag(ev) {
		Execute(ev.DragTarget, EventBeginDrag, ev)
		ev.Dragging = true
		ev.EligibleForClick = false
	}

	if ev.Dragging {
		Execute(ev.DragTarget, EventDrag, ev)
	}
}

func (t *PointerTracker) shouldStartDrag(ev *PointerEvent) bool {
	if !ev.UseDragThreshold {
		return true
	}
	return ev.Position.Sub(ev.PressPosition).Len() > t.sys.dragThreshold
}

// Abandon drops a pointer whose interaction cannot complete: end-drag goes to
// an in-flight drag target, exit to everything hovered, then the record is
// discarded. No release or click is synthesized.
func (t *PointerTracker) Abandon(ev *PointerEvent) {
	if ev.DragTarget != nil && ev.Dragging {
		Execute(ev.DragTarget, EventEndDrag, ev)
	}
	ev.Dragging = false
	ev.DragTarget = nil
	ev.EligibleForClick = false
	t.handleEnterExit(ev, nil)
	t.Remove(ev.PointerID)
}

// Clear abandons every tracked pointer.
func (t *PointerTracker) Clear() {
	for len(t.ids) > 0 {
		ev := t.pointers[t.ids[0]]
		t.Abandon(ev)
	}
}

// handleEnterExit moves the hover of ev to newEnter. Nodes shared by the old
// and new ancestry keep their hover and receive nothing.
func (t *PointerTracker) handleEnterExit(ev *PointerEvent, newEnter *Node) {
	if newEnter == nil || ev.Entered == nil {
		for _, n := range ev.Hovered {
			Execute(n, EventPointerExit, ev)
		}
		clear(ev.Hovered)
		ev.Hovered = ev.Hovered[:0]

		if newEnter == nil {
			ev.Entered = nil
			return
		}
	}

	if ev.Entered == newEnter {
		return
	}

	common := CommonAncestor(ev.Entered, newEnter)

	if ev.Entered != nil {
		for n := range ev.Entered.Ancestry() {
			if n == common {
				break
			}
			Execute(n, EventPointerExit, ev)
			ev.Hovered = removeNode(ev.Hovered, n)
		}
	}

	// Hovered stays leaf to root so a full exit unwinds innermost first.
	ev.Entered = newEnter
	var entered []*Node
	for n := range newEnter.Ancestry() {
		if n == common {
			break
		}
		Execute(n, EventPointerEnter, ev)
		entered = append(entered, n)
	}
	ev.Hovered = append(entered, ev.Hovered...)
}

func removeNode(s []*Node, n *Node) []*Node {
	for i := range s {
		if s[i] == n {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}
