package eventsys

import (
	"slices"
	"testing"
)

// harness drives an enabled EventSystem with injected input and a manual
// clock. Each pass advances the clock by one 60 Hz frame.
type harness struct {
	sys  *EventSystem
	src  *InjectSource
	root *Node
	now  float64
}

// newHarness builds an enabled system over a shape raycaster rooted at
// h.root and runs the activation pass.
func newHarness(t *testing.T, modules []InputModule, opts ...Option) *harness {
	t.Helper()
	h := &harness{src: NewInjectSource(), root: NewNode("root")}
	opts = append([]Option{
		WithSource(h.src),
		WithClock(func() float64 { return h.now }),
	}, opts...)
	h.sys = New(opts...)
	h.sys.AddRaycaster(NewShapeRaycaster(h.root, nil))
	for _, m := range modules {
		h.sys.AddModule(m)
	}
	h.sys.Enable()
	t.Cleanup(h.sys.Disable)
	if Current() != h.sys {
		t.Fatal("harness system is not current; a previous test leaked an enabled system")
	}
	h.sys.Update()
	return h
}

// run executes n passes.
func (h *harness) run(n int) {
	for range n {
		h.now += 1.0 / 60
		h.sys.Update()
	}
}

// drain runs passes until the injected queue is empty.
func (h *harness) drain() {
	for h.src.Pending() > 0 {
		h.run(1)
	}
}

// recorder collects "node:Event" strings from node callbacks.
type recorder struct {
	events []string
}

func (r *recorder) add(n *Node, t EventType) {
	r.events = append(r.events, n.Name+":"+t.String())
}

// on installs recording callbacks for the given capabilities on n.
func (r *recorder) on(n *Node, types ...EventType) {
	for _, t := range types {
		pointer := func(*PointerEvent) { r.add(n, t) }
		base := func(*BaseEvent) { r.add(n, t) }
		switch t {
		case EventPointerEnter:
			n.OnPointerEnter = pointer
		case EventPointerExit:
			n.OnPointerExit = pointer
		case EventPointerDown:
			n.OnPointerDown = pointer
		case EventPointerUp:
			n.OnPointerUp = pointer
		case EventPointerClick:
			n.OnPointerClick = pointer
		case EventInitializePotentialDrag:
			n.OnInitializePotentialDrag = pointer
		case EventBeginDrag:
			n.OnBeginDrag = pointer
		case EventDrag:
			n.OnDrag = pointer
		case EventEndDrag:
			n.OnEndDrag = pointer
		case EventDrop:
			n.OnDrop = pointer
		case EventScroll:
			n.OnScroll = pointer
		case EventUpdateSelected:
			n.OnUpdateSelected = base
		case EventSelect:
			n.OnSelect = base
		case EventDeselect:
			n.OnDeselect = base
		case EventMove:
			n.OnMove = func(*AxisEvent) { r.add(n, t) }
		case EventSubmit:
			n.OnSubmit = base
		case EventCancel:
			n.OnCancel = base
		}
	}
}

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

func (r *recorder) has(event string) bool {
	return slices.Contains(r.events, event)
}

func (r *recorder) reset() {
	r.events = r.events[:0]
}

var pointerEvents = []EventType{
	EventPointerEnter, EventPointerExit, EventPointerDown, EventPointerUp,
	EventPointerClick, EventBeginDrag, EventDrag, EventEndDrag, EventDrop,
}
