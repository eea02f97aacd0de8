package eventsys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMouseHarness(t *testing.T, opts ...Option) (*harness, *MouseModule) {
	t.Helper()
	m := NewMouseModule()
	return newHarness(t, []InputModule{m}, opts...), m
}

// --- Drag ---

func TestTracker_DragThreshold(t *testing.T) {
	h, m := newMouseHarness(t)
	b := box("b", 0, 0, 100, 100)
	h.root.AddChild(b)
	rec := &recorder{}
	rec.on(b, EventPointerDown, EventPointerUp, EventPointerClick,
		EventBeginDrag, EventDrag, EventEndDrag, EventDrop)

	h.src.InjectPress(0, 0)
	h.run(1)
	left := m.Pointer(InputButtonLeft)
	require.NotNil(t, left)
	assert.True(t, left.IsPressed())
	assert.Same(t, b, left.DragTarget)

	h.src.InjectMove(3, 3)
	h.run(1)
	assert.False(t, left.Dragging, "4.2px is below the threshold")

	h.src.InjectMove(12, 0)
	h.run(1)
	assert.True(t, left.Dragging)
	assert.False(t, left.EligibleForClick)

	h.run(1) // held still: drag keeps firing
	assert.True(t, left.Dragging)

	h.src.InjectRelease(12, 0)
	h.run(1)
	assert.False(t, left.Dragging)
	assert.False(t, left.IsPressed())

	assert.Equal(t, []string{
		"b:PointerDown",
		"b:BeginDrag", "b:Drag",
		"b:Drag",
		"b:PointerUp", "b:Drop", "b:EndDrag",
	}, rec.events)
}

func TestTracker_ThresholdDisabled(t *testing.T) {
	h, m := newMouseHarness(t)
	b := box("b", 0, 0, 100, 100)
	h.root.AddChild(b)
	rec := &recorder{}
	b.OnInitializePotentialDrag = func(ev *PointerEvent) { ev.UseDragThreshold = false }
	rec.on(b, EventBeginDrag, EventDrag)

	h.src.InjectPress(50, 50)
	h.src.InjectMove(51, 50)
	h.drain()

	assert.True(t, m.Pointer(InputButtonLeft).Dragging)
	assert.Equal(t, 1, rec.count("b:BeginDrag"))
}

func TestTracker_DropBroadcastsToAncestors(t *testing.T) {
	h, _ := newMouseHarness(t)
	src := box("src", 0, 0, 50, 50)
	zone := box("zone", 100, 0, 100, 100)
	slot := box("slot", 120, 20, 20, 20)
	h.root.AddChild(src)
	h.root.AddChild(zone)
	zone.AddChild(slot)

	rec := &recorder{}
	rec.on(src, EventDrag, EventEndDrag, EventPointerClick)
	rec.on(zone, EventDrop)
	rec.on(slot, EventDrop)

	h.src.InjectDrag(25, 25, 130, 30, 5)
	h.drain()

	assert.Equal(t, 1, rec.count("slot:Drop"))
	assert.Equal(t, 1, rec.count("zone:Drop"))
	assert.Equal(t, 1, rec.count("src:EndDrag"))
	assert.Zero(t, rec.count("src:PointerClick"))

	// Drop comes before end-drag.
	assert.Less(t, indexOf(rec.events, "slot:Drop"), indexOf(rec.events, "src:EndDrag"))
}

func indexOf(events []string, e string) int {
	for i, v := range events {
		if v == e {
			return i
		}
	}
	return -1
}

// --- Click ---

func TestTracker_ClickWithinThreshold(t *testing.T) {
	h, _ := newMouseHarness(t)
	b := box("b", 0, 0, 100, 100)
	h.root.AddChild(b)
	rec := &recorder{}
	rec.on(b, EventPointerDown, EventPointerUp, EventPointerClick, EventBeginDrag, EventDrag)

	h.src.InjectPress(50, 50)
	h.src.InjectMove(55, 50)
	h.src.InjectRelease(55, 50)
	h.drain()

	assert.Equal(t, []string{"b:PointerDown", "b:PointerUp", "b:PointerClick"}, rec.events)
}

func TestTracker_ClickGoesToPressHolder(t *testing.T) {
	h, _ := newMouseHarness(t)
	button := box("button", 0, 0, 100, 100)
	label := box("label", 10, 10, 20, 20)
	h.root.AddChild(button)
	button.AddChild(label)
	rec := &recorder{}
	rec.on(button, EventPointerClick)

	h.src.InjectClick(15, 15)
	h.drain()

	assert.Equal(t, []string{"button:PointerClick"}, rec.events)
}

func TestTracker_NoClickWhenReleasedElsewhere(t *testing.T) {
	h, _ := newMouseHarness(t)
	a := box("a", 0, 0, 100, 100)
	b := box("b", 200, 0, 100, 100)
	h.root.AddChild(a)
	h.root.AddChild(b)
	rec := &recorder{}
	rec.on(a, EventPointerUp, EventPointerClick)
	rec.on(b, EventPointerClick)

	h.src.InjectPress(50, 50)
	h.src.InjectRelease(250, 50)
	h.drain()

	// The release still reaches the press holder.
	assert.Equal(t, []string{"a:PointerUp"}, rec.events)
}

func TestTracker_MultiClick(t *testing.T) {
	tests := []struct {
		name string
		gap  float64
		want []int
	}{
		{"within window", 0.1, []int{1, 2}},
		{"outside window", 0.5, []int{1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newMouseHarness(t)
			b := box("b", 0, 0, 100, 100)
			h.root.AddChild(b)
			var counts []int
			b.OnPointerClick = func(ev *PointerEvent) { counts = append(counts, ev.ClickCount) }

			h.src.InjectClick(50, 50)
			h.drain()
			h.now += tt.gap
			h.src.InjectClick(50, 50)
			h.drain()

			assert.Equal(t, tt.want, counts)
		})
	}
}

func TestTracker_MultiClickDifferentObjects(t *testing.T) {
	h, _ := newMouseHarness(t)
	a := box("a", 0, 0, 100, 100)
	b := box("b", 200, 0, 100, 100)
	h.root.AddChild(a)
	h.root.AddChild(b)
	var counts []int
	record := func(ev *PointerEvent) { counts = append(counts, ev.ClickCount) }
	a.OnPointerClick = record
	b.OnPointerClick = record

	h.src.InjectClick(50, 50)
	h.src.InjectClick(250, 50)
	h.drain()

	assert.Equal(t, []int{1, 1}, counts)
}

// --- Hover ---

func TestTracker_EnterExit(t *testing.T) {
	h, m := newMouseHarness(t)
	panel := box("panel", 0, 0, 100, 100)
	button := box("button", 10, 10, 30, 30)
	other := box("other", 200, 200, 100, 100)
	h.root.AddChild(panel)
	panel.AddChild(button)
	h.root.AddChild(other)

	rec := &recorder{}
	for _, n := range []*Node{panel, button, other} {
		rec.on(n, EventPointerEnter, EventPointerExit)
	}

	h.src.InjectMove(20, 20)
	h.run(1)
	assert.Equal(t, []string{"button:PointerEnter", "panel:PointerEnter"}, rec.events)
	assert.True(t, h.sys.IsPointerOverObject(MouseLeftID))
	assert.Same(t, button, m.Pointer(InputButtonLeft).Entered)

	rec.reset()
	h.src.InjectMove(60, 60)
	h.run(1)
	assert.Equal(t, []string{"button:PointerExit"}, rec.events, "panel keeps its hover")

	rec.reset()
	h.src.InjectMove(250, 250)
	h.run(1)
	assert.Equal(t, []string{"panel:PointerExit", "other:PointerEnter"}, rec.events)

	rec.reset()
	h.src.InjectMove(500, 500)
	h.run(1)
	assert.Equal(t, []string{"other:PointerExit"}, rec.events)
	assert.False(t, h.sys.IsPointerOverObject(MouseLeftID))
	assert.Empty(t, m.Pointer(InputButtonLeft).Hovered)
}

// --- Direct tracker use ---

func TestTracker_ReleaseWithoutPressIsHoverOnly(t *testing.T) {
	for _, touch := range []bool{false, true} {
		sys := New(WithClock(func() float64 { return 0 }))
		tr := NewPointerTracker(sys)
		b := NewNode("b")
		rec := &recorder{}
		rec.on(b, EventPointerExit, EventPointerUp, EventPointerClick, EventDrop, EventEndDrag)

		ev, created := tr.Get(1, true)
		require.True(t, created)
		ev.CurrentHit = HitResult{Node: b}
		tr.ProcessPress(ev, false, true, touch)

		assert.Empty(t, rec.events, "touch=%v", touch)
		assert.False(t, ev.IsPressed())
	}
}

func TestTracker_ReleaseAndPressWhileHeld(t *testing.T) {
	sys := New(WithClock(func() float64 { return 0 }))
	tr := NewPointerTracker(sys)
	b := NewNode("b")
	rec := &recorder{}
	rec.on(b, EventPointerDown, EventPointerUp, EventPointerClick,
		EventInitializePotentialDrag, EventBeginDrag, EventDrag, EventEndDrag, EventDrop)

	ev, _ := tr.Get(MouseLeftID, true)
	ev.CurrentHit = HitResult{Node: b}
	tr.ProcessPress(ev, true, false, false)
	ev.Position = Vec2{40, 0}
	tr.ProcessDrag(ev)
	require.True(t, ev.Dragging)

	// The button went up and down again between two passes.
	tr.ProcessPress(ev, true, true, false)
	assert.True(t, ev.IsPressed())
	assert.False(t, ev.Dragging)
	assert.Same(t, b, ev.DragTarget)

	tr.ProcessPress(ev, false, true, false)
	assert.False(t, ev.IsPressed())

	assert.Equal(t, []string{
		"b:PointerDown", "b:InitializePotentialDrag",
		"b:BeginDrag", "b:Drag",
		"b:PointerUp", "b:Drop", "b:EndDrag",
		"b:PointerDown", "b:InitializePotentialDrag",
		"b:PointerUp", "b:PointerClick",
	}, rec.events)
}

func TestTracker_TouchSemantics(t *testing.T) {
	sys := New(WithClock(func() float64 { return 0 }))
	tr := NewPointerTracker(sys)
	b := NewNode("b")
	rec := &recorder{}
	rec.on(b, EventPointerEnter, EventPointerExit, EventPointerDown, EventPointerUp, EventPointerClick)

	ev, _ := tr.Get(0, true)
	ev.CurrentHit = HitResult{Node: b}
	tr.ProcessPress(ev, true, false, true)
	tr.ProcessPress(ev, false, true, true)

	assert.Equal(t, []string{
		"b:PointerEnter", "b:PointerDown",
		"b:PointerUp", "b:PointerClick", "b:PointerExit",
	}, rec.events)
	assert.Nil(t, ev.Entered)
}

func TestTracker_Abandon(t *testing.T) {
	sys := New(WithClock(func() float64 { return 0 }))
	tr := NewPointerTracker(sys)
	b := NewNode("b")
	rec := &recorder{}
	rec.on(b, pointerEvents...)

	ev, _ := tr.Get(1, true)
	ev.CurrentHit = HitResult{Node: b}
	tr.ProcessPress(ev, true, false, false)
	tr.ProcessMove(ev)
	ev.Position = Vec2{50, 0}
	tr.ProcessDrag(ev)
	require.True(t, ev.Dragging)

	rec.reset()
	tr.Abandon(ev)
	assert.Equal(t, []string{"b:EndDrag", "b:PointerExit"}, rec.events)
	assert.Zero(t, tr.Len())
	assert.False(t, ev.Dragging)

	rec.reset()
	tr.Clear()
	assert.Empty(t, rec.events)
}

func TestTracker_ClearAbandonsAll(t *testing.T) {
	sys := New()
	tr := NewPointerTracker(sys)
	b := NewNode("b")
	rec := &recorder{}
	rec.on(b, EventPointerExit)

	for id := range 3 {
		ev, _ := tr.Get(id, true)
		ev.CurrentHit = HitResult{Node: b}
		tr.ProcessMove(ev)
	}
	require.Equal(t, 3, tr.Len())

	tr.Clear()
	assert.Zero(t, tr.Len())
	assert.Equal(t, 3, rec.count("b:PointerExit"))
}

func TestTracker_GetAndRemove(t *testing.T) {
	tr := NewPointerTracker(New())

	ev, created := tr.Get(5, false)
	assert.Nil(t, ev)
	assert.False(t, created)

	ev, created = tr.Get(5, true)
	require.NotNil(t, ev)
	assert.True(t, created)
	assert.Equal(t, 5, ev.PointerID)

	again, created := tr.Get(5, true)
	assert.Same(t, ev, again)
	assert.False(t, created)

	tr.Get(6, true)
	var ids []int
	tr.Each(func(ev *PointerEvent) { ids = append(ids, ev.PointerID) })
	assert.Equal(t, []int{5, 6}, ids)

	tr.Remove(5)
	tr.Remove(99)
	assert.Equal(t, 1, tr.Len())
}
