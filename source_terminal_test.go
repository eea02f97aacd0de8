package eventsys

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestTerminalSource_MouseButtons(t *testing.T) {
	s := NewTerminalSource()
	s.CellSize = Vec2{8, 16}
	assert.False(t, s.MousePresent())

	assert.True(t, s.HandleEvent(tcell.NewEventMouse(3, 2, tcell.ButtonPrimary, tcell.ModShift)))
	s.Poll()
	assert.True(t, s.MousePresent())
	assert.Equal(t, Vec2{24, 32}, s.MousePosition())
	assert.True(t, s.MouseButtonDown(InputButtonLeft))
	assert.True(t, s.MouseButton(InputButtonLeft))
	assert.Equal(t, ModShift, s.Modifiers())

	// Held: no new transition.
	s.HandleEvent(tcell.NewEventMouse(4, 2, tcell.ButtonPrimary, tcell.ModNone))
	s.Poll()
	assert.False(t, s.MouseButtonDown(InputButtonLeft))
	assert.True(t, s.MouseButton(InputButtonLeft))

	s.HandleEvent(tcell.NewEventMouse(4, 2, tcell.ButtonNone, tcell.ModNone))
	s.Poll()
	assert.True(t, s.MouseButtonUp(InputButtonLeft))
	assert.False(t, s.MouseButton(InputButtonLeft))

	s.Poll()
	assert.False(t, s.MouseButtonUp(InputButtonLeft))
}

func TestTerminalSource_ClickWithinOnePass(t *testing.T) {
	s := NewTerminalSource()
	s.HandleEvent(tcell.NewEventMouse(1, 1, tcell.ButtonSecondary, tcell.ModNone))
	s.HandleEvent(tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone))
	s.Poll()

	assert.Equal(t, PressedAndReleased, framePressState(s, InputButtonRight))
}

func TestTerminalSource_Wheel(t *testing.T) {
	s := NewTerminalSource()
	s.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	s.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	s.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelLeft, tcell.ModNone))
	s.Poll()
	assert.Equal(t, Vec2{-1, 2}, s.MouseScrollDelta())

	s.Poll()
	assert.True(t, s.MouseScrollDelta().IsZero())
}

func TestTerminalSource_Keys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want NavigationInput
		ok   bool
	}{
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), NavigationInput{Move: Vec2{-1, 0}}, true},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), NavigationInput{Move: Vec2{0, 1}}, true},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), NavigationInput{Move: Vec2{0, -1}}, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), NavigationInput{Submit: true}, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), NavigationInput{Submit: true}, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), NavigationInput{Cancel: true}, true},
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), NavigationInput{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTerminalSource()
			assert.Equal(t, tt.ok, s.HandleEvent(tt.ev))
			s.Poll()
			assert.Equal(t, tt.want, s.Navigation())
			s.Poll()
			assert.Equal(t, NavigationInput{}, s.Navigation(), "keys last one pass")
		})
	}
}

func TestTerminalSource_Focus(t *testing.T) {
	s := NewTerminalSource()
	assert.True(t, s.Focused())
	assert.True(t, s.HandleEvent(tcell.NewEventFocus(false)))
	assert.False(t, s.Focused())
	s.HandleEvent(tcell.NewEventFocus(true))
	assert.True(t, s.Focused())

	assert.False(t, s.HandleEvent(tcell.NewEventResize(80, 24)))
}

func TestTerminalSource_DrivesSystem(t *testing.T) {
	src := NewTerminalSource()
	root := NewNode("root")
	b := box("b", 0, 0, 10, 10)
	root.AddChild(b)
	clicks := 0
	b.OnPointerClick = func(*PointerEvent) { clicks++ }

	sys := New(WithSource(src))
	sys.AddRaycaster(NewShapeRaycaster(root, nil))
	sys.AddModule(NewMouseModule())
	sys.Enable()
	t.Cleanup(sys.Disable)

	// No mouse event yet: the mouse module is unsupported.
	sys.Update()
	assert.Nil(t, sys.CurrentModule())

	src.HandleEvent(tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone))
	sys.Update()
	src.HandleEvent(tcell.NewEventMouse(5, 5, tcell.ButtonPrimary, tcell.ModNone))
	sys.Update()
	src.HandleEvent(tcell.NewEventMouse(5, 5, tcell.ButtonNone, tcell.ModNone))
	sys.Update()

	assert.Equal(t, 1, clicks)
}

func TestTerminalSource_ReleaseAndPressBetweenPolls(t *testing.T) {
	src := NewTerminalSource()
	root := NewNode("root")
	a := box("a", 0, 0, 100, 20)
	root.AddChild(a)
	rec := &recorder{}
	rec.on(a, EventPointerDown, EventPointerUp, EventPointerClick,
		EventInitializePotentialDrag, EventBeginDrag, EventDrag, EventEndDrag, EventDrop)

	sys := New(WithSource(src))
	sys.AddRaycaster(NewShapeRaycaster(root, nil))
	sys.AddModule(NewMouseModule())
	sys.Enable()
	t.Cleanup(sys.Disable)

	src.HandleEvent(tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone))
	sys.Update()
	src.HandleEvent(tcell.NewEventMouse(10, 10, tcell.ButtonPrimary, tcell.ModNone))
	sys.Update()
	src.HandleEvent(tcell.NewEventMouse(40, 10, tcell.ButtonPrimary, tcell.ModNone))
	sys.Update()
	src.HandleEvent(tcell.NewEventMouse(40, 10, tcell.ButtonNone, tcell.ModNone))
	src.HandleEvent(tcell.NewEventMouse(40, 10, tcell.ButtonPrimary, tcell.ModNone))
	sys.Update()
	src.HandleEvent(tcell.NewEventMouse(40, 10, tcell.ButtonNone, tcell.ModNone))
	sys.Update()

	assert.Equal(t, []string{
		"a:PointerDown", "a:InitializePotentialDrag",
		"a:BeginDrag", "a:Drag",
		"a:PointerUp", "a:Drop", "a:EndDrag",
		"a:PointerDown", "a:InitializePotentialDrag",
		"a:PointerUp", "a:PointerClick",
	}, rec.events)
}
