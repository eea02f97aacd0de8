package eventsys

import "strings"

// TouchModule routes multi-touch input. Each contact is its own pointer; a
// contact enters its target on press and exits on release. When the platform
// reports no touch support the left mouse button drives a single fake
// contact with the same semantics.
type TouchModule struct {
	PointerModule

	// ForceModuleActive makes the module supported and active regardless of
	// the platform.
	ForceModuleActive bool

	lastMouse Vec2
	mouse     Vec2
}

// NewTouchModule creates a touch module.
func NewTouchModule() *TouchModule {
	return &TouchModule{}
}

// UpdateModule ends every in-flight drag when the application lost focus and
// tracks the mouse for fake-touch activation.
func (m *TouchModule) UpdateModule() {
	if m.sys == nil {
		return
	}
	if !m.sys.Focused() {
		m.pointers.Each(func(ev *PointerEvent) {
			if ev.DragTarget == nil || !ev.Dragging {
				return
			}
			Execute(ev.DragTarget, EventEndDrag, ev)
			ev.Dragging = false
			ev.DragTarget = nil
			ev.EligibleForClick = false
		})
	}
	m.lastMouse = m.mouse
	m.mouse = m.sys.source.MousePosition()
}

// IsModuleSupported reports true when forced or when touch is supported.
func (m *TouchModule) IsModuleSupported() bool {
	return m.ForceModuleActive || (m.sys != nil && m.sys.source.TouchSupported())
}

// ShouldActivateModule reports true when forced, on a fake-touch mouse press
// or mouse movement, or while real contacts exist.
func (m *TouchModule) ShouldActivateModule() bool {
	if !m.PointerModule.ShouldActivateModule() {
		return false
	}
	if m.ForceModuleActive {
		return true
	}
	if m.useFakeInput() {
		return m.sys.source.MouseButtonDown(InputButtonLeft) ||
			m.mouse.Sub(m.lastMouse).LenSq() > 0
	}
	return len(m.sys.source.Touches()) > 0
}

func (m *TouchModule) useFakeInput() bool {
	return !m.sys.source.TouchSupported()
}

// Process runs one pass over the real or fake contacts.
func (m *TouchModule) Process() {
	if m.useFakeInput() {
		m.fakeTouches()
	} else {
		m.processTouchEvents()
	}
}

func (m *TouchModule) fakeTouches() {
	src := m.sys.source
	ev := m.mousePointer(MouseLeftID, InputButtonLeft)
	m.raycast(ev)

	state := framePressState(src, InputButtonLeft)
	if state.PressedThisFrame() {
		ev.Delta = Vec2{}
	}
	m.pointers.ProcessPress(ev, state.PressedThisFrame(), state.ReleasedThisFrame(), true)

	// Fake contacts only move while pressed.
	if src.MouseButton(InputButtonLeft) {
		m.pointers.ProcessMove(ev)
		m.pointers.ProcessDrag(ev)
	}
}

func (m *TouchModule) processTouchEvents() {
	for _, t := range m.sys.source.Touches() {
		if t.Type == TouchIndirect {
			continue
		}
		ev, pressed, released := m.touchPointer(t)
		m.pointers.ProcessPress(ev, pressed, released, true)

		if released {
			m.pointers.Remove(ev.PointerID)
			continue
		}
		m.pointers.ProcessMove(ev)
		m.pointers.ProcessDrag(ev)
	}
}

func (m *TouchModule) String() string {
	var sb strings.Builder
	if m.sys != nil && m.useFakeInput() {
		sb.WriteString("TouchModule (input: faked)\n")
	} else {
		sb.WriteString("TouchModule (input: touch)\n")
	}
	m.dumpPointers(&sb)
	return sb.String()
}
