package eventsys

import (
	"fmt"
	"strings"
)

// InputModule turns raw Source input into dispatched events. The EventSystem
// ticks every module each pass, lets at most one of them be active and calls
// Process on the active one only.
type InputModule interface {
	// Attach binds the module to its system. Called by AddModule.
	Attach(sys *EventSystem)

	// UpdateModule refreshes module-local bookkeeping. It runs every pass,
	// active or not.
	UpdateModule()
	// IsModuleSupported reports whether the module can work on the current
	// platform.
	IsModuleSupported() bool
	// ShouldActivateModule reports whether the module wants to become active
	// this pass.
	ShouldActivateModule() bool

	ActivateModule()
	// DeactivateModule ends in-flight drags, exits hovered objects and
	// discards all pointer records.
	DeactivateModule()

	// Process runs one pass of the active module.
	Process()

	// IsPointerOverObject reports whether pointer id currently hovers an
	// object.
	IsPointerOverObject(pointerID int) bool

	String() string
}

// PointerModule holds the state shared by pointer-driven modules: the owning
// system, the pointer tracker and the per-pass hit buffer. It is embedded by
// TouchModule and MouseModule.
type PointerModule struct {
	// Disabled keeps the module from activating.
	Disabled bool

	sys      *EventSystem
	pointers *PointerTracker
	hits     []HitResult
}

// Attach binds the module to sys and resets its pointer records.
func (m *PointerModule) Attach(sys *EventSystem) {
	m.sys = sys
	m.pointers = NewPointerTracker(sys)
}

// System returns the owning event system.
func (m *PointerModule) System() *EventSystem { return m.sys }

// Pointers returns the module's pointer records.
func (m *PointerModule) Pointers() *PointerTracker { return m.pointers }

// ShouldActivateModule is the base check: the module is attached and not
// disabled.
func (m *PointerModule) ShouldActivateModule() bool {
	return m.sys != nil && !m.Disabled
}

// ActivateModule is a no-op for the base module.
func (m *PointerModule) ActivateModule() {}

// DeactivateModule abandons every pointer and clears the selection.
func (m *PointerModule) DeactivateModule() {
	if m.pointers != nil {
		m.pointers.Clear()
	}
	if m.sys != nil {
		m.sys.SetSelected(nil)
	}
}

// IsPointerOverObject reports whether the record for pointerID has an entered
// object.
func (m *PointerModule) IsPointerOverObject(pointerID int) bool {
	if m.pointers == nil {
		return false
	}
	ev, _ := m.pointers.Get(pointerID, false)
	return ev != nil && ev.Entered != nil
}

// raycast fills ev.CurrentHit with the top hit at ev.Position.
func (m *PointerModule) raycast(ev *PointerEvent) {
	m.hits = m.sys.RaycastAll(ev, m.hits[:0])
	ev.CurrentHit = FirstHit(m.hits)
	clear(m.hits)
	m.hits = m.hits[:0]
}

// touchPointer returns the record for t, updating its position, delta and
// hit. pressed and released describe the contact's transition this pass.
func (m *PointerModule) touchPointer(t Touch) (ev *PointerEvent, pressed, released bool) {
	ev, created := m.pointers.Get(t.ID, true)
	ev.Reset()

	released = t.Phase == TouchEnded || t.Phase == TouchCanceled
	// An untracked contact that ends is hover-only: it never presses.
	pressed = t.Phase == TouchBegan || (created && !released)

	if created {
		ev.Position = t.Position
	}
	if pressed {
		ev.Delta = Vec2{}
	} else {
		ev.Delta = t.Position.Sub(ev.Position)
	}
	ev.Position = t.Position
	ev.Button = InputButtonLeft
	ev.Modifiers = m.sys.source.Modifiers()

	m.raycast(ev)
	return ev, pressed, released
}

// mousePointer returns the record for the mouse pointer id, updated from the
// source's cursor state.
func (m *PointerModule) mousePointer(id int, b InputButton) *PointerEvent {
	src := m.sys.source
	ev, created := m.pointers.Get(id, true)
	ev.Reset()

	pos := src.MousePosition()
	if created {
		ev.Position = pos
	}
	ev.Delta = pos.Sub(ev.Position)
	ev.Position = pos
	ev.ScrollDelta = src.MouseScrollDelta()
	ev.Button = b
	ev.Modifiers = src.Modifiers()
	return ev
}

func (m *PointerModule) dumpPointers(sb *strings.Builder) {
	if m.pointers == nil {
		return
	}
	m.pointers.Each(func(ev *PointerEvent) {
		fmt.Fprintln(sb, ev)
	})
}
