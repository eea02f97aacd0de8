package eventsys

import (
	"fmt"
	"strings"
)

// Pointer ids of the mouse buttons. Touch ids from a Source are never
// negative.
const (
	MouseLeftID   = -1
	MouseRightID  = -2
	MouseMiddleID = -3
)

var mouseButtonIDs = [...]int{
	InputButtonLeft:   MouseLeftID,
	InputButtonRight:  MouseRightID,
	InputButtonMiddle: MouseMiddleID,
}

// navDeadZone is the axis length below which a navigation move is ignored.
const navDeadZone = 0.6

// MouseModule routes mouse input with hover, and keyboard / gamepad
// navigation to the selected object. Each button keeps its own pointer
// record; right and middle share the left record's position and hit.
type MouseModule struct {
	PointerModule

	// ForceModuleActive makes the module supported and active regardless of
	// the platform.
	ForceModuleActive bool

	lastMouse Vec2
	mouse     Vec2

	consecutiveMoves int
	prevActionTime   float64
	lastMoveVector   Vec2
	actionsInit      bool
}

// NewMouseModule creates a mouse module.
func NewMouseModule() *MouseModule {
	return &MouseModule{}
}

// UpdateModule tracks the mouse position for activation checks.
func (m *MouseModule) UpdateModule() {
	if m.sys == nil {
		return
	}
	m.lastMouse = m.mouse
	m.mouse = m.sys.source.MousePosition()
}

// IsModuleSupported reports true when forced or when a mouse is present.
func (m *MouseModule) IsModuleSupported() bool {
	return m.ForceModuleActive || (m.sys != nil && m.sys.source.MousePresent())
}

// ShouldActivateModule reports true on mouse movement, a left press or any
// navigation input.
func (m *MouseModule) ShouldActivateModule() bool {
	if !m.PointerModule.ShouldActivateModule() {
		return false
	}
	if m.ForceModuleActive {
		return true
	}
	src := m.sys.source
	nav := src.Navigation()
	return nav.Submit || nav.Cancel || !nav.Move.IsZero() ||
		m.mouse.Sub(m.lastMouse).LenSq() > 0 ||
		src.MouseButtonDown(InputButtonLeft)
}

// ActivateModule reselects the current selection, or the system's first
// selected object when nothing is selected.
func (m *MouseModule) ActivateModule() {
	if !m.sys.Focused() {
		return
	}
	m.mouse = m.sys.source.MousePosition()
	m.lastMouse = m.mouse

	toSelect := m.sys.Selected()
	if toSelect == nil {
		toSelect = m.sys.FirstSelected()
	}
	m.sys.SetSelected(toSelect)
}

// Pointer returns the record of mouse button b, or nil before the first
// pass.
func (m *MouseModule) Pointer(b InputButton) *PointerEvent {
	if m.pointers == nil {
		return nil
	}
	ev, _ := m.pointers.Get(mouseButtonIDs[b], false)
	return ev
}

// Process runs one pass: update-selected, mouse buttons and scroll, then
// navigation unless an earlier handler used the event.
func (m *MouseModule) Process() {
	if !m.sys.Focused() {
		return
	}

	used := m.sendUpdateEventToSelected()

	if m.sys.source.MousePresent() {
		m.processMouseEvent()
	}

	if m.sys.sendNavigationEvents {
		if !used {
			used = m.sendMoveEventToSelected()
		}
		if !used {
			m.sendSubmitEventToSelected()
		}
	}
}

func (m *MouseModule) processMouseEvent() {
	src := m.sys.source

	left := m.mousePointer(MouseLeftID, InputButtonLeft)
	m.raycast(left)

	state := framePressState(src, InputButtonLeft)
	m.pointers.ProcessPress(left, state.PressedThisFrame(), state.ReleasedThisFrame(), false)
	m.pointers.ProcessMove(left)
	m.pointers.ProcessDrag(left)

	for _, b := range [...]InputButton{InputButtonRight, InputButtonMiddle} {
		ev := m.mousePointer(mouseButtonIDs[b], b)
		ev.Delta = left.Delta
		ev.CurrentHit = left.CurrentHit
		ev.Entered = left.Entered

		state := framePressState(src, b)
		m.pointers.ProcessPress(ev, state.PressedThisFrame(), state.ReleasedThisFrame(), false)
		m.pointers.ProcessDrag(ev)
	}

	if left.IsScrolling() {
		ExecuteFirst(left.CurrentNode(), EventScroll, left)
	}
}

// sendUpdateEventToSelected fires update-selected and reports whether the
// handler used the event.
func (m *MouseModule) sendUpdateEventToSelected() bool {
	sel := m.sys.Selected()
	if sel == nil {
		return false
	}
	data := NewBaseEvent(m.sys)
	Execute(sel, EventUpdateSelected, data)
	return data.Used()
}

// sendMoveEventToSelected fires a move once the axis passes the dead zone.
// Holding the same direction repeats after RepeatDelay, then at
// InputActionsPerSecond.
func (m *MouseModule) sendMoveEventToSelected() bool {
	now := m.sys.now()
	move := m.sys.source.Navigation().Move
	if move.IsZero() {
		m.consecutiveMoves = 0
		return false
	}

	similarDir := move.X*m.lastMoveVector.X+move.Y*m.lastMoveVector.Y > 0
	if m.actionsInit {
		if similarDir && m.consecutiveMoves == 1 {
			if now <= m.prevActionTime+m.sys.repeatDelay {
				return false
			}
		} else if now <= m.prevActionTime+1/m.sys.inputActionsPerSecond {
			return false
		}
	}

	data := NewAxisEvent(m.sys)
	data.MoveVector = move
	data.MoveDir = DetermineMoveDirection(move.X, move.Y, navDeadZone)
	if data.MoveDir == MoveNone {
		m.consecutiveMoves = 0
		return false
	}

	if sel := m.sys.Selected(); sel != nil {
		Execute(sel, EventMove, data)
	}
	if !similarDir {
		m.consecutiveMoves = 0
	}
	m.consecutiveMoves++
	m.prevActionTime = now
	m.lastMoveVector = move
	m.actionsInit = true
	return data.Used()
}

func (m *MouseModule) sendSubmitEventToSelected() bool {
	sel := m.sys.Selected()
	if sel == nil {
		return false
	}
	nav := m.sys.source.Navigation()
	data := NewBaseEvent(m.sys)
	if nav.Submit {
		Execute(sel, EventSubmit, data)
	}
	if nav.Cancel {
		Execute(sel, EventCancel, data)
	}
	return data.Used()
}

// DeactivateModule abandons every button record and clears the selection.
func (m *MouseModule) DeactivateModule() {
	m.consecutiveMoves = 0
	m.PointerModule.DeactivateModule()
}

func (m *MouseModule) String() string {
	var sb strings.Builder
	sb.WriteString("MouseModule\n")
	fmt.Fprintf(&sb, "  navigation: consecutive %d last (%.2f, %.2f)\n",
		m.consecutiveMoves, m.lastMoveVector.X, m.lastMoveVector.Y)
	m.dumpPointers(&sb)
	return sb.String()
}
