package eventsys

import (
	"fmt"
	"strings"
)

// EventData is the payload handed to capability callbacks. It is implemented
// by *BaseEvent, *PointerEvent and *AxisEvent.
type EventData interface {
	baseEvent() *BaseEvent
}

// BaseEvent carries the data shared by every event: the owning system and a
// used flag handlers can set to mark the event as consumed.
type BaseEvent struct {
	system *EventSystem
	used   bool
}

// NewBaseEvent creates an event bound to sys. sys may be nil.
func NewBaseEvent(sys *EventSystem) *BaseEvent {
	return &BaseEvent{system: sys}
}

func (e *BaseEvent) baseEvent() *BaseEvent { return e }

// System returns the event system that dispatched the event.
func (e *BaseEvent) System() *EventSystem { return e.system }

// Selected returns the system's current selection, or nil.
func (e *BaseEvent) Selected() *Node {
	if e.system == nil {
		return nil
	}
	return e.system.Selected()
}

// Use marks the event as consumed.
func (e *BaseEvent) Use() { e.used = true }

// Used reports whether a handler consumed the event.
func (e *BaseEvent) Used() bool { return e.used }

// Reset clears the used flag.
func (e *BaseEvent) Reset() { e.used = false }

// AxisEvent carries navigation move input.
type AxisEvent struct {
	BaseEvent
	MoveVector Vec2
	MoveDir    MoveDirection
}

// NewAxisEvent creates an axis event bound to sys.
func NewAxisEvent(sys *EventSystem) *AxisEvent {
	return &AxisEvent{BaseEvent: BaseEvent{system: sys}}
}

// PointerEvent is the persistent per-pointer record. One instance exists per
// tracked pointer id and it is handed to every pointer capability callback, so
// handlers observe the live interaction state.
type PointerEvent struct {
	BaseEvent

	PointerID int
	Button    InputButton
	Modifiers KeyModifiers

	Position      Vec2
	Delta         Vec2 // movement since the previous pass
	PressPosition Vec2
	ScrollDelta   Vec2

	CurrentHit HitResult // top hit this pass
	PressHit   HitResult // top hit at press time

	// Entered is the object currently hovered; Hovered lists it and every
	// ancestor that received an enter event.
	Entered *Node
	Hovered []*Node

	Pressed     *Node // receives release and click
	RawPressed  *Node // top hit at press time, regardless of handlers
	LastPressed *Node // previous Pressed, used for multi-click counting
	DragTarget  *Node // receives drag events, resolved at press time

	ClickCount int
	ClickTime  float64

	Dragging         bool
	EligibleForClick bool
	UseDragThreshold bool

	down bool
}

// NewPointerEvent creates an idle record for pointer id bound to sys.
func NewPointerEvent(sys *EventSystem, id int) *PointerEvent {
	return &PointerEvent{
		BaseEvent:        BaseEvent{system: sys},
		PointerID:        id,
		UseDragThreshold: true,
	}
}

// setPressed assigns Pressed and remembers the previous holder in
// LastPressed, mirroring how click counting compares consecutive presses.
func (e *PointerEvent) setPressed(n *Node) {
	if e.Pressed == n {
		return
	}
	e.LastPressed = e.Pressed
	e.Pressed = n
}

// CurrentNode returns the top hit's node, or nil.
func (e *PointerEvent) CurrentNode() *Node {
	return e.CurrentHit.Node
}

// IsMoving reports whether the pointer moved during the pass.
func (e *PointerEvent) IsMoving() bool {
	return !e.Delta.IsZero()
}

// IsScrolling reports whether a scroll delta was reported during the pass.
func (e *PointerEvent) IsScrolling() bool {
	return !e.ScrollDelta.IsZero()
}

// IsPressed reports whether the pointer is in the pressed state.
func (e *PointerEvent) IsPressed() bool {
	return e.down
}

func (e *PointerEvent) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Pointer %d (%s)\n", e.PointerID, e.Button)
	fmt.Fprintf(&sb, "  position: (%.1f, %.1f) delta: (%.1f, %.1f)\n", e.Position.X, e.Position.Y, e.Delta.X, e.Delta.Y)
	fmt.Fprintf(&sb, "  entered: %s pressed: %s raw: %s drag: %s\n", e.Entered, e.Pressed, e.RawPressed, e.DragTarget)
	fmt.Fprintf(&sb, "  dragging: %t eligibleForClick: %t clickCount: %d\n", e.Dragging, e.EligibleForClick, e.ClickCount)
	fmt.Fprintf(&sb, "  current: %s", e.CurrentHit)
	return sb.String()
}
