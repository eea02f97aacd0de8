package eventsys

import "math"

// Vec2 is a 2D vector used for positions, deltas and axis input throughout
// the API. Screen space has its origin at the top-left with Y increasing
// downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.LenSq()) }

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// EventType identifies an interaction capability. A Node implements a
// capability by setting the matching callback field.
type EventType uint8

const (
	EventPointerEnter           EventType = iota // pointer starts hovering a node
	EventPointerExit                             // pointer stops hovering a node
	EventPointerDown                             // pointer pressed over a node
	EventPointerUp                               // pointer released after pressing a node
	EventPointerClick                            // press and release resolved to the same node
	EventInitializePotentialDrag                 // drag target found at press time
	EventBeginDrag                               // movement exceeded the drag threshold
	EventDrag                                    // fires every pass while dragging
	EventEndDrag                                 // drag finished or was cancelled
	EventDrop                                    // released over a node while dragging
	EventScroll                                  // scroll wheel moved over a node
	EventUpdateSelected                          // fires every pass on the selected node
	EventSelect                                  // node became the selection
	EventDeselect                                // node stopped being the selection
	EventMove                                    // navigation move (keyboard / gamepad)
	EventSubmit                                  // navigation submit
	EventCancel                                  // navigation cancel

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	"PointerEnter", "PointerExit", "PointerDown", "PointerUp", "PointerClick",
	"InitializePotentialDrag", "BeginDrag", "Drag", "EndDrag", "Drop",
	"Scroll", "UpdateSelected", "Select", "Deselect", "Move", "Submit", "Cancel",
}

func (t EventType) String() string {
	if t < eventTypeCount {
		return eventTypeNames[t]
	}
	return "Unknown"
}

// InputButton identifies which button of a spatial pointer produced an event.
// Touches always report InputButtonLeft.
type InputButton uint8

const (
	InputButtonLeft   InputButton = iota // primary mouse button or touch contact
	InputButtonRight                     // secondary mouse button
	InputButtonMiddle                    // middle mouse button (scroll wheel click)
)

func (b InputButton) String() string {
	switch b {
	case InputButtonLeft:
		return "Left"
	case InputButtonRight:
		return "Right"
	case InputButtonMiddle:
		return "Middle"
	}
	return "Unknown"
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// MoveDirection is the quantized direction of a navigation move.
type MoveDirection uint8

const (
	MoveNone MoveDirection = iota
	MoveLeft
	MoveUp
	MoveRight
	MoveDown
)

func (d MoveDirection) String() string {
	switch d {
	case MoveLeft:
		return "Left"
	case MoveUp:
		return "Up"
	case MoveRight:
		return "Right"
	case MoveDown:
		return "Down"
	}
	return "None"
}

// DetermineMoveDirection quantizes an axis vector. Vectors shorter than
// deadZone report MoveNone; otherwise the dominant axis wins, with positive Y
// meaning up.
func DetermineMoveDirection(x, y, deadZone float64) MoveDirection {
	if x*x+y*y < deadZone*deadZone {
		return MoveNone
	}
	if math.Abs(x) > math.Abs(y) {
		if x > 0 {
			return MoveRight
		}
		return MoveLeft
	}
	if y > 0 {
		return MoveUp
	}
	return MoveDown
}

// FramePressState describes what happened to a button during one pass.
type FramePressState uint8

const (
	NotChanged         FramePressState = iota // held or idle, no transition
	Pressed                                   // went down this pass
	Released                                  // went up this pass
	PressedAndReleased                        // went down and up within one pass
)

// PressedThisFrame reports whether the button went down during the pass.
func (s FramePressState) PressedThisFrame() bool {
	return s == Pressed || s == PressedAndReleased
}

// ReleasedThisFrame reports whether the button went up during the pass.
func (s FramePressState) ReleasedThisFrame() bool {
	return s == Released || s == PressedAndReleased
}

// TouchPhase is the lifecycle stage of a touch contact.
type TouchPhase uint8

const (
	TouchBegan TouchPhase = iota
	TouchMoved
	TouchStationary
	TouchEnded
	TouchCanceled
)

// TouchType distinguishes direct screen contact from stylus and indirect
// (trackpad-like) contacts. Indirect touches are ignored by TouchModule.
type TouchType uint8

const (
	TouchDirect TouchType = iota
	TouchIndirect
	TouchStylus
)
