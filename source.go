package eventsys

// Touch is one contact reported by a Source during a pass.
type Touch struct {
	ID       int
	Position Vec2
	Phase    TouchPhase
	Type     TouchType
}

// NavigationInput is the keyboard / gamepad navigation state of a pass.
// Move uses +Y for up.
type NavigationInput struct {
	Move   Vec2
	Submit bool // submit pressed this pass
	Cancel bool // cancel pressed this pass
}

// Source is the raw platform input polled by the event system. Poll is called
// exactly once at the start of every pass; the query methods then describe
// that pass.
type Source interface {
	Poll()

	MousePresent() bool
	MousePosition() Vec2
	MouseScrollDelta() Vec2
	// MouseButton reports whether b is held.
	MouseButton(b InputButton) bool
	// MouseButtonDown reports whether b went down this pass.
	MouseButtonDown(b InputButton) bool
	// MouseButtonUp reports whether b went up this pass.
	MouseButtonUp(b InputButton) bool

	TouchSupported() bool
	// Touches returns the contacts of this pass. The slice is only valid
	// until the next Poll.
	Touches() []Touch

	Navigation() NavigationInput
	Modifiers() KeyModifiers
}

// noSource is used when no Source was configured: no mouse, no touches.
type noSource struct{}

func (noSource) Poll()                            {}
func (noSource) MousePresent() bool               { return false }
func (noSource) MousePosition() Vec2              { return Vec2{} }
func (noSource) MouseScrollDelta() Vec2           { return Vec2{} }
func (noSource) MouseButton(InputButton) bool     { return false }
func (noSource) MouseButtonDown(InputButton) bool { return false }
func (noSource) MouseButtonUp(InputButton) bool   { return false }
func (noSource) TouchSupported() bool             { return false }
func (noSource) Touches() []Touch                 { return nil }
func (noSource) Navigation() NavigationInput      { return NavigationInput{} }
func (noSource) Modifiers() KeyModifiers          { return 0 }

// framePressState derives the pass transition of button b.
func framePressState(src Source, b InputButton) FramePressState {
	down := src.MouseButtonDown(b)
	up := src.MouseButtonUp(b)
	switch {
	case down && up:
		return PressedAndReleased
	case down:
		return Pressed
	case up:
		return Released
	}
	return NotChanged
}
