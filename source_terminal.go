package eventsys

import "github.com/gdamore/tcell/v2"

// TerminalSource turns tcell mouse and key events into pointer input. Feed it
// every event from the screen's event loop with HandleEvent; each Poll then
// reports what arrived since the previous pass. Cell coordinates are scaled
// by CellSize, so a 1x1 cell size makes cells the pixels.
type TerminalSource struct {
	CellSize Vec2

	mouse    Vec2
	held     [3]bool
	gotDown  [3]bool
	gotUp    [3]bool
	scroll   Vec2
	nav      NavigationInput
	mods     KeyModifiers
	hasMouse bool
	focused  bool

	// pass snapshot
	down     [3]bool
	up       [3]bool
	passScrl Vec2
	passNav  NavigationInput
}

// NewTerminalSource creates a source with one pixel per cell.
func NewTerminalSource() *TerminalSource {
	return &TerminalSource{CellSize: Vec2{1, 1}, focused: true}
}

var tcellButtons = [...]tcell.ButtonMask{
	InputButtonLeft:   tcell.ButtonPrimary,
	InputButtonRight:  tcell.ButtonSecondary,
	InputButtonMiddle: tcell.ButtonMiddle,
}

// HandleEvent records a tcell event. It returns false for event kinds the
// source does not consume.
func (s *TerminalSource) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		s.handleMouse(e)
		return true
	case *tcell.EventKey:
		return s.handleKey(e)
	case *tcell.EventFocus:
		s.focused = e.Focused
		return true
	}
	return false
}

func (s *TerminalSource) handleMouse(e *tcell.EventMouse) {
	x, y := e.Position()
	s.mouse = Vec2{float64(x) * s.CellSize.X, float64(y) * s.CellSize.Y}
	s.mods = convertMod(e.Modifiers())
	s.hasMouse = true

	btns := e.Buttons()
	for b, mask := range tcellButtons {
		pressed := btns&mask != 0
		if pressed && !s.held[b] {
			s.gotDown[b] = true
		}
		if !pressed && s.held[b] {
			s.gotUp[b] = true
		}
		s.held[b] = pressed
	}

	switch {
	case btns&tcell.WheelUp != 0:
		s.scroll.Y++
	case btns&tcell.WheelDown != 0:
		s.scroll.Y--
	case btns&tcell.WheelLeft != 0:
		s.scroll.X--
	case btns&tcell.WheelRight != 0:
		s.scroll.X++
	}
}

func (s *TerminalSource) handleKey(e *tcell.EventKey) bool {
	s.mods = convertMod(e.Modifiers())
	switch e.Key() {
	case tcell.KeyLeft:
		s.nav.Move = Vec2{-1, 0}
	case tcell.KeyRight:
		s.nav.Move = Vec2{1, 0}
	case tcell.KeyUp:
		s.nav.Move = Vec2{0, 1}
	case tcell.KeyDown:
		s.nav.Move = Vec2{0, -1}
	case tcell.KeyEnter:
		s.nav.Submit = true
	case tcell.KeyEscape:
		s.nav.Cancel = true
	case tcell.KeyRune:
		if e.Rune() != ' ' {
			return false
		}
		s.nav.Submit = true
	default:
		return false
	}
	return true
}

// Poll publishes the events recorded since the previous pass. Terminals only
// report key presses, so a navigation move lasts a single pass.
func (s *TerminalSource) Poll() {
	s.down, s.up = s.gotDown, s.gotUp
	s.gotDown, s.gotUp = [3]bool{}, [3]bool{}
	s.passScrl, s.scroll = s.scroll, Vec2{}
	s.passNav, s.nav = s.nav, NavigationInput{}
}

// Focused reports the focus state of the last focus event. Screens only send
// focus events after EnableFocus.
func (s *TerminalSource) Focused() bool { return s.focused }

// MousePresent reports true once the terminal delivered a mouse event.
func (s *TerminalSource) MousePresent() bool { return s.hasMouse }

// MousePosition returns the last reported mouse cell, scaled by CellSize.
func (s *TerminalSource) MousePosition() Vec2 { return s.mouse }

// MouseScrollDelta returns the wheel steps of this pass.
func (s *TerminalSource) MouseScrollDelta() Vec2 { return s.passScrl }

// MouseButton reports whether b is held.
func (s *TerminalSource) MouseButton(b InputButton) bool { return s.held[b] }

// MouseButtonDown reports whether b went down during this pass.
func (s *TerminalSource) MouseButtonDown(b InputButton) bool { return s.down[b] }

// MouseButtonUp reports whether b went up during this pass.
func (s *TerminalSource) MouseButtonUp(b InputButton) bool { return s.up[b] }

// TouchSupported is always false for terminals.
func (s *TerminalSource) TouchSupported() bool { return false }

// Touches is always empty for terminals.
func (s *TerminalSource) Touches() []Touch { return nil }

// Navigation returns the key navigation of this pass.
func (s *TerminalSource) Navigation() NavigationInput { return s.passNav }

// Modifiers returns the modifiers of the last event.
func (s *TerminalSource) Modifiers() KeyModifiers { return s.mods }

// convertMod converts tcell modifiers to KeyModifiers.
func convertMod(m tcell.ModMask) KeyModifiers {
	var mods KeyModifiers
	if m&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= ModMeta
	}
	return mods
}
