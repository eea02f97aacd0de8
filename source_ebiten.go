package eventsys

import (
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenSource reads mouse, touch and keyboard state from Ebitengine. Call
// EventSystem.Update from the game's Update so inpututil's per-tick
// transitions line up with passes.
type EbitenSource struct {
	mobile   bool
	sawTouch bool

	mouse   Vec2
	scroll  Vec2
	mods    KeyModifiers
	nav     NavigationInput
	touches []Touch

	touchIDs    []ebiten.TouchID
	justPressed []ebiten.TouchID
	released    []ebiten.TouchID
}

// NewEbitenSource creates a source for the current platform.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{
		mobile: runtime.GOOS == "android" || runtime.GOOS == "ios",
	}
}

var ebitenButtons = [...]ebiten.MouseButton{
	InputButtonLeft:   ebiten.MouseButtonLeft,
	InputButtonRight:  ebiten.MouseButtonRight,
	InputButtonMiddle: ebiten.MouseButtonMiddle,
}

// Poll snapshots the input state of the current tick.
func (s *EbitenSource) Poll() {
	mx, my := ebiten.CursorPosition()
	s.mouse = Vec2{float64(mx), float64(my)}
	wx, wy := ebiten.Wheel()
	s.scroll = Vec2{wx, wy}
	s.mods = readModifiers()
	s.nav = readNavigation()
	s.pollTouches()
}

func (s *EbitenSource) pollTouches() {
	s.touches = s.touches[:0]
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	s.justPressed = inpututil.AppendJustPressedTouchIDs(s.justPressed[:0])
	s.released = inpututil.AppendJustReleasedTouchIDs(s.released[:0])

	if len(s.touchIDs) > 0 || len(s.released) > 0 {
		s.sawTouch = true
	}

	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		px, py := inpututil.TouchPositionInPreviousTick(id)
		phase := TouchStationary
		switch {
		case containsTouchID(s.justPressed, id):
			phase = TouchBegan
		case x != px || y != py:
			phase = TouchMoved
		}
		s.touches = append(s.touches, Touch{
			ID:       int(id),
			Position: Vec2{float64(x), float64(y)},
			Phase:    phase,
			Type:     TouchDirect,
		})
	}
	for _, id := range s.released {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		s.touches = append(s.touches, Touch{
			ID:       int(id),
			Position: Vec2{float64(x), float64(y)},
			Phase:    TouchEnded,
			Type:     TouchDirect,
		})
	}
}

func containsTouchID(ids []ebiten.TouchID, id ebiten.TouchID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// MousePresent reports false on mobile platforms.
func (s *EbitenSource) MousePresent() bool { return !s.mobile }

// MousePosition returns the cursor position in screen pixels.
func (s *EbitenSource) MousePosition() Vec2 { return s.mouse }

// MouseScrollDelta returns the wheel movement of this tick.
func (s *EbitenSource) MouseScrollDelta() Vec2 { return s.scroll }

// MouseButton reports whether b is held.
func (s *EbitenSource) MouseButton(b InputButton) bool {
	return ebiten.IsMouseButtonPressed(ebitenButtons[b])
}

// MouseButtonDown reports whether b went down this tick.
func (s *EbitenSource) MouseButtonDown(b InputButton) bool {
	return inpututil.IsMouseButtonJustPressed(ebitenButtons[b])
}

// MouseButtonUp reports whether b went up this tick.
func (s *EbitenSource) MouseButtonUp(b InputButton) bool {
	return inpututil.IsMouseButtonJustReleased(ebitenButtons[b])
}

// TouchSupported reports true on mobile platforms, and on desktop once a
// touch has been seen.
func (s *EbitenSource) TouchSupported() bool { return s.mobile || s.sawTouch }

// Touches returns the contacts of this tick, released ones included.
func (s *EbitenSource) Touches() []Touch { return s.touches }

// Navigation returns arrow / WASD movement, Enter or Space as submit and
// Escape as cancel.
func (s *EbitenSource) Navigation() NavigationInput { return s.nav }

// Modifiers returns the keyboard modifier state of this tick.
func (s *EbitenSource) Modifiers() KeyModifiers { return s.mods }

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

func readNavigation() NavigationInput {
	var nav NavigationInput
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		nav.Move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		nav.Move.X++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		nav.Move.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		nav.Move.Y--
	}
	nav.Submit = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	nav.Cancel = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return nav
}
