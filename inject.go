package eventsys

// injectFrame mutates an InjectSource when its pass is polled.
type injectFrame func(s *InjectSource)

// InjectSource is a Source driven by queued synthetic input. Every Poll
// consumes one queued frame; with the queue empty the state simply persists
// (held buttons stay held, touches become stationary). Used for tests,
// scripted demos and automation.
type InjectSource struct {
	queue []injectFrame

	mousePresent   bool
	touchSupported bool

	mouse    Vec2
	buttons  [3]bool
	previous [3]bool
	scroll   Vec2
	nav      NavigationInput
	mods     KeyModifiers
	touches  []Touch
}

// NewInjectSource creates a source with a mouse present and no touch support.
func NewInjectSource() *InjectSource {
	return &InjectSource{mousePresent: true}
}

// SetMousePresent sets what MousePresent reports.
func (s *InjectSource) SetMousePresent(present bool) { s.mousePresent = present }

// SetTouchSupported sets what TouchSupported reports.
func (s *InjectSource) SetTouchSupported(supported bool) { s.touchSupported = supported }

// SetModifiers sets the modifiers reported from now on.
func (s *InjectSource) SetModifiers(mods KeyModifiers) { s.mods = mods }

// Pending returns the number of queued frames.
func (s *InjectSource) Pending() int { return len(s.queue) }

func (s *InjectSource) push(f injectFrame) {
	s.queue = append(s.queue, f)
}

// --- Mouse ---

// InjectPress queues a left button press at the given screen coordinates.
func (s *InjectSource) InjectPress(x, y float64) {
	s.InjectButtonPress(x, y, InputButtonLeft)
}

// InjectButtonPress queues a press of button b at the given coordinates.
func (s *InjectSource) InjectButtonPress(x, y float64, b InputButton) {
	s.push(func(s *InjectSource) {
		s.mouse = Vec2{x, y}
		s.buttons[b] = true
	})
}

// InjectMove queues a mouse move. Held buttons stay held, so a move between
// InjectPress and InjectRelease is a drag step.
func (s *InjectSource) InjectMove(x, y float64) {
	s.push(func(s *InjectSource) {
		s.mouse = Vec2{x, y}
	})
}

// InjectRelease queues a left button release at the given coordinates.
func (s *InjectSource) InjectRelease(x, y float64) {
	s.InjectButtonRelease(x, y, InputButtonLeft)
}

// InjectButtonRelease queues a release of button b at the given coordinates.
func (s *InjectSource) InjectButtonRelease(x, y float64, b InputButton) {
	s.push(func(s *InjectSource) {
		s.mouse = Vec2{x, y}
		s.buttons[b] = false
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (s *InjectSource) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (s *InjectSource) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		s.InjectMove(x, y)
	}
	s.InjectRelease(toX, toY)
}

// InjectScroll queues a wheel movement at the given coordinates.
func (s *InjectSource) InjectScroll(x, y, dx, dy float64) {
	s.push(func(s *InjectSource) {
		s.mouse = Vec2{x, y}
		s.scroll = Vec2{dx, dy}
	})
}

// InjectWait queues frames that change nothing.
func (s *InjectSource) InjectWait(frames int) {
	for i := 0; i < frames; i++ {
		s.push(func(*InjectSource) {})
	}
}

// --- Touch ---

// InjectTouchBegin queues a new contact.
func (s *InjectSource) InjectTouchBegin(id int, x, y float64) {
	s.push(func(s *InjectSource) {
		s.setTouch(Touch{ID: id, Position: Vec2{x, y}, Phase: TouchBegan})
	})
}

// InjectTouchMove queues a move of an existing contact.
func (s *InjectSource) InjectTouchMove(id int, x, y float64) {
	s.push(func(s *InjectSource) {
		s.setTouch(Touch{ID: id, Position: Vec2{x, y}, Phase: TouchMoved})
	})
}

// InjectTouchEnd queues the lift of a contact. It is reported once with
// TouchEnded and then disappears.
func (s *InjectSource) InjectTouchEnd(id int, x, y float64) {
	s.push(func(s *InjectSource) {
		s.setTouch(Touch{ID: id, Position: Vec2{x, y}, Phase: TouchEnded})
	})
}

// InjectTouchCancel queues the cancellation of a contact.
func (s *InjectSource) InjectTouchCancel(id int) {
	s.push(func(s *InjectSource) {
		for i := range s.touches {
			if s.touches[i].ID == id {
				s.touches[i].Phase = TouchCanceled
			}
		}
	})
}

func (s *InjectSource) setTouch(t Touch) {
	for i := range s.touches {
		if s.touches[i].ID == t.ID {
			t.Type = s.touches[i].Type
			s.touches[i] = t
			return
		}
	}
	s.touches = append(s.touches, t)
}

// --- Navigation ---

// InjectNavigate queues a navigation axis value held for one frame.
func (s *InjectSource) InjectNavigate(dx, dy float64) {
	s.push(func(s *InjectSource) {
		s.nav.Move = Vec2{dx, dy}
	})
}

// InjectSubmit queues a submit press.
func (s *InjectSource) InjectSubmit() {
	s.push(func(s *InjectSource) {
		s.nav.Submit = true
	})
}

// InjectCancel queues a cancel press.
func (s *InjectSource) InjectCancel() {
	s.push(func(s *InjectSource) {
		s.nav.Cancel = true
	})
}

// Poll ages the previous pass and applies the next queued frame.
func (s *InjectSource) Poll() {
	s.previous = s.buttons
	s.scroll = Vec2{}
	s.nav = NavigationInput{}

	live := s.touches[:0]
	for _, t := range s.touches {
		if t.Phase == TouchEnded || t.Phase == TouchCanceled {
			continue
		}
		t.Phase = TouchStationary
		live = append(live, t)
	}
	s.touches = live

	if len(s.queue) == 0 {
		return
	}
	f := s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue[len(s.queue)-1] = nil
	s.queue = s.queue[:len(s.queue)-1]
	f(s)
}

// MousePresent implements Source.
func (s *InjectSource) MousePresent() bool { return s.mousePresent }

// MousePosition implements Source.
func (s *InjectSource) MousePosition() Vec2 { return s.mouse }

// MouseScrollDelta implements Source.
func (s *InjectSource) MouseScrollDelta() Vec2 { return s.scroll }

// MouseButton implements Source.
func (s *InjectSource) MouseButton(b InputButton) bool { return s.buttons[b] }

// MouseButtonDown implements Source.
func (s *InjectSource) MouseButtonDown(b InputButton) bool {
	return s.buttons[b] && !s.previous[b]
}

// MouseButtonUp implements Source.
func (s *InjectSource) MouseButtonUp(b InputButton) bool {
	return !s.buttons[b] && s.previous[b]
}

// TouchSupported implements Source.
func (s *InjectSource) TouchSupported() bool { return s.touchSupported }

// Touches implements Source.
func (s *InjectSource) Touches() []Touch { return s.touches }

// Navigation implements Source.
func (s *InjectSource) Navigation() NavigationInput { return s.nav }

// Modifiers implements Source.
func (s *InjectSource) Modifiers() KeyModifiers { return s.mods }
