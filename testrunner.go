package eventsys

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	DX     float64 `json:"dx,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	ID     int     `json:"id,omitempty"`
	Button string  `json:"button,omitempty"`
}

// script is the top-level JSON structure for an input script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"click": true, "press": true, "move": true, "release": true,
	"drag": true, "wait": true, "scroll": true,
	"touch_begin": true, "touch_move": true, "touch_end": true,
	"navigate": true, "submit": true, "cancel": true,
}

var scriptButtons = map[string]InputButton{
	"":       InputButtonLeft,
	"left":   InputButtonLeft,
	"right":  InputButtonRight,
	"middle": InputButtonMiddle,
}

// ScriptRunner sequences scripted input across passes for automated testing
// and demos. It is a Source: hand it to WithSource and every Poll advances
// the script before sampling the underlying InjectSource.
type ScriptRunner struct {
	*InjectSource

	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script and returns a ScriptRunner driving a
// fresh InjectSource.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
		if _, ok := scriptButtons[st.Button]; !ok {
			return nil, fmt.Errorf("parse input script: step %d: unknown button %q", i, st.Button)
		}
	}
	return &ScriptRunner{InjectSource: NewInjectSource(), steps: sc.Steps}, nil
}

// Done reports whether all steps in the script have been executed and their
// input consumed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Poll advances the script by one pass, then samples the queued input.
func (r *ScriptRunner) Poll() {
	r.step()
	r.InjectSource.Poll()
}

func (r *ScriptRunner) step() {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if r.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	src := r.InjectSource
	switch st.Action {
	case "click":
		src.InjectClick(st.X, st.Y)
	case "press":
		src.InjectButtonPress(st.X, st.Y, scriptButtons[st.Button])
	case "move":
		src.InjectMove(st.X, st.Y)
	case "release":
		src.InjectButtonRelease(st.X, st.Y, scriptButtons[st.Button])
	case "drag":
		src.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "scroll":
		src.InjectScroll(st.X, st.Y, st.DX, st.DY)
	case "touch_begin":
		src.InjectTouchBegin(st.ID, st.X, st.Y)
	case "touch_move":
		src.InjectTouchMove(st.ID, st.X, st.Y)
	case "touch_end":
		src.InjectTouchEnd(st.ID, st.X, st.Y)
	case "navigate":
		src.InjectNavigate(st.DX, st.DY)
	case "submit":
		src.InjectSubmit()
	case "cancel":
		src.InjectCancel()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this pass counts as one
		}
	}
}
