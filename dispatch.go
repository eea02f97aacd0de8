package eventsys

// EventSink is the interface for optional ECS integration.
// When set on an EventSystem, every dispatched event whose target carries an
// EntityID is forwarded to the sink after the node's callback ran.
type EventSink interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	NodeID    uint32
	EntityID  uint32
	PointerID int
	Button    InputButton
	Modifiers KeyModifiers
	X, Y      float64
	// Pointer fields (valid for pointer capabilities)
	DeltaX     float64
	DeltaY     float64
	PressX     float64
	PressY     float64
	ClickCount int
	Dragging   bool
	// Navigation fields (valid for EventMove)
	MoveDir MoveDirection
}

// --- Dispatch ---

// Execute invokes capability t on target itself. It returns false when target
// is nil or does not implement t.
func Execute(target *Node, t EventType, data EventData) bool {
	if !target.Handles(t) {
		return false
	}
	if data == nil {
		data = &BaseEvent{}
	}
	if !target.invoke(t, data) {
		return false
	}
	emitInteractionEvent(target, t, data)
	return true
}

// ExecuteFirst walks the ancestry of target (self first) and invokes t on the
// first node that implements it. It returns that node, or nil when no ancestor
// handles t. Used where exactly one owner must be chosen: press, click, drag
// initiation, scroll.
func ExecuteFirst(target *Node, t EventType, data EventData) *Node {
	for n := range target.Ancestry() {
		if Execute(n, t, data) {
			return n
		}
	}
	return nil
}

// ExecuteAll walks the full ancestry of target, leaf to root, and invokes t on
// every node that implements it. It returns the number of invocations. Used
// for notifications several nesting levels may care about: drop, and enter /
// exit on the non-shared part of a hover transition.
func ExecuteAll(target *Node, t EventType, data EventData) int {
	return executeUntil(target, nil, t, data)
}

// HandlerFor returns the nearest node in target's ancestry implementing t
// without invoking it, or nil.
func HandlerFor(target *Node, t EventType) *Node {
	for n := range target.Ancestry() {
		if n.Handles(t) {
			return n
		}
	}
	return nil
}

// executeUntil broadcasts t from target up to, but excluding, stop.
func executeUntil(target, stop *Node, t EventType, data EventData) int {
	count := 0
	for n := range target.Ancestry() {
		if n == stop {
			break
		}
		if Execute(n, t, data) {
			count++
		}
	}
	return count
}

// --- ECS bridge ---

func emitInteractionEvent(node *Node, t EventType, data EventData) {
	base := data.baseEvent()
	if base.system == nil || base.system.sink == nil || node.EntityID == 0 {
		return
	}
	ev := InteractionEvent{
		Type:     t,
		NodeID:   node.ID,
		EntityID: node.EntityID,
	}
	switch d := data.(type) {
	case *PointerEvent:
		ev.PointerID = d.PointerID
		ev.Button = d.Button
		ev.Modifiers = d.Modifiers
		ev.X, ev.Y = d.Position.X, d.Position.Y
		ev.DeltaX, ev.DeltaY = d.Delta.X, d.Delta.Y
		ev.PressX, ev.PressY = d.PressPosition.X, d.PressPosition.Y
		ev.ClickCount = d.ClickCount
		ev.Dragging = d.Dragging
	case *AxisEvent:
		ev.X, ev.Y = d.MoveVector.X, d.MoveVector.Y
		ev.MoveDir = d.MoveDir
	}
	base.system.sink.EmitEvent(ev)
}
