package eventsys

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
)

// Default configuration values.
const (
	DefaultDragThreshold         = 10.0
	DefaultMultiClickWindow      = 0.3
	DefaultInputActionsPerSecond = 10.0
	DefaultRepeatDelay           = 0.5
)

// EventSystem owns the input modules, the raycasters and the current
// selection, and runs one processing pass per Update.
type EventSystem struct {
	modules []InputModule
	current InputModule

	raycasters []Raycaster
	layerValue LayerValueFunc

	selected       *Node
	firstSelected  *Node
	selectionGuard bool

	focused bool
	source  Source
	sink    EventSink
	logger  *slog.Logger
	clock   func() float64

	dragThreshold         float64
	multiClickWindow      float64
	sendNavigationEvents  bool
	inputActionsPerSecond float64
	repeatDelay           float64

	debug bool
	pass  uint64
	stats passStats
}

// Option configures an EventSystem.
type Option func(*EventSystem)

// WithSource sets the raw input source. Without one the system sees no mouse
// and no touches.
func WithSource(src Source) Option {
	return func(s *EventSystem) {
		if src != nil {
			s.source = src
		}
	}
}

// WithLogger sets the logger used to report misuse.
func WithLogger(l *slog.Logger) Option {
	return func(s *EventSystem) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithClock sets the time source, in seconds. It drives click counting and
// navigation repeat.
func WithClock(clock func() float64) Option {
	return func(s *EventSystem) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithDragThreshold sets the movement in pixels a press must exceed before a
// drag begins.
func WithDragThreshold(px float64) Option {
	return func(s *EventSystem) {
		if px >= 0 {
			s.dragThreshold = px
		}
	}
}

// WithMultiClickWindow sets the time in seconds within which a press on the
// same object counts as another click.
func WithMultiClickWindow(seconds float64) Option {
	return func(s *EventSystem) {
		if seconds > 0 {
			s.multiClickWindow = seconds
		}
	}
}

// WithNavigationEvents enables or disables move, submit and cancel events.
func WithNavigationEvents(enabled bool) Option {
	return func(s *EventSystem) {
		s.sendNavigationEvents = enabled
	}
}

// WithRepeat sets the navigation repeat rate (actions per second) and the
// delay in seconds before a held direction starts repeating.
func WithRepeat(actionsPerSecond, delay float64) Option {
	return func(s *EventSystem) {
		if actionsPerSecond > 0 {
			s.inputActionsPerSecond = actionsPerSecond
		}
		if delay >= 0 {
			s.repeatDelay = delay
		}
	}
}

// WithLayerValues sets the mapping from sorting layer ids to stack positions.
func WithLayerValues(fn LayerValueFunc) Option {
	return func(s *EventSystem) {
		s.layerValue = fn
	}
}

// WithEventSink forwards dispatched events of nodes with an EntityID to sink.
func WithEventSink(sink EventSink) Option {
	return func(s *EventSystem) {
		s.sink = sink
	}
}

// WithDebug enables per-pass stats on stderr.
func WithDebug(enabled bool) Option {
	return func(s *EventSystem) {
		s.debug = enabled
	}
}

// WithFirstSelected sets the object selected when a navigation-capable module
// activates with nothing selected.
func WithFirstSelected(n *Node) Option {
	return func(s *EventSystem) {
		s.firstSelected = n
	}
}

// New creates an event system. It is not processing until Enable is called.
func New(opts ...Option) *EventSystem {
	start := time.Now()
	s := &EventSystem{
		focused: true,
		source:  noSource{},
		logger:  slog.Default(),
		clock: func() float64 {
			return time.Since(start).Seconds()
		},
		dragThreshold:         DefaultDragThreshold,
		multiClickWindow:      DefaultMultiClickWindow,
		sendNavigationEvents:  true,
		inputActionsPerSecond: DefaultInputActionsPerSecond,
		repeatDelay:           DefaultRepeatDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// --- Modules ---

// AddModule registers m after the existing modules. Registration order is
// activation priority. Adding nil or an already registered module is logged
// and ignored.
func (s *EventSystem) AddModule(m InputModule) {
	if m == nil {
		s.logger.Warn("eventsys: ignoring nil input module")
		return
	}
	if slices.Contains(s.modules, m) {
		s.logger.Warn("eventsys: input module already registered", "module", moduleName(m))
		return
	}
	m.Attach(s)
	s.modules = append(s.modules, m)
}

// RemoveModule unregisters m. Removing the current module deactivates it.
func (s *EventSystem) RemoveModule(m InputModule) {
	i := slices.Index(s.modules, m)
	if i < 0 {
		return
	}
	if s.current == m {
		s.changeModule(nil)
	}
	s.modules = slices.Delete(s.modules, i, i+1)
}

// Modules returns the registered modules in priority order. The returned
// slice MUST NOT be mutated by the caller.
func (s *EventSystem) Modules() []InputModule {
	return s.modules
}

// CurrentModule returns the active module, or nil.
func (s *EventSystem) CurrentModule() InputModule {
	return s.current
}

// Update runs one processing pass. It does nothing unless s is the current
// system of the registry.
//
// Every module is ticked, then the first module that is supported and wants
// to activate becomes active. Switching modules consumes the pass. When no
// module was ever active the first supported one is chosen.
func (s *EventSystem) Update() {
	if Current() != s {
		return
	}
	var start time.Time
	if s.debug {
		start = time.Now()
		s.stats = passStats{}
	}
	s.pass++

	s.source.Poll()

	for _, m := range s.modules {
		m.UpdateModule()
	}

	if s.current != nil && !s.current.IsModuleSupported() {
		s.changeModule(nil)
	}

	changed := false
	for _, m := range s.modules {
		if m.IsModuleSupported() && m.ShouldActivateModule() {
			if s.current != m {
				s.changeModule(m)
				changed = true
			}
			break
		}
	}

	if s.current == nil {
		for _, m := range s.modules {
			if m.IsModuleSupported() {
				s.changeModule(m)
				changed = true
				break
			}
		}
	}

	if !changed && s.current != nil {
		s.current.Process()
	}

	if s.debug {
		s.stats.elapsed = time.Since(start)
		s.stats.switched = changed
		s.debugLog()
	}
}

func (s *EventSystem) changeModule(m InputModule) {
	if s.current == m {
		return
	}
	if s.current != nil {
		s.current.DeactivateModule()
	}
	if m != nil {
		m.ActivateModule()
	}
	s.logger.Debug("eventsys: input module changed",
		"from", moduleName(s.current), "to", moduleName(m))
	s.current = m
}

func moduleName(m InputModule) string {
	if m == nil {
		return "<none>"
	}
	return fmt.Sprintf("%T", m)
}

// --- Raycasting ---

// AddRaycaster registers r. Raycasters are consulted in registration order.
func (s *EventSystem) AddRaycaster(r Raycaster) {
	if r == nil || slices.Contains(s.raycasters, r) {
		return
	}
	s.raycasters = append(s.raycasters, r)
}

// RemoveRaycaster unregisters r.
func (s *EventSystem) RemoveRaycaster(r Raycaster) {
	if i := slices.Index(s.raycasters, r); i >= 0 {
		s.raycasters = slices.Delete(s.raycasters, i, i+1)
	}
}

// Raycasters returns the registered raycasters. The returned slice MUST NOT
// be mutated by the caller.
func (s *EventSystem) Raycasters() []Raycaster {
	return s.raycasters
}

// RaycastAll appends the hits of every active raycaster for ev's position to
// hits, ordered with CompareHits, and returns the extended slice. Index is
// the position in the collected list before sorting.
func (s *EventSystem) RaycastAll(ev *PointerEvent, hits []HitResult) []HitResult {
	start := len(hits)
	for _, r := range s.raycasters {
		if !r.Active() {
			continue
		}
		hits = r.Raycast(ev, hits)
	}
	found := hits[start:]
	for i := range found {
		found[i].Index = i
	}
	SortHits(found, s.layerValue)
	if s.debug {
		s.stats.raycasts++
		s.stats.hits += len(found)
	}
	return hits
}

// --- Selection ---

// Selected returns the selected object, or nil.
func (s *EventSystem) Selected() *Node {
	return s.selected
}

// FirstSelected returns the object selected on activation when nothing is.
func (s *EventSystem) FirstSelected() *Node {
	return s.firstSelected
}

// SetFirstSelected sets the object selected on activation when nothing is.
func (s *EventSystem) SetFirstSelected(n *Node) {
	s.firstSelected = n
}

// AlreadySelecting reports whether a selection change is in progress.
func (s *EventSystem) AlreadySelecting() bool {
	return s.selectionGuard
}

// SetSelected makes n the selection. See SetSelectedWith.
func (s *EventSystem) SetSelected(n *Node) {
	s.SetSelectedWith(n, NewBaseEvent(s))
}

// SetSelectedWith makes n the selection, firing deselect on the previous
// holder and then select on n with data. Selecting the current selection
// fires nothing. A call made from inside a select or deselect handler is
// logged and ignored.
func (s *EventSystem) SetSelectedWith(n *Node, data EventData) {
	if s.selectionGuard {
		s.logger.Error("eventsys: attempting to select while already selecting",
			"node", n.String(), "selected", s.selected.String())
		return
	}
	s.selectionGuard = true
	defer func() { s.selectionGuard = false }()

	if n == s.selected {
		return
	}
	Execute(s.selected, EventDeselect, data)
	s.selected = n
	Execute(n, EventSelect, data)
}

// deselectIfSelectionChanged clears the selection when a press lands outside
// the selected object's hierarchy.
func (s *EventSystem) deselectIfSelectionChanged(pressed *Node, data EventData) {
	if HandlerFor(pressed, EventSelect) != s.selected {
		s.SetSelectedWith(nil, data)
	}
}

// --- State ---

// IsPointerOverObject reports whether pointer id hovers an object according
// to the active module.
func (s *EventSystem) IsPointerOverObject(pointerID int) bool {
	return s.current != nil && s.current.IsPointerOverObject(pointerID)
}

// SetFocused records whether the application has input focus.
func (s *EventSystem) SetFocused(focused bool) {
	s.focused = focused
}

// Focused reports whether the application has input focus.
func (s *EventSystem) Focused() bool {
	return s.focused
}

// Source returns the raw input source.
func (s *EventSystem) Source() Source {
	return s.source
}

// SetEventSink sets the ECS bridge. Nil disables forwarding.
func (s *EventSystem) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SendNavigationEvents reports whether navigation events are dispatched.
func (s *EventSystem) SendNavigationEvents() bool {
	return s.sendNavigationEvents
}

// SetSendNavigationEvents enables or disables navigation events.
func (s *EventSystem) SetSendNavigationEvents(enabled bool) {
	s.sendNavigationEvents = enabled
}

// DragThreshold returns the drag threshold in pixels.
func (s *EventSystem) DragThreshold() float64 {
	return s.dragThreshold
}

// Pass returns the number of processing passes run so far.
func (s *EventSystem) Pass() uint64 {
	return s.pass
}

func (s *EventSystem) now() float64 {
	return s.clock()
}

func (s *EventSystem) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Selected: %s\n", s.selected)
	if s.current != nil {
		sb.WriteString(s.current.String())
	} else {
		sb.WriteString("No module\n")
	}
	return sb.String()
}
