package eventsys

import "slices"

// systems lists the enabled event systems in enable order. The first one is
// current and is the only one that processes input.
var systems []*EventSystem

// Current returns the current event system, or nil when none is enabled.
func Current() *EventSystem {
	if len(systems) == 0 {
		return nil
	}
	return systems[0]
}

// SetCurrent promotes an enabled system to current. Systems that are not
// enabled are ignored.
func SetCurrent(s *EventSystem) {
	i := slices.Index(systems, s)
	if i <= 0 {
		return
	}
	systems = slices.Delete(systems, i, i+1)
	systems = slices.Insert(systems, 0, s)
}

// Systems returns the enabled systems, current first. The returned slice MUST
// NOT be mutated by the caller.
func Systems() []*EventSystem {
	return systems
}

// Enable registers s with the process-wide registry. The first enabled
// system stays current until it is disabled.
func (s *EventSystem) Enable() {
	if slices.Contains(systems, s) {
		return
	}
	systems = append(systems, s)
}

// Disable deactivates the current module and removes s from the registry.
func (s *EventSystem) Disable() {
	s.changeModule(nil)
	if i := slices.Index(systems, s); i >= 0 {
		systems = slices.Delete(systems, i, i+1)
	}
}

// Enabled reports whether s is registered.
func (s *EventSystem) Enabled() bool {
	return slices.Contains(systems, s)
}
