package eventsys

import (
	"fmt"
	"os"
	"time"
)

// passStats holds per-pass metrics. Only populated when debug mode is on.
type passStats struct {
	elapsed  time.Duration
	raycasts int
	hits     int
	switched bool
}

// SetDebugMode enables or disables per-pass stats on stderr.
func (s *EventSystem) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// debugLog prints the stats of the last pass to stderr.
func (s *EventSystem) debugLog() {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[eventsys] pass %d | module: %s | switched: %t | total: %v\n",
		s.pass, moduleName(s.current), s.stats.switched, s.stats.elapsed)
	_, _ = fmt.Fprintf(os.Stderr,
		"[eventsys] raycasts: %d | hits: %d | selected: %s\n",
		s.stats.raycasts, s.stats.hits, s.selected)
}
