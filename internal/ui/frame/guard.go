package frame

import "sync/atomic"

// ScrollGuard tells the host whether its default scroll action (camera zoom)
// must be suppressed. It is raised by the first captured scroll of a hold
// and lowered on release.
type ScrollGuard struct {
	blocked atomic.Bool
}

// Blocked reports whether the default scroll action is suppressed.
func (g *ScrollGuard) Blocked() bool {
	return g.blocked.Load()
}

func (g *ScrollGuard) set(blocked bool) {
	g.blocked.Store(blocked)
}
