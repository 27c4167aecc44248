package input

// ReleaseTracker turns the level "is held" signal into a single key-up edge.
type ReleaseTracker struct {
	held bool
}

// Observe records this frame's held state and reports whether the shortcut
// was held on the previous observation and is not held now. It returns true
// exactly once per release.
func (t *ReleaseTracker) Observe(held bool) bool {
	released := t.held && !held
	t.held = held
	return released
}

// Held returns the last observed state.
func (t *ReleaseTracker) Held() bool {
	return t.held
}

// Reset forgets the previous observation.
func (t *ReleaseTracker) Reset() {
	t.held = false
}
