// Package hotbar holds the scroll-to-select state of the hotbar and keeps
// the per-slot highlight overlays in step with it.
package hotbar

// NoSelection is the index reported when no slot is highlighted.
const NoSelection = -1

// Selection tracks the highlighted slot and whether a capture session is
// running. Invariant: NoSelection <= Index() < n for the current slot count.
type Selection struct {
	index     int
	capturing bool
}

// NewSelection returns a selection with nothing highlighted.
func NewSelection() *Selection {
	return &Selection{index: NoSelection}
}

// Index returns the highlighted slot or NoSelection.
func (s *Selection) Index() int {
	return s.index
}

// Capturing reports whether scroll input moved the selection during the
// current hold of the modifier.
func (s *Selection) Capturing() bool {
	return s.capturing
}

// Advance moves the selection one slot in the direction of dir's sign,
// wrapping at both ends. NoSelection sits just before slot 0, so the first
// forward step lands on slot 0 and the first backward step on slot n-1.
// It returns false when nothing moved (dir == 0 or n == 0).
func (s *Selection) Advance(dir, n int) bool {
	s.Clamp(n)
	if n <= 0 || dir == 0 {
		return false
	}

	next := s.index + sign(dir)
	switch {
	case next >= n:
		next = 0
	case next < 0:
		next = n - 1
	}

	s.index = next
	s.capturing = true
	return true
}

// Activate returns the highlighted slot for the host to use and clears the
// selection. It returns false when nothing valid is highlighted.
func (s *Selection) Activate(n int) (int, bool) {
	if s.index < 0 || s.index >= n {
		return NoSelection, false
	}

	index := s.index
	s.index = NoSelection
	return index, true
}

// Reset ends the capture session. The index is kept.
func (s *Selection) Reset() {
	s.capturing = false
}

// Cancel clears the selection and ends the capture session without
// handing a slot to the host.
func (s *Selection) Cancel() {
	s.index = NoSelection
	s.capturing = false
}

// Clamp drops a selection that no longer fits n slots.
func (s *Selection) Clamp(n int) {
	if s.index >= n || s.index < NoSelection {
		s.index = NoSelection
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
