package hotbar

// Widget is a host-owned display object that can be shown or hidden.
type Widget interface {
	SetActive(active bool)
	IsActive() bool
}

// Factory creates host display objects.
type Factory interface {
	// Instantiate clones template and attaches the clone as a child of
	// parent.
	Instantiate(template, parent Widget) Widget
}

// Slot is one hotbar position as supplied by the host for the current frame.
type Slot struct {
	// Visual is the slot's display object. The host may replace it whenever
	// it rebuilds the hotbar.
	Visual Widget
	// Selection is the host's own selection marker. The one on slot 0 is
	// the template highlight overlays are cloned from.
	Selection Widget
}

// VisualSync keeps exactly one highlight overlay active, the one of the
// selected slot. It is the only code creating overlays and it never destroys
// them: the host drops them together with their parent visual.
type VisualSync struct {
	factory    Factory
	highlights map[Widget]Widget
}

// NewVisualSync creates a sync that clones overlays through factory.
func NewVisualSync(factory Factory) *VisualSync {
	return &VisualSync{
		factory:    factory,
		highlights: make(map[Widget]Widget),
	}
}

// EnsureHandles forgets overlays of visuals that left the slot set and
// creates a hidden overlay for every slot that has none yet. It skips
// silently when there is no template on slot 0. It returns true when every
// slot has an overlay afterwards.
func (v *VisualSync) EnsureHandles(slots []Slot) bool {
	v.forgetStale(slots)

	missing := false
	for _, slot := range slots {
		if slot.Visual == nil {
			continue
		}
		if _, ok := v.highlights[slot.Visual]; !ok {
			missing = true
			break
		}
	}
	if !missing {
		return len(slots) > 0
	}

	if len(slots) == 0 || slots[0].Selection == nil {
		return false
	}
	template := slots[0].Selection

	complete := true
	for _, slot := range slots {
		if slot.Visual == nil {
			complete = false
			continue
		}
		if _, ok := v.highlights[slot.Visual]; ok {
			continue
		}

		highlight := v.factory.Instantiate(template, slot.Visual)
		if highlight == nil {
			complete = false
			continue
		}
		highlight.SetActive(false)
		v.highlights[slot.Visual] = highlight
	}
	return complete
}

// Sync makes the overlay at index the only active one. NoSelection hides
// them all. Safe to call every frame.
func (v *VisualSync) Sync(slots []Slot, index int) {
	v.EnsureHandles(slots)

	for i, slot := range slots {
		if highlight, ok := v.lookup(slot); ok {
			highlight.SetActive(i == index)
		}
	}
}

// Hide deactivates the overlay of one slot.
func (v *VisualSync) Hide(slots []Slot, index int) {
	if index < 0 || index >= len(slots) {
		return
	}
	if highlight, ok := v.lookup(slots[index]); ok {
		highlight.SetActive(false)
	}
}

// Handle returns the overlay created for visual.
func (v *VisualSync) Handle(visual Widget) (Widget, bool) {
	if visual == nil {
		return nil, false
	}
	highlight, ok := v.highlights[visual]
	return highlight, ok
}

func (v *VisualSync) lookup(slot Slot) (Widget, bool) {
	return v.Handle(slot.Visual)
}

// forgetStale drops entries whose visual is no longer part of the hotbar.
func (v *VisualSync) forgetStale(slots []Slot) {
	if len(v.highlights) == 0 {
		return
	}

	live := make(map[Widget]struct{}, len(slots))
	for _, slot := range slots {
		if slot.Visual != nil {
			live[slot.Visual] = struct{}{}
		}
	}
	for visual := range v.highlights {
		if _, ok := live[visual]; !ok {
			delete(v.highlights, visual)
		}
	}
}
