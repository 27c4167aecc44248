// Package frame runs the per-frame hotbar scroll logic: it reads the
// configured shortcut and the scroll wheel, moves the selection while the
// shortcut is held and uses the selected slot when it is released.
package frame

import (
	"context"

	"github.com/bnema/hotbarscroll/internal/infrastructure/config"
	"github.com/bnema/hotbarscroll/internal/logging"
	"github.com/bnema/hotbarscroll/internal/ui/hotbar"
	"github.com/bnema/hotbarscroll/internal/ui/input"
	"github.com/bnema/hotbarscroll/internal/ui/mainloop"
)

// Deps are the collaborators of a Handler. Queue is optional.
type Deps struct {
	Store   *config.Store
	Poller  input.Poller
	UI      UIState
	Player  Player
	Visuals *hotbar.VisualSync
	Queue   *mainloop.Queue
}

// Handler owns the selection state. All methods must be called from the
// frame goroutine.
type Handler struct {
	store   *config.Store
	poller  input.Poller
	ui      UIState
	player  Player
	visuals *hotbar.VisualSync
	queue   *mainloop.Queue

	selection *hotbar.Selection
	release   input.ReleaseTracker
	guard     ScrollGuard
	// modifier is the shortcut the release tracker observed last.
	modifier input.Shortcut
}

// NewHandler creates a handler with nothing selected.
func NewHandler(deps Deps) *Handler {
	store := deps.Store
	if store == nil {
		store = config.NewStore(config.DefaultSettings())
	}
	return &Handler{
		store:     store,
		poller:    deps.Poller,
		ui:        deps.UI,
		player:    deps.Player,
		visuals:   deps.Visuals,
		queue:     deps.Queue,
		selection: hotbar.NewSelection(),
		modifier:  store.Current().Modifier,
	}
}

// Guard returns the scroll guard the host consults before zooming.
func (h *Handler) Guard() *ScrollGuard {
	return &h.guard
}

// Selection exposes the selection state for rendering.
func (h *Handler) Selection() *hotbar.Selection {
	return h.selection
}

// Update runs one frame against the current slot set. The release of the
// shortcut is tracked on every frame; a release on a frame where the hotbar
// is unavailable drops the selection instead of using the slot.
func (h *Handler) Update(ctx context.Context, slots []hotbar.Slot) {
	if h.queue != nil {
		h.queue.Drain()
	}

	settings := h.store.Current()
	if !settings.Modifier.Equal(h.modifier) {
		h.shortcutChanged(ctx, slots, settings.Modifier)
	}
	held := settings.Modifier.IsHeld(h.poller)
	released := h.release.Observe(held)

	n := len(slots)
	if reason, gated := h.gated(n); gated {
		logging.FromContext(ctx).Trace().Str("reason", reason).Msg("frame gated")
		if released {
			h.cancel(ctx, slots, reason)
		}
		return
	}

	h.selection.Clamp(n)
	if held {
		h.scroll(ctx, slots, settings)
		return
	}
	if released {
		h.activate(ctx, slots)
	}
}

// shortcutChanged restarts release tracking for a newly committed shortcut.
// A session held with the old shortcut ends without using a slot.
func (h *Handler) shortcutChanged(ctx context.Context, slots []hotbar.Slot, next input.Shortcut) {
	prev := h.modifier
	h.modifier = next
	if !h.release.Held() {
		return
	}
	h.release.Reset()
	h.cancel(ctx, slots, "shortcut changed from "+prev.String()+" to "+next.String())
}

func (h *Handler) scroll(ctx context.Context, slots []hotbar.Slot, settings config.Settings) {
	delta := h.poller.ScrollDelta() * float64(settings.ScrollSign())
	dir := direction(delta)
	if dir == 0 {
		return
	}

	if !h.selection.Advance(dir, len(slots)) {
		return
	}
	h.visuals.Sync(slots, h.selection.Index())
	h.poller.ResetInputAxes()
	h.guard.set(true)

	logging.FromContext(ctx).Debug().
		Int("index", h.selection.Index()).
		Int("direction", dir).
		Msg("hotbar selection moved")
}

func (h *Handler) activate(ctx context.Context, slots []hotbar.Slot) {
	h.guard.set(false)
	defer h.selection.Reset()

	index, ok := h.selection.Activate(len(slots))
	if !ok {
		return
	}
	h.player.UseSlot(index)
	h.visuals.Hide(slots, index)

	logging.FromContext(ctx).Debug().Int("index", index).Msg("hotbar slot used")
}

func (h *Handler) cancel(ctx context.Context, slots []hotbar.Slot, reason string) {
	h.guard.set(false)
	index := h.selection.Index()
	if index != hotbar.NoSelection {
		h.visuals.Hide(slots, index)
	}
	h.selection.Cancel()

	logging.FromContext(ctx).Debug().
		Int("index", index).
		Str("reason", reason).
		Msg("hotbar selection dropped")
}

// OnSlotSetRebuilt is called by the host whenever it rebuilt its hotbar
// visuals, for example after the hotbar was enabled again.
func (h *Handler) OnSlotSetRebuilt(slots []hotbar.Slot) {
	h.visuals.EnsureHandles(slots)
	h.selection.Clamp(len(slots))
}

// gated reports whether this frame must be skipped and why.
func (h *Handler) gated(n int) (string, bool) {
	if h.ui == nil || !h.ui.HasLocalPlayer() {
		return "no local player", true
	}
	if n == 0 {
		return "empty hotbar", true
	}

	checks := []struct {
		reason string
		open   func() bool
	}{
		{"inventory", h.ui.InventoryVisible},
		{"free-fly camera", h.ui.InFreeFly},
		{"minimap", h.ui.MinimapOpen},
		{"piece selection", h.ui.PieceSelectionVisible},
		{"store", h.ui.StoreVisible},
		{"console", h.ui.ConsoleVisible},
		{"chat", h.ui.ChatFocused},
		{"barber", h.ui.BarberVisible},
		{"radial menu", h.ui.InRadial},
	}
	for _, c := range checks {
		if c.open() {
			return c.reason, true
		}
	}
	return "", false
}

func direction(delta float64) int {
	switch {
	case delta > 0:
		return 1
	case delta < 0:
		return -1
	default:
		return 0
	}
}
