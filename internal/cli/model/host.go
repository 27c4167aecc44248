package model

import (
	"fmt"
	"slices"
	"time"

	"github.com/bnema/hotbarscroll/internal/cli/styles"
	"github.com/bnema/hotbarscroll/internal/ui/hotbar"
	"github.com/bnema/hotbarscroll/internal/ui/input"
)

// Terminals report modifiers only together with another event, never their
// release. A modifier counts as held until holdWindow passes without a new
// event carrying it.
const holdWindow = 400 * time.Millisecond

const (
	minZoom     = 1.0
	maxZoom     = 10.0
	zoomPerTick = 0.5
)

var demoItems = []string{"Axe", "Bow", "Torch", "Hammer", "Mead", "Shield", "Pick", "Hoe", "Knife", "Fish"}

// cell is the demo's display object. Overlays are attached as children.
type cell struct {
	name     string
	active   bool
	children []*cell
}

func (c *cell) SetActive(active bool) { c.active = active }
func (c *cell) IsActive() bool        { return c.active }

func (c *cell) highlighted() bool {
	for _, child := range c.children {
		if child.active {
			return true
		}
	}
	return false
}

// Host simulates the game side of the hotbar in a terminal: it polls input,
// answers the blocking-screen questions, uses slots and owns slot visuals.
type Host struct {
	now func() time.Time

	held    map[input.Key]time.Time
	scroll  float64
	screens map[string]bool
	player  bool

	generation int
	visuals    []*cell
	markers    []*cell
	items      []string
	lastUsed   int
	zoom       float64
	notice     string
}

// NewHost creates a host with n slots and a spawned player.
func NewHost(n int) *Host {
	h := &Host{
		now:      time.Now,
		held:     make(map[input.Key]time.Time),
		screens:  make(map[string]bool),
		player:   true,
		lastUsed: hotbar.NoSelection,
		zoom:     4,
	}
	h.Resize(n)
	return h
}

// Resize rebuilds the hotbar with n slots. Every call produces new visuals,
// as a game does when its hotbar is re-enabled.
func (h *Host) Resize(n int) {
	n = max(0, min(n, len(demoItems)))
	h.generation++
	h.visuals = make([]*cell, n)
	h.markers = make([]*cell, n)
	h.items = slices.Clone(demoItems[:n])
	for i := range n {
		h.visuals[i] = &cell{name: fmt.Sprintf("slot-%d.%d", h.generation, i)}
		h.markers[i] = &cell{name: fmt.Sprintf("marker-%d.%d", h.generation, i)}
	}
	if h.lastUsed >= n {
		h.lastUsed = hotbar.NoSelection
	}
}

// Slots returns the current slot set.
func (h *Host) Slots() []hotbar.Slot {
	slots := make([]hotbar.Slot, len(h.visuals))
	for i, v := range h.visuals {
		slots[i].Visual = v
		slots[i].Selection = h.markers[i]
	}
	return slots
}

// Press marks k as held for the next holdWindow.
func (h *Host) Press(k input.Key) {
	h.held[k] = h.now().Add(holdWindow)
}

// Scroll adds wheel movement for the next frame.
func (h *Host) Scroll(delta float64) {
	h.scroll += delta
}

// Expire releases modifiers whose hold window has passed.
func (h *Host) Expire() {
	now := h.now()
	for k, until := range h.held {
		if !now.Before(until) {
			delete(h.held, k)
		}
	}
}

// HeldKeys returns the names of held keys in key order.
func (h *Host) HeldKeys() []string {
	keys := make([]input.Key, 0, len(h.held))
	for k := range h.held {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return names
}

// Zoom applies wheel movement nobody consumed to the simulated camera,
// unless blocked.
func (h *Host) Zoom(blocked bool) {
	delta := h.scroll
	h.scroll = 0
	if delta == 0 || blocked {
		return
	}
	h.zoom = min(maxZoom, max(minZoom, h.zoom-delta*zoomPerTick))
}

// Toggle opens or closes a blocking screen.
func (h *Host) Toggle(screen string) {
	h.screens[screen] = !h.screens[screen]
}

// OpenScreens lists the open blocking screens, sorted.
func (h *Host) OpenScreens() []string {
	var open []string
	for name, on := range h.screens {
		if on {
			open = append(open, name)
		}
	}
	slices.Sort(open)
	return open
}

// TogglePlayer spawns or despawns the local player.
func (h *Host) TogglePlayer() {
	h.player = !h.player
}

// IsKeyDown implements input.Poller. The terminal has no key-down edges for
// modifiers, so only held state is reported.
func (h *Host) IsKeyDown(input.Key) bool { return false }

// IsKeyHeld implements input.Poller.
func (h *Host) IsKeyHeld(k input.Key) bool {
	_, ok := h.held[k]
	return ok
}

// ScrollDelta implements input.Poller.
func (h *Host) ScrollDelta() float64 { return h.scroll }

// ResetInputAxes implements input.Poller.
func (h *Host) ResetInputAxes() { h.scroll = 0 }

// HasLocalPlayer implements frame.UIState.
func (h *Host) HasLocalPlayer() bool { return h.player }

func (h *Host) InventoryVisible() bool      { return h.screens[ScreenInventory] }
func (h *Host) InFreeFly() bool             { return h.screens[ScreenFreeFly] }
func (h *Host) MinimapOpen() bool           { return h.screens[ScreenMinimap] }
func (h *Host) PieceSelectionVisible() bool { return h.screens[ScreenPieces] }
func (h *Host) StoreVisible() bool          { return h.screens[ScreenStore] }
func (h *Host) ConsoleVisible() bool        { return h.screens[ScreenConsole] }
func (h *Host) ChatFocused() bool           { return h.screens[ScreenChat] }
func (h *Host) BarberVisible() bool         { return h.screens[ScreenBarber] }
func (h *Host) InRadial() bool              { return h.screens[ScreenRadial] }

// UseSlot implements frame.Player.
func (h *Host) UseSlot(index int) {
	if index < 0 || index >= len(h.items) {
		return
	}
	h.lastUsed = index
	h.notice = fmt.Sprintf("used slot %d: %s", index+1, h.items[index])
}

// Instantiate implements hotbar.Factory.
func (h *Host) Instantiate(template, parent hotbar.Widget) hotbar.Widget {
	p, ok := parent.(*cell)
	if !ok || template == nil {
		return nil
	}
	overlay := &cell{name: p.name + "/selection", active: template.IsActive()}
	p.children = append(p.children, overlay)
	return overlay
}

// Views returns the render state of every slot.
func (h *Host) Views() []styles.SlotView {
	views := make([]styles.SlotView, len(h.visuals))
	for i, v := range h.visuals {
		views[i] = styles.SlotView{
			Item:        h.items[i],
			Highlighted: v.highlighted(),
			Marker:      i == h.lastUsed,
		}
	}
	return views
}

// Screen names understood by Toggle.
const (
	ScreenInventory = "inventory"
	ScreenFreeFly   = "free-fly"
	ScreenMinimap   = "minimap"
	ScreenPieces    = "build menu"
	ScreenStore     = "store"
	ScreenConsole   = "console"
	ScreenChat      = "chat"
	ScreenBarber    = "barber"
	ScreenRadial    = "radial"
)
