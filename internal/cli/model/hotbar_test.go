package model

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hotbarscroll/internal/infrastructure/config"
	"github.com/bnema/hotbarscroll/internal/ui/hotbar"
	"github.com/bnema/hotbarscroll/internal/ui/input"
	"github.com/bnema/hotbarscroll/internal/ui/mainloop"
)

type hotbarFixture struct {
	model HotbarModel
	clock *fakeClock
	store *config.Store
	queue *mainloop.Queue
}

func newHotbarFixture(t *testing.T) *hotbarFixture {
	t.Helper()

	store := config.NewStore(config.DefaultSettings())
	queue := mainloop.NewQueue()
	m := NewHotbarModel(context.Background(), HotbarDeps{Store: store, Queue: queue, Slots: 4})
	clock := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	m.host.now = clock.now

	return &hotbarFixture{model: m, clock: clock, store: store, queue: queue}
}

func (f *hotbarFixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()

	next, cmd := f.model.Update(msg)
	m, ok := next.(HotbarModel)
	require.True(t, ok)
	f.model = m
	return cmd
}

func (f *hotbarFixture) tick(t *testing.T) {
	t.Helper()
	cmd := f.send(t, frameMsg(f.clock.t))
	require.NotNil(t, cmd, "frames keep ticking")
}

func (f *hotbarFixture) highlighted() []int {
	var out []int
	for i, v := range f.model.host.Views() {
		if v.Highlighted {
			out = append(out, i)
		}
	}
	return out
}

func altWheel(button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{Action: tea.MouseActionPress, Button: button, Alt: true}
}

func TestHotbarModel_InitTicks(t *testing.T) {
	f := newHotbarFixture(t)
	assert.NotNil(t, f.model.Init())
}

func TestHotbarModel_OverlaysCreatedUpFront(t *testing.T) {
	f := newHotbarFixture(t)

	for _, slot := range f.model.host.Slots() {
		require.Len(t, slot.Visual.(*cell).children, 1)
	}
	assert.Empty(t, f.highlighted())
}

func TestHotbarModel_ScrollThenReleaseUsesSlot(t *testing.T) {
	f := newHotbarFixture(t)
	zoom := f.model.host.zoom

	f.send(t, altWheel(tea.MouseButtonWheelUp))
	f.tick(t)
	f.send(t, altWheel(tea.MouseButtonWheelUp))
	f.tick(t)

	assert.Equal(t, []int{1}, f.highlighted())
	assert.True(t, f.model.handler.Guard().Blocked())
	assert.Equal(t, zoom, f.model.host.zoom, "captured scroll never zooms")

	f.clock.advance(holdWindow)
	f.tick(t)

	assert.Empty(t, f.highlighted())
	assert.False(t, f.model.handler.Guard().Blocked())
	assert.Equal(t, "used slot 2: Bow", f.model.host.notice)
	assert.Equal(t, hotbar.NoSelection, f.model.handler.Selection().Index())
}

func TestHotbarModel_PlainWheelZooms(t *testing.T) {
	f := newHotbarFixture(t)
	zoom := f.model.host.zoom

	f.send(t, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	f.tick(t)

	assert.Equal(t, zoom+zoomPerTick, f.model.host.zoom)
	assert.Empty(t, f.highlighted())
}

func TestHotbarModel_IgnoresOtherMouseEvents(t *testing.T) {
	f := newHotbarFixture(t)

	f.send(t, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Alt: true})
	f.send(t, tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonWheelUp, Alt: true})

	assert.Zero(t, f.model.host.ScrollDelta())
	assert.False(t, f.model.host.IsKeyHeld(input.KeyLeftAlt))
}

func TestHotbarModel_KeyboardScroll(t *testing.T) {
	f := newHotbarFixture(t)

	f.send(t, tea.KeyMsg{Type: tea.KeyDown, Alt: true})
	f.tick(t)
	assert.Equal(t, []int{3}, f.highlighted())

	// ctrl is not the configured modifier: the camera zooms instead.
	zoom := f.model.host.zoom
	f.clock.advance(holdWindow)
	f.tick(t)
	f.send(t, tea.KeyMsg{Type: tea.KeyCtrlUp})
	f.tick(t)
	assert.Equal(t, zoom-zoomPerTick, f.model.host.zoom)
}

func TestHotbarModel_InventoryGatesScroll(t *testing.T) {
	f := newHotbarFixture(t)

	f.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("i")})
	f.send(t, altWheel(tea.MouseButtonWheelUp))
	f.tick(t)

	assert.Empty(t, f.highlighted())
	assert.Equal(t, hotbar.NoSelection, f.model.handler.Selection().Index())
	assert.Contains(t, f.model.View(), ScreenInventory)
}

func TestHotbarModel_RebuildKeepsOverlaysConsistent(t *testing.T) {
	f := newHotbarFixture(t)
	f.send(t, altWheel(tea.MouseButtonWheelDown))
	f.tick(t)
	require.Equal(t, []int{3}, f.highlighted())

	f.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")})

	require.Len(t, f.model.host.Slots(), 3)
	assert.Equal(t, hotbar.NoSelection, f.model.handler.Selection().Index())
	for _, slot := range f.model.host.Slots() {
		assert.Len(t, slot.Visual.(*cell).children, 1)
	}

	f.send(t, altWheel(tea.MouseButtonWheelUp))
	f.tick(t)
	assert.Equal(t, []int{0}, f.highlighted())
}

func TestHotbarModel_QueuedReloadCommitsOnFrame(t *testing.T) {
	f := newHotbarFixture(t)
	next := config.Settings{Modifier: input.NewShortcut(input.KeyLeftControl), InvertScroll: config.ToggleOn}
	f.queue.Post(func() {
		f.store.Replace(next)
		f.model.ConfigReloaded(next)
	})

	f.tick(t)
	assert.Equal(t, "config reloaded: LeftControl", f.model.host.notice)

	f.send(t, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp, Ctrl: true})
	f.tick(t)
	assert.Equal(t, []int{3}, f.highlighted(), "inverted: up moves backwards")

	view := f.model.View()
	assert.Contains(t, view, "LeftControl")
	assert.Contains(t, view, "inverted")
}

func TestHotbarModel_ReloadDisablingShortcut(t *testing.T) {
	f := newHotbarFixture(t)
	f.queue.Post(func() {
		f.store.Replace(config.Settings{})
		f.model.ConfigReloaded(config.Settings{})
	})

	f.tick(t)
	assert.Equal(t, "config reloaded: scroll selection disabled", f.model.host.notice)

	f.send(t, altWheel(tea.MouseButtonWheelUp))
	f.tick(t)
	assert.Empty(t, f.highlighted())
}

func TestHotbarModel_QuitAndHelp(t *testing.T) {
	f := newHotbarFixture(t)

	f.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.True(t, f.model.help.ShowAll)

	f.send(t, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, f.model.width)

	cmd := f.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
