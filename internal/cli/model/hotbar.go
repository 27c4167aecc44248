// Package model holds the Bubble Tea models of the CLI.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/hotbarscroll/internal/cli/styles"
	"github.com/bnema/hotbarscroll/internal/infrastructure/config"
	"github.com/bnema/hotbarscroll/internal/logging"
	"github.com/bnema/hotbarscroll/internal/ui/frame"
	"github.com/bnema/hotbarscroll/internal/ui/hotbar"
	"github.com/bnema/hotbarscroll/internal/ui/input"
	"github.com/bnema/hotbarscroll/internal/ui/mainloop"
)

const (
	frameInterval = time.Second / 30
	defaultSlots  = 8
)

// frameMsg drives one frame of the hotbar handler.
type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// HotbarDeps are the collaborators of the demo model.
type HotbarDeps struct {
	Store *config.Store
	Queue *mainloop.Queue
	Theme *styles.Theme
	Slots int
}

// HotbarModel is the Bubble Tea model hosting the hotbar in a terminal.
type HotbarModel struct {
	// UI components
	help     help.Model
	keys     styles.HotbarKeyMap
	renderer *styles.HotbarRenderer

	// State
	host    *Host
	handler *frame.Handler
	width   int

	// Dependencies
	ctx   context.Context
	store *config.Store
	theme *styles.Theme
}

// NewHotbarModel creates the demo model. The frame handler drains deps.Queue
// at the start of every frame.
func NewHotbarModel(ctx context.Context, deps HotbarDeps) HotbarModel {
	theme := deps.Theme
	if theme == nil {
		theme = styles.NewTheme()
	}
	store := deps.Store
	if store == nil {
		store = config.NewStore(config.DefaultSettings())
	}
	slots := deps.Slots
	if slots <= 0 {
		slots = defaultSlots
	}

	host := NewHost(slots)
	handler := frame.NewHandler(frame.Deps{
		Store:   store,
		Poller:  host,
		UI:      host,
		Player:  host,
		Visuals: hotbar.NewVisualSync(host),
		Queue:   deps.Queue,
	})
	handler.OnSlotSetRebuilt(host.Slots())

	return HotbarModel{
		help:     styles.NewStyledHelp(theme),
		keys:     styles.DefaultHotbarKeyMap(),
		renderer: styles.NewHotbarRenderer(theme),
		host:     host,
		handler:  handler,
		width:    80,
		ctx:      logging.WithComponent(ctx, "hotbar"),
		store:    store,
		theme:    theme,
	}
}

// ConfigReloaded shows a notice for a committed reload. It runs on the
// frame goroutine while the queue is drained.
func (m HotbarModel) ConfigReloaded(s config.Settings) {
	if !s.Modifier.Enabled() {
		m.host.notice = "config reloaded: scroll selection disabled"
		return
	}
	m.host.notice = fmt.Sprintf("config reloaded: %s", s.Modifier)
}

// Init implements tea.Model.
func (m HotbarModel) Init() tea.Cmd {
	return frameTick()
}

// Update implements tea.Model.
func (m HotbarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame()
		return m, frameTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.MouseMsg:
		m.mouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m HotbarModel) frame() {
	m.host.Expire()
	m.handler.Update(m.ctx, m.host.Slots())
	m.host.Zoom(m.handler.Guard().Blocked())
}

func (m HotbarModel) mouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress {
		return
	}

	var delta float64
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		delta = 1
	case tea.MouseButtonWheelDown:
		delta = -1
	default:
		return
	}
	m.pressModifiers(msg.Alt, msg.Ctrl, msg.Shift)
	m.host.Scroll(delta)
}

func (m HotbarModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDown):
		s := msg.String()
		m.pressModifiers(msg.Alt || strings.HasPrefix(s, "alt+"),
			strings.HasPrefix(s, "ctrl+"),
			strings.HasPrefix(s, "shift+"))
		if key.Matches(msg, m.keys.ScrollUp) {
			m.host.Scroll(1)
		} else {
			m.host.Scroll(-1)
		}

	case key.Matches(msg, m.keys.Inventory):
		m.host.Toggle(ScreenInventory)
	case key.Matches(msg, m.keys.Minimap):
		m.host.Toggle(ScreenMinimap)
	case key.Matches(msg, m.keys.Chat):
		m.host.Toggle(ScreenChat)
	case key.Matches(msg, m.keys.Pieces):
		m.host.Toggle(ScreenPieces)
	case key.Matches(msg, m.keys.FreeFly):
		m.host.Toggle(ScreenFreeFly)
	case key.Matches(msg, m.keys.Player):
		m.host.TogglePlayer()

	case key.Matches(msg, m.keys.Rebuild):
		m.rebuild(len(m.host.visuals))
	case key.Matches(msg, m.keys.MoreSlots):
		m.rebuild(len(m.host.visuals) + 1)
	case key.Matches(msg, m.keys.FewerSlots):
		m.rebuild(len(m.host.visuals) - 1)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m HotbarModel) pressModifiers(alt, ctrl, shift bool) {
	if alt {
		m.host.Press(input.KeyLeftAlt)
	}
	if ctrl {
		m.host.Press(input.KeyLeftControl)
	}
	if shift {
		m.host.Press(input.KeyLeftShift)
	}
}

func (m HotbarModel) rebuild(n int) {
	m.host.Resize(n)
	m.handler.OnSlotSetRebuilt(m.host.Slots())
	logging.FromContext(m.ctx).Debug().Int("slots", len(m.host.visuals)).Msg("hotbar rebuilt")
}

// View implements tea.Model.
func (m HotbarModel) View() string {
	var sb strings.Builder

	sb.WriteString("\n  " + m.theme.Title.Render("hotbarscroll") + " " +
		m.theme.Subtle.Render("hold the modifier and scroll, release to use") + "\n\n")
	sb.WriteString(m.renderer.RenderSlots(m.host.Views()))
	sb.WriteString("\n\n")

	settings := m.store.Current()
	sb.WriteString(m.renderer.RenderStatus(styles.HotbarStatus{
		Shortcut: settings.Modifier.String(),
		Inverted: settings.InvertScroll == config.ToggleOn,
		Held:     m.host.HeldKeys(),
		Zoom:     m.host.zoom,
		Blocked:  m.handler.Guard().Blocked(),
		Screens:  m.openScreens(),
		Notice:   m.host.notice,
	}))

	sb.WriteString("\n  " + m.help.View(m.keys) + "\n")
	return sb.String()
}

func (m HotbarModel) openScreens() []string {
	open := m.host.OpenScreens()
	if !m.host.player {
		open = append(open, "no player")
	}
	return open
}
