package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// HotbarKeyMap defines keybindings for the hotbar demo host.
type HotbarKeyMap struct {
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Inventory  key.Binding
	Minimap    key.Binding
	Chat       key.Binding
	Pieces     key.Binding
	FreeFly    key.Binding
	Player     key.Binding
	Rebuild    key.Binding
	MoreSlots  key.Binding
	FewerSlots key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k HotbarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ScrollUp, k.ScrollDown, k.Inventory, k.Rebuild, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k HotbarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ScrollUp, k.ScrollDown},
		{k.Inventory, k.Minimap, k.Chat, k.Pieces, k.FreeFly, k.Player},
		{k.Rebuild, k.MoreSlots, k.FewerSlots},
		{k.Help, k.Quit},
	}
}

// DefaultHotbarKeyMap returns the default demo host keybindings.
func DefaultHotbarKeyMap() HotbarKeyMap {
	return HotbarKeyMap{
		ScrollUp: key.NewBinding(
			key.WithKeys("alt+up", "ctrl+up", "shift+up"),
			key.WithHelp("alt+↑", "scroll up with modifier"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("alt+down", "ctrl+down", "shift+down"),
			key.WithHelp("alt+↓", "scroll down with modifier"),
		),
		Inventory: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "inventory"),
		),
		Minimap: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "minimap"),
		),
		Chat: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "chat"),
		),
		Pieces: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "build menu"),
		),
		FreeFly: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "free-fly camera"),
		),
		Player: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "spawn/despawn player"),
		),
		Rebuild: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rebuild hotbar"),
		),
		MoreSlots: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "add slot"),
		),
		FewerSlots: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "remove slot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
