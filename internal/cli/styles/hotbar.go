package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SlotView is what the renderer needs to draw one hotbar slot.
type SlotView struct {
	Item        string
	Highlighted bool
	// Marker is the host's own "last used" selection marker.
	Marker bool
}

// HotbarStatus summarizes the demo host state under the hotbar.
type HotbarStatus struct {
	Shortcut string
	Inverted bool
	Held     []string
	Zoom     float64
	Blocked  bool
	Screens  []string
	Notice   string
}

// HotbarRenderer draws the hotbar demo.
type HotbarRenderer struct {
	theme *Theme
}

// NewHotbarRenderer creates a renderer with the given theme.
func NewHotbarRenderer(theme *Theme) *HotbarRenderer {
	return &HotbarRenderer{theme: theme}
}

// RenderSlots renders the slots side by side with their 1-based numbers.
func (r *HotbarRenderer) RenderSlots(slots []SlotView) string {
	if len(slots) == 0 {
		return r.theme.Subtle.Render("  (empty hotbar)")
	}

	cells := make([]string, len(slots))
	for i, s := range slots {
		style := r.theme.Slot
		switch {
		case s.Highlighted:
			style = r.theme.SlotSelected
		case s.Marker:
			style = r.theme.SlotMarker
		}
		label := fmt.Sprintf("%d\n%s", i+1, s.Item)
		cells[i] = style.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// RenderStatus renders the shortcut, camera and gate state.
func (r *HotbarRenderer) RenderStatus(st HotbarStatus) string {
	var sb strings.Builder

	invert := r.theme.BadgeMuted.Render("normal")
	if st.Inverted {
		invert = r.theme.Badge.Render("inverted")
	}
	sb.WriteString(fmt.Sprintf("  %s %s  %s\n",
		r.theme.HelpKey.Render(IconKeyboard),
		r.theme.Highlight.Render(st.Shortcut),
		invert,
	))

	held := "none"
	if len(st.Held) > 0 {
		held = strings.Join(st.Held, " + ")
	}
	sb.WriteString(fmt.Sprintf("  %s held: %s\n",
		r.theme.HelpKey.Render(IconMouse),
		r.theme.Normal.Render(held),
	))

	zoom := r.theme.Normal.Render(fmt.Sprintf("%.1f", st.Zoom))
	if st.Blocked {
		zoom += " " + r.theme.WarningStyle.Render("(scroll captured)")
	}
	sb.WriteString(fmt.Sprintf("  %s camera zoom: %s\n", r.theme.HelpKey.Render(IconSearch), zoom))

	if len(st.Screens) > 0 {
		sb.WriteString(fmt.Sprintf("  %s open: %s\n",
			r.theme.WarningStyle.Render(IconWarning),
			r.theme.Subtle.Render(strings.Join(st.Screens, ", ")),
		))
	}
	if st.Notice != "" {
		sb.WriteString(fmt.Sprintf("  %s %s\n", r.theme.HelpKey.Render(IconInfo), r.theme.Normal.Render(st.Notice)))
	}
	return sb.String()
}
