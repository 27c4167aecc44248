package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hotbarscroll/internal/cli/styles"
)

func TestConfigRenderer_RenderValid(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderValid("/tmp/hotbarscroll/hotbarscroll.toml", "Q + LeftShift", "On")
	require.Contains(t, out, "hotbarscroll.toml")
	require.Contains(t, out, "Q + LeftShift")
	require.Contains(t, out, "is valid")
}

func TestConfigRenderer_RenderError(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	out := r.RenderError(errors.New("unknown key \"Hyper\""))
	assert.Contains(t, out, "Hyper")
	assert.Contains(t, out, "spelling and format")
}

func TestConfigRenderer_RenderPath(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderPath("/x/hotbarscroll.toml", true), "(exists)")
	assert.Contains(t, r.RenderPath("/x/hotbarscroll.toml", false), "not created yet")
}

func TestHotbarRenderer_RenderSlots(t *testing.T) {
	r := styles.NewHotbarRenderer(styles.NewTheme())

	out := r.RenderSlots([]styles.SlotView{
		{Item: "Axe"},
		{Item: "Bow", Highlighted: true},
		{Item: "Torch", Marker: true},
	})
	for _, want := range []string{"1", "Axe", "2", "Bow", "3", "Torch"} {
		assert.Contains(t, out, want)
	}

	assert.Contains(t, r.RenderSlots(nil), "empty hotbar")
}

func TestHotbarRenderer_RenderStatus(t *testing.T) {
	r := styles.NewHotbarRenderer(styles.NewTheme())

	out := r.RenderStatus(styles.HotbarStatus{
		Shortcut: "LeftAlt",
		Inverted: true,
		Held:     []string{"LeftAlt"},
		Zoom:     4,
		Blocked:  true,
		Screens:  []string{"inventory"},
		Notice:   "used slot 2",
	})
	for _, want := range []string{"LeftAlt", "inverted", "4.0", "scroll captured", "inventory", "used slot 2"} {
		assert.Contains(t, out, want)
	}

	out = r.RenderStatus(styles.HotbarStatus{Shortcut: "LeftAlt", Zoom: 2})
	assert.Contains(t, out, "held: none")
	assert.NotContains(t, out, "open:")
}

func TestKeyRow_ToRow(t *testing.T) {
	assert.Equal(t, "modifier", styles.KeyRow{Name: "LeftAlt", Modifier: true}.ToRow()[1])
	assert.Equal(t, "key", styles.KeyRow{Name: "Q"}.ToRow()[1])
}

func TestHotbarKeyMap_FullHelpCoversShortHelp(t *testing.T) {
	keys := styles.DefaultHotbarKeyMap()

	var all []string
	for _, group := range keys.FullHelp() {
		for _, b := range group {
			all = append(all, b.Help().Key)
		}
	}
	for _, b := range keys.ShortHelp() {
		assert.Contains(t, all, b.Help().Key)
	}
}
