package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoller struct {
	held map[Key]bool
	down map[Key]bool
}

func (p fakePoller) IsKeyDown(k Key) bool { return p.down[k] }
func (p fakePoller) IsKeyHeld(k Key) bool { return p.held[k] }
func (p fakePoller) ScrollDelta() float64 { return 0 }
func (p fakePoller) ResetInputAxes()      {}

func holding(keys ...Key) fakePoller {
	p := fakePoller{held: map[Key]bool{}, down: map[Key]bool{}}
	for _, k := range keys {
		p.held[k] = true
	}
	return p
}

func TestParseShortcut(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Shortcut
	}{
		{"single key", "LeftAlt", NewShortcut(KeyLeftAlt)},
		{"main plus modifier", "Q + LeftControl", NewShortcut(KeyQ, KeyLeftControl)},
		{"no spaces", "q+ctrl+shift", NewShortcut(KeyQ, KeyLeftControl, KeyLeftShift)},
		{"duplicate modifier dropped", "Q + Ctrl + LeftControl", NewShortcut(KeyQ, KeyLeftControl)},
		{"modifier equal to main dropped", "LeftAlt + alt", NewShortcut(KeyLeftAlt)},
		{"none disables", "None", Shortcut{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseShortcut(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParseShortcut_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrEmptyShortcut},
		{"blank", "   ", ErrEmptyShortcut},
		{"dangling plus", "LeftAlt +", ErrEmptyShortcut},
		{"unknown main", "Hyper", ErrUnknownKey},
		{"unknown modifier", "Q + Meta", ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseShortcut(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestShortcutString(t *testing.T) {
	assert.Equal(t, "LeftAlt", NewShortcut(KeyLeftAlt).String())
	assert.Equal(t, "Q + LeftControl + LeftShift", NewShortcut(KeyQ, KeyLeftControl, KeyLeftShift).String())
	assert.Equal(t, "None", Shortcut{}.String())

	parsed, err := ParseShortcut(NewShortcut(KeyF5, KeyRightAlt).String())
	require.NoError(t, err)
	assert.True(t, parsed.Equal(NewShortcut(KeyF5, KeyRightAlt)))
}

func TestShortcutIsHeld(t *testing.T) {
	sc := NewShortcut(KeyQ, KeyLeftControl)

	assert.True(t, sc.IsHeld(holding(KeyQ, KeyLeftControl)))
	assert.False(t, sc.IsHeld(holding(KeyQ)), "auxiliary key missing")
	assert.False(t, sc.IsHeld(holding(KeyLeftControl)), "main key missing")
	assert.False(t, Shortcut{}.IsHeld(holding(KeyNone)), "disabled shortcut is never held")
}

func TestShortcutEnabled(t *testing.T) {
	assert.True(t, NewShortcut(KeyLeftAlt).Enabled())
	assert.False(t, Shortcut{}.Enabled())
}
