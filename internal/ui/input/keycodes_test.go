package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupKey(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   Key
		wantOK bool
	}{
		{"canonical", "LeftAlt", KeyLeftAlt, true},
		{"lowercase", "leftalt", KeyLeftAlt, true},
		{"padded", "  RightShift ", KeyRightShift, true},
		{"alias alt", "alt", KeyLeftAlt, true},
		{"alias ctrl", "Ctrl", KeyLeftControl, true},
		{"letter", "q", KeyQ, true},
		{"number row name", "Alpha7", KeyAlpha7, true},
		{"bare digit", "7", KeyAlpha7, true},
		{"function key", "F12", KeyF12, true},
		{"mouse button", "Mouse3", KeyMouse3, true},
		{"none", "None", KeyNone, true},
		{"unknown", "Hyper", KeyNone, false},
		{"empty", "", KeyNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LookupKey(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyString_RoundTripsThroughLookup(t *testing.T) {
	for k := KeyNone; k < keyCount; k++ {
		got, ok := LookupKey(k.String())
		if assert.True(t, ok, "key %d (%s) not found by name", k, k) {
			assert.Equal(t, k, got)
		}
	}
}

func TestKeyString_OutOfRange(t *testing.T) {
	assert.Equal(t, "Unknown", Key(9999).String())
}

func TestKeyNames_SortedAndComplete(t *testing.T) {
	names := KeyNames()

	assert.Len(t, names, int(keyCount))
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "LeftAlt")
	assert.Contains(t, names, "Z")
	assert.Contains(t, names, "Alpha0")
}

func TestKey_IsModifier(t *testing.T) {
	assert.True(t, KeyLeftAlt.IsModifier())
	assert.True(t, KeyAltGr.IsModifier())
	assert.False(t, KeyA.IsModifier())
	assert.False(t, KeyNone.IsModifier())
}
