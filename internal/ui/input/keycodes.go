// Package input models the host keyboard: key identifiers, modifier
// shortcuts and the per-frame polling contract the hotbar handler reads.
package input

import (
	"sort"
	"strings"
)

// Key identifies one physical key or mouse button as reported by the host
// input API. The zero value is KeyNone, which is never held.
type Key uint16

// Keys understood in configuration files. Names follow the host's key code
// naming so existing settings files keep working.
const (
	KeyNone Key = iota

	KeyLeftAlt
	KeyRightAlt
	KeyLeftControl
	KeyRightControl
	KeyLeftShift
	KeyRightShift
	KeyLeftCommand
	KeyRightCommand
	KeyAltGr

	KeySpace
	KeyTab
	KeyBackQuote
	KeyCapsLock
	KeyReturn
	KeyEscape
	KeyBackspace

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyAlpha0
	KeyAlpha1
	KeyAlpha2
	KeyAlpha3
	KeyAlpha4
	KeyAlpha5
	KeyAlpha6
	KeyAlpha7
	KeyAlpha8
	KeyAlpha9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyMouse0
	KeyMouse1
	KeyMouse2
	KeyMouse3
	KeyMouse4
	KeyMouse5
	KeyMouse6

	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:         "None",
	KeyLeftAlt:      "LeftAlt",
	KeyRightAlt:     "RightAlt",
	KeyLeftControl:  "LeftControl",
	KeyRightControl: "RightControl",
	KeyLeftShift:    "LeftShift",
	KeyRightShift:   "RightShift",
	KeyLeftCommand:  "LeftCommand",
	KeyRightCommand: "RightCommand",
	KeyAltGr:        "AltGr",
	KeySpace:        "Space",
	KeyTab:          "Tab",
	KeyBackQuote:    "BackQuote",
	KeyCapsLock:     "CapsLock",
	KeyReturn:       "Return",
	KeyEscape:       "Escape",
	KeyBackspace:    "Backspace",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
	KeyMouse0:       "Mouse0",
	KeyMouse1:       "Mouse1",
	KeyMouse2:       "Mouse2",
	KeyMouse3:       "Mouse3",
	KeyMouse4:       "Mouse4",
	KeyMouse5:       "Mouse5",
	KeyMouse6:       "Mouse6",
}

// aliases accepted when parsing, on top of the canonical names.
var keyAliases = map[string]Key{
	"alt":      KeyLeftAlt,
	"lalt":     KeyLeftAlt,
	"ralt":     KeyRightAlt,
	"ctrl":     KeyLeftControl,
	"control":  KeyLeftControl,
	"lctrl":    KeyLeftControl,
	"rctrl":    KeyRightControl,
	"shift":    KeyLeftShift,
	"lshift":   KeyLeftShift,
	"rshift":   KeyRightShift,
	"cmd":      KeyLeftCommand,
	"super":    KeyLeftCommand,
	"enter":    KeyReturn,
	"esc":      KeyEscape,
	"tilde":    KeyBackQuote,
	"`":        KeyBackQuote,
	"mouse4th": KeyMouse3,
	"mouse5th": KeyMouse4,
}

var keyByName map[string]Key

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('A' + int(k-KeyA)))
	}
	for k := KeyAlpha0; k <= KeyAlpha9; k++ {
		keyNames[k] = "Alpha" + string(rune('0'+int(k-KeyAlpha0)))
	}

	keyByName = make(map[string]Key, int(keyCount)+len(keyAliases)+10)
	for k, name := range keyNames {
		keyByName[strings.ToLower(name)] = Key(k)
	}
	// Bare digits are the number row.
	for k := KeyAlpha0; k <= KeyAlpha9; k++ {
		keyByName[string(rune('0'+int(k-KeyAlpha0)))] = k
	}
	for alias, k := range keyAliases {
		keyByName[alias] = k
	}
}

// String returns the canonical configuration name of the key.
func (k Key) String() string {
	if k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// LookupKey resolves a key name (case-insensitive, aliases allowed).
func LookupKey(name string) (Key, bool) {
	k, ok := keyByName[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

// KeyNames returns every canonical key name, sorted. It backs the
// "acceptable values" listing of the CLI.
func KeyNames() []string {
	names := make([]string, 0, keyCount)
	for _, name := range keyNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsModifier reports whether the key is one of the usual modifier keys.
func (k Key) IsModifier() bool {
	return k >= KeyLeftAlt && k <= KeyAltGr
}
