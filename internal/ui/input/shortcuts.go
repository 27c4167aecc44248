package input

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned when a shortcut names a key the host does not know.
var ErrUnknownKey = errors.New("unknown key")

// ErrEmptyShortcut is returned when a shortcut string has no main key.
var ErrEmptyShortcut = errors.New("empty shortcut")

// Poller is the host's per-frame input polling API.
type Poller interface {
	// IsKeyDown reports whether the key went down during this frame.
	IsKeyDown(k Key) bool
	// IsKeyHeld reports whether the key is currently held.
	IsKeyHeld(k Key) bool
	// ScrollDelta returns the mouse wheel movement of this frame.
	// Positive values scroll up.
	ScrollDelta() float64
	// ResetInputAxes drops the cached axis values so no other system sees
	// the scroll delta again this frame.
	ResetInputAxes()
}

// Shortcut is a main key plus auxiliary keys that must all be held.
type Shortcut struct {
	Main      Key
	Modifiers []Key
}

// NewShortcut builds a shortcut from a main key and optional auxiliary keys.
func NewShortcut(main Key, modifiers ...Key) Shortcut {
	return Shortcut{Main: main, Modifiers: modifiers}
}

// ParseShortcut converts a config string like "LeftAlt" or
// "Q + LeftControl" to a Shortcut. The first key is the main key and the
// remaining keys are auxiliary. "None" parses to a disabled shortcut.
func ParseShortcut(s string) (Shortcut, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Shortcut{}, ErrEmptyShortcut
	}

	parts := strings.Split(s, "+")

	var sc Shortcut
	seen := make(map[Key]bool, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return Shortcut{}, fmt.Errorf("%q: %w", s, ErrEmptyShortcut)
		}

		k, ok := LookupKey(part)
		if !ok {
			return Shortcut{}, fmt.Errorf("%q: %w", part, ErrUnknownKey)
		}

		if i == 0 {
			sc.Main = k
			seen[k] = true
			continue
		}
		if k == KeyNone || seen[k] {
			continue
		}
		seen[k] = true
		sc.Modifiers = append(sc.Modifiers, k)
	}

	if sc.Main == KeyNone {
		return Shortcut{}, nil
	}
	return sc, nil
}

// String formats the shortcut the way ParseShortcut reads it.
func (s Shortcut) String() string {
	if s.Main == KeyNone {
		return KeyNone.String()
	}

	var b strings.Builder
	b.WriteString(s.Main.String())
	for _, m := range s.Modifiers {
		b.WriteString(" + ")
		b.WriteString(m.String())
	}
	return b.String()
}

// Enabled reports whether the shortcut has a main key.
func (s Shortcut) Enabled() bool {
	return s.Main != KeyNone
}

// Equal reports whether both shortcuts name the same keys in the same order.
func (s Shortcut) Equal(other Shortcut) bool {
	if s.Main != other.Main || len(s.Modifiers) != len(other.Modifiers) {
		return false
	}
	for i := range s.Modifiers {
		if s.Modifiers[i] != other.Modifiers[i] {
			return false
		}
	}
	return true
}

// IsHeld reports whether the main key and every auxiliary key are held.
func (s Shortcut) IsHeld(p Poller) bool {
	return s.Main != KeyNone && p.IsKeyHeld(s.Main) && s.modifiersHeld(p)
}

func (s Shortcut) modifiersHeld(p Poller) bool {
	for _, m := range s.Modifiers {
		if !p.IsKeyHeld(m) {
			return false
		}
	}
	return true
}
