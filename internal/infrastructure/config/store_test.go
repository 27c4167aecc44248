package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/hotbarscroll/internal/ui/input"
)

func TestStore_ZeroValueReturnsDefaults(t *testing.T) {
	var s Store
	assert.True(t, s.Current().Equal(DefaultSettings()))
}

func TestStore_ReplaceIsVisibleImmediately(t *testing.T) {
	s := NewStore(DefaultSettings())

	next := Settings{Modifier: input.NewShortcut(input.KeyF), InvertScroll: ToggleOn}
	s.Replace(next)

	assert.True(t, s.Current().Equal(next))
}

func TestStore_ReplaceCopiesModifiers(t *testing.T) {
	mods := []input.Key{input.KeyLeftShift}
	s := NewStore(Settings{Modifier: input.NewShortcut(input.KeyQ, mods...)})

	mods[0] = input.KeyRightAlt

	assert.Equal(t, input.KeyLeftShift, s.Current().Modifier.Modifiers[0])
}

func TestStore_ConcurrentReadersSeeWholeSnapshots(t *testing.T) {
	a := Settings{Modifier: input.NewShortcut(input.KeyLeftAlt), InvertScroll: ToggleOff}
	b := Settings{Modifier: input.NewShortcut(input.KeyQ, input.KeyLeftControl), InvertScroll: ToggleOn}
	s := NewStore(a)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			if i%2 == 0 {
				s.Replace(b)
			} else {
				s.Replace(a)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			cur := s.Current()
			if !cur.Equal(a) && !cur.Equal(b) {
				t.Errorf("torn snapshot: %+v", cur)
				return
			}
		}
	}()
	wg.Wait()
}
