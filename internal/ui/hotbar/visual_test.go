package hotbar_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hotbarscroll/internal/ui/hotbar"
	"github.com/bnema/hotbarscroll/internal/ui/hotbar/mocks"
)

type fakeWidget struct {
	name   string
	parent string
	active bool
}

func (w *fakeWidget) SetActive(active bool) { w.active = active }
func (w *fakeWidget) IsActive() bool        { return w.active }

type fakeFactory struct {
	created []*fakeWidget
}

func (f *fakeFactory) Instantiate(template, parent hotbar.Widget) hotbar.Widget {
	clone := &fakeWidget{
		name:   fmt.Sprintf("highlight-%d", len(f.created)),
		parent: parent.(*fakeWidget).name,
		active: template.IsActive(),
	}
	f.created = append(f.created, clone)
	return clone
}

func newSlots(n int) []hotbar.Slot {
	slots := make([]hotbar.Slot, n)
	for i := range slots {
		slots[i].Visual = &fakeWidget{name: fmt.Sprintf("slot-%d", i)}
	}
	if n > 0 {
		slots[0].Selection = &fakeWidget{name: "template", active: true}
	}
	return slots
}

func activeHighlights(t *testing.T, sync *hotbar.VisualSync, slots []hotbar.Slot) []int {
	t.Helper()

	var active []int
	for i, slot := range slots {
		h, ok := sync.Handle(slot.Visual)
		require.True(t, ok, "slot %d has no highlight", i)
		if h.IsActive() {
			active = append(active, i)
		}
	}
	return active
}

func TestSync_ExactlyOneHighlightForEveryIndex(t *testing.T) {
	for n := 1; n <= 10; n++ {
		factory := &fakeFactory{}
		sync := hotbar.NewVisualSync(factory)
		slots := newSlots(n)

		for index := 0; index < n; index++ {
			sync.Sync(slots, index)
			assert.Equal(t, []int{index}, activeHighlights(t, sync, slots), "n=%d index=%d", n, index)
		}

		sync.Sync(slots, hotbar.NoSelection)
		assert.Empty(t, activeHighlights(t, sync, slots), "n=%d none selected", n)
		assert.Len(t, factory.created, n, "overlays are created once per slot")
	}
}

func TestSync_IsIdempotent(t *testing.T) {
	factory := &fakeFactory{}
	sync := hotbar.NewVisualSync(factory)
	slots := newSlots(8)

	sync.Sync(slots, 2)
	sync.Sync(slots, 2)
	sync.Sync(slots, 2)

	assert.Equal(t, []int{2}, activeHighlights(t, sync, slots))
	assert.Len(t, factory.created, 8)
}

func TestEnsureHandles_ClonesHiddenChildOfEachVisual(t *testing.T) {
	factory := &fakeFactory{}
	sync := hotbar.NewVisualSync(factory)
	slots := newSlots(3)

	require.True(t, sync.EnsureHandles(slots))

	for i, slot := range slots {
		h, ok := sync.Handle(slot.Visual)
		require.True(t, ok)
		fw := h.(*fakeWidget)
		assert.Equal(t, fmt.Sprintf("slot-%d", i), fw.parent)
		assert.False(t, fw.active, "clone of an active template starts hidden")
	}
}

func TestEnsureHandles_SkipsWithoutTemplate(t *testing.T) {
	factory := mocks.NewMockFactory(t)
	sync := hotbar.NewVisualSync(factory)

	assert.False(t, sync.EnsureHandles(nil))

	slots := newSlots(4)
	slots[0].Selection = nil
	assert.False(t, sync.EnsureHandles(slots))

	sync.Sync(slots, 1)
	_, ok := sync.Handle(slots[1].Visual)
	assert.False(t, ok)

	factory.AssertNotCalled(t, "Instantiate", mock.Anything, mock.Anything)
}

func TestEnsureHandles_CreatesOnlyMissing(t *testing.T) {
	factory := mocks.NewMockFactory(t)
	sync := hotbar.NewVisualSync(factory)
	slots := newSlots(2)
	template := slots[0].Selection

	first := mocks.NewMockWidget(t)
	second := mocks.NewMockWidget(t)
	first.EXPECT().SetActive(false).Once()
	second.EXPECT().SetActive(false).Once()
	factory.EXPECT().Instantiate(template, slots[0].Visual).Return(first).Once()
	factory.EXPECT().Instantiate(template, slots[1].Visual).Return(second).Once()

	require.True(t, sync.EnsureHandles(slots))
	require.True(t, sync.EnsureHandles(slots), "second pass creates nothing")
}

func TestEnsureHandles_FactoryReturningNil(t *testing.T) {
	factory := mocks.NewMockFactory(t)
	sync := hotbar.NewVisualSync(factory)
	slots := newSlots(1)

	factory.EXPECT().Instantiate(mock.Anything, mock.Anything).Return(nil).Once()

	assert.False(t, sync.EnsureHandles(slots))
	_, ok := sync.Handle(slots[0].Visual)
	assert.False(t, ok)
}

func TestSync_RecreatesAfterHostRebuild(t *testing.T) {
	factory := &fakeFactory{}
	sync := hotbar.NewVisualSync(factory)
	slots := newSlots(4)
	sync.Sync(slots, 1)

	rebuilt := newSlots(4)
	for i := range rebuilt {
		rebuilt[i].Visual.(*fakeWidget).name = fmt.Sprintf("rebuilt-%d", i)
	}
	sync.Sync(rebuilt, 3)

	assert.Equal(t, []int{3}, activeHighlights(t, sync, rebuilt))
	assert.Len(t, factory.created, 8)
}

func TestEnsureHandles_ForgetsVanishedVisuals(t *testing.T) {
	factory := &fakeFactory{}
	sync := hotbar.NewVisualSync(factory)
	old := newSlots(2)
	sync.EnsureHandles(old)

	fresh := newSlots(2)
	fresh[0].Visual.(*fakeWidget).name = "fresh-0"
	fresh[1].Visual.(*fakeWidget).name = "fresh-1"
	require.True(t, sync.EnsureHandles(fresh))

	_, ok := sync.Handle(old[0].Visual)
	assert.False(t, ok)
	_, ok = sync.Handle(fresh[0].Visual)
	assert.True(t, ok)
}

func TestSync_RepeatedHostRebuildsKeepOneOverlayPerSlot(t *testing.T) {
	factory := &fakeFactory{}
	sync := hotbar.NewVisualSync(factory)

	var previous []hotbar.Slot
	for generation := 0; generation < 100; generation++ {
		slots := newSlots(8)
		sync.Sync(slots, generation%8)

		assert.Equal(t, []int{generation % 8}, activeHighlights(t, sync, slots))
		for i, slot := range previous {
			_, ok := sync.Handle(slot.Visual)
			require.False(t, ok, "generation %d kept the overlay of dropped slot %d", generation, i)
		}
		previous = slots
	}

	assert.Len(t, factory.created, 800)
}

func TestHide(t *testing.T) {
	factory := &fakeFactory{}
	sync := hotbar.NewVisualSync(factory)
	slots := newSlots(5)
	sync.Sync(slots, 3)

	sync.Hide(slots, 3)
	sync.Hide(slots, 42)
	sync.Hide(slots, hotbar.NoSelection)

	assert.Empty(t, activeHighlights(t, sync, slots))
}

func TestHandle_NilVisual(t *testing.T) {
	sync := hotbar.NewVisualSync(&fakeFactory{})
	_, ok := sync.Handle(nil)
	assert.False(t, ok)
}
