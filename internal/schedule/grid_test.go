package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridSlots_FifteenMinuteStep(t *testing.T) {
	g := NewGrid(15)

	slots := g.Slots()
	require.Len(t, slots, (23-5)*4)
	assert.Equal(t, Slot{Hour: 5, Minute: 0}, slots[0])
	assert.Equal(t, Slot{Hour: 5, Minute: 15}, slots[1])
	assert.Equal(t, Slot{Hour: 22, Minute: 45}, slots[len(slots)-1])
}

func TestGridSlots_ThirtyMinuteStep(t *testing.T) {
	g := NewGrid(30)

	slots := g.Slots()
	require.Len(t, slots, (23-5)*2)
	assert.Equal(t, Slot{Hour: 5, Minute: 30}, slots[1])
	assert.Equal(t, Slot{Hour: 22, Minute: 30}, slots[len(slots)-1])
}

func TestGridAt_AnchorsToDate(t *testing.T) {
	g := NewGrid(15)
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	ts := g.At(date, Slot{Hour: 9, Minute: 30})
	assert.Equal(t, time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC), ts)
}

func TestGridSlotIndexAt(t *testing.T) {
	g := NewGrid(15)

	idx, ok := g.SlotIndexAt(time.Date(2025, 6, 10, 5, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = g.SlotIndexAt(time.Date(2025, 6, 10, 9, 37, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, g.SlotAt(idx), Slot{Hour: 9, Minute: 30}, "index covers the containing slot")

	_, ok = g.SlotIndexAt(time.Date(2025, 6, 10, 4, 59, 0, 0, time.UTC))
	assert.False(t, ok, "before grid start")

	_, ok = g.SlotIndexAt(time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC))
	assert.False(t, ok, "at grid end")
}

func TestGridContains(t *testing.T) {
	g := NewGrid(15)

	assert.True(t, g.Contains(Slot{Hour: 9, Minute: 45}))
	assert.False(t, g.Contains(Slot{Hour: 9, Minute: 50}), "off-step minute")
	assert.False(t, g.Contains(Slot{Hour: 4, Minute: 45}), "before start")
	assert.False(t, g.Contains(Slot{Hour: 23, Minute: 0}), "end is exclusive")
}

func TestGridSnap(t *testing.T) {
	g := NewGrid(15)

	// Rounds to the nearest step.
	assert.Equal(t, Slot{Hour: 9, Minute: 30}, g.Snap(time.Date(2025, 6, 10, 9, 33, 0, 0, time.UTC)))
	assert.Equal(t, Slot{Hour: 9, Minute: 45}, g.Snap(time.Date(2025, 6, 10, 9, 40, 0, 0, time.UTC)))

	// Clamps to grid bounds.
	assert.Equal(t, Slot{Hour: 5, Minute: 0}, g.Snap(time.Date(2025, 6, 10, 2, 0, 0, 0, time.UTC)))
	assert.Equal(t, Slot{Hour: 22, Minute: 45}, g.Snap(time.Date(2025, 6, 10, 23, 30, 0, 0, time.UTC)))
}

func TestGridSnap_Deterministic(t *testing.T) {
	g := NewGrid(15)
	ts := time.Date(2025, 6, 10, 14, 7, 0, 0, time.UTC)

	first := g.Snap(ts)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, g.Snap(ts), "same input must always snap to the same slot")
	}
}
