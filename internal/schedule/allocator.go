package schedule

import (
	"time"

	"github.com/jmikkola/dayplan/internal/domain"
)

// Placement is the computed outcome of a schedule or move request. The
// allocator never commits anything itself: when Conflicts is non-empty the
// caller must get an explicit "schedule anyway" confirmation before
// applying Span to the item.
type Placement struct {
	ItemID    string
	Span      domain.TimeSpan
	Conflicts []*domain.Item
}

// Blocked reports whether the placement overlaps existing items.
func (p *Placement) Blocked() bool {
	return len(p.Conflicts) > 0
}

// Allocator computes placements for items on a day's plan using a grid.
// All methods are pure: they read the item set and return a result without
// mutating anything, so repeated calls with the same inputs (e.g. one per
// pointer-move sample during a drag) yield identical placements.
type Allocator struct {
	Grid Grid
}

// NewAllocator creates an allocator over the given grid.
func NewAllocator(g Grid) Allocator {
	return Allocator{Grid: g}
}

// Place computes the span for scheduling itemID at slot for durationMin
// minutes on the given day, and reports any overlapping items.
func (a Allocator) Place(items []*domain.Item, itemID string, date time.Time, slot Slot, durationMin int) (*Placement, error) {
	if durationMin <= 0 {
		return nil, ErrInvalidInterval
	}
	if !a.Grid.Contains(slot) {
		return nil, ErrOutsideGrid
	}
	if findItem(items, itemID) == nil {
		return nil, ErrItemNotFound
	}

	start := a.Grid.At(date, slot)
	span := domain.TimeSpan{Start: start, End: start.Add(time.Duration(durationMin) * time.Minute)}

	return &Placement{
		ItemID:    itemID,
		Span:      span,
		Conflicts: Conflicts(span, items, itemID),
	}, nil
}

// Move computes a reposition of an already-scheduled item to a new slot,
// preserving its current duration. This backs continuous drag-based
// rescheduling: the host snaps each pointer position to a slot and calls
// Move once per sample.
func (a Allocator) Move(items []*domain.Item, itemID string, date time.Time, slot Slot) (*Placement, error) {
	it := findItem(items, itemID)
	if it == nil {
		return nil, ErrItemNotFound
	}
	if it.Scheduled == nil {
		return nil, ErrItemNotScheduled
	}
	return a.Place(items, itemID, date, slot, it.Scheduled.Minutes())
}

// FreeSlots returns up to maxResults slots, earliest first, where a span of
// durationMin minutes would conflict with nothing and still end within the
// grid's day bounds.
func (a Allocator) FreeSlots(items []*domain.Item, date time.Time, durationMin, maxResults int) ([]Slot, error) {
	if durationMin <= 0 {
		return nil, ErrInvalidInterval
	}

	dayEnd := a.Grid.EndOfDay(date)
	var free []Slot
	for _, slot := range a.Grid.Slots() {
		if maxResults > 0 && len(free) >= maxResults {
			break
		}
		start := a.Grid.At(date, slot)
		span := domain.TimeSpan{Start: start, End: start.Add(time.Duration(durationMin) * time.Minute)}
		if span.End.After(dayEnd) {
			break
		}
		if len(Conflicts(span, items, "")) == 0 {
			free = append(free, slot)
		}
	}
	return free, nil
}

func findItem(items []*domain.Item, id string) *domain.Item {
	for _, it := range items {
		if it.ID == id {
			return it
		}
	}
	return nil
}
