package schedule

import "time"

// Default grid bounds: slots every StepMinutes from 05:00 up to (but not
// including) 23:00.
const (
	DefaultStartHour = 5
	DefaultEndHour   = 23
)

// Slot is a discrete start position on a day's grid.
type Slot struct {
	Hour   int
	Minute int
}

// Grid defines the discretized set of schedulable start times for a day.
// It holds no state beyond its bounds; every method is a pure function of
// its inputs. Granularity is parameterized: the allocator uses 15-minute
// steps, the timeline view 30-minute steps.
type Grid struct {
	StartHour   int
	EndHour     int
	StepMinutes int
}

// NewGrid creates a grid with the given step, using the default hour range.
func NewGrid(stepMinutes int) Grid {
	return Grid{StartHour: DefaultStartHour, EndHour: DefaultEndHour, StepMinutes: stepMinutes}
}

// SlotCount returns the number of slots on the grid.
func (g Grid) SlotCount() int {
	return (g.EndHour - g.StartHour) * 60 / g.StepMinutes
}

// Slots returns the ordered sequence of slot descriptors for a day.
func (g Grid) Slots() []Slot {
	slots := make([]Slot, 0, g.SlotCount())
	for minute := g.StartHour * 60; minute < g.EndHour*60; minute += g.StepMinutes {
		slots = append(slots, Slot{Hour: minute / 60, Minute: minute % 60})
	}
	return slots
}

// Contains reports whether s is a valid slot position on this grid.
func (g Grid) Contains(s Slot) bool {
	minute := s.Hour*60 + s.Minute
	if minute < g.StartHour*60 || minute >= g.EndHour*60 {
		return false
	}
	return (minute-g.StartHour*60)%g.StepMinutes == 0
}

// At converts a slot descriptor to an absolute timestamp anchored to the
// calendar day of date, in date's location.
func (g Grid) At(date time.Time, s Slot) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), s.Hour, s.Minute, 0, 0, date.Location())
}

// SlotAt returns the slot at the given index.
func (g Grid) SlotAt(index int) Slot {
	minute := g.StartHour*60 + index*g.StepMinutes
	return Slot{Hour: minute / 60, Minute: minute % 60}
}

// SlotIndexAt returns the index of the slot covering ts, or false when ts
// falls outside the grid's hour range.
func (g Grid) SlotIndexAt(ts time.Time) (int, bool) {
	minute := ts.Hour()*60 + ts.Minute()
	if minute < g.StartHour*60 || minute >= g.EndHour*60 {
		return 0, false
	}
	return (minute - g.StartHour*60) / g.StepMinutes, true
}

// Snap returns the grid slot nearest to ts, clamped to the grid bounds.
// Drag-based rescheduling feeds raw pointer timestamps through this to get
// candidate slots; equal inputs always snap to the same slot.
func (g Grid) Snap(ts time.Time) Slot {
	minute := ts.Hour()*60 + ts.Minute()

	lo := g.StartHour * 60
	hi := g.EndHour*60 - g.StepMinutes
	if minute < lo {
		minute = lo
	}
	if minute > hi {
		minute = hi
	}

	offset := minute - lo
	rounded := lo + ((offset+g.StepMinutes/2)/g.StepMinutes)*g.StepMinutes
	if rounded > hi {
		rounded = hi
	}
	return Slot{Hour: rounded / 60, Minute: rounded % 60}
}

// EndOfDay returns the exclusive upper bound for scheduled spans on the
// given calendar day.
func (g Grid) EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), g.EndHour, 0, 0, 0, date.Location())
}
