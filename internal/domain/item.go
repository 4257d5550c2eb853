package domain

import "time"

// TimeSpan is a half-open scheduled interval [Start, End).
type TimeSpan struct {
	Start time.Time
	End   time.Time
}

// Duration returns the span length.
func (s TimeSpan) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Minutes returns the span length in whole minutes.
func (s TimeSpan) Minutes() int {
	return int(s.Duration().Minutes())
}

// Valid reports whether the span is well-formed (Start strictly before End).
func (s TimeSpan) Valid() bool {
	return s.Start.Before(s.End)
}

// Overlaps reports whether two half-open spans intersect.
func (s TimeSpan) Overlaps(o TimeSpan) bool {
	return s.Start.Before(o.End) && s.End.After(o.Start)
}

// Item is a single schedulable entry in a day's plan. The Kind tag
// identifies the variant; SourceID links automatic, habit, and activity
// instances back to their library record.
type Item struct {
	ID          string
	PlanDate    string
	Kind        ItemKind
	SourceID    string
	Title       string
	Description string
	Completed   bool

	// Scheduled is nil for items present in the plan but not time-boxed.
	Scheduled *TimeSpan

	// HasTimer is orthogonal to scheduling: a goal may be timed without
	// occupying a slot.
	HasTimer bool

	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRealGoal reports whether the item counts toward the daily goal ratio.
// Habit instances are tracked through their own ratio instead.
func (i *Item) IsRealGoal() bool {
	return i.Kind != KindHabit
}

// LibraryGoal is a reusable goal definition. Automatic goals propagate into
// every composed plan without manual selection.
type LibraryGoal struct {
	ID          string
	Title       string
	Description string
	IsAutomatic bool
	HasTimer    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
