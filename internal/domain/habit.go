package domain

import "time"

// Habit is a recurring practice tracked daily. Only active habits propagate
// instances into composed plans.
type Habit struct {
	ID       string
	Title    string
	Category string
	Color    string
	IsActive bool

	// TargetCount and Unit describe quantified habits ("8 glasses");
	// TargetCount is nil for simple done/not-done habits.
	TargetCount *int
	Unit        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HabitEntry records completion of a habit on a single date. Uniqueness is
// on (HabitID, Date).
type HabitEntry struct {
	HabitID   string
	Date      string
	Completed bool
	Count     *int
	CreatedAt time.Time
	UpdatedAt time.Time
}
