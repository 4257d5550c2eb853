package testutil

import (
	"time"

	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/google/uuid"
)

// NewTestGoal builds a library goal with sensible defaults.
func NewTestGoal(title string, opts ...GoalOption) *domain.LibraryGoal {
	now := time.Now().UTC()
	g := &domain.LibraryGoal{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GoalOption customizes a test goal.
type GoalOption func(*domain.LibraryGoal)

// Automatic marks the goal for daily propagation.
func Automatic() GoalOption {
	return func(g *domain.LibraryGoal) { g.IsAutomatic = true }
}

// WithTimer marks the goal as timed.
func WithTimer() GoalOption {
	return func(g *domain.LibraryGoal) { g.HasTimer = true }
}

// NewTestHabit builds an active habit with sensible defaults.
func NewTestHabit(title string, opts ...HabitOption) *domain.Habit {
	now := time.Now().UTC()
	h := &domain.Habit{
		ID:        uuid.New().String(),
		Title:     title,
		Category:  "wellness",
		Color:     "#8ec07c",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HabitOption customizes a test habit.
type HabitOption func(*domain.Habit)

// Inactive marks the habit as paused.
func Inactive() HabitOption {
	return func(h *domain.Habit) { h.IsActive = false }
}

// WithTarget sets a quantified target for the habit.
func WithTarget(count int, unit string) HabitOption {
	return func(h *domain.Habit) {
		h.TargetCount = &count
		h.Unit = unit
	}
}

// NewTestActivity builds an active productive-activity template.
func NewTestActivity(name string, estimatedMin int) *domain.ProductiveActivity {
	now := time.Now().UTC()
	a := &domain.ProductiveActivity{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  "focus",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if estimatedMin > 0 {
		a.EstimatedMin = &estimatedMin
	}
	return a
}

// NewTestItem builds an unscheduled plan item for the given date.
func NewTestItem(date, title string, kind domain.ItemKind) *domain.Item {
	now := time.Now().UTC()
	return &domain.Item{
		ID:        uuid.New().String(),
		PlanDate:  date,
		Kind:      kind,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
