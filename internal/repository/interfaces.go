package repository

import (
	"context"

	"github.com/jmikkola/dayplan/internal/domain"
)

// GoalLibraryRepo stores reusable goal definitions.
type GoalLibraryRepo interface {
	Create(ctx context.Context, g *domain.LibraryGoal) error
	GetByID(ctx context.Context, id string) (*domain.LibraryGoal, error)
	List(ctx context.Context) ([]*domain.LibraryGoal, error)
	ListAutomatic(ctx context.Context) ([]*domain.LibraryGoal, error)
	Update(ctx context.Context, g *domain.LibraryGoal) error
	Delete(ctx context.Context, id string) error
}

// PlanRepo stores daily plans and their items. A missing plan is reported
// as ErrNotFound; composition treats that as "not yet created", never as a
// failure.
type PlanRepo interface {
	CreatePlan(ctx context.Context, p *domain.DailyPlan) error
	GetPlan(ctx context.Context, date string) (*domain.DailyPlan, error)
	PlanExists(ctx context.Context, date string) (bool, error)
	ListPlanDates(ctx context.Context, from, to string) ([]string, error)
	TouchPlan(ctx context.Context, date string) error

	AddItem(ctx context.Context, it *domain.Item) error
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	UpdateItem(ctx context.Context, it *domain.Item) error
	DeleteItem(ctx context.Context, id string) error
}

// HabitRepo stores the habit registry.
type HabitRepo interface {
	Create(ctx context.Context, h *domain.Habit) error
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Habit, error)
	ListActive(ctx context.Context) ([]*domain.Habit, error)
	Update(ctx context.Context, h *domain.Habit) error
	Delete(ctx context.Context, id string) error
}

// HabitEntryRepo stores per-day habit completion records, keyed on
// (habit id, date).
type HabitEntryRepo interface {
	Upsert(ctx context.Context, e *domain.HabitEntry) error
	Get(ctx context.Context, habitID, date string) (*domain.HabitEntry, error)
	ListByHabit(ctx context.Context, habitID string) ([]*domain.HabitEntry, error)
	ListByDate(ctx context.Context, date string) ([]*domain.HabitEntry, error)
}

// ActivityRepo stores productive-activity templates.
type ActivityRepo interface {
	Create(ctx context.Context, a *domain.ProductiveActivity) error
	GetByID(ctx context.Context, id string) (*domain.ProductiveActivity, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.ProductiveActivity, error)
	Update(ctx context.Context, a *domain.ProductiveActivity) error
	Deactivate(ctx context.Context, id string) error
}
