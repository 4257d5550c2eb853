package planner

import (
	"context"

	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/jmikkola/dayplan/internal/schedule"
)

// AddResult reports an item inserted into a plan. When the caller asked for
// a pre-scheduled insert and the slot overlapped existing items, the item
// is added unscheduled and Conflicts carries the overlaps so the caller can
// schedule explicitly (with force) after confirmation.
type AddResult struct {
	Item      *domain.Item
	Conflicts []*domain.Item
}

// ComposerService is the read path for daily plans: it returns a complete,
// self-consistent plan for a date, creating and propagating one if none
// exists yet.
type ComposerService interface {
	GetOrCreate(ctx context.Context, date string) (*domain.DailyPlan, error)
	AddLibraryGoalToDate(ctx context.Context, goalID, date string, span *domain.TimeSpan) (*AddResult, error)
	AddActivityToDate(ctx context.Context, activityID, date string, span *domain.TimeSpan) (*AddResult, error)
	AddAdHocGoal(ctx context.Context, date, title, description string) (*domain.Item, error)
	ToggleCompleted(ctx context.Context, date, itemID string) (*domain.Item, error)
	RemoveItem(ctx context.Context, date, itemID string) error
}

// ScheduleResult is the outcome of a schedule or reschedule request.
// Applied is false when conflicts were found and force was not set; the
// plan is unchanged in that case and Conflicts lists the overlapping items.
type ScheduleResult struct {
	Item      *domain.Item
	Span      domain.TimeSpan
	Conflicts []*domain.Item
	Applied   bool
}

// ScheduleService is the mutation surface for an item's scheduled time.
type ScheduleService interface {
	Schedule(ctx context.Context, date, itemID string, slot schedule.Slot, durationMin int, force bool) (*ScheduleResult, error)
	Reschedule(ctx context.Context, date, itemID string, slot schedule.Slot, force bool) (*ScheduleResult, error)
	ClearSchedule(ctx context.Context, date, itemID string) error
	SuggestFreeSlots(ctx context.Context, date string, durationMin, maxResults int) ([]schedule.Slot, error)
	SuggestDurations(ctx context.Context, itemID string) ([]int, error)
}

// DayProgress is the derived completion state of one day.
type DayProgress struct {
	Date            string
	Progress        float64
	GoalsCompleted  int
	GoalsTotal      int
	HabitsCompleted int
	HabitsTotal     int
	HabitRatio      float64
	Band            domain.ProgressBand
	HasPlan         bool
}

// RangeProgress aggregates per-day progress over a date range. Days with
// no stored plan are excluded from the average, not counted as zero.
type RangeProgress struct {
	From    string
	To      string
	Days    []DayProgress
	Average float64
	Band    domain.ProgressBand
}

// ProgressService computes completion fractions on demand; nothing is
// cached incrementally.
type ProgressService interface {
	Daily(ctx context.Context, date string) (*DayProgress, error)
	Week(ctx context.Context, dateInWeek string) (*RangeProgress, error)
	Rolling(ctx context.Context, endDate string, weeks int) (*RangeProgress, error)
}

// GoalLibraryService manages reusable goal definitions.
type GoalLibraryService interface {
	Create(ctx context.Context, g *domain.LibraryGoal) error
	GetByID(ctx context.Context, id string) (*domain.LibraryGoal, error)
	List(ctx context.Context) ([]*domain.LibraryGoal, error)
	SetAutomatic(ctx context.Context, id string, automatic bool) error
	Update(ctx context.Context, g *domain.LibraryGoal) error
	Delete(ctx context.Context, id string) error
}

// HabitService manages the habit registry and per-day completion entries.
type HabitService interface {
	Create(ctx context.Context, h *domain.Habit) error
	GetByID(ctx context.Context, id string) (*domain.Habit, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Habit, error)
	Pause(ctx context.Context, id string) error
	Resume(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	RecordEntry(ctx context.Context, habitID, date string, completed bool, count *int) error
	EntriesFor(ctx context.Context, habitID string) ([]*domain.HabitEntry, error)
}

// ActivityService manages productive-activity templates.
type ActivityService interface {
	Create(ctx context.Context, a *domain.ProductiveActivity) error
	GetByID(ctx context.Context, id string) (*domain.ProductiveActivity, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.ProductiveActivity, error)
	Update(ctx context.Context, a *domain.ProductiveActivity) error
	Deactivate(ctx context.Context, id string) error
}
