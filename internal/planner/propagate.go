package planner

import (
	"time"

	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/google/uuid"
)

// MissingAutomaticItems returns one fresh plan item per automatic goal not
// yet instantiated in the plan. Existing instances are left untouched, so
// propagation is additive and idempotent regardless of how often a plan is
// recomposed.
func MissingAutomaticItems(plan *domain.DailyPlan, goals []*domain.LibraryGoal, now time.Time) []*domain.Item {
	var missing []*domain.Item
	pos := nextPosition(plan)
	for _, g := range goals {
		if plan.HasInstanceOf(domain.KindAutomatic, g.ID) {
			continue
		}
		missing = append(missing, &domain.Item{
			ID:          uuid.New().String(),
			PlanDate:    plan.Date,
			Kind:        domain.KindAutomatic,
			SourceID:    g.ID,
			Title:       g.Title,
			Description: g.Description,
			HasTimer:    g.HasTimer,
			Position:    pos,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		pos++
	}
	return missing
}

// MissingHabitItems returns one fresh habit instance per active habit not
// yet present in the plan. The habit set is enumerated by the caller at
// composition time, so deactivating a habit stops new instances without
// touching instances created on earlier days.
func MissingHabitItems(plan *domain.DailyPlan, habits []*domain.Habit, now time.Time) []*domain.Item {
	var missing []*domain.Item
	pos := nextPosition(plan) + 1000
	for _, h := range habits {
		if !h.IsActive {
			continue
		}
		if plan.HasInstanceOf(domain.KindHabit, h.ID) {
			continue
		}
		missing = append(missing, &domain.Item{
			ID:        uuid.New().String(),
			PlanDate:  plan.Date,
			Kind:      domain.KindHabit,
			SourceID:  h.ID,
			Title:     h.Title,
			Position:  pos,
			CreatedAt: now,
			UpdatedAt: now,
		})
		pos++
	}
	return missing
}

// nextPosition returns the display position after the plan's current tail.
func nextPosition(plan *domain.DailyPlan) int {
	max := -1
	for _, it := range plan.Items {
		if it.Position > max {
			max = it.Position
		}
	}
	return max + 1
}
