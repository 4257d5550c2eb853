package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmikkola/dayplan/internal/db"
	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/jmikkola/dayplan/internal/repository"
	"github.com/jmikkola/dayplan/internal/schedule"
)

type scheduleService struct {
	plans    repository.PlanRepo
	alloc    schedule.Allocator
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

// NewScheduleService creates the schedule mutation service over the given
// allocator grid.
func NewScheduleService(plans repository.PlanRepo, alloc schedule.Allocator, uow db.UnitOfWork, observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{
		plans:    plans,
		alloc:    alloc,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *scheduleService) Schedule(ctx context.Context, date, itemID string, slot schedule.Slot, durationMin int, force bool) (result *ScheduleResult, err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "schedule.place", started, err, map[string]any{"date": date, "item_id": itemID})
	}()

	return s.apply(ctx, date, itemID, force, func(items []*domain.Item, day time.Time) (*schedule.Placement, error) {
		return s.alloc.Place(items, itemID, day, slot, durationMin)
	})
}

func (s *scheduleService) Reschedule(ctx context.Context, date, itemID string, slot schedule.Slot, force bool) (result *ScheduleResult, err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "schedule.move", started, err, map[string]any{"date": date, "item_id": itemID})
	}()

	return s.apply(ctx, date, itemID, force, func(items []*domain.Item, day time.Time) (*schedule.Placement, error) {
		return s.alloc.Move(items, itemID, day, slot)
	})
}

// apply runs the placement computation and commits the span unless it is
// blocked and unforced. The read, the check, and the write share one
// transaction, so an interrupted call never leaves a half-updated plan.
func (s *scheduleService) apply(ctx context.Context, date, itemID string, force bool, place func([]*domain.Item, time.Time) (*schedule.Placement, error)) (*ScheduleResult, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("parsing plan date %q: %w", date, err)
	}

	var result *ScheduleResult
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)

		plan, txErr := txPlans.GetPlan(ctx, date)
		if txErr != nil {
			if errors.Is(txErr, repository.ErrNotFound) {
				return schedule.ErrItemNotFound
			}
			return txErr
		}

		placement, txErr := place(plan.Items, day)
		if txErr != nil {
			return txErr
		}

		item := plan.ItemByID(itemID)
		result = &ScheduleResult{Item: item, Span: placement.Span, Conflicts: placement.Conflicts}

		if placement.Blocked() && !force {
			// Surfaced, not auto-resolved: the caller confirms and retries
			// with force, or walks away leaving the plan unchanged.
			return nil
		}

		span := placement.Span
		item.Scheduled = &span
		item.UpdatedAt = s.now()
		if txErr := txPlans.UpdateItem(ctx, item); txErr != nil {
			return txErr
		}
		if txErr := txPlans.TouchPlan(ctx, date); txErr != nil {
			return txErr
		}
		result.Applied = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *scheduleService) ClearSchedule(ctx context.Context, date, itemID string) (err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "schedule.clear", started, err, map[string]any{"date": date, "item_id": itemID})
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)

		item, txErr := txPlans.GetItem(ctx, itemID)
		if txErr != nil {
			if errors.Is(txErr, repository.ErrNotFound) {
				return schedule.ErrItemNotFound
			}
			return txErr
		}
		if item.PlanDate != date {
			return schedule.ErrItemNotFound
		}

		// Clearing removes the time box only; the item stays in the plan.
		item.Scheduled = nil
		item.UpdatedAt = s.now()
		if txErr := txPlans.UpdateItem(ctx, item); txErr != nil {
			return txErr
		}
		return txPlans.TouchPlan(ctx, date)
	})
}

func (s *scheduleService) SuggestFreeSlots(ctx context.Context, date string, durationMin, maxResults int) ([]schedule.Slot, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("parsing plan date %q: %w", date, err)
	}

	plan, err := s.plans.GetPlan(ctx, date)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		// No plan yet: every slot on the grid is available.
		plan = &domain.DailyPlan{Date: date}
	}
	return s.alloc.FreeSlots(plan.Items, day, durationMin, maxResults)
}

func (s *scheduleService) SuggestDurations(ctx context.Context, itemID string) ([]int, error) {
	item, err := s.plans.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, schedule.ErrItemNotFound
		}
		return nil, err
	}
	return schedule.SuggestDurations(item.Title, item.Description), nil
}
