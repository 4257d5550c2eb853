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
	"github.com/google/uuid"
)

type composerService struct {
	plans    repository.PlanRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

// NewComposerService creates the plan composition service. Composition runs
// inside a transaction so a plan is never persisted half-propagated.
func NewComposerService(plans repository.PlanRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ComposerService {
	return &composerService{
		plans:    plans,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *composerService) GetOrCreate(ctx context.Context, date string) (plan *domain.DailyPlan, err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "plan.get_or_create", started, err, map[string]any{"date": date})
	}()

	if _, err = domain.ParseDate(date); err != nil {
		return nil, fmt.Errorf("parsing plan date %q: %w", date, err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var txErr error
		plan, txErr = s.composeTx(ctx, tx, date)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	Recompute(plan)
	return plan, nil
}

// composeTx loads or creates the plan for date and propagates automatic
// goals and active habits, all within the caller's transaction.
func (s *composerService) composeTx(ctx context.Context, tx db.DBTX, date string) (*domain.DailyPlan, error) {
	txPlans := repository.NewSQLitePlanRepo(tx)
	txGoals := repository.NewSQLiteGoalLibraryRepo(tx)
	txHabits := repository.NewSQLiteHabitRepo(tx)

	now := s.now()
	plan, err := txPlans.GetPlan(ctx, date)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		plan = &domain.DailyPlan{Date: date, CreatedAt: now, UpdatedAt: now}
		if err := txPlans.CreatePlan(ctx, plan); err != nil {
			return nil, err
		}
	}

	// Propagation enumerates the library state at composition time, never a
	// snapshot from when the plan was first created.
	autoGoals, err := txGoals.ListAutomatic(ctx)
	if err != nil {
		return nil, err
	}
	activeHabits, err := txHabits.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	var added []*domain.Item
	added = append(added, MissingAutomaticItems(plan, autoGoals, now)...)
	added = append(added, MissingHabitItems(plan, activeHabits, now)...)
	for _, it := range added {
		if err := txPlans.AddItem(ctx, it); err != nil {
			return nil, err
		}
	}
	plan.Items = append(plan.Items, added...)

	if len(added) > 0 {
		if err := txPlans.TouchPlan(ctx, date); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

func (s *composerService) AddLibraryGoalToDate(ctx context.Context, goalID, date string, span *domain.TimeSpan) (result *AddResult, err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "plan.add_library_goal", started, err, map[string]any{"goal_id": goalID, "date": date})
	}()

	if span != nil && !span.Valid() {
		return nil, schedule.ErrInvalidInterval
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		txGoals := repository.NewSQLiteGoalLibraryRepo(tx)

		goal, txErr := txGoals.GetByID(ctx, goalID)
		if txErr != nil {
			return txErr
		}
		plan, txErr := s.composeTx(ctx, tx, date)
		if txErr != nil {
			return txErr
		}

		// Automatic goals already have a propagated instance; adding one
		// again returns the existing instance instead of duplicating it.
		if goal.IsAutomatic {
			for _, it := range plan.Items {
				if it.Kind == domain.KindAutomatic && it.SourceID == goal.ID {
					result = &AddResult{Item: it}
					return nil
				}
			}
		}

		now := s.now()
		item := &domain.Item{
			ID:          uuid.New().String(),
			PlanDate:    date,
			Kind:        domain.KindGoal,
			SourceID:    goal.ID,
			Title:       goal.Title,
			Description: goal.Description,
			HasTimer:    goal.HasTimer,
			Position:    len(plan.Items),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		result = s.applySpan(item, plan, span)
		if txErr := txPlans.AddItem(ctx, item); txErr != nil {
			return txErr
		}
		return txPlans.TouchPlan(ctx, date)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *composerService) AddActivityToDate(ctx context.Context, activityID, date string, span *domain.TimeSpan) (result *AddResult, err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "plan.add_activity", started, err, map[string]any{"activity_id": activityID, "date": date})
	}()

	if span != nil && !span.Valid() {
		return nil, schedule.ErrInvalidInterval
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		txActivities := repository.NewSQLiteActivityRepo(tx)

		activity, txErr := txActivities.GetByID(ctx, activityID)
		if txErr != nil {
			return txErr
		}
		plan, txErr := s.composeTx(ctx, tx, date)
		if txErr != nil {
			return txErr
		}

		now := s.now()
		item := &domain.Item{
			ID:        uuid.New().String(),
			PlanDate:  date,
			Kind:      domain.KindActivity,
			SourceID:  activity.ID,
			Title:     activity.Name,
			Position:  len(plan.Items),
			CreatedAt: now,
			UpdatedAt: now,
		}
		result = s.applySpan(item, plan, span)
		if txErr := txPlans.AddItem(ctx, item); txErr != nil {
			return txErr
		}
		return txPlans.TouchPlan(ctx, date)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// applySpan attaches span to item unless it overlaps scheduled plan items;
// in that case the item stays unscheduled and the conflicts are reported
// for the caller to resolve explicitly.
func (s *composerService) applySpan(item *domain.Item, plan *domain.DailyPlan, span *domain.TimeSpan) *AddResult {
	if span == nil {
		return &AddResult{Item: item}
	}
	conflicts := schedule.Conflicts(*span, plan.Items, item.ID)
	if len(conflicts) > 0 {
		return &AddResult{Item: item, Conflicts: conflicts}
	}
	item.Scheduled = span
	return &AddResult{Item: item}
}

func (s *composerService) AddAdHocGoal(ctx context.Context, date, title, description string) (item *domain.Item, err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "plan.add_adhoc_goal", started, err, map[string]any{"date": date})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		plan, txErr := s.composeTx(ctx, tx, date)
		if txErr != nil {
			return txErr
		}

		now := s.now()
		item = &domain.Item{
			ID:          uuid.New().String(),
			PlanDate:    date,
			Kind:        domain.KindGoal,
			Title:       title,
			Description: description,
			Position:    len(plan.Items),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if txErr := txPlans.AddItem(ctx, item); txErr != nil {
			return txErr
		}
		return txPlans.TouchPlan(ctx, date)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *composerService) ToggleCompleted(ctx context.Context, date, itemID string) (item *domain.Item, err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "plan.toggle_completed", started, err, map[string]any{"date": date, "item_id": itemID})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)

		var txErr error
		item, txErr = txPlans.GetItem(ctx, itemID)
		if txErr != nil {
			return txErr
		}
		if item.PlanDate != date {
			return fmt.Errorf("item %s on %s: %w", itemID, date, repository.ErrNotFound)
		}
		item.Completed = !item.Completed
		item.UpdatedAt = s.now()
		if txErr := txPlans.UpdateItem(ctx, item); txErr != nil {
			return txErr
		}
		return txPlans.TouchPlan(ctx, date)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *composerService) RemoveItem(ctx context.Context, date, itemID string) (err error) {
	started := s.now()
	defer func() {
		observe(ctx, s.observer, "plan.remove_item", started, err, map[string]any{"date": date, "item_id": itemID})
	}()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlans := repository.NewSQLitePlanRepo(tx)
		item, txErr := txPlans.GetItem(ctx, itemID)
		if txErr != nil {
			return txErr
		}
		if item.PlanDate != date {
			return fmt.Errorf("item %s on %s: %w", itemID, date, repository.ErrNotFound)
		}
		if txErr := txPlans.DeleteItem(ctx, itemID); txErr != nil {
			return txErr
		}
		return txPlans.TouchPlan(ctx, date)
	})
}
