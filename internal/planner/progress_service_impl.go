package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/jmikkola/dayplan/internal/repository"
)

type progressService struct {
	plans    repository.PlanRepo
	observer UseCaseObserver
}

// NewProgressService creates the progress aggregation service. Everything
// is derived on demand from stored plans; nothing is cached.
func NewProgressService(plans repository.PlanRepo, observers ...UseCaseObserver) ProgressService {
	return &progressService{plans: plans, observer: useCaseObserverOrNoop(observers)}
}

func (s *progressService) Daily(ctx context.Context, date string) (*DayProgress, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", date, err)
	}

	plan, err := s.plans.GetPlan(ctx, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// A day never composed has nothing to report, not an error.
			return &DayProgress{Date: date, Band: Band(0)}, nil
		}
		return nil, err
	}
	p := Recompute(plan)
	return &p, nil
}

func (s *progressService) Week(ctx context.Context, dateInWeek string) (*RangeProgress, error) {
	day, err := domain.ParseDate(dateInWeek)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", dateInWeek, err)
	}
	monday := startOfISOWeek(day)
	return s.rangeProgress(ctx, monday, monday.AddDate(0, 0, 6))
}

func (s *progressService) Rolling(ctx context.Context, endDate string, weeks int) (*RangeProgress, error) {
	end, err := domain.ParseDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", endDate, err)
	}
	if weeks <= 0 {
		weeks = 1
	}
	from := end.AddDate(0, 0, -(weeks*7 - 1))
	return s.rangeProgress(ctx, from, end)
}

// rangeProgress averages per-day progress over days that have a stored
// plan. Days never composed are excluded from the denominator rather than
// dragged in as zeros.
func (s *progressService) rangeProgress(ctx context.Context, from, to time.Time) (out *RangeProgress, err error) {
	started := time.Now()
	fromKey, toKey := domain.DateKey(from), domain.DateKey(to)
	defer func() {
		observe(ctx, s.observer, "progress.range", started, err, map[string]any{"from": fromKey, "to": toKey})
	}()

	dates, err := s.plans.ListPlanDates(ctx, fromKey, toKey)
	if err != nil {
		return nil, err
	}

	out = &RangeProgress{From: fromKey, To: toKey}
	var sum float64
	for _, date := range dates {
		plan, err := s.plans.GetPlan(ctx, date)
		if err != nil {
			return nil, err
		}
		p := Recompute(plan)
		out.Days = append(out.Days, p)
		sum += p.Progress
	}
	if len(out.Days) > 0 {
		out.Average = sum / float64(len(out.Days))
	}
	out.Band = Band(out.Average)
	return out, nil
}

// startOfISOWeek returns the Monday of t's ISO week.
func startOfISOWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return t.AddDate(0, 0, -(weekday - 1))
}
