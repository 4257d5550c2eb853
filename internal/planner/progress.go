package planner

import "github.com/jmikkola/dayplan/internal/domain"

// Band thresholds follow the formatter's color cutoffs and are monotonic:
// a higher ratio never maps to a lower band.
const (
	bandMidThreshold  = 0.33
	bandHighThreshold = 0.66
)

// Band maps a progress ratio to its display band.
func Band(progress float64) domain.ProgressBand {
	switch {
	case progress >= bandHighThreshold:
		return domain.BandHigh
	case progress >= bandMidThreshold:
		return domain.BandMid
	default:
		return domain.BandLow
	}
}

// Recompute derives a plan's completion state from its current item set.
// Habit instances are excluded from the goal ratio and counted separately;
// a day with zero real goals has progress 0, never NaN. The plan's derived
// fields are refreshed in place.
func Recompute(plan *domain.DailyPlan) DayProgress {
	p := DayProgress{Date: plan.Date, HasPlan: true}
	for _, it := range plan.Items {
		if it.IsRealGoal() {
			p.GoalsTotal++
			if it.Completed {
				p.GoalsCompleted++
			}
		} else {
			p.HabitsTotal++
			if it.Completed {
				p.HabitsCompleted++
			}
		}
	}
	if p.GoalsTotal > 0 {
		p.Progress = float64(p.GoalsCompleted) / float64(p.GoalsTotal)
	}
	if p.HabitsTotal > 0 {
		p.HabitRatio = float64(p.HabitsCompleted) / float64(p.HabitsTotal)
	}
	p.Band = Band(p.Progress)

	plan.Progress = p.Progress
	plan.GoalsCompleted = p.GoalsCompleted
	plan.GoalsTotal = p.GoalsTotal
	return p
}
