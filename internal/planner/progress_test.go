package planner

import (
	"testing"

	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/jmikkola/dayplan/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBand_Thresholds(t *testing.T) {
	tests := []struct {
		progress float64
		want     domain.ProgressBand
	}{
		{0, domain.BandLow},
		{0.32, domain.BandLow},
		{0.33, domain.BandMid},
		{0.5, domain.BandMid},
		{0.66, domain.BandHigh},
		{1, domain.BandHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Band(tt.progress), "progress %v", tt.progress)
	}
}

func TestRecompute_ExcludesHabitInstances(t *testing.T) {
	plan := &domain.DailyPlan{Date: "2025-06-10"}

	done := testutil.NewTestItem("2025-06-10", "Write report", domain.KindGoal)
	done.Completed = true
	open := testutil.NewTestItem("2025-06-10", "Review budget", domain.KindAutomatic)
	habitDone := testutil.NewTestItem("2025-06-10", "Hydrate", domain.KindHabit)
	habitDone.Completed = true
	habitOpen := testutil.NewTestItem("2025-06-10", "Meditate", domain.KindHabit)
	plan.Items = []*domain.Item{done, open, habitDone, habitOpen}

	p := Recompute(plan)
	assert.Equal(t, 2, p.GoalsTotal)
	assert.Equal(t, 1, p.GoalsCompleted)
	assert.InDelta(t, 0.5, p.Progress, 1e-9)
	assert.Equal(t, 2, p.HabitsTotal)
	assert.Equal(t, 1, p.HabitsCompleted)
	assert.InDelta(t, 0.5, p.HabitRatio, 1e-9)
	assert.Equal(t, domain.BandMid, p.Band)

	assert.InDelta(t, 0.5, plan.Progress, 1e-9)
	assert.Equal(t, 1, plan.GoalsCompleted)
	assert.Equal(t, 2, plan.GoalsTotal)
}

func TestRecompute_OnlyHabitsIsZeroNotNaN(t *testing.T) {
	plan := &domain.DailyPlan{Date: "2025-06-10"}
	habit := testutil.NewTestItem("2025-06-10", "Hydrate", domain.KindHabit)
	habit.Completed = true
	plan.Items = []*domain.Item{habit}

	p := Recompute(plan)
	assert.Equal(t, 0, p.GoalsTotal)
	assert.Equal(t, float64(0), p.Progress)
	assert.Equal(t, domain.BandLow, p.Band)
}

func TestRecompute_EmptyPlan(t *testing.T) {
	plan := &domain.DailyPlan{Date: "2025-06-10"}
	p := Recompute(plan)
	assert.Equal(t, float64(0), p.Progress)
	assert.True(t, p.HasPlan)
}

func TestRecompute_ActivitiesCountAsGoals(t *testing.T) {
	plan := &domain.DailyPlan{Date: "2025-06-10"}
	activity := testutil.NewTestItem("2025-06-10", "Deep work block", domain.KindActivity)
	activity.Completed = true
	plan.Items = []*domain.Item{activity}

	p := Recompute(plan)
	assert.Equal(t, 1, p.GoalsTotal)
	assert.Equal(t, 1, p.GoalsCompleted)
	assert.Equal(t, float64(1), p.Progress)
	assert.Equal(t, domain.BandHigh, p.Band)
}
