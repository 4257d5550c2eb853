package planner

import (
	"context"
	"testing"

	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/jmikkola/dayplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedDay composes a plan with the given number of ad-hoc goals and marks
// the first `done` of them completed.
func seedDay(t *testing.T, env *testEnv, date string, goals, done int) {
	t.Helper()
	ctx := context.Background()
	for i := 0; i < goals; i++ {
		item, err := env.composer.AddAdHocGoal(ctx, date, "Task", "")
		require.NoError(t, err)
		if i < done {
			_, err = env.composer.ToggleCompleted(ctx, date, item.ID)
			require.NoError(t, err)
		}
	}
}

func TestDaily_MissingPlanReportsEmpty(t *testing.T) {
	env := newTestEnv(t)

	p, err := env.progress.Daily(context.Background(), "2025-06-10")
	require.NoError(t, err)
	assert.False(t, p.HasPlan)
	assert.Equal(t, float64(0), p.Progress)
	assert.Equal(t, domain.BandLow, p.Band)
}

func TestDaily_CountsGoalsAndHabitsSeparately(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.habits.Create(ctx, testutil.NewTestHabit("Meditate")))
	seedDay(t, env, "2025-06-10", 2, 2)

	p, err := env.progress.Daily(ctx, "2025-06-10")
	require.NoError(t, err)
	assert.True(t, p.HasPlan)
	assert.Equal(t, 2, p.GoalsTotal)
	assert.Equal(t, 2, p.GoalsCompleted)
	assert.Equal(t, float64(1), p.Progress)
	assert.Equal(t, 1, p.HabitsTotal)
	assert.Equal(t, 0, p.HabitsCompleted)
	assert.Equal(t, domain.BandHigh, p.Band)
}

func TestWeek_AveragesOnlyComposedDays(t *testing.T) {
	env := newTestEnv(t)

	// 2025-06-09 is a Monday. Two days composed in the week, the rest
	// never touched.
	seedDay(t, env, "2025-06-09", 2, 2) // 1.0
	seedDay(t, env, "2025-06-11", 2, 1) // 0.5

	p, err := env.progress.Week(context.Background(), "2025-06-12")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-09", p.From)
	assert.Equal(t, "2025-06-15", p.To)
	require.Len(t, p.Days, 2)
	assert.InDelta(t, 0.75, p.Average, 1e-9)
	assert.Equal(t, domain.BandHigh, p.Band)
}

func TestWeek_SundayBelongsToPrecedingWeek(t *testing.T) {
	env := newTestEnv(t)

	seedDay(t, env, "2025-06-09", 1, 1)

	// 2025-06-15 is the Sunday of the week starting 2025-06-09.
	p, err := env.progress.Week(context.Background(), "2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-09", p.From)
	require.Len(t, p.Days, 1)
}

func TestRolling_WindowEndsAtEndDate(t *testing.T) {
	env := newTestEnv(t)

	seedDay(t, env, "2025-06-01", 1, 0) // inside a 2-week window ending 06-14
	seedDay(t, env, "2025-06-14", 1, 1)
	seedDay(t, env, "2025-05-31", 1, 1) // outside

	p, err := env.progress.Rolling(context.Background(), "2025-06-14", 2)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", p.From)
	assert.Equal(t, "2025-06-14", p.To)
	require.Len(t, p.Days, 2)
	assert.InDelta(t, 0.5, p.Average, 1e-9)
}

func TestRolling_NoComposedDays(t *testing.T) {
	env := newTestEnv(t)

	p, err := env.progress.Rolling(context.Background(), "2025-06-14", 1)
	require.NoError(t, err)
	assert.Empty(t, p.Days)
	assert.Equal(t, float64(0), p.Average)
	assert.Equal(t, domain.BandLow, p.Band)
}
