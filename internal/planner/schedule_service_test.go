package planner

import (
	"context"
	"testing"

	"github.com/jmikkola/dayplan/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_PlacesItem(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item, err := env.composer.AddAdHocGoal(ctx, "2025-06-10", "Write report", "")
	require.NoError(t, err)

	result, err := env.scheduler.Schedule(ctx, "2025-06-10", item.ID, schedule.Slot{Hour: 9}, 60, false)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Empty(t, result.Conflicts)
	assert.Equal(t, 60, result.Span.Minutes())

	got, err := env.plans.GetItem(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Scheduled)
	assert.Equal(t, 9, got.Scheduled.Start.Hour())
}

func TestSchedule_ConflictSurfacedNotApplied(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	report, err := env.composer.AddAdHocGoal(ctx, "2025-06-10", "Write report", "")
	require.NoError(t, err)
	call, err := env.composer.AddAdHocGoal(ctx, "2025-06-10", "Team call", "")
	require.NoError(t, err)

	_, err = env.scheduler.Schedule(ctx, "2025-06-10", report.ID, schedule.Slot{Hour: 9}, 60, false)
	require.NoError(t, err)

	result, err := env.scheduler.Schedule(ctx, "2025-06-10", call.ID, schedule.Slot{Hour: 9, Minute: 30}, 30, false)
	require.NoError(t, err)
	assert.False(t, result.Applied)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, "Write report", result.Conflicts[0].Title)

	// Nothing was committed.
	got, err := env.plans.GetItem(ctx, call.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Scheduled)
}

func TestSchedule_ForceCommitsDespiteConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	report, err := env.composer.AddAdHocGoal(ctx, "2025-06-10", "Write report", "")
	require.NoError(t, err)
	call, err := env.composer.AddAdHocGoal(ctx, "2025-06-10", "Team call", "")
	require.NoError(t, err)

	_, err = env.scheduler.Schedule(ctx, "2025-06-10", report.ID, schedule.Slot{Hour: 9}, 60, false)
	require.NoError(t, err)

	result, err := env.scheduler.Schedule(ctx, "2025-06-10", call.ID, schedule.Slot{Hour: 9, Minute: 30}, 30, true)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Len(t, result.Conflicts, 1)

	got, err := env.plans.GetItem(ctx, call.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Scheduled)
	assert.Equal(t, 30, got.Scheduled.Minutes())
}

func TestSchedule_AdjacentSlotsDoNotConflict(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	report, err := env.composer.AddAdHocGoal(ctx, "2025-06-10", "Write report", "")
	require.NoError(t, err)
	call, err := env.composer.AddAdHocGoal(ctx, "2025-06-10", "Team call", "")
	require.NoError(t, err)

	_, err = env.scheduler.Schedule(ctx, "2025-06-10", report.ID, schedule.Slot{Hour: 9}, 60, false)
	require.NoError(t, err)

	result, err := env.scheduler.Schedule(ctx, "2025-06-10", call.ID, schedule.Slot{Hour: 10}, 30, false)
	require.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Empty(t, result.Conflicts)
}

func TestSchedule_UnknownItem(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.composer.GetOrCreate(ctx, "2025-06-10")
	require.NoError(t, err)

	_, err = env.scheduler.Schedule(ctx, "2025-06-10", "nonexistent", schedule.Slot{Hour: 9}, 60, false)
	assert.ErrorIs(t, err, schedule.ErrItemNotFound)
}

func TestSchedule_MissingPlan(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.scheduler.Schedule(context.Background(), "2025-06-10", "anything", schedule.Slot{Hour: 9}, 60, false)
	assert.ErrorIs(t, err, schedule.ErrItemNotFound)
}

func TestReschedule_PreservesDuration(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item, err := env.composer.AddAdHocGoal(ctx, "2025-06-10", "Workout", "")
	require.NoError(t, err)

	_, err = env.scheduler.Schedule(ctx, "2025-06-10", item.ID, schedule.Slot{Hour: 7}, 45, false)
	require.NoError(t, err)

	result, err := env.scheduler.Reschedule(ctx, "2025-06-10", item.ID, schedule.Slot{Hour: 18}, false)
	require.NoError(t, err)
	assert.True(t, result.Applied)

	got, err := env.plans.GetItem(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Scheduled)
	assert.Equal(t, 18, got.Scheduled.Start.Hour())
	assert.Equal(t, 45, got.Scheduled.Minutes())
}

func TestReschedule_UnscheduledItem(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item, err := env.composer.AddAdHocGoal(ctx, "2025-06-10", "Workout", "")
	require.NoError(t, err)

	_, err = env.scheduler.Reschedule(ctx, "2025-06-10", item.ID, schedule.Slot{Hour: 18}, false)
	assert.ErrorIs(t, err, schedule.ErrItemNotScheduled)
}

func TestClearSchedule_KeepsItemInPlan(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item, err := env.composer.AddAdHocGoal(ctx, "2025-06-10", "Read", "")
	require.NoError(t, err)
	_, err = env.scheduler.Schedule(ctx, "2025-06-10", item.ID, schedule.Slot{Hour: 20}, 30, false)
	require.NoError(t, err)

	require.NoError(t, env.scheduler.ClearSchedule(ctx, "2025-06-10", item.ID))

	got, err := env.plans.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Scheduled)
	assert.Equal(t, "Read", got.Title)
}

func TestClearSchedule_WrongDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item, err := env.composer.AddAdHocGoal(ctx, "2025-06-10", "Read", "")
	require.NoError(t, err)

	err = env.scheduler.ClearSchedule(ctx, "2025-06-11", item.ID)
	assert.ErrorIs(t, err, schedule.ErrItemNotFound)
}

func TestSuggestFreeSlots_AvoidsBusyBlocks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	report, err := env.composer.AddAdHocGoal(ctx, "2025-06-10", "Write report", "")
	require.NoError(t, err)
	_, err = env.scheduler.Schedule(ctx, "2025-06-10", report.ID, schedule.Slot{Hour: 9}, 60, false)
	require.NoError(t, err)

	slots, err := env.scheduler.SuggestFreeSlots(ctx, "2025-06-10", 60, 3)
	require.NoError(t, err)
	require.Len(t, slots, 3)
	assert.Equal(t, schedule.Slot{Hour: 5}, slots[0])
	assert.Equal(t, schedule.Slot{Hour: 5, Minute: 15}, slots[1])
	assert.Equal(t, schedule.Slot{Hour: 5, Minute: 30}, slots[2])
}

func TestSuggestFreeSlots_NoPlanMeansOpenDay(t *testing.T) {
	env := newTestEnv(t)

	slots, err := env.scheduler.SuggestFreeSlots(context.Background(), "2025-06-10", 30, 2)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, schedule.Slot{Hour: 5}, slots[0])
}

func TestSuggestDurations_ForItem(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	item, err := env.composer.AddAdHocGoal(ctx, "2025-06-10", "Morning workout", "")
	require.NoError(t, err)

	durations, err := env.scheduler.SuggestDurations(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{30, 45, 60, 90}, durations)
}

func TestSuggestDurations_UnknownItem(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.scheduler.SuggestDurations(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, schedule.ErrItemNotFound)
}
