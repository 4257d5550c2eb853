package cli

import (
	"context"
	"testing"

	"github.com/jmikkola/dayplan/internal/planner"
	"github.com/jmikkola/dayplan/internal/repository"
	"github.com/jmikkola/dayplan/internal/schedule"
	"github.com/jmikkola/dayplan/internal/teatest"
	"github.com/jmikkola/dayplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*App, *repository.SQLitePlanRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	planRepo := repository.NewSQLitePlanRepo(database)

	app := &App{
		Composer:   planner.NewComposerService(planRepo, uow),
		Scheduler:  planner.NewScheduleService(planRepo, schedule.NewAllocator(schedule.NewGrid(30)), uow),
		Progress:   planner.NewProgressService(planRepo),
		Goals:      planner.NewGoalLibraryService(repository.NewSQLiteGoalLibraryRepo(database)),
		Habits:     planner.NewHabitService(repository.NewSQLiteHabitRepo(database), repository.NewSQLiteHabitEntryRepo(database)),
		Activities: planner.NewActivityService(repository.NewSQLiteActivityRepo(database)),
	}
	return app, planRepo
}

func TestTimeline_ToggleDonePersists(t *testing.T) {
	app, planRepo := newTestApp(t)
	ctx := context.Background()

	item, err := app.Composer.AddAdHocGoal(ctx, "2025-06-10", "Write report", "")
	require.NoError(t, err)

	d := teatest.New(t, newTimelineModel(app, "2025-06-10"))
	d.DrainInit()
	assert.Contains(t, d.View(), "Write report")

	d.PressSpace()

	got, err := planRepo.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Contains(t, d.View(), "1/1 goals")
}

func TestTimeline_NudgeMovesScheduledItem(t *testing.T) {
	app, planRepo := newTestApp(t)
	ctx := context.Background()

	item, err := app.Composer.AddAdHocGoal(ctx, "2025-06-10", "Workout", "")
	require.NoError(t, err)
	_, err = app.Scheduler.Schedule(ctx, "2025-06-10", item.ID, schedule.Slot{Hour: 9}, 60, false)
	require.NoError(t, err)

	d := teatest.New(t, newTimelineModel(app, "2025-06-10"))
	d.DrainInit()

	d.PressKey('J')

	got, err := planRepo.GetItem(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Scheduled)
	assert.Equal(t, 9, got.Scheduled.Start.Hour())
	assert.Equal(t, 30, got.Scheduled.Start.Minute())
	assert.Equal(t, 60, got.Scheduled.Minutes())

	d.PressKey('K')
	got, err = planRepo.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Scheduled.Start.Minute())
}

func TestTimeline_NudgeBlockedByNeighbor(t *testing.T) {
	app, planRepo := newTestApp(t)
	ctx := context.Background()

	first, err := app.Composer.AddAdHocGoal(ctx, "2025-06-10", "Write report", "")
	require.NoError(t, err)
	second, err := app.Composer.AddAdHocGoal(ctx, "2025-06-10", "Team call", "")
	require.NoError(t, err)
	_, err = app.Scheduler.Schedule(ctx, "2025-06-10", first.ID, schedule.Slot{Hour: 9}, 30, false)
	require.NoError(t, err)
	_, err = app.Scheduler.Schedule(ctx, "2025-06-10", second.ID, schedule.Slot{Hour: 9, Minute: 30}, 30, false)
	require.NoError(t, err)

	d := teatest.New(t, newTimelineModel(app, "2025-06-10"))
	d.DrainInit()

	// Cursor starts on the 09:00 item; pushing it later collides.
	d.PressKey('J')

	got, err := planRepo.GetItem(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Scheduled.Start.Minute())
	assert.Contains(t, d.View(), "Blocked")
}

func TestTimeline_UnscheduleKeepsItem(t *testing.T) {
	app, planRepo := newTestApp(t)
	ctx := context.Background()

	item, err := app.Composer.AddAdHocGoal(ctx, "2025-06-10", "Read", "")
	require.NoError(t, err)
	_, err = app.Scheduler.Schedule(ctx, "2025-06-10", item.ID, schedule.Slot{Hour: 20}, 30, false)
	require.NoError(t, err)

	d := teatest.New(t, newTimelineModel(app, "2025-06-10"))
	d.DrainInit()

	d.PressKey('x')

	got, err := planRepo.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Scheduled)
	assert.Contains(t, d.View(), "Read")
}

func TestTimeline_QuitKey(t *testing.T) {
	app, _ := newTestApp(t)

	d := teatest.New(t, newTimelineModel(app, "2025-06-10"))
	d.DrainInit()
	d.PressKey('q')
	assert.True(t, d.Quitting)
}
