package planner

import (
	"testing"
	"time"

	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/jmikkola/dayplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingAutomaticItems_NewPlan(t *testing.T) {
	plan := &domain.DailyPlan{Date: "2025-06-10"}
	water := testutil.NewTestGoal("Drink water", testutil.Automatic())
	vitamins := testutil.NewTestGoal("Take vitamins", testutil.Automatic())
	now := time.Now().UTC()

	items := MissingAutomaticItems(plan, []*domain.LibraryGoal{water, vitamins}, now)
	require.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, domain.KindAutomatic, it.Kind)
		assert.Equal(t, "2025-06-10", it.PlanDate)
		assert.NotEmpty(t, it.ID)
	}
	assert.Equal(t, water.ID, items[0].SourceID)
	assert.Equal(t, vitamins.ID, items[1].SourceID)
}

func TestMissingAutomaticItems_SkipsExistingInstances(t *testing.T) {
	water := testutil.NewTestGoal("Drink water", testutil.Automatic())
	vitamins := testutil.NewTestGoal("Take vitamins", testutil.Automatic())

	existing := testutil.NewTestItem("2025-06-10", "Drink water", domain.KindAutomatic)
	existing.SourceID = water.ID
	plan := &domain.DailyPlan{Date: "2025-06-10", Items: []*domain.Item{existing}}

	items := MissingAutomaticItems(plan, []*domain.LibraryGoal{water, vitamins}, time.Now().UTC())
	require.Len(t, items, 1)
	assert.Equal(t, vitamins.ID, items[0].SourceID)
}

func TestMissingAutomaticItems_Idempotent(t *testing.T) {
	plan := &domain.DailyPlan{Date: "2025-06-10"}
	goals := []*domain.LibraryGoal{testutil.NewTestGoal("Drink water", testutil.Automatic())}
	now := time.Now().UTC()

	first := MissingAutomaticItems(plan, goals, now)
	require.Len(t, first, 1)
	plan.Items = append(plan.Items, first...)

	second := MissingAutomaticItems(plan, goals, now)
	assert.Empty(t, second)
}

func TestMissingHabitItems_SkipsInactive(t *testing.T) {
	plan := &domain.DailyPlan{Date: "2025-06-10"}
	active := testutil.NewTestHabit("Meditate")
	paused := testutil.NewTestHabit("Journal", testutil.Inactive())

	items := MissingHabitItems(plan, []*domain.Habit{active, paused}, time.Now().UTC())
	require.Len(t, items, 1)
	assert.Equal(t, active.ID, items[0].SourceID)
	assert.Equal(t, domain.KindHabit, items[0].Kind)
}

func TestMissingHabitItems_PositionedAfterGoals(t *testing.T) {
	goalItem := testutil.NewTestItem("2025-06-10", "Write report", domain.KindGoal)
	goalItem.Position = 3
	plan := &domain.DailyPlan{Date: "2025-06-10", Items: []*domain.Item{goalItem}}

	items := MissingHabitItems(plan, []*domain.Habit{testutil.NewTestHabit("Hydrate")}, time.Now().UTC())
	require.Len(t, items, 1)
	assert.Greater(t, items[0].Position, goalItem.Position)
}
