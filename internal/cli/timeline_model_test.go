package cli

import (
	"testing"
	"time"

	"github.com/jmikkola/dayplan/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timelineTestPlan() *domain.DailyPlan {
	nine := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	seven := time.Date(2025, 6, 10, 7, 0, 0, 0, time.UTC)
	return &domain.DailyPlan{
		Date: "2025-06-10",
		Items: []*domain.Item{
			{ID: "report", Title: "Write report", Kind: domain.KindGoal,
				Scheduled: &domain.TimeSpan{Start: nine, End: nine.Add(time.Hour)}},
			{ID: "water", Title: "Drink water", Kind: domain.KindAutomatic, Position: 1},
			{ID: "workout", Title: "Workout", Kind: domain.KindGoal,
				Scheduled: &domain.TimeSpan{Start: seven, End: seven.Add(45 * time.Minute)}},
		},
		GoalsTotal: 3,
	}
}

func loadedTimeline(t *testing.T) timelineModel {
	t.Helper()
	m := newTimelineModel(&App{}, "2025-06-10")
	updated, _ := m.Update(planLoadedMsg{plan: timelineTestPlan()})
	model, ok := updated.(timelineModel)
	require.True(t, ok)
	return model
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDisplayOrder_ScheduledFirstByStartTime(t *testing.T) {
	order := displayOrder(timelineTestPlan())
	require.Len(t, order, 3)
	assert.Equal(t, "workout", order[0].ID)
	assert.Equal(t, "report", order[1].ID)
	assert.Equal(t, "water", order[2].ID)
}

func TestTimelineNavigation(t *testing.T) {
	m := loadedTimeline(t)
	assert.Equal(t, "workout", m.selected().ID)

	updated, _ := m.Update(keyPress('j'))
	m = updated.(timelineModel)
	assert.Equal(t, "report", m.selected().ID)

	updated, _ = m.Update(keyPress('j'))
	m = updated.(timelineModel)
	updated, _ = m.Update(keyPress('j'))
	m = updated.(timelineModel)
	// Cursor clamps at the last item.
	assert.Equal(t, "water", m.selected().ID)

	updated, _ = m.Update(keyPress('k'))
	m = updated.(timelineModel)
	assert.Equal(t, "report", m.selected().ID)
}

func TestTimelineView(t *testing.T) {
	m := loadedTimeline(t)
	out := m.View()

	assert.Contains(t, out, "2025-06-10")
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "Workout")
	assert.Contains(t, out, "Drink water")
	assert.Contains(t, out, "Unscheduled")
	assert.Contains(t, out, "07:00")
	assert.Contains(t, out, "09:00")
	assert.Contains(t, out, "0/3 goals")
}

func TestTimelineQuit(t *testing.T) {
	m := loadedTimeline(t)
	_, cmd := m.Update(keyPress('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestTimelineErrorView(t *testing.T) {
	m := newTimelineModel(&App{}, "2025-06-10")
	updated, cmd := m.Update(planLoadedMsg{err: assert.AnError})
	require.NotNil(t, cmd)
	model := updated.(timelineModel)
	assert.Contains(t, model.View(), "Error")
}
