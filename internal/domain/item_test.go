package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(startHour, startMin, endHour, endMin int) TimeSpan {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	return TimeSpan{
		Start: day.Add(time.Duration(startHour)*time.Hour + time.Duration(startMin)*time.Minute),
		End:   day.Add(time.Duration(endHour)*time.Hour + time.Duration(endMin)*time.Minute),
	}
}

func TestTimeSpanOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeSpan
		want bool
	}{
		{"partial overlap", ts(9, 0, 10, 0), ts(9, 30, 10, 30), true},
		{"containment", ts(9, 0, 12, 0), ts(10, 0, 11, 0), true},
		{"identical", ts(9, 0, 10, 0), ts(9, 0, 10, 0), true},
		{"adjacent", ts(9, 0, 10, 0), ts(10, 0, 11, 0), false},
		{"disjoint", ts(9, 0, 10, 0), ts(14, 0, 15, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Overlap is symmetric.
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeSpanValid(t *testing.T) {
	assert.True(t, ts(9, 0, 10, 0).Valid())
	assert.False(t, ts(10, 0, 10, 0).Valid())
	assert.False(t, ts(10, 0, 9, 0).Valid())
}

func TestTimeSpanMinutes(t *testing.T) {
	assert.Equal(t, 90, ts(9, 0, 10, 30).Minutes())
}

func TestIsRealGoal(t *testing.T) {
	assert.True(t, (&Item{Kind: KindGoal}).IsRealGoal())
	assert.True(t, (&Item{Kind: KindAutomatic}).IsRealGoal())
	assert.True(t, (&Item{Kind: KindActivity}).IsRealGoal())
	assert.False(t, (&Item{Kind: KindHabit}).IsRealGoal())
}

func TestParseDate(t *testing.T) {
	day, err := ParseDate("2025-06-10")
	assert.NoError(t, err)
	assert.Equal(t, "2025-06-10", DateKey(day))

	_, err = ParseDate("06/10/2025")
	assert.Error(t, err)
}

func TestPlanHasInstanceOf(t *testing.T) {
	plan := &DailyPlan{
		Date: "2025-06-10",
		Items: []*Item{
			{ID: "a", Kind: KindAutomatic, SourceID: "goal-1"},
			{ID: "b", Kind: KindHabit, SourceID: "habit-1"},
		},
	}
	assert.True(t, plan.HasInstanceOf(KindAutomatic, "goal-1"))
	assert.False(t, plan.HasInstanceOf(KindGoal, "goal-1"))
	assert.False(t, plan.HasInstanceOf(KindAutomatic, "goal-2"))
}
