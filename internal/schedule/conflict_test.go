package schedule

import (
	"testing"
	"time"

	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func span(h1, m1, h2, m2 int) domain.TimeSpan {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	return domain.TimeSpan{
		Start: day.Add(time.Duration(h1)*time.Hour + time.Duration(m1)*time.Minute),
		End:   day.Add(time.Duration(h2)*time.Hour + time.Duration(m2)*time.Minute),
	}
}

func scheduledItem(id string, s domain.TimeSpan) *domain.Item {
	return &domain.Item{ID: id, Kind: domain.KindGoal, Title: id, Scheduled: &s}
}

func TestConflicts_OverlapDetected(t *testing.T) {
	// Day with "Write report" 09:00-10:00: a 09:30 candidate conflicts, a
	// 10:00 candidate does not.
	report := scheduledItem("report", span(9, 0, 10, 0))
	items := []*domain.Item{report}

	hits := Conflicts(span(9, 30, 10, 0), items, "call")
	require.Len(t, hits, 1)
	assert.Equal(t, "report", hits[0].ID)

	assert.Empty(t, Conflicts(span(10, 0, 10, 30), items, "call"), "touching intervals do not overlap")
}

func TestConflicts_ExcludesSelf(t *testing.T) {
	it := scheduledItem("a", span(9, 0, 10, 0))
	assert.Empty(t, Conflicts(span(9, 0, 10, 0), []*domain.Item{it}, "a"))
}

func TestConflicts_SkipsUnscheduledItems(t *testing.T) {
	items := []*domain.Item{
		{ID: "loose", Kind: domain.KindGoal, Title: "loose"},
		scheduledItem("b", span(14, 0, 15, 0)),
	}

	hits := Conflicts(span(8, 0, 18, 0), items, "")
	require.Len(t, hits, 1)
	assert.Equal(t, "b", hits[0].ID)
}

func TestConflicts_Symmetric(t *testing.T) {
	a := span(9, 0, 10, 30)
	b := span(10, 0, 11, 0)

	itemA := scheduledItem("a", a)
	itemB := scheduledItem("b", b)

	assert.NotEmpty(t, Conflicts(a, []*domain.Item{itemB}, ""))
	assert.NotEmpty(t, Conflicts(b, []*domain.Item{itemA}, ""))
}

func TestConflicts_ZeroLengthCandidate(t *testing.T) {
	items := []*domain.Item{scheduledItem("a", span(9, 0, 10, 0))}
	assert.Empty(t, Conflicts(span(9, 30, 9, 30), items, ""), "degenerate spans never conflict")
}

func TestConflicts_Containment(t *testing.T) {
	outer := scheduledItem("outer", span(9, 0, 12, 0))
	hits := Conflicts(span(10, 0, 10, 30), []*domain.Item{outer}, "")
	require.Len(t, hits, 1)
}
