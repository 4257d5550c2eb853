package cli

import (
	"testing"

	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveTestPlan() *domain.DailyPlan {
	return &domain.DailyPlan{
		Date: "2025-06-10",
		Items: []*domain.Item{
			{ID: "aaa11111-1111-1111-1111-111111111111", Title: "Write report"},
			{ID: "aab22222-2222-2222-2222-222222222222", Title: "Team call"},
			{ID: "bbb33333-3333-3333-3333-333333333333", Title: "Read"},
		},
	}
}

func TestResolveItemID_ExactMatch(t *testing.T) {
	plan := resolveTestPlan()
	id, err := resolveItemID(plan, "bbb33333-3333-3333-3333-333333333333")
	require.NoError(t, err)
	assert.Equal(t, plan.Items[2].ID, id)
}

func TestResolveItemID_UniquePrefix(t *testing.T) {
	plan := resolveTestPlan()
	id, err := resolveItemID(plan, "bbb")
	require.NoError(t, err)
	assert.Equal(t, plan.Items[2].ID, id)
}

func TestResolveItemID_AmbiguousPrefix(t *testing.T) {
	_, err := resolveItemID(resolveTestPlan(), "aa")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")
}

func TestResolveItemID_NotFound(t *testing.T) {
	_, err := resolveItemID(resolveTestPlan(), "zzz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResolveItemID_Empty(t *testing.T) {
	_, err := resolveItemID(resolveTestPlan(), "")
	assert.Error(t, err)
}
