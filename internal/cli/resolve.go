package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmikkola/dayplan/internal/domain"
)

// resolveItemID matches an item in the given plan by ID or unique ID prefix.
func resolveItemID(plan *domain.DailyPlan, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("item ID is required")
	}

	for _, it := range plan.Items {
		if it.ID == input {
			return it.ID, nil
		}
	}

	var matches []string
	for _, it := range plan.Items {
		if strings.HasPrefix(it.ID, input) {
			matches = append(matches, it.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("item not found on %s: %q", plan.Date, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("item ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveGoalID matches a library goal by ID, unique ID prefix, or exact
// title (case-insensitive).
func resolveGoalID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("goal ID is required")
	}

	goals, err := app.Goals.List(ctx)
	if err != nil {
		return "", err
	}

	for _, g := range goals {
		if g.ID == input || strings.EqualFold(g.Title, input) {
			return g.ID, nil
		}
	}

	var matches []string
	for _, g := range goals {
		if strings.HasPrefix(g.ID, input) {
			matches = append(matches, g.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("goal not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("goal ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveHabitID matches a habit by ID, unique ID prefix, or exact title.
func resolveHabitID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("habit ID is required")
	}

	habits, err := app.Habits.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, h := range habits {
		if h.ID == input || strings.EqualFold(h.Title, input) {
			return h.ID, nil
		}
	}

	var matches []string
	for _, h := range habits {
		if strings.HasPrefix(h.ID, input) {
			matches = append(matches, h.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("habit not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("habit ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveActivityID matches an activity by ID, unique ID prefix, or exact
// name.
func resolveActivityID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("activity ID is required")
	}

	activities, err := app.Activities.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, a := range activities {
		if a.ID == input || strings.EqualFold(a.Name, input) {
			return a.ID, nil
		}
	}

	var matches []string
	for _, a := range activities {
		if strings.HasPrefix(a.ID, input) {
			matches = append(matches, a.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("activity not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("activity ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
