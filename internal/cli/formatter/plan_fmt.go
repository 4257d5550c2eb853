package formatter

import (
	"fmt"
	"strings"

	"github.com/jmikkola/dayplan/internal/domain"
)

// FormatPlan renders a daily plan: goals first, then habits, each with its
// completion marker and scheduled window when present.
func FormatPlan(plan *domain.DailyPlan) string {
	var b strings.Builder

	day, err := domain.ParseDate(plan.Date)
	title := plan.Date
	if err == nil {
		title = fmt.Sprintf("%s (%s)", HumanDate(day), plan.Date)
	}
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	var goals, habits []*domain.Item
	for _, it := range plan.Items {
		if it.Kind == domain.KindHabit {
			habits = append(habits, it)
		} else {
			goals = append(goals, it)
		}
	}

	if len(goals) == 0 && len(habits) == 0 {
		b.WriteString(Dim("Nothing planned yet."))
		return b.String()
	}

	for _, it := range goals {
		b.WriteString(formatItemLine(it))
		b.WriteString("\n")
	}

	if len(habits) > 0 {
		if len(goals) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(StylePurple.Render("Habits"))
		b.WriteString("\n")
		for _, it := range habits {
			b.WriteString(formatItemLine(it))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(RenderProgress(plan.Progress, 20))
	b.WriteString(Dim(fmt.Sprintf("  %d/%d goals", plan.GoalsCompleted, plan.GoalsTotal)))
	return b.String()
}

func formatItemLine(it *domain.Item) string {
	check := StyleDim.Render("[ ]")
	title := StyleFg.Render(it.Title)
	if it.Completed {
		check = StyleGreen.Render("[✔]")
		title = StyleDim.Render(it.Title)
	}

	line := fmt.Sprintf("  %s %s %s %s", check, KindBadge(it.Kind), title, TruncID(it.ID))
	if it.Scheduled != nil {
		line += "  " + StyleBlue.Render(ClockRange(it.Scheduled.Start, it.Scheduled.End))
	}
	if it.HasTimer {
		line += " " + Dim("⏱")
	}
	return line
}

// FormatConflicts renders the overlap list shown before a schedule-anyway
// confirmation.
func FormatConflicts(conflicts []*domain.Item) string {
	var b strings.Builder
	b.WriteString(StyleYellow.Render("Conflicts with:"))
	b.WriteString("\n")
	for _, it := range conflicts {
		span := ""
		if it.Scheduled != nil {
			span = "  " + StyleBlue.Render(ClockRange(it.Scheduled.Start, it.Scheduled.End))
		}
		b.WriteString(fmt.Sprintf("  • %s%s\n", StyleFg.Render(it.Title), span))
	}
	return strings.TrimRight(b.String(), "\n")
}
