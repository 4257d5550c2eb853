package formatter

import (
	"fmt"
	"strings"

	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/jmikkola/dayplan/internal/planner"
)

// FormatDayProgress renders a single day's completion summary.
func FormatDayProgress(p *planner.DayProgress) string {
	var b strings.Builder

	day, err := domain.ParseDate(p.Date)
	title := p.Date
	if err == nil {
		title = fmt.Sprintf("%s (%s)", HumanDate(day), p.Date)
	}
	b.WriteString(Header(title))
	b.WriteString("\n\n")

	if !p.HasPlan {
		b.WriteString(Dim("No plan for this day."))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("Goals   %s  %s\n",
		RenderProgress(p.Progress, 20),
		Dim(fmt.Sprintf("%d/%d", p.GoalsCompleted, p.GoalsTotal))))
	if p.HabitsTotal > 0 {
		b.WriteString(fmt.Sprintf("Habits  %s  %s\n",
			RenderProgress(p.HabitRatio, 20),
			Dim(fmt.Sprintf("%d/%d", p.HabitsCompleted, p.HabitsTotal))))
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatRangeProgress renders a date range as one bar per composed day plus
// the range average.
func FormatRangeProgress(p *planner.RangeProgress) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s → %s", p.From, p.To)))
	b.WriteString("\n\n")

	if len(p.Days) == 0 {
		b.WriteString(Dim("No plans in this range."))
		return b.String()
	}

	for _, d := range p.Days {
		b.WriteString(fmt.Sprintf("%s  %s  %s\n",
			d.Date,
			RenderProgress(d.Progress, 16),
			Dim(fmt.Sprintf("%d/%d", d.GoalsCompleted, d.GoalsTotal))))
	}
	b.WriteString("\n")
	b.WriteString(Bold("Average "))
	b.WriteString(RenderProgress(p.Average, 16))
	return b.String()
}
