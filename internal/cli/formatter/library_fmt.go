package formatter

import (
	"fmt"
	"strings"

	"github.com/jmikkola/dayplan/internal/domain"
	"github.com/jmikkola/dayplan/internal/schedule"
)

// FormatGoalList renders the goal library.
func FormatGoalList(goals []*domain.LibraryGoal) string {
	var b strings.Builder
	b.WriteString(Header("Goal Library"))
	b.WriteString("\n\n")
	for _, g := range goals {
		marker := " "
		if g.IsAutomatic {
			marker = StyleBlue.Render("↻")
		}
		line := fmt.Sprintf("  %s %s %s", marker, StyleFg.Render(g.Title), TruncID(g.ID))
		if g.HasTimer {
			line += " " + Dim("⏱")
		}
		if g.Description != "" {
			line += "\n      " + Dim(g.Description)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(Dim("↻ propagates to every day automatically"))
	return b.String()
}

// FormatHabitList renders the habit registry.
func FormatHabitList(habits []*domain.Habit) string {
	var b strings.Builder
	b.WriteString(Header("Habits"))
	b.WriteString("\n\n")
	for _, h := range habits {
		state := StyleGreen.Render("● active")
		if !h.IsActive {
			state = StyleDim.Render("○ paused")
		}
		line := fmt.Sprintf("  %s %s %s %s", StylePurple.Render("◆"), StyleFg.Render(h.Title), state, TruncID(h.ID))
		if h.TargetCount != nil {
			line += "  " + Dim(fmt.Sprintf("%d %s/day", *h.TargetCount, h.Unit))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatActivityList renders the productive-activity templates.
func FormatActivityList(activities []*domain.ProductiveActivity) string {
	var b strings.Builder
	b.WriteString(Header("Activities"))
	b.WriteString("\n\n")
	for _, a := range activities {
		line := fmt.Sprintf("  %s %s %s", StyleYellow.Render("▸"), StyleFg.Render(a.Name), TruncID(a.ID))
		if a.EstimatedMin != nil {
			line += "  " + Dim("~"+FormatMinutes(*a.EstimatedMin))
		}
		if !a.IsActive {
			line += "  " + StyleDim.Render("(retired)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatFreeSlots renders candidate start times for a duration.
func FormatFreeSlots(slots []schedule.Slot, durationMin int) string {
	if len(slots) == 0 {
		return Dim("No free slot fits " + FormatMinutes(durationMin) + ".")
	}
	parts := make([]string, len(slots))
	for i, s := range slots {
		parts[i] = StyleGreen.Render(fmt.Sprintf("%02d:%02d", s.Hour, s.Minute))
	}
	return fmt.Sprintf("Free for %s: %s", FormatMinutes(durationMin), strings.Join(parts, "  "))
}

// FormatDurations renders suggested durations for an item.
func FormatDurations(durations []int) string {
	parts := make([]string, len(durations))
	for i, d := range durations {
		parts[i] = FormatMinutes(d)
	}
	return "Suggested: " + StyleFg.Render(strings.Join(parts, ", "))
}
