package schedule

import "strings"

// durationRule maps a category of keywords to a ranked set of plausible
// durations in minutes. Table order matters: the first matching rule wins.
type durationRule struct {
	keywords []string
	minutes  []int
}

var durationRules = []durationRule{
	{keywords: []string{"workout", "exercise", "gym", "run", "training"}, minutes: []int{30, 45, 60, 90}},
	{keywords: []string{"meeting", "call", "standup", "sync"}, minutes: []int{15, 30, 60}},
	{keywords: []string{"meditation", "meditate", "mindfulness", "breathing"}, minutes: []int{10, 15, 20, 30}},
	{keywords: []string{"read", "reading", "book", "study", "learn"}, minutes: []int{30, 45, 60, 120}},
	{keywords: []string{"write", "writing", "journal", "essay", "report"}, minutes: []int{30, 60, 90, 120}},
	{keywords: []string{"clean", "cleaning", "chores", "laundry", "tidy"}, minutes: []int{15, 30, 45, 60}},
	{keywords: []string{"cook", "cooking", "meal", "dinner", "lunch"}, minutes: []int{30, 45, 60}},
	{keywords: []string{"walk", "stretch", "break"}, minutes: []int{10, 15, 20, 30}},
}

// genericLadder is the fallback suggestion set when no keyword matches.
// Every item gets at least these, so suggestions are never empty.
var genericLadder = []int{15, 30, 45, 60, 90, 120, 180, 240, 300}

// SuggestDurations proposes a ranked list of durations (minutes) for an
// item based on its title and description. Purely a convenience heuristic;
// nothing downstream depends on the choice being right.
func SuggestDurations(title, description string) []int {
	text := strings.ToLower(title + " " + description)

	for _, rule := range durationRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				out := make([]int, len(rule.minutes))
				copy(out, rule.minutes)
				return out
			}
		}
	}

	out := make([]int, len(genericLadder))
	copy(out, genericLadder)
	return out
}
