package domain

// ItemKind distinguishes the variants of a plan item. Habit and automatic
// instances are tagged here rather than encoded in the id, so callers can
// switch exhaustively instead of parsing strings.
type ItemKind string

const (
	// KindGoal is an ad-hoc goal added to a single day.
	KindGoal ItemKind = "goal"
	// KindAutomatic is an instance of a library goal flagged to recur daily.
	KindAutomatic ItemKind = "automatic"
	// KindHabit is a synthetic instance derived from an active habit.
	KindHabit ItemKind = "habit"
	// KindActivity is an instance of a productive-activity template.
	KindActivity ItemKind = "activity"
)

// ValidItemKinds is the canonical set of accepted item kind strings.
var ValidItemKinds = map[string]bool{
	"goal": true, "automatic": true, "habit": true, "activity": true,
}

// ProgressBand is a display label derived from a numeric progress ratio.
// Bands are monotonic: a higher ratio never maps to a worse band.
type ProgressBand string

const (
	BandLow  ProgressBand = "low"
	BandMid  ProgressBand = "mid"
	BandHigh ProgressBand = "high"
)
