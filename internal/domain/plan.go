package domain

import "time"

// DateLayout is the canonical calendar-date key format for plans.
const DateLayout = "2006-01-02"

// DailyPlan is the composed, date-keyed collection of items for one day.
// Progress fields are derived; they are recomputed after every mutation and
// never mutated independently.
type DailyPlan struct {
	Date  string
	Items []*Item

	Progress       float64
	GoalsCompleted int
	GoalsTotal     int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemByID returns the item with the given id, or nil.
func (p *DailyPlan) ItemByID(id string) *Item {
	for _, it := range p.Items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// ScheduledItems returns the items that occupy a time slot, excluding the
// item with skipID (pass "" to exclude nothing).
func (p *DailyPlan) ScheduledItems(skipID string) []*Item {
	var out []*Item
	for _, it := range p.Items {
		if it.Scheduled == nil || it.ID == skipID {
			continue
		}
		out = append(out, it)
	}
	return out
}

// HasInstanceOf reports whether the plan already contains an instance of the
// given kind derived from sourceID.
func (p *DailyPlan) HasInstanceOf(kind ItemKind, sourceID string) bool {
	for _, it := range p.Items {
		if it.Kind == kind && it.SourceID == sourceID {
			return true
		}
	}
	return false
}

// ParseDate parses a plan date key.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// DateKey formats a timestamp as a plan date key.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}
