package schedule

import "github.com/jmikkola/dayplan/internal/domain"

// Conflicts returns the subset of items whose scheduled spans overlap the
// candidate span, excluding the item with excludeID. Items without a
// scheduled time are never compared. The overlap test is the standard
// half-open interval check, so touching intervals (a.end == b.start) do not
// conflict and the relation is symmetric.
//
// Reporting is all this does: whether a conflicting placement is blocked or
// committed anyway is the caller's decision.
func Conflicts(candidate domain.TimeSpan, items []*domain.Item, excludeID string) []*domain.Item {
	if !candidate.Valid() {
		return nil
	}

	var out []*domain.Item
	for _, it := range items {
		if it.ID == excludeID || it.Scheduled == nil {
			continue
		}
		if candidate.Overlaps(*it.Scheduled) {
			out = append(out, it)
		}
	}
	return out
}
