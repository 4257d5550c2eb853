package schedule

import "errors"

// Scheduling errors.
var (
	// ErrInvalidInterval rejects durations <= 0 or spans with end <= start
	// before any mutation happens.
	ErrInvalidInterval = errors.New("invalid interval: end must be after start")
	// ErrItemNotFound reports a placement against an item absent from the
	// day's plan. Callers recover locally; nothing is mutated.
	ErrItemNotFound = errors.New("item not found in plan")
	// ErrItemNotScheduled reports a move of an item that has no current
	// schedule, so there is no duration to preserve.
	ErrItemNotScheduled = errors.New("item has no scheduled time")
	// ErrOutsideGrid reports a slot that is not a valid position on the grid.
	ErrOutsideGrid = errors.New("slot outside grid bounds")
)
