package domain

import "time"

// ProductiveActivity is a reusable template instantiated into a day's plan
// on demand. Unlike automatic goals it never recurs by itself.
type ProductiveActivity struct {
	ID       string
	Name     string
	Category string

	// EstimatedMin is a default duration hint in minutes; nil when unknown.
	EstimatedMin *int

	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
