package event

import (
	"time"
)

// Event is a user-defined named target date tracked for countdown purposes.
type Event struct {
	// ID is assigned at creation and never changes or gets reused.
	ID   string
	Name string
	// Date is a calendar date; its time of day carries no meaning and all
	// comparisons operate on the local start-of-day value.
	Date time.Time
	// CreatedAt is set once at creation and never mutated.
	CreatedAt time.Time
}

// Selection is the featured-event side channel value: either a present
// event id or nothing. An explicit pair instead of a nullable string so
// "no selection" never needs a sentinel value.
type Selection struct {
	ID    string
	Valid bool
}
