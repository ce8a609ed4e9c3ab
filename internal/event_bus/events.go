package event_bus

import "time"

const (
	// EventsChangedType is published after any successful add, update, or
	// delete of a countdown event.
	EventsChangedType EventType = "events.changed"
	// SelectionChangedType is published after the featured-event selection
	// is set or cleared.
	SelectionChangedType EventType = "selection.changed"
)

// EventsChanged carries the countdown event that was mutated.
type EventsChanged struct {
	EventID string
	Name    string
	Date    time.Time
}

// SelectionChanged carries the new selection; EventID is empty when the
// selection was cleared.
type SelectionChanged struct {
	EventID string
}
