package widget

import (
	"context"
	"time"

	"github.com/koffeecuptales/timeleft/pkg/event"
	"github.com/samber/lo"
)

// stubEventService is a minimal in-memory event.EventService for widget
// tests. Mutations beyond what the widget exercises are not implemented.
type stubEventService struct {
	events   []event.Event
	selected string
	now      time.Time
}

func (s *stubEventService) List(ctx context.Context) ([]event.Event, error) {
	return s.events, nil
}

func (s *stubEventService) Create(ctx context.Context, name string, date time.Time) (event.Event, error) {
	panic("not used by widget tests")
}

func (s *stubEventService) Update(ctx context.Context, id string, name string, date time.Time) (event.Event, error) {
	panic("not used by widget tests")
}

func (s *stubEventService) Delete(ctx context.Context, id string) (bool, error) {
	panic("not used by widget tests")
}

func (s *stubEventService) NextUpcoming(ctx context.Context) (event.Event, bool, error) {
	upcoming := lo.Filter(s.events, func(e event.Event, _ int) bool {
		return !e.Date.Before(s.now)
	})
	if len(upcoming) == 0 {
		return event.Event{}, false, nil
	}
	return lo.MinBy(upcoming, func(a, b event.Event) bool {
		return a.Date.Before(b.Date)
	}), true, nil
}

func (s *stubEventService) Select(ctx context.Context, id string) error {
	s.selected = id
	return nil
}

func (s *stubEventService) ClearSelection(ctx context.Context) error {
	s.selected = ""
	return nil
}

func (s *stubEventService) SelectedEvent(ctx context.Context) (event.Event, bool, error) {
	if s.selected == "" {
		return event.Event{}, false, nil
	}
	found, ok := lo.Find(s.events, func(e event.Event) bool { return e.ID == s.selected })
	return found, ok, nil
}
