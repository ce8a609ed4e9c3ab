package event

import (
	"context"
	"time"
)

type stubEventRepository struct {
	events    []Event
	selection Selection
}

func newStubEventRepository() *stubEventRepository {
	return &stubEventRepository{events: []Event{}}
}

func (s *stubEventRepository) LoadAll(ctx context.Context) ([]Event, error) {
	return append([]Event{}, s.events...), nil
}

func (s *stubEventRepository) SaveAll(ctx context.Context, events []Event) error {
	s.events = append([]Event{}, events...)
	return nil
}

func (s *stubEventRepository) Add(ctx context.Context, event Event) error {
	s.events = append(s.events, event)
	return nil
}

func (s *stubEventRepository) Update(ctx context.Context, id string, newName string, newDate time.Time) error {
	for i := range s.events {
		if s.events[i].ID == id {
			s.events[i].Name = newName
			s.events[i].Date = newDate
			return nil
		}
	}
	return nil
}

func (s *stubEventRepository) Delete(ctx context.Context, id string) error {
	remaining := make([]Event, 0, len(s.events))
	for _, e := range s.events {
		if e.ID != id {
			remaining = append(remaining, e)
		}
	}
	s.events = remaining
	return nil
}

func (s *stubEventRepository) SetSelected(ctx context.Context, id string) error {
	s.selection = Selection{ID: id, Valid: true}
	return nil
}

func (s *stubEventRepository) Selected(ctx context.Context) (Selection, error) {
	return s.selection, nil
}

func (s *stubEventRepository) ClearSelected(ctx context.Context) error {
	s.selection = Selection{}
	return nil
}

func (s *stubEventRepository) reset() {
	s.events = []Event{}
	s.selection = Selection{}
}
