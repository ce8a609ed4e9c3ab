package event

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/koffeecuptales/timeleft/internal/event_bus"
	"github.com/koffeecuptales/timeleft/internal/utils"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

var (
	ErrEmptyName     = fmt.Errorf("event name is empty")
	ErrEventNotFound = fmt.Errorf("event not found")
)

type EventService interface {
	// List returns all events in insertion order.
	List(ctx context.Context) ([]Event, error)
	Create(ctx context.Context, name string, date time.Time) (Event, error)
	Update(ctx context.Context, id string, name string, date time.Time) (Event, error)
	Delete(ctx context.Context, id string) (bool, error)

	// NextUpcoming returns the event closest in the future (today counts),
	// falling back to the most recently passed event when everything is
	// already over. The second result is false when there are no events.
	NextUpcoming(ctx context.Context) (Event, bool, error)

	// Select marks one event as featured for the widget surface.
	Select(ctx context.Context, id string) error
	ClearSelection(ctx context.Context) error
	// SelectedEvent resolves the selection against the collection; a
	// selection pointing at a deleted event reads as no selection.
	SelectedEvent(ctx context.Context) (Event, bool, error)
}

type EventServiceImpl struct {
	repo  EventRepository
	clock utils.Clock
	bus   *event_bus.EventBus
}

func NewEventService(repo EventRepository, bus *event_bus.EventBus) *EventServiceImpl {
	return &EventServiceImpl{repo: repo, clock: utils.SystemClock{}, bus: bus}
}

func (s *EventServiceImpl) List(ctx context.Context) ([]Event, error) {
	return s.repo.LoadAll(ctx)
}

func (s *EventServiceImpl) Create(ctx context.Context, name string, date time.Time) (Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Event{}, ErrEmptyName
	}

	newEvent := Event{
		ID:        uuid.NewString(),
		Name:      name,
		Date:      date,
		CreatedAt: s.clock.Now(),
	}
	if err := s.repo.Add(ctx, newEvent); err != nil {
		return Event{}, fmt.Errorf("failed to store new event: %w", err)
	}
	s.publishEventsChanged(ctx, newEvent)
	return newEvent, nil
}

func (s *EventServiceImpl) Update(ctx context.Context, id string, name string, date time.Time) (Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Event{}, ErrEmptyName
	}

	existing, found, err := s.findByID(ctx, id)
	if err != nil {
		return Event{}, err
	}
	if !found {
		return Event{}, ErrEventNotFound
	}

	if err := s.repo.Update(ctx, id, name, date); err != nil {
		return Event{}, fmt.Errorf("failed to update event %s: %w", id, err)
	}
	updated := Event{ID: existing.ID, Name: name, Date: date, CreatedAt: existing.CreatedAt}
	s.publishEventsChanged(ctx, updated)
	return updated, nil
}

func (s *EventServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	existing, found, err := s.findByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !found {
		log.Debugf("event not deleted, probably because it does not exist (%s)", id)
		return false, nil
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return false, fmt.Errorf("failed to delete event %s: %w", id, err)
	}
	s.publishEventsChanged(ctx, existing)
	return true, nil
}

func (s *EventServiceImpl) NextUpcoming(ctx context.Context) (Event, bool, error) {
	events, err := s.repo.LoadAll(ctx)
	if err != nil {
		return Event{}, false, err
	}
	if len(events) == 0 {
		return Event{}, false, nil
	}

	today := utils.StartOfDay(s.clock.Now())
	upcoming := lo.Filter(events, func(e Event, _ int) bool {
		return !utils.StartOfDay(e.Date).Before(today)
	})
	if len(upcoming) > 0 {
		return lo.MinBy(upcoming, func(a, b Event) bool {
			return a.Date.Before(b.Date)
		}), true, nil
	}

	// Everything has passed; feature the most recent one rather than nothing.
	return lo.MaxBy(events, func(a, b Event) bool {
		return a.Date.After(b.Date)
	}), true, nil
}

func (s *EventServiceImpl) Select(ctx context.Context, id string) error {
	_, found, err := s.findByID(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrEventNotFound
	}
	if err := s.repo.SetSelected(ctx, id); err != nil {
		return fmt.Errorf("failed to store selection: %w", err)
	}
	s.publishSelectionChanged(ctx, id)
	return nil
}

func (s *EventServiceImpl) ClearSelection(ctx context.Context) error {
	if err := s.repo.ClearSelected(ctx); err != nil {
		return fmt.Errorf("failed to clear selection: %w", err)
	}
	s.publishSelectionChanged(ctx, "")
	return nil
}

func (s *EventServiceImpl) SelectedEvent(ctx context.Context) (Event, bool, error) {
	selection, err := s.repo.Selected(ctx)
	if err != nil {
		return Event{}, false, err
	}
	if !selection.Valid {
		return Event{}, false, nil
	}
	selected, found, err := s.findByID(ctx, selection.ID)
	if err != nil {
		return Event{}, false, err
	}
	if !found {
		log.Debugf("selection points at missing event %s, treating as no selection", selection.ID)
		return Event{}, false, nil
	}
	return selected, true, nil
}

func (s *EventServiceImpl) findByID(ctx context.Context, id string) (Event, bool, error) {
	events, err := s.repo.LoadAll(ctx)
	if err != nil {
		return Event{}, false, err
	}
	found, ok := lo.Find(events, func(e Event) bool { return e.ID == id })
	return found, ok, nil
}

func (s *EventServiceImpl) publishEventsChanged(ctx context.Context, e Event) {
	if s.bus == nil {
		return
	}
	err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.EventsChangedType, event_bus.EventsChanged{
		EventID: e.ID,
		Name:    e.Name,
		Date:    e.Date,
	}))
	if err != nil {
		log.Warnf("failed to publish events changed notification: %v", err)
	}
}

func (s *EventServiceImpl) publishSelectionChanged(ctx context.Context, id string) {
	if s.bus == nil {
		return
	}
	err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.SelectionChangedType, event_bus.SelectionChanged{
		EventID: id,
	}))
	if err != nil {
		log.Warnf("failed to publish selection changed notification: %v", err)
	}
}
