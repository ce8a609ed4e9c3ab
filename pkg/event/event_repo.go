package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/koffeecuptales/timeleft/internal/storage"
	log "github.com/sirupsen/logrus"
)

// Storage keys shared with every surface reading the same namespace. The
// names are part of the on-disk contract and must not change.
const (
	eventsKey        = "shared_events"
	selectedEventKey = "selected_widget_event"
)

// EventRepository is the durable event collection shared by the app and
// widget surfaces. Iteration order of the collection is insertion order;
// callers needing chronological order sort by date themselves.
type EventRepository interface {
	// LoadAll returns the stored collection. Missing or unparsable stored
	// bytes degrade to an empty collection, never an error.
	LoadAll(ctx context.Context) ([]Event, error)
	// SaveAll replaces the whole stored collection. On failure the
	// previously stored state remains authoritative.
	SaveAll(ctx context.Context, events []Event) error
	Add(ctx context.Context, event Event) error
	// Update overwrites name and date of the event with the given id,
	// preserving ID and CreatedAt. Unknown id is a no-op, not an error.
	Update(ctx context.Context, id string, newName string, newDate time.Time) error
	// Delete removes the event with the given id; no-op if absent.
	Delete(ctx context.Context, id string) error

	SetSelected(ctx context.Context, id string) error
	// Selected returns the featured-event side channel value. An absent or
	// unparsable stored id reads as no selection.
	Selected(ctx context.Context) (Selection, error)
	ClearSelected(ctx context.Context) error
}

type EventRepositoryImpl struct {
	// mu serializes read-modify-write cycles within this process. Across
	// processes the store is last-writer-wins.
	mu    sync.Mutex
	store storage.Store
	codec Codec
}

func NewEventRepo(store storage.Store, codec Codec) *EventRepositoryImpl {
	return &EventRepositoryImpl{store: store, codec: codec}
}

func (r *EventRepositoryImpl) LoadAll(ctx context.Context) ([]Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadAll()
}

func (r *EventRepositoryImpl) loadAll() ([]Event, error) {
	data, found, err := r.store.Get(eventsKey)
	if err != nil {
		err := fmt.Errorf("could not read event collection: %w", err)
		log.Error(err)
		return nil, err
	}
	if !found {
		return []Event{}, nil
	}
	events, err := r.codec.Decode(data)
	if err != nil {
		// Corrupt data degrades to an empty collection rather than
		// blocking the whole app on a local parse failure.
		log.Warnf("stored event collection is unreadable, treating as empty: %v", err)
		return []Event{}, nil
	}
	return events, nil
}

func (r *EventRepositoryImpl) SaveAll(ctx context.Context, events []Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saveAll(events)
}

func (r *EventRepositoryImpl) saveAll(events []Event) error {
	data, err := r.codec.Encode(events)
	if err != nil {
		err := fmt.Errorf("could not encode event collection: %w", err)
		log.Error(err)
		return err
	}
	if err := r.store.Set(eventsKey, data); err != nil {
		err := fmt.Errorf("could not store event collection: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *EventRepositoryImpl) Add(ctx context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := r.loadAll()
	if err != nil {
		return err
	}
	return r.saveAll(append(events, event))
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id string, newName string, newDate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := r.loadAll()
	if err != nil {
		return err
	}
	for i := range events {
		if events[i].ID == id {
			events[i].Name = newName
			events[i].Date = newDate
			return r.saveAll(events)
		}
	}
	log.Debugf("event not updated, id %s is not in the collection", id)
	return nil
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	events, err := r.loadAll()
	if err != nil {
		return err
	}
	remaining := make([]Event, 0, len(events))
	for _, e := range events {
		if e.ID != id {
			remaining = append(remaining, e)
		}
	}
	if len(remaining) == len(events) {
		log.Debugf("event not deleted, id %s is not in the collection", id)
		return nil
	}
	return r.saveAll(remaining)
}

func (r *EventRepositoryImpl) SetSelected(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Set(selectedEventKey, []byte(id)); err != nil {
		err := fmt.Errorf("could not store selected event id: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *EventRepositoryImpl) Selected(ctx context.Context) (Selection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, found, err := r.store.Get(selectedEventKey)
	if err != nil {
		err := fmt.Errorf("could not read selected event id: %w", err)
		log.Error(err)
		return Selection{}, err
	}
	if !found {
		return Selection{}, nil
	}
	id := string(data)
	if _, err := uuid.Parse(id); err != nil {
		log.Warnf("stored selected event id %q is not a valid id, treating as no selection", id)
		return Selection{}, nil
	}
	return Selection{ID: id, Valid: true}, nil
}

func (r *EventRepositoryImpl) ClearSelected(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Delete(selectedEventKey); err != nil {
		err := fmt.Errorf("could not clear selected event id: %w", err)
		log.Error(err)
		return err
	}
	return nil
}
