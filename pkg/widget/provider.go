package widget

import (
	"context"
	"fmt"
	"sync"

	"github.com/koffeecuptales/timeleft/internal/event_bus"
	"github.com/koffeecuptales/timeleft/internal/utils"
	"github.com/koffeecuptales/timeleft/pkg/event"
	log "github.com/sirupsen/logrus"
)

// EntryProvider serves the widget's current entry. Entries are cached
// between refreshes; the cache is dropped whenever the event collection
// or the selection changes, and rebuilt on schedule by the Refresher so
// day boundaries are picked up without a mutation.
type EntryProvider interface {
	CurrentEntry(ctx context.Context) (Entry, error)
}

type EntryProviderImpl struct {
	events event.EventService
	clock  utils.Clock

	mu     sync.Mutex
	cached *Entry
}

func NewEntryProvider(events event.EventService, bus *event_bus.EventBus) *EntryProviderImpl {
	p := &EntryProviderImpl{events: events, clock: utils.SystemClock{}}
	if bus != nil {
		event_bus.SubscribeTyped[event_bus.EventsChanged](bus, event_bus.EventsChangedType,
			func(e event_bus.EventT[event_bus.EventsChanged]) error {
				p.Invalidate()
				return nil
			})
		event_bus.SubscribeTyped[event_bus.SelectionChanged](bus, event_bus.SelectionChangedType,
			func(e event_bus.EventT[event_bus.SelectionChanged]) error {
				p.Invalidate()
				return nil
			})
	}
	return p
}

func (p *EntryProviderImpl) CurrentEntry(ctx context.Context) (Entry, error) {
	p.mu.Lock()
	if p.cached != nil {
		entry := *p.cached
		p.mu.Unlock()
		return entry, nil
	}
	p.mu.Unlock()

	return p.Refresh(ctx)
}

// Refresh rebuilds the entry from storage and replaces the cache.
func (p *EntryProviderImpl) Refresh(ctx context.Context) (Entry, error) {
	entry, err := p.buildEntry(ctx)
	if err != nil {
		return Entry{}, err
	}

	p.mu.Lock()
	p.cached = &entry
	p.mu.Unlock()
	return entry, nil
}

// Invalidate drops the cached entry so the next read rebuilds it.
func (p *EntryProviderImpl) Invalidate() {
	p.mu.Lock()
	p.cached = nil
	p.mu.Unlock()
	log.Debug("widget entry cache invalidated")
}

// buildEntry features the explicitly selected event when one is set,
// otherwise the next upcoming one, otherwise a placeholder.
func (p *EntryProviderImpl) buildEntry(ctx context.Context) (Entry, error) {
	now := p.clock.Now()

	selected, found, err := p.events.SelectedEvent(ctx)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to resolve selected event: %w", err)
	}
	if found {
		return newEntry(now, selected, true), nil
	}

	next, found, err := p.events.NextUpcoming(ctx)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to find next upcoming event: %w", err)
	}
	if found {
		return newEntry(now, next, true), nil
	}

	return placeholderEntry(now), nil
}
