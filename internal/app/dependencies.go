package app

import (
	"github.com/koffeecuptales/timeleft/internal/event_bus"
	"github.com/koffeecuptales/timeleft/internal/storage"
	"github.com/koffeecuptales/timeleft/internal/utils"
	"github.com/koffeecuptales/timeleft/pkg/event"
	"github.com/koffeecuptales/timeleft/pkg/widget"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus *event_bus.EventBus

	EventRepo    event.EventRepository
	EventService event.EventService
	EventHandler *event.EventHandler

	WidgetProvider  *widget.EntryProviderImpl
	WidgetRefresher *widget.Refresher
	WidgetHandler   *widget.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(store storage.Store) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.EventRepo = event.NewEventRepo(store, event.NewJSONCodec())
	eventService := event.NewEventService(deps.EventRepo, deps.Bus)
	deps.EventService = eventService
	deps.EventHandler = event.NewEventHandler(eventService)

	deps.WidgetProvider = widget.NewEntryProvider(deps.EventService, deps.Bus)
	deps.WidgetRefresher = widget.NewRefresher(deps.WidgetProvider)
	deps.WidgetHandler = widget.NewHandler(deps.WidgetProvider, deps.EventService)

	return deps
}
