package event

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/koffeecuptales/timeleft/internal/utils"
	"github.com/koffeecuptales/timeleft/pkg/countdown"
	log "github.com/sirupsen/logrus"
)

// dateFormat is the wire form of event target dates. Time of day is not
// meaningful, so the API never accepts or produces one.
const dateFormat = "2006-01-02"

type EventDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
	// Derived fields for the list view.
	DaysLeft       int    `json:"daysLeft"`
	Classification string `json:"classification"`
}

type EventRequestDTO struct {
	Name string `json:"name" validate:"required"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type EventHandler struct {
	eventService EventService
	clock        utils.Clock
	validate     *validator.Validate
}

func NewEventHandler(eventService EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		clock:        utils.SystemClock{},
		validate:     validator.New(),
	}
}

func (handler *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new countdown event")
	w.Header().Set("Content-Type", "application/json")

	request, ok := handler.decodeRequest(w, r)
	if !ok {
		return
	}
	date, _ := time.ParseInLocation(dateFormat, request.Date, time.Local)

	created, err := handler.eventService.Create(r.Context(), request.Name, date)
	if err != nil {
		if errors.Is(err, ErrEmptyName) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(handler.toDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *EventHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	events, err := handler.eventService.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, handler.toDTO(e))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	request, ok := handler.decodeRequest(w, r)
	if !ok {
		return
	}
	date, _ := time.ParseInLocation(dateFormat, request.Date, time.Local)

	updated, err := handler.eventService.Update(r.Context(), id, request.Name, date)
	if err != nil {
		if errors.Is(err, ErrEmptyName) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(handler.toDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	ok, err := handler.eventService.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *EventHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (EventRequestDTO, bool) {
	var request EventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return EventRequestDTO{}, false
	}
	if err := handler.validate.Struct(request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return EventRequestDTO{}, false
	}
	return request, true
}

func (handler *EventHandler) toDTO(e Event) EventDTO {
	now := handler.clock.Now()
	return EventDTO{
		ID:             e.ID,
		Name:           e.Name,
		Date:           e.Date.Format(dateFormat),
		CreatedAt:      e.CreatedAt,
		DaysLeft:       countdown.DaysUntil(now, e.Date),
		Classification: string(countdown.Classify(now, e.Date)),
	}
}
