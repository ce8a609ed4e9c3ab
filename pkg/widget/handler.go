package widget

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/koffeecuptales/timeleft/pkg/event"
	log "github.com/sirupsen/logrus"
)

type EntryDTO struct {
	Date      time.Time     `json:"date"`
	Event     EntryEventDTO `json:"event"`
	HasEvents bool          `json:"hasEvents"`
	Breakdown BreakdownDTO  `json:"breakdown"`
	Short     RenderedDTO   `json:"short"`
	Long      RenderedDTO   `json:"long"`
	Class     string        `json:"classification"`
	Grid      GridDTO       `json:"grid"`
}

type EntryEventDTO struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Date string `json:"date"`
}

type BreakdownDTO struct {
	Months    int `json:"months"`
	Weeks     int `json:"weeks"`
	Days      int `json:"days"`
	TotalDays int `json:"totalDays"`
}

type RenderedDTO struct {
	Months string `json:"months,omitempty"`
	Weeks  string `json:"weeks,omitempty"`
	Days   string `json:"days,omitempty"`
}

type GridDTO struct {
	TotalDays     int `json:"totalDays"`
	DaysPassed    int `json:"daysPassed"`
	DaysRemaining int `json:"daysRemaining"`
	Columns       int `json:"columns"`
}

type Handler struct {
	provider     EntryProvider
	eventService event.EventService
}

func NewHandler(provider EntryProvider, eventService event.EventService) *Handler {
	return &Handler{provider: provider, eventService: eventService}
}

// GetEntry serves the current widget snapshot.
func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	entry, err := h.provider.CurrentEntry(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(entryToDTO(entry)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// SetSelection features one event on the widget.
func (h *Handler) SetSelection(w http.ResponseWriter, r *http.Request) {
	log.Debug("Setting widget selection")
	w.Header().Set("Content-Type", "application/json")

	var request struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if request.ID == "" {
		http.Error(w, "Missing event id", http.StatusBadRequest)
		return
	}

	if err := h.eventService.Select(r.Context(), request.ID); err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// ClearSelection returns the widget to its soonest-upcoming default.
func (h *Handler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	if err := h.eventService.ClearSelection(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func entryToDTO(entry Entry) EntryDTO {
	return EntryDTO{
		Date: entry.Date,
		Event: EntryEventDTO{
			ID:   entry.Event.ID,
			Name: entry.Event.Name,
			Date: entry.Event.Date.Format("2006-01-02"),
		},
		HasEvents: entry.HasEvents,
		Breakdown: BreakdownDTO{
			Months:    entry.Breakdown.Months,
			Weeks:     entry.Breakdown.Weeks,
			Days:      entry.Breakdown.Days,
			TotalDays: entry.Breakdown.TotalDays,
		},
		Short: RenderedDTO{
			Months: entry.Short.Months,
			Weeks:  entry.Short.Weeks,
			Days:   entry.Short.Days,
		},
		Long: RenderedDTO{
			Months: entry.Long.Months,
			Weeks:  entry.Long.Weeks,
			Days:   entry.Long.Days,
		},
		Class: string(entry.Classification),
		Grid: GridDTO{
			TotalDays:     entry.Grid.TotalDays,
			DaysPassed:    entry.Grid.DaysPassed,
			DaysRemaining: entry.Grid.DaysRemaining,
			Columns:       entry.Grid.Columns,
		},
	}
}
