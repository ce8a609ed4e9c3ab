package app

import (
	"github.com/gorilla/mux"
	"github.com/koffeecuptales/timeleft/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Countdown events
	r.HandleFunc("/api/event", deps.EventHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/event", deps.EventHandler.Create).Methods("POST")
	r.HandleFunc("/api/event/{id}", deps.EventHandler.Update).Methods("PUT")
	r.HandleFunc("/api/event/{id}", deps.EventHandler.Delete).Methods("DELETE")

	// Widget surface
	r.HandleFunc("/api/widget", deps.WidgetHandler.GetEntry).Methods("GET")
	r.HandleFunc("/api/widget/selection", deps.WidgetHandler.SetSelection).Methods("PUT")
	r.HandleFunc("/api/widget/selection", deps.WidgetHandler.ClearSelection).Methods("DELETE")
}
