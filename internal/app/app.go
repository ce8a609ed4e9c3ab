package app

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/koffeecuptales/timeleft/internal/config"
	"github.com/koffeecuptales/timeleft/internal/rest"
	"github.com/koffeecuptales/timeleft/internal/storage"
	log "github.com/sirupsen/logrus"
)

// Application wires configuration, storage, router, and server lifecycle.
type Application struct {
	cfg    config.Application
	store  *storage.BadgerStore
	deps   *Dependencies
	router *mux.Router
	srv    *http.Server
}

// NewApplication constructs the full HTTP application, ready to Run().
func NewApplication() (*Application, error) {
	cfg, err := config.Load("./config/application.yaml")
	if err != nil {
		return nil, err
	}

	// Shared key-value storage, read by both the app and widget surfaces.
	store, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Build dependencies (services, handlers...)
	deps := BuildDependencies(store)

	// Middleware chain
	SetupMiddleware(r, deps)

	// Routes
	RegisterRoutes(r, deps, cfg)

	// Frontend
	if cfg.Frontend.Enabled {
		frontend := rest.NewFrontendHandler("frontend", "index.html")
		r.PathPrefix("/").Handler(frontend)
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.Listen,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Application{cfg: cfg, store: store, deps: deps, router: r, srv: srv}, nil
}

// Run starts the widget refresh schedule and the HTTP server, blocking
// until the server stops.
func (a *Application) Run() error {
	if err := a.deps.WidgetRefresher.Start(a.cfg.Widget.Refresh); err != nil {
		return err
	}
	defer a.deps.WidgetRefresher.Stop()
	defer func() {
		if err := a.store.Close(); err != nil {
			log.Errorf("failed to close storage: %v", err)
		}
	}()

	log.Infof("Starting server on %s", a.srv.Addr)
	return a.srv.ListenAndServe()
}
