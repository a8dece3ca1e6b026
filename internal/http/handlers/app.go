package handlers

import (
	"encoding/json"
	"net/http"

	"adforge/internal/creative"
	"adforge/internal/infra"
	"adforge/internal/session"
)

// App aggregates the dependencies shared by all route handlers.
type App struct {
	Config   *infra.Config
	Logger   infra.Logger
	Sessions *session.Store
	Creative *creative.Service
}

// NewApp builds the handler container.
func NewApp(cfg *infra.Config, logger infra.Logger, sessions *session.Store, svc *creative.Service) *App {
	return &App{Config: cfg, Logger: logger, Sessions: sessions, Creative: svc}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// fail writes the uniform error envelope used by every endpoint.
func (a *App) fail(w http.ResponseWriter, code int, msg string) {
	a.json(w, code, map[string]string{"status": "error", "error": msg})
}
