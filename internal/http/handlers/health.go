package handlers

import "net/http"

// Health is the liveness probe.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	a.json(w, http.StatusOK, map[string]string{
		"status":  "active",
		"message": "creative generation service is running",
	})
}
