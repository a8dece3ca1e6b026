package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"adforge/internal/http/handlers"
	"adforge/internal/middleware"
)

// NewRouter wires the HTTP surface: public login and health, and the four
// generation endpoints behind the session check.
func NewRouter(app *handlers.App) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger),
		middleware.CORS(app.Config.AllowedOrigins),
	)

	r.Get("/", app.Health)
	r.Post("/login", app.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(app.Sessions))
		r.Post("/analyze-image", app.AnalyzeImage)
		r.Post("/generate-slogan", app.GenerateSlogan)
		r.Post("/generate-image", app.GenerateImage)
		r.Post("/generate-poster", app.GeneratePoster)
	})

	return r
}
