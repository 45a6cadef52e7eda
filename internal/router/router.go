package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"klarhub-backend/internal/handlers"
	"klarhub-backend/internal/middleware"
)

// New wires the public API. limiter may be nil to disable rate limiting.
func New(
	discordHandler *handlers.DiscordHandler,
	chatHandler *handlers.ChatHandler,
	catalogHandler *handlers.CatalogHandler,
	limiter *middleware.RateLimiter,
	corsOrigin string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(corsOrigin))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		r.Get("/discord", discordHandler.Presence)
		r.Get("/catalog", catalogHandler.Get)

		// The handler answers non-POST methods itself with Allow: POST.
		r.HandleFunc("/gemini", chatHandler.Complete)
	})

	return r
}
