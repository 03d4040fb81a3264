package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/homeprohq/homepro-platform/internal/booking"
	"github.com/homeprohq/homepro-platform/internal/catalog"
	"github.com/homeprohq/homepro-platform/internal/contact"
	httpmiddleware "github.com/homeprohq/homepro-platform/internal/http/middleware"
	"github.com/homeprohq/homepro-platform/internal/observability/metrics"
	"github.com/homeprohq/homepro-platform/internal/reveal"
	"github.com/homeprohq/homepro-platform/internal/reviews"
	"github.com/homeprohq/homepro-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	CatalogHandler     *catalog.Handler
	ReviewsHandler     *reviews.Handler
	ContactHandler     *contact.Handler
	BookingHandler     *booking.Handler
	RevealHandler      *reveal.Handler
	DashboardHandler   *metrics.DashboardHandler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Rate limit applied to mutating endpoints; disabled when zero.
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	var limit func(http.Handler) http.Handler
	if cfg.RateLimitPerSecond > 0 {
		limit = httpmiddleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	} else {
		limit = func(next http.Handler) http.Handler { return next }
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}
	if cfg.DashboardHandler != nil {
		r.Get("/dashboard", cfg.DashboardHandler.Get)
	}

	if cfg.CatalogHandler != nil {
		r.Route("/services", func(r chi.Router) {
			r.Get("/", cfg.CatalogHandler.ListServices)
			r.Get("/filters", cfg.CatalogHandler.ListFilters)
		})
	}

	if cfg.ReviewsHandler != nil {
		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", cfg.ReviewsHandler.ListReviews)
			r.Get("/summary", cfg.ReviewsHandler.GetSummary)
			r.Get("/services", cfg.ReviewsHandler.ListServices)
			r.With(limit).Post("/", cfg.ReviewsHandler.SubmitReview)
			r.With(limit).Post("/{id}/helpful", cfg.ReviewsHandler.MarkHelpful)
		})
	}

	if cfg.ContactHandler != nil {
		r.Route("/contact", func(r chi.Router) {
			r.Get("/faqs", cfg.ContactHandler.ListFAQs)
			r.Post("/faqs/toggle", cfg.ContactHandler.ToggleFAQ)
			r.With(limit).Post("/", cfg.ContactHandler.SubmitMessage)
		})
	}

	if cfg.BookingHandler != nil {
		r.Route("/bookings", func(r chi.Router) {
			r.Get("/options", cfg.BookingHandler.GetOptions)
			r.Get("/confirmations", cfg.BookingHandler.ListConfirmations)
			r.With(limit).Post("/", cfg.BookingHandler.CreateSession)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", cfg.BookingHandler.GetSession)
				r.Patch("/", cfg.BookingHandler.UpdateFields)
				r.Post("/next", cfg.BookingHandler.Next)
				r.Post("/back", cfg.BookingHandler.Back)
				r.With(limit).Post("/submit", cfg.BookingHandler.Submit)
				r.Post("/reset", cfg.BookingHandler.Reset)
			})
		})
	}

	if cfg.RevealHandler != nil {
		r.Get("/ws/reveal", cfg.RevealHandler.HandleWebSocket)
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
