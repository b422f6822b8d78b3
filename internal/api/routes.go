package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/orgainseconsulting/Orgainse-website-sub001/internal/pkg/httputil"
)

// NewRouter configures all API routes.
func NewRouter(h *Handlers) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(CORS)
	r.Use(h.metrics.Middleware)
	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	if h.metrics != nil {
		r.Handle("/metrics", h.metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.NotFound(notFound)
		r.MethodNotAllowed(methodNotAllowed)
		r.Get("/health", h.Health)
		r.Post("/newsletter", h.Subscribe)
		r.Post("/contact", h.SubmitContact)
		r.Post("/ai-assessment", h.SubmitAssessment)
		r.Post("/roi-calculator", h.CalculateROI)
	})

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	httputil.Error(w, http.StatusNotFound, "NOT_FOUND", "Not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	httputil.Error(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed")
}
