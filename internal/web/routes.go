package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kozaktomas/people-page/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	peopleHandler := handlers.NewPeopleHandler(s.config, s.page, s.log)

	// Health check
	s.router.Get("/api/v1/health", handlers.HealthCheck)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/people", peopleHandler.List)
		r.Get("/people.xlsx", peopleHandler.Export)
		r.Get("/people/{slug}", peopleHandler.Get)
	})

	// People Page
	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/people", http.StatusFound)
	})
	s.router.Get("/people", peopleHandler.Page)
	s.router.Get("/people/{slug}", peopleHandler.Page)
}
