package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewSlogLogger(h.logger))
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Route("/azure-devops", func(r chi.Router) {
			r.Post("/organizations", h.handleOrganizations)
			r.Get("/projects", h.handleProjects)
			r.Post("/projects", h.handleProjects)
			r.Post("/repositories", h.handleRepositories)
			r.Post("/pull-requests", h.handlePullRequests)
			r.Post("/pull-requests/tasks", h.handlePullRequestTasks)
		})

		r.Post("/credentials", h.handleSetCredential)
		r.Delete("/credentials/{name}", h.handleDeleteCredential)
	})

	r.Get("/health", h.handleHealthCheck)

	return r
}

func (h *Handler) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
