// internal/app/features/applications/routes.go
package applications

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts all application lifecycle routes under the base path
// (typically "/applications" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleSubmit)
	r.Get("/", h.ServeList)
	r.Get("/student/{studentID}", h.ServeByStudent)
	r.Get("/{id}", h.ServeView)
	r.Delete("/{id}", h.HandleDelete)

	r.Post("/{id}/status", h.HandleSetStatus)
	r.Post("/{id}/evaluation", h.HandleEvaluate)

	return r
}
