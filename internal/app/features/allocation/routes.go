// internal/app/features/allocation/routes.go
package allocation

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the allocation routes under the base path (typically
// "/allocation" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/candidates", h.ServeCandidates)
	r.Post("/assign", h.HandleAssign)

	return r
}
