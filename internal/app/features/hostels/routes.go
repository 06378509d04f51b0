// internal/app/features/hostels/routes.go
package hostels

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts all hostel catalog routes under the base path
// (typically "/hostels" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeView)
	r.Delete("/{id}", h.HandleDelete)

	r.Post("/{id}/rooms", h.HandleAddRoom)
	r.Get("/{id}/rooms", h.ServeRooms)
	r.Delete("/{id}/rooms/{roomID}", h.HandleDeleteRoom)

	return r
}
