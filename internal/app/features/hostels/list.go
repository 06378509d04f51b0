// internal/app/features/hostels/list.go
package hostels

import (
	"context"
	"net/http"

	hostelstore "github.com/dalemusser/hostelhub/internal/app/store/hostels"
	"github.com/dalemusser/hostelhub/internal/app/system/httpjson"
	"github.com/dalemusser/hostelhub/internal/app/system/timeouts"
	"github.com/dalemusser/hostelhub/internal/domain/models"
)

// ServeList returns all hostels, optionally filtered by ?gender=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	hostels, err := hostelstore.New(h.DB).List(ctx, r.URL.Query().Get("gender"))
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if hostels == nil {
		hostels = []models.Hostel{}
	}

	httpjson.Write(w, http.StatusOK, hostels)
}

// ServeView returns a single hostel by id.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	hostel, err := hostelstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	httpjson.Write(w, http.StatusOK, hostel)
}
