// internal/app/features/allocation/candidates.go
package allocation

import (
	"context"
	"net/http"

	applicationstore "github.com/dalemusser/hostelhub/internal/app/store/applications"
	roomstore "github.com/dalemusser/hostelhub/internal/app/store/rooms"
	"github.com/dalemusser/hostelhub/internal/app/system/apperr"
	"github.com/dalemusser/hostelhub/internal/app/system/httpjson"
	"github.com/dalemusser/hostelhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeCandidates lists the hostels and vacant rooms the application
// named by ?application_id= is eligible for. An empty list means no
// vacancy right now, not an error.
func (h *Handler) ServeCandidates(w http.ResponseWriter, r *http.Request) {
	appID, err := primitive.ObjectIDFromHex(r.URL.Query().Get("application_id"))
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Validation("application_id", "is not a valid id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	app, err := applicationstore.New(h.DB, h.Log).GetByID(ctx, appID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	candidates, err := h.service().FindCandidates(ctx, app)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if candidates == nil {
		candidates = []roomstore.HostelRooms{}
	}

	httpjson.Write(w, http.StatusOK, candidates)
}
