// internal/app/features/applications/status.go
package applications

import (
	"context"
	"net/http"

	applicationstore "github.com/dalemusser/hostelhub/internal/app/store/applications"
	"github.com/dalemusser/hostelhub/internal/app/system/httpjson"
	"github.com/dalemusser/hostelhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type setStatusInput struct {
	Status string `json:"status"`
}

// HandleSetStatus moves an application to the given status directly,
// without recording an evaluation. Any recognized status is accepted
// from any current status.
func (h *Handler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	var in setStatusInput
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := applicationstore.New(h.DB, h.Log)
	if err := store.SetStatus(ctx, id, in.Status); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	h.Log.Info("application status set",
		zap.String("application_id", id.Hex()),
		zap.String("status", in.Status),
	)

	app, err := store.GetByID(ctx, id)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	httpjson.Write(w, http.StatusOK, app)
}
