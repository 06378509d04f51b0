// internal/app/features/hostels/delete.go
package hostels

import (
	"context"
	"net/http"

	hostelstore "github.com/dalemusser/hostelhub/internal/app/store/hostels"
	"github.com/dalemusser/hostelhub/internal/app/system/httpjson"
	"github.com/dalemusser/hostelhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleDelete removes a hostel and every room in it. The cascade is
// unconditional; occupied rooms go with the hostel.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := hostelstore.New(h.DB).Delete(ctx, id); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	h.Log.Info("hostel deleted", zap.String("hostel_id", id.Hex()))

	w.WriteHeader(http.StatusNoContent)
}
