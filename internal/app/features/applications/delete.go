// internal/app/features/applications/delete.go
package applications

import (
	"context"
	"net/http"

	applicationstore "github.com/dalemusser/hostelhub/internal/app/store/applications"
	"github.com/dalemusser/hostelhub/internal/app/system/httpjson"
	"github.com/dalemusser/hostelhub/internal/app/system/timeouts"
)

// HandleDelete hard-deletes an application. An allocated application's
// roster entry stays on the room; the store logs that case for
// reconciliation.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := applicationstore.New(h.DB, h.Log).Delete(ctx, id); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
