// internal/app/features/applications/list.go
package applications

import (
	"context"
	"net/http"

	applicationstore "github.com/dalemusser/hostelhub/internal/app/store/applications"
	"github.com/dalemusser/hostelhub/internal/app/system/httpjson"
	"github.com/dalemusser/hostelhub/internal/app/system/timeouts"
	"github.com/dalemusser/hostelhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// ServeList returns applications, optionally filtered by ?status=.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	apps, err := applicationstore.New(h.DB, h.Log).List(ctx, r.URL.Query().Get("status"))
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if apps == nil {
		apps = []models.Application{}
	}

	httpjson.Write(w, http.StatusOK, apps)
}

// ServeView returns a single application by id.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	app, err := applicationstore.New(h.DB, h.Log).GetByID(ctx, id)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	httpjson.Write(w, http.StatusOK, app)
}

// ServeByStudent returns the application one student submitted. This is
// the status-check endpoint students poll after applying.
func (h *Handler) ServeByStudent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	app, err := applicationstore.New(h.DB, h.Log).GetByStudent(ctx, chi.URLParam(r, "studentID"))
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	httpjson.Write(w, http.StatusOK, app)
}
