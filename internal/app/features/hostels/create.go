// internal/app/features/hostels/create.go
package hostels

import (
	"context"
	"net/http"

	hostelstore "github.com/dalemusser/hostelhub/internal/app/store/hostels"
	"github.com/dalemusser/hostelhub/internal/app/system/httpjson"
	"github.com/dalemusser/hostelhub/internal/app/system/timeouts"
	"github.com/dalemusser/hostelhub/internal/domain/models"
)

type createHostelInput struct {
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	TotalRooms  int    `json:"total_rooms"`
	Description string `json:"description,omitempty"`
}

// HandleCreate registers a new hostel.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in createHostelInput
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := hostelstore.New(h.DB).Create(ctx, models.Hostel{
		Name:        in.Name,
		Gender:      in.Gender,
		TotalRooms:  in.TotalRooms,
		Description: in.Description,
	})
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	httpjson.Write(w, http.StatusCreated, created)
}
