// internal/app/features/allocation/assign.go
package allocation

import (
	"context"
	"net/http"

	hostelstore "github.com/dalemusser/hostelhub/internal/app/store/hostels"
	"github.com/dalemusser/hostelhub/internal/app/system/apperr"
	"github.com/dalemusser/hostelhub/internal/app/system/httpjson"
	"github.com/dalemusser/hostelhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type assignInput struct {
	ApplicationID string `json:"application_id"`
	HostelID      string `json:"hostel_id"`
	RoomID        string `json:"room_id"`
}

// HandleAssign commits a room assignment for an approved application.
// On success the response carries a receipt id alongside the hostel and
// room for display.
func (h *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	var in assignInput
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	appID, err := primitive.ObjectIDFromHex(in.ApplicationID)
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Validation("application_id", "is not a valid id"))
		return
	}
	hostelID, err := primitive.ObjectIDFromHex(in.HostelID)
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Validation("hostel_id", "is not a valid id"))
		return
	}
	roomID, err := primitive.ObjectIDFromHex(in.RoomID)
	if err != nil {
		httpjson.Error(w, h.Log, apperr.Validation("room_id", "is not a valid id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	hostel, err := hostelstore.New(h.DB).GetByID(ctx, hostelID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	result, err := h.service().Assign(ctx, appID, hostel, roomID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	h.Log.Info("room assigned",
		zap.String("application_id", appID.Hex()),
		zap.String("room_id", roomID.Hex()),
		zap.String("receipt_id", result.ReceiptID),
	)

	httpjson.Write(w, http.StatusOK, result)
}
