// internal/app/features/hostels/rooms.go
package hostels

import (
	"context"
	"net/http"

	roomstore "github.com/dalemusser/hostelhub/internal/app/store/rooms"
	"github.com/dalemusser/hostelhub/internal/app/system/httpjson"
	"github.com/dalemusser/hostelhub/internal/app/system/timeouts"
	"github.com/dalemusser/hostelhub/internal/domain/models"
)

type createRoomInput struct {
	RoomNumber string `json:"room_number"`
	Capacity   int    `json:"capacity"`
	Floor      int    `json:"floor"`
}

// HandleAddRoom adds a room to an existing hostel.
func (h *Handler) HandleAddRoom(w http.ResponseWriter, r *http.Request) {
	hostelID, err := pathID(r, "id")
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	var in createRoomInput
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	room, err := roomstore.New(h.DB).Create(ctx, hostelID, in.RoomNumber, in.Capacity, in.Floor)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	httpjson.Write(w, http.StatusCreated, room)
}

// ServeRooms lists the rooms of one hostel, including each room's
// occupancy and resident roster.
func (h *Handler) ServeRooms(w http.ResponseWriter, r *http.Request) {
	hostelID, err := pathID(r, "id")
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rooms, err := roomstore.New(h.DB).ListByHostel(ctx, hostelID)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}

	httpjson.Write(w, http.StatusOK, rooms)
}

// HandleDeleteRoom removes an empty room. A room with residents is
// refused with a conflict.
func (h *Handler) HandleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	hostelID, err := pathID(r, "id")
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	roomID, err := pathID(r, "roomID")
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := roomstore.New(h.DB).Delete(ctx, hostelID, roomID); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
