// internal/domain/models/room.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Room capacity bounds. Rooms are created once with a fixed capacity;
// there is no capacity-edit path.
const (
	MinRoomCapacity = 1
	MaxRoomCapacity = 4
)

// Room is a bounded-capacity unit inside a hostel.
//
// Occupancy and the residents array are kept in lockstep by updating
// them in the same single-document write: occupancy == len(residents)
// and occupancy <= capacity at all times. A room with occupancy > 0
// cannot be deleted.
type Room struct {
	ID       primitive.ObjectID `bson:"_id" json:"id"`
	HostelID primitive.ObjectID `bson:"hostel_id" json:"hostel_id"`

	RoomNumber string `bson:"room_number" json:"room_number"`
	Floor      int    `bson:"floor" json:"floor"`
	Capacity   int    `bson:"capacity" json:"capacity"`
	Occupancy  int    `bson:"occupancy" json:"occupancy"`

	// Residents in assignment order. Values are embedded, not
	// standalone documents; they are only ever appended by allocation
	// and removed when the room itself is deleted.
	Residents []Resident `bson:"residents" json:"residents"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// HasVacancy reports whether the room can take another resident.
func (r Room) HasVacancy() bool {
	return r.Occupancy < r.Capacity
}

// Resident records one approved application's occupancy of one bed.
type Resident struct {
	StudentID          string             `bson:"student_id" json:"student_id"`
	DisplayName        string             `bson:"display_name" json:"display_name"`
	ApplicationID      primitive.ObjectID `bson:"application_id" json:"application_id"`
	RegistrationNumber string             `bson:"registration_number,omitempty" json:"registration_number,omitempty"`
	Phone              string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Email              string             `bson:"email,omitempty" json:"email,omitempty"`
	AssignedAt         time.Time          `bson:"assigned_at" json:"assigned_at"`
}
