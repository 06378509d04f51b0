// internal/domain/models/hostel.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender designations for hostels and applicants.
// A hostel's gender is fixed at creation; changing it would invalidate
// every resident assignment already made against its rooms.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Hostel represents one residence building. Rooms live in their own
// collection and point back via hostel_id; deleting a hostel cascades
// to its rooms.
type Hostel struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"name_ci"` // Case-insensitive for search/sort

	// Gender is "male" or "female" and immutable after creation.
	Gender string `bson:"gender" json:"gender"`

	// TotalRooms is the declared room count for the building. It is
	// informational; the actual room inventory is the rooms collection.
	TotalRooms  int    `bson:"total_rooms" json:"total_rooms"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// ValidGender reports whether g is one of the two recognized values.
func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale
}
