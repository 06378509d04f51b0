// internal/app/store/rooms/roomstore.go
package roomstore

// Occupancy discipline: occupancy and the residents array are only ever
// changed together, in a single document update (AddResident and
// RemoveResident below). Nothing else writes either field, which is
// what keeps occupancy == len(residents) without cross-document
// transactions.

import (
	"context"
	"strings"
	"time"

	"github.com/dalemusser/hostelhub/internal/app/system/apperr"
	"github.com/dalemusser/hostelhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c       *mongo.Collection
	hostels *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:       db.Collection("rooms"),
		hostels: db.Collection("hostels"),
	}
}

// Create adds a room to an existing hostel with occupancy 0 and an
// empty resident roster.
func (s *Store) Create(ctx context.Context, hostelID primitive.ObjectID, roomNumber string, capacity, floor int) (models.Room, error) {
	roomNumber = strings.TrimSpace(roomNumber)
	if roomNumber == "" {
		return models.Room{}, apperr.Validation("room_number", "is required")
	}
	if capacity < models.MinRoomCapacity || capacity > models.MaxRoomCapacity {
		return models.Room{}, apperr.Validation("capacity", "must be between 1 and 4")
	}
	if floor < 1 {
		return models.Room{}, apperr.Validation("floor", "must be a positive integer")
	}

	// Hostel must exist; rooms never dangle.
	if err := s.hostels.FindOne(ctx, bson.M{"_id": hostelID}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Room{}, apperr.NotFound("hostel")
		}
		return models.Room{}, err
	}

	now := time.Now().UTC()
	room := models.Room{
		ID:         primitive.NewObjectID(),
		HostelID:   hostelID,
		RoomNumber: roomNumber,
		Floor:      floor,
		Capacity:   capacity,
		Occupancy:  0,
		Residents:  []models.Resident{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := s.c.InsertOne(ctx, room); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Room{}, apperr.Conflict("a room with this number already exists in this hostel")
		}
		return models.Room{}, err
	}
	return room, nil
}

// GetByID retrieves a room by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Room, error) {
	var room models.Room
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&room)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Room{}, apperr.NotFound("room")
		}
		return models.Room{}, err
	}
	return room, nil
}

// ListByHostel returns all rooms of one hostel sorted by room number.
func (s *Store) ListByHostel(ctx context.Context, hostelID primitive.ObjectID) ([]models.Room, error) {
	opts := options.Find().SetSort(bson.D{{Key: "room_number", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"hostel_id": hostelID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rooms []models.Room
	if err := cur.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// Delete removes a room, but only while it is empty.
//
// The occupancy guard lives in the delete filter itself, so the check
// and the delete are one consistent operation: a room filled between a
// caller's read and this call is still protected.
func (s *Store) Delete(ctx context.Context, hostelID, roomID primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{
		"_id":       roomID,
		"hostel_id": hostelID,
		"occupancy": 0,
	})
	if err != nil {
		return err
	}
	if res.DeletedCount == 1 {
		return nil
	}

	// Nothing deleted: distinguish "no such room" from "occupied".
	err = s.c.FindOne(ctx, bson.M{"_id": roomID, "hostel_id": hostelID}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == mongo.ErrNoDocuments {
		return apperr.NotFound("room")
	}
	if err != nil {
		return err
	}
	return apperr.Conflict("room occupied")
}

// HostelRooms pairs a hostel with its rooms that still have vacancy.
type HostelRooms struct {
	Hostel models.Hostel `json:"hostel"`
	Rooms  []models.Room `json:"rooms"`
}

// ListEligible returns, for the given gender, every hostel that has at
// least one room with occupancy < capacity, with exactly those rooms.
// Hostels with no vacant rooms are omitted entirely. The result
// reflects state at call time; re-running reflects current state.
func (s *Store) ListEligible(ctx context.Context, gender string) ([]HostelRooms, error) {
	if !models.ValidGender(gender) {
		return nil, apperr.Validation("gender", `must be "male" or "female"`)
	}

	hcur, err := s.hostels.Find(ctx, bson.M{"gender": gender},
		options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer hcur.Close(ctx)

	var hostels []models.Hostel
	if err := hcur.All(ctx, &hostels); err != nil {
		return nil, err
	}
	if len(hostels) == 0 {
		return nil, nil
	}

	ids := make([]primitive.ObjectID, 0, len(hostels))
	for _, h := range hostels {
		ids = append(ids, h.ID)
	}

	rcur, err := s.c.Find(ctx, bson.M{
		"hostel_id": bson.M{"$in": ids},
		"$expr":     bson.M{"$lt": bson.A{"$occupancy", "$capacity"}},
	}, options.Find().SetSort(bson.D{{Key: "room_number", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer rcur.Close(ctx)

	var rooms []models.Room
	if err := rcur.All(ctx, &rooms); err != nil {
		return nil, err
	}

	byHostel := make(map[primitive.ObjectID][]models.Room, len(hostels))
	for _, r := range rooms {
		byHostel[r.HostelID] = append(byHostel[r.HostelID], r)
	}

	var out []HostelRooms
	for _, h := range hostels {
		if rs := byHostel[h.ID]; len(rs) > 0 {
			out = append(out, HostelRooms{Hostel: h, Rooms: rs})
		}
	}
	return out, nil
}

// AddResident appends a resident and bumps occupancy in one atomic,
// capacity-guarded update.
//
// The filter carries the capacity condition, so this is an
// increment-if-below-capacity: two concurrent calls against a room
// with one bed left cannot both match, and occupancy can never pass
// capacity. Re-reading after the write is not needed.
func (s *Store) AddResident(ctx context.Context, roomID primitive.ObjectID, res models.Resident) error {
	upd, err := s.c.UpdateOne(ctx,
		bson.M{
			"_id":   roomID,
			"$expr": bson.M{"$lt": bson.A{"$occupancy", "$capacity"}},
		},
		bson.M{
			"$inc":  bson.M{"occupancy": 1},
			"$push": bson.M{"residents": res},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if upd.ModifiedCount == 1 {
		return nil
	}

	// Guard rejected the write: either the room is gone or it filled
	// up under us.
	err = s.c.FindOne(ctx, bson.M{"_id": roomID}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == mongo.ErrNoDocuments {
		return apperr.NotFound("room")
	}
	if err != nil {
		return err
	}
	return apperr.Conflict("room filled by a concurrent request; pick another room")
}

// RemoveResident undoes AddResident for one application: pulls the
// matching roster entry and decrements occupancy in the same update.
// Used by the allocation compensation path. The filter requires the
// entry to be present so a retry cannot decrement twice.
func (s *Store) RemoveResident(ctx context.Context, roomID, applicationID primitive.ObjectID) error {
	upd, err := s.c.UpdateOne(ctx,
		bson.M{
			"_id":                      roomID,
			"residents.application_id": applicationID,
		},
		bson.M{
			"$inc":  bson.M{"occupancy": -1},
			"$pull": bson.M{"residents": bson.M{"application_id": applicationID}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if upd.ModifiedCount == 0 {
		return apperr.NotFound("resident")
	}
	return nil
}

// EnsureIndexes creates indexes for the rooms collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "hostel_id", Value: 1}, {Key: "room_number", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_rooms_hostel_number"),
		},
		{
			Keys:    bson.D{{Key: "hostel_id", Value: 1}, {Key: "occupancy", Value: 1}},
			Options: options.Index().SetName("idx_rooms_hostel_occupancy"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}
