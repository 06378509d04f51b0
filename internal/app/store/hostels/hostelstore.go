// internal/app/store/hostels/hostelstore.go
package hostelstore

import (
	"context"
	"strings"
	"time"

	"github.com/dalemusser/hostelhub/internal/app/system/apperr"
	"github.com/dalemusser/hostelhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps the hostels collection. Hostel deletion cascades to the
// rooms collection, so the store holds both handles.
type Store struct {
	c     *mongo.Collection
	rooms *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:     db.Collection("hostels"),
		rooms: db.Collection("rooms"),
	}
}

// Create inserts a new hostel with zero rooms.
func (s *Store) Create(ctx context.Context, h models.Hostel) (models.Hostel, error) {
	h.Name = strings.TrimSpace(h.Name)
	if h.Name == "" {
		return models.Hostel{}, apperr.Validation("name", "is required")
	}
	if !models.ValidGender(h.Gender) {
		return models.Hostel{}, apperr.Validation("gender", `must be "male" or "female"`)
	}
	if h.TotalRooms < 1 {
		return models.Hostel{}, apperr.Validation("total_rooms", "must be a positive integer")
	}

	now := time.Now().UTC()
	h.ID = primitive.NewObjectID()
	h.NameCI = text.Fold(h.Name)
	h.CreatedAt = now
	h.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, h); err != nil {
		return models.Hostel{}, err
	}
	return h, nil
}

// GetByID retrieves a hostel by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Hostel, error) {
	var h models.Hostel
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&h)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Hostel{}, apperr.NotFound("hostel")
		}
		return models.Hostel{}, err
	}
	return h, nil
}

// List returns all hostels, optionally filtered by gender, sorted by
// folded name.
func (s *Store) List(ctx context.Context, gender string) ([]models.Hostel, error) {
	filter := bson.M{}
	if gender != "" {
		if !models.ValidGender(gender) {
			return nil, apperr.Validation("gender", `must be "male" or "female"`)
		}
		filter["gender"] = gender
	}

	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var hostels []models.Hostel
	if err := cur.All(ctx, &hostels); err != nil {
		return nil, err
	}
	return hostels, nil
}

// Delete removes the hostel and all of its rooms.
//
// The cascade is unconditional: there is no occupancy guard at the
// hostel level (contrast with room deletion). Callers are expected to
// confirm intent out-of-band before invoking this.
//
// Rooms are removed first so a failure partway through cannot leave
// rooms pointing at a hostel that no longer exists.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	// Existence check up front so a bad id is a NotFound, not a
	// silent no-op after the room sweep.
	if err := s.c.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return apperr.NotFound("hostel")
		}
		return err
	}

	if _, err := s.rooms.DeleteMany(ctx, bson.M{"hostel_id": id}); err != nil {
		return err
	}
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("hostel")
	}
	return nil
}

// EnsureIndexes creates indexes for the hostels collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "gender", Value: 1}, {Key: "name_ci", Value: 1}},
			Options: options.Index().SetName("idx_hostels_gender_nameci"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}
