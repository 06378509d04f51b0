// internal/app/store/applications/applicationstore.go
package applicationstore

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
	"go.uber.org/zap"
)

type Store struct {
	c   *mongo.Collection
	log *zap.Logger
}

func New(db *mongo.Database, logger *zap.Logger) *Store {
	return &Store{
		c:   db.Collection("applications"),
		log: logger,
	}
}

// Submit creates a new application with status pending.
//
// Payload fields beyond gender are the caller's concern; gender must be
// present because it drives hostel eligibility later. Duplicate
// submissions per student are prevented by an external uniqueness
// collaborator, not here.
func (s *Store) Submit(ctx context.Context, app models.Application) (models.Application, error) {
	app.FullName = strings.TrimSpace(app.FullName)
	if app.StudentID == "" {
		return models.Application{}, apperr.Validation("student_id", "is required")
	}
	if !models.ValidGender(app.Gender) {
		return models.Application{}, apperr.Validation("gender", `must be "male" or "female"`)
	}

	now := time.Now().UTC()
	app.ID = primitive.NewObjectID()
	app.FullNameCI = text.Fold(app.FullName)
	app.Status = models.StatusPending
	app.Evaluation = nil
	app.HostelID = nil
	app.RoomID = nil
	app.RoomNumber = ""
	app.AssignedAt = nil
	app.CreatedAt = now
	app.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, app); err != nil {
		return models.Application{}, err
	}
	return app, nil
}

// GetByID retrieves an application by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Application, error) {
	var app models.Application
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Application{}, apperr.NotFound("application")
		}
		return models.Application{}, err
	}
	return app, nil
}

// GetByStudent retrieves the application submitted by one student.
func (s *Store) GetByStudent(ctx context.Context, studentID string) (models.Application, error) {
	var app models.Application
	err := s.c.FindOne(ctx, bson.M{"student_id": studentID}).Decode(&app)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Application{}, apperr.NotFound("application")
		}
		return models.Application{}, err
	}
	return app, nil
}

// List returns applications, optionally filtered by status, newest
// first.
func (s *Store) List(ctx context.Context, status string) ([]models.Application, error) {
	filter := bson.M{}
	if status != "" {
		if !models.ValidStatus(status) {
			return nil, apperr.Validation("status", "must be pending, approved, or rejected")
		}
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var apps []models.Application
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// SetStatus transitions an application's status.
//
// Any of the three recognized values is accepted from any current
// status; there is deliberately no transition table here. Admins use
// this to correct decisions, including moving back to pending.
func (s *Store) SetStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if !models.ValidStatus(status) {
		return apperr.Validation("status", "must be pending, approved, or rejected")
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("application")
	}
	return nil
}

// SaveEvaluation persists the embedded evaluation, and the status when
// the evaluation carried a final decision, in one document update.
func (s *Store) SaveEvaluation(ctx context.Context, id primitive.ObjectID, ev models.Evaluation, status string) error {
	set := bson.M{
		"evaluation": ev,
		"updated_at": time.Now().UTC(),
	}
	if status != "" {
		if !models.ValidStatus(status) {
			return apperr.Validation("status", "must be pending, approved, or rejected")
		}
		set["status"] = status
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("application")
	}
	return nil
}

// BindRoom records the room assignment on an approved, unallocated
// application. The status and not-yet-allocated conditions live in the
// filter so the write cannot land on an application that was rejected
// or allocated by a concurrent admin after the caller's read.
func (s *Store) BindRoom(ctx context.Context, id, hostelID, roomID primitive.ObjectID, roomNumber string, assignedAt time.Time) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{
			"_id":     id,
			"status":  models.StatusApproved,
			"room_id": nil,
		},
		bson.M{"$set": bson.M{
			"hostel_id":   hostelID,
			"room_id":     roomID,
			"room_number": roomNumber,
			"assigned_at": assignedAt,
			"updated_at":  time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 1 {
		return nil
	}

	err = s.c.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if err == mongo.ErrNoDocuments {
		return apperr.NotFound("application")
	}
	if err != nil {
		return err
	}
	return apperr.Conflict("application is not approved or is already allocated")
}

// Delete hard-deletes an application.
//
// It does not release any room the application was assigned to: the
// source system behaves this way, and changing it would make delete a
// multi-document operation. When the application was allocated, the
// orphaned roster entry is logged so operators can reconcile.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	var app models.Application
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&app)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return apperr.NotFound("application")
		}
		return err
	}

	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("application")
	}

	if app.Allocated() && s.log != nil {
		s.log.Warn("deleted application still held a room assignment; roster entry is now orphaned",
			zap.String("application_id", app.ID.Hex()),
			zap.String("room_id", app.RoomID.Hex()),
			zap.String("student_id", app.StudentID),
		)
	}
	return nil
}

// EnsureIndexes creates indexes for the applications collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "student_id", Value: 1}},
			Options: options.Index().SetName("idx_applications_student"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("idx_applications_status_created"),
		},
	}
	_, err := s.c.Indexes().CreateMany(ctx, indexes)
	return err
}
