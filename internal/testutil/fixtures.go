package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/hostelhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateHostel creates a test hostel with the given name and gender.
func (f *Fixtures) CreateHostel(ctx context.Context, name, gender string, totalRooms int) models.Hostel {
	f.t.Helper()

	now := time.Now().UTC()
	h := models.Hostel{
		ID:         primitive.NewObjectID(),
		Name:       name,
		NameCI:     text.Fold(name),
		Gender:     gender,
		TotalRooms: totalRooms,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("hostels").InsertOne(ctx, h); err != nil {
		f.t.Fatalf("failed to create test hostel: %v", err)
	}
	return h
}

// CreateRoom creates a test room under the given hostel.
func (f *Fixtures) CreateRoom(ctx context.Context, hostelID primitive.ObjectID, roomNumber string, capacity int) models.Room {
	f.t.Helper()

	now := time.Now().UTC()
	room := models.Room{
		ID:         primitive.NewObjectID(),
		HostelID:   hostelID,
		RoomNumber: roomNumber,
		Floor:      1,
		Capacity:   capacity,
		Occupancy:  0,
		Residents:  []models.Resident{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("rooms").InsertOne(ctx, room); err != nil {
		f.t.Fatalf("failed to create test room: %v", err)
	}
	return room
}

// CreateApplication creates a test application with the given status.
func (f *Fixtures) CreateApplication(ctx context.Context, studentID, fullName, gender, status string) models.Application {
	f.t.Helper()

	now := time.Now().UTC()
	app := models.Application{
		ID:         primitive.NewObjectID(),
		StudentID:  studentID,
		FullName:   fullName,
		FullNameCI: text.Fold(fullName),
		Gender:     gender,
		Status:     status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("applications").InsertOne(ctx, app); err != nil {
		f.t.Fatalf("failed to create test application: %v", err)
	}
	return app
}

// ApprovedApplication creates an approved application ready for
// allocation.
func (f *Fixtures) ApprovedApplication(ctx context.Context, studentID, gender string) models.Application {
	f.t.Helper()
	return f.CreateApplication(ctx, studentID, "Student "+studentID, gender, models.StatusApproved)
}
