package hostelstore_test

import (
	"testing"

	hostelstore "github.com/dalemusser/hostelhub/internal/app/store/hostels"
	roomstore "github.com/dalemusser/hostelhub/internal/app/store/rooms"
	"github.com/dalemusser/hostelhub/internal/app/system/apperr"
	"github.com/dalemusser/hostelhub/internal/domain/models"
	"github.com/dalemusser/hostelhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := hostelstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := models.Hostel{
		Name:       "Block A",
		Gender:     models.GenderFemale,
		TotalRooms: 20,
	}

	created, err := store.Create(ctx, h)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.NameCI == "" {
		t.Error("expected NameCI to be set")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Create_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := hostelstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	tests := []struct {
		name   string
		hostel models.Hostel
	}{
		{"empty name", models.Hostel{Gender: models.GenderMale, TotalRooms: 5}},
		{"bad gender", models.Hostel{Name: "Block B", Gender: "mixed", TotalRooms: 5}},
		{"zero rooms", models.Hostel{Name: "Block B", Gender: models.GenderMale, TotalRooms: 0}},
		{"negative rooms", models.Hostel{Name: "Block B", Gender: models.GenderMale, TotalRooms: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Create(ctx, tt.hostel)
			if !apperr.IsValidation(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := hostelstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if !apperr.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestStore_List_FilterByGender(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := hostelstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateHostel(ctx, "Female Block", models.GenderFemale, 10)
	fx.CreateHostel(ctx, "Male Block", models.GenderMale, 10)

	females, err := store.List(ctx, models.GenderFemale)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(females) != 1 || females[0].Gender != models.GenderFemale {
		t.Errorf("expected exactly the female hostel, got %d results", len(females))
	}

	all, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 hostels, got %d", len(all))
	}
}

func TestStore_Delete_CascadesToRooms(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := hostelstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := fx.CreateHostel(ctx, "Doomed Block", models.GenderMale, 2)
	fx.CreateRoom(ctx, h.ID, "101", 2)
	fx.CreateRoom(ctx, h.ID, "102", 2)

	if err := store.Delete(ctx, h.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := store.GetByID(ctx, h.ID); !apperr.IsNotFound(err) {
		t.Errorf("expected hostel to be gone, got %v", err)
	}
	rooms, err := roomstore.New(db).ListByHostel(ctx, h.ID)
	if err != nil {
		t.Fatalf("ListByHostel failed: %v", err)
	}
	if len(rooms) != 0 {
		t.Errorf("expected rooms to be cascade-deleted, found %d", len(rooms))
	}
}

func TestStore_Delete_IgnoresOccupancy(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := hostelstore.New(db)
	rooms := roomstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := fx.CreateHostel(ctx, "Occupied Block", models.GenderFemale, 1)
	room := fx.CreateRoom(ctx, h.ID, "201", 2)
	app := fx.ApprovedApplication(ctx, "stu-1", models.GenderFemale)
	if err := rooms.AddResident(ctx, room.ID, models.Resident{
		StudentID:     app.StudentID,
		DisplayName:   app.FullName,
		ApplicationID: app.ID,
	}); err != nil {
		t.Fatalf("AddResident failed: %v", err)
	}

	// Hostel deletion is unconditional; occupied rooms go with it.
	if err := store.Delete(ctx, h.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}

func TestStore_Delete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := hostelstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Delete(ctx, primitive.NewObjectID())
	if !apperr.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}
