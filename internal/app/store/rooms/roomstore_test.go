package roomstore_test

import (
	"sync"
	"testing"

	roomstore "github.com/dalemusser/hostelhub/internal/app/store/rooms"
	"github.com/dalemusser/hostelhub/internal/app/system/apperr"
	"github.com/dalemusser/hostelhub/internal/domain/models"
	"github.com/dalemusser/hostelhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := roomstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := fx.CreateHostel(ctx, "Block A", models.GenderMale, 10)

	room, err := store.Create(ctx, h.ID, "101", 4, 1)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if room.Occupancy != 0 {
		t.Errorf("occupancy: got %d, want 0", room.Occupancy)
	}
	if len(room.Residents) != 0 {
		t.Errorf("residents: got %d, want 0", len(room.Residents))
	}
	if room.HostelID != h.ID {
		t.Error("expected room to reference its hostel")
	}
}

func TestStore_Create_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := roomstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := fx.CreateHostel(ctx, "Block A", models.GenderMale, 10)

	tests := []struct {
		name       string
		roomNumber string
		capacity   int
		floor      int
	}{
		{"empty room number", "", 2, 1},
		{"capacity zero", "101", 0, 1},
		{"capacity five", "101", 5, 1},
		{"floor zero", "101", 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Create(ctx, h.ID, tt.roomNumber, tt.capacity, tt.floor)
			if !apperr.IsValidation(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestStore_Create_HostelNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := roomstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, primitive.NewObjectID(), "101", 2, 1)
	if !apperr.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestStore_Create_DuplicateNumber(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := roomstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := fx.CreateHostel(ctx, "Block A", models.GenderMale, 10)
	if _, err := store.Create(ctx, h.ID, "101", 2, 1); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	_, err := store.Create(ctx, h.ID, "101", 2, 1)
	if !apperr.IsConflict(err) {
		t.Errorf("expected ConflictError for duplicate room number, got %v", err)
	}
}

func resident(studentID string) models.Resident {
	return models.Resident{
		StudentID:     studentID,
		DisplayName:   "Student " + studentID,
		ApplicationID: primitive.NewObjectID(),
	}
}

func TestStore_AddResident_KeepsInvariants(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := roomstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := fx.CreateHostel(ctx, "Block A", models.GenderFemale, 10)
	room := fx.CreateRoom(ctx, h.ID, "101", 2)

	// Fill to capacity; occupancy and roster must stay in lockstep.
	for i, sid := range []string{"stu-1", "stu-2"} {
		if err := store.AddResident(ctx, room.ID, resident(sid)); err != nil {
			t.Fatalf("AddResident %d failed: %v", i, err)
		}
		got, err := store.GetByID(ctx, room.ID)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.Occupancy != i+1 {
			t.Errorf("occupancy after %d adds: got %d, want %d", i+1, got.Occupancy, i+1)
		}
		if len(got.Residents) != got.Occupancy {
			t.Errorf("occupancy %d != residents %d", got.Occupancy, len(got.Residents))
		}
		if got.Occupancy > got.Capacity {
			t.Errorf("occupancy %d exceeds capacity %d", got.Occupancy, got.Capacity)
		}
	}

	// A third resident must be refused.
	err := store.AddResident(ctx, room.ID, resident("stu-3"))
	if !apperr.IsConflict(err) {
		t.Errorf("expected ConflictError at capacity, got %v", err)
	}
	got, _ := store.GetByID(ctx, room.ID)
	if got.Occupancy != 2 || len(got.Residents) != 2 {
		t.Errorf("room state disturbed by refused add: occupancy=%d residents=%d", got.Occupancy, len(got.Residents))
	}
}

func TestStore_AddResident_RoomNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := roomstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.AddResident(ctx, primitive.NewObjectID(), resident("stu-1"))
	if !apperr.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestStore_AddResident_ConcurrentRace(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := roomstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := fx.CreateHostel(ctx, "Block A", models.GenderMale, 1)
	room := fx.CreateRoom(ctx, h.ID, "101", 1)

	// Two concurrent adds against a one-bed room: exactly one wins.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = store.AddResident(ctx, room.ID, resident("stu-"+string(rune('a'+i))))
		}(i)
	}
	wg.Wait()

	var ok, conflict int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case apperr.IsConflict(err):
			conflict++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if ok != 1 || conflict != 1 {
		t.Errorf("expected exactly one success and one conflict, got ok=%d conflict=%d", ok, conflict)
	}

	got, err := store.GetByID(ctx, room.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Occupancy != 1 || len(got.Residents) != 1 {
		t.Errorf("final state: occupancy=%d residents=%d, want 1/1", got.Occupancy, len(got.Residents))
	}
}

func TestStore_RemoveResident(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := roomstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := fx.CreateHostel(ctx, "Block A", models.GenderMale, 1)
	room := fx.CreateRoom(ctx, h.ID, "101", 2)
	res := resident("stu-1")
	if err := store.AddResident(ctx, room.ID, res); err != nil {
		t.Fatalf("AddResident failed: %v", err)
	}

	if err := store.RemoveResident(ctx, room.ID, res.ApplicationID); err != nil {
		t.Fatalf("RemoveResident failed: %v", err)
	}
	got, _ := store.GetByID(ctx, room.ID)
	if got.Occupancy != 0 || len(got.Residents) != 0 {
		t.Errorf("after removal: occupancy=%d residents=%d, want 0/0", got.Occupancy, len(got.Residents))
	}

	// Removing again must not decrement below zero.
	err := store.RemoveResident(ctx, room.ID, res.ApplicationID)
	if !apperr.IsNotFound(err) {
		t.Errorf("expected NotFoundError on double removal, got %v", err)
	}
	got, _ = store.GetByID(ctx, room.ID)
	if got.Occupancy != 0 {
		t.Errorf("occupancy went negative: %d", got.Occupancy)
	}
}

func TestStore_Delete_OccupiedRoomRefused(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := roomstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := fx.CreateHostel(ctx, "Block A", models.GenderMale, 1)
	room := fx.CreateRoom(ctx, h.ID, "101", 2)
	if err := store.AddResident(ctx, room.ID, resident("stu-1")); err != nil {
		t.Fatalf("AddResident failed: %v", err)
	}

	err := store.Delete(ctx, h.ID, room.ID)
	if !apperr.IsConflict(err) {
		t.Errorf("expected ConflictError for occupied room, got %v", err)
	}
	if _, err := store.GetByID(ctx, room.ID); err != nil {
		t.Errorf("occupied room must survive a refused delete: %v", err)
	}
}

func TestStore_Delete_EmptyRoom(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := roomstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := fx.CreateHostel(ctx, "Block A", models.GenderMale, 1)
	room := fx.CreateRoom(ctx, h.ID, "101", 2)

	if err := store.Delete(ctx, h.ID, room.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.GetByID(ctx, room.ID); !apperr.IsNotFound(err) {
		t.Errorf("expected room to be gone, got %v", err)
	}
}

func TestStore_Delete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := roomstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := fx.CreateHostel(ctx, "Block A", models.GenderMale, 1)

	err := store.Delete(ctx, h.ID, primitive.NewObjectID())
	if !apperr.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestStore_ListEligible(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := roomstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	female := fx.CreateHostel(ctx, "Female Block", models.GenderFemale, 2)
	male := fx.CreateHostel(ctx, "Male Block", models.GenderMale, 1)
	vacant := fx.CreateRoom(ctx, female.ID, "F101", 2)
	full := fx.CreateRoom(ctx, female.ID, "F102", 1)
	fx.CreateRoom(ctx, male.ID, "M101", 2)

	if err := store.AddResident(ctx, full.ID, resident("stu-full")); err != nil {
		t.Fatalf("AddResident failed: %v", err)
	}

	got, err := store.ListEligible(ctx, models.GenderFemale)
	if err != nil {
		t.Fatalf("ListEligible failed: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 eligible hostel, got %d", len(got))
	}
	if got[0].Hostel.ID != female.ID {
		t.Error("wrong hostel returned")
	}
	if len(got[0].Rooms) != 1 || got[0].Rooms[0].ID != vacant.ID {
		t.Errorf("expected only the vacant room, got %d rooms", len(got[0].Rooms))
	}
}

func TestStore_ListEligible_OmitsFullHostels(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := roomstore.New(db)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := fx.CreateHostel(ctx, "Full Block", models.GenderMale, 1)
	room := fx.CreateRoom(ctx, h.ID, "101", 1)
	if err := store.AddResident(ctx, room.ID, resident("stu-1")); err != nil {
		t.Fatalf("AddResident failed: %v", err)
	}

	got, err := store.ListEligible(ctx, models.GenderMale)
	if err != nil {
		t.Fatalf("ListEligible failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("hostel with no vacant rooms must be omitted, got %d entries", len(got))
	}
}
