package allocation_test

import (
	"net/http"
	"testing"

	"github.com/dalemusser/hostelhub/internal/app/features/allocation"
	"github.com/dalemusser/hostelhub/internal/domain/models"
	"github.com/dalemusser/hostelhub/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func newRouter(t *testing.T) (chi.Router, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return allocation.Routes(allocation.NewHandler(db, zap.NewNop())), testutil.NewFixtures(t, db)
}

func TestServeCandidates(t *testing.T) {
	router, fx := newRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := fx.CreateHostel(ctx, "Female Block", models.GenderFemale, 1)
	fx.CreateRoom(ctx, h.ID, "101", 2)
	app := fx.ApprovedApplication(ctx, "stu-1", models.GenderFemale)

	req := testutil.NewJSONRequest(t, http.MethodGet, "/candidates?application_id="+app.ID.Hex(), nil)
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Female Block")
}

func TestServeCandidates_NoVacancy(t *testing.T) {
	router, fx := newRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	app := fx.ApprovedApplication(ctx, "stu-1", models.GenderMale)

	req := testutil.NewJSONRequest(t, http.MethodGet, "/candidates?application_id="+app.ID.Hex(), nil)
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "[]")
}

func TestServeCandidates_BadID(t *testing.T) {
	router, _ := newRouter(t)

	req := testutil.NewJSONRequest(t, http.MethodGet, "/candidates?application_id=nope", nil)
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestHandleAssign(t *testing.T) {
	router, fx := newRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := fx.CreateHostel(ctx, "Block A", models.GenderFemale, 1)
	room := fx.CreateRoom(ctx, h.ID, "101", 2)
	app := fx.ApprovedApplication(ctx, "stu-1", models.GenderFemale)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/assign", map[string]any{
		"application_id": app.ID.Hex(),
		"hostel_id":      h.ID.Hex(),
		"room_id":        room.ID.Hex(),
	})
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusOK)

	var got struct {
		ReceiptID  string `json:"receipt_id"`
		HostelName string `json:"hostel_name"`
		RoomNumber string `json:"room_number"`
	}
	rec.DecodeJSON(t, &got)
	if got.ReceiptID == "" {
		t.Error("expected a receipt id")
	}
	if got.HostelName != "Block A" || got.RoomNumber != "101" {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestHandleAssign_PendingIsConflict(t *testing.T) {
	router, fx := newRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	h := fx.CreateHostel(ctx, "Block A", models.GenderFemale, 1)
	room := fx.CreateRoom(ctx, h.ID, "101", 2)
	app := fx.CreateApplication(ctx, "stu-1", "Jane Doe", models.GenderFemale, models.StatusPending)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/assign", map[string]any{
		"application_id": app.ID.Hex(),
		"hostel_id":      h.ID.Hex(),
		"room_id":        room.ID.Hex(),
	})
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusConflict)
	rec.AssertContains(t, "not approved")
}

func TestHandleAssign_UnknownHostel(t *testing.T) {
	router, fx := newRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	app := fx.ApprovedApplication(ctx, "stu-1", models.GenderFemale)

	req := testutil.NewJSONRequest(t, http.MethodPost, "/assign", map[string]any{
		"application_id": app.ID.Hex(),
		"hostel_id":      "64b0c8f4a2d3e4f5a6b7c8d9",
		"room_id":        "64b0c8f4a2d3e4f5a6b7c8da",
	})
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusNotFound)
}
