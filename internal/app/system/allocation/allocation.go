// internal/app/system/allocation/allocation.go

// Package allocation binds approved applications to rooms.
//
// The commit has two steps across two documents and no transaction:
// the room takes the resident first (capacity-guarded atomic update),
// then the application records the room. If the second step fails, the
// service compensates by removing the just-added resident. If the
// compensation itself fails, the inconsistency is logged for operator
// reconciliation (event=inconsistency). It is never silently swallowed
// and never shown to the end user.
//
// Committing the room first means a half-finished assignment
// over-reports the room (a resident with no matching application
// pointer) rather than leaving an application pointing at a room that
// never took its resident.
package allocation

import (
	"context"
	"time"

	applicationstore "github.com/dalemusser/hostelhub/internal/app/store/applications"
	roomstore "github.com/dalemusser/hostelhub/internal/app/store/rooms"
	"github.com/dalemusser/hostelhub/internal/app/system/apperr"
	"github.com/dalemusser/hostelhub/internal/domain/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Service orchestrates candidate discovery and assignment commits.
type Service struct {
	rooms *roomstore.Store
	apps  *applicationstore.Store
	log   *zap.Logger
}

func New(rooms *roomstore.Store, apps *applicationstore.Store, logger *zap.Logger) *Service {
	return &Service{rooms: rooms, apps: apps, log: logger}
}

// FindCandidates returns the hostels and rooms the application is
// eligible for: matching gender, occupancy below capacity. An empty
// result is a valid outcome ("no vacancy"), not an error.
func (s *Service) FindCandidates(ctx context.Context, app models.Application) ([]roomstore.HostelRooms, error) {
	return s.rooms.ListEligible(ctx, app.Gender)
}

// Result is what a successful assignment returns to the caller for
// display and UI-state propagation.
type Result struct {
	ReceiptID  string    `json:"receipt_id"`
	HostelName string    `json:"hostel_name"`
	RoomNumber string    `json:"room_number"`
	AssignedAt time.Time `json:"assigned_at"`
}

// Assign binds the application to the room.
//
// Preconditions are checked against fresh reads: the application must
// be approved and unallocated, the room must belong to the hostel, the
// hostel's gender must match the applicant's, and the room must have
// vacancy. The vacancy check is advisory only; the authoritative
// capacity enforcement is the guarded room update, so a room filled
// between the read and the commit still fails cleanly with a conflict.
func (s *Service) Assign(ctx context.Context, applicationID primitive.ObjectID, hostel models.Hostel, roomID primitive.ObjectID) (Result, error) {
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return Result{}, err
	}
	if app.Status != models.StatusApproved {
		return Result{}, apperr.Conflict("application is not approved")
	}
	if app.Allocated() {
		return Result{}, apperr.Conflict("application is already allocated to a room")
	}
	if hostel.Gender != app.Gender {
		return Result{}, apperr.Conflict("hostel gender does not match applicant")
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		return Result{}, err
	}
	if room.HostelID != hostel.ID {
		return Result{}, apperr.Conflict("room does not belong to the selected hostel")
	}
	if !room.HasVacancy() {
		return Result{}, apperr.Conflict("room filled by a concurrent request; pick another room")
	}

	now := time.Now().UTC()
	resident := models.Resident{
		StudentID:          app.StudentID,
		DisplayName:        app.FullName,
		ApplicationID:      app.ID,
		RegistrationNumber: app.RegistrationNumber,
		Phone:              app.Phone,
		Email:              app.Email,
		AssignedAt:         now,
	}

	// Step 1: room takes the resident (capacity-guarded, atomic).
	if err := s.rooms.AddResident(ctx, roomID, resident); err != nil {
		return Result{}, err
	}

	// Step 2: application records the room.
	if err := s.apps.BindRoom(ctx, app.ID, hostel.ID, roomID, room.RoomNumber, now); err != nil {
		s.compensate(ctx, roomID, app.ID, err)
		return Result{}, err
	}

	return Result{
		ReceiptID:  uuid.NewString(),
		HostelName: hostel.Name,
		RoomNumber: room.RoomNumber,
		AssignedAt: now,
	}, nil
}

// compensate best-effort removes the resident added by a failed
// assignment. A compensation failure leaves the room over-reporting
// one resident; that state is logged for manual reconciliation.
func (s *Service) compensate(ctx context.Context, roomID, applicationID primitive.ObjectID, cause error) {
	if err := s.rooms.RemoveResident(ctx, roomID, applicationID); err != nil {
		s.log.Error("assignment compensation failed; room occupancy is inconsistent",
			zap.String("event", "inconsistency"),
			zap.String("room_id", roomID.Hex()),
			zap.String("application_id", applicationID.Hex()),
			zap.NamedError("bind_error", cause),
			zap.Error(err),
		)
		return
	}
	s.log.Warn("assignment rolled back after application update failed",
		zap.String("room_id", roomID.Hex()),
		zap.String("application_id", applicationID.Hex()),
		zap.Error(cause),
	)
}
