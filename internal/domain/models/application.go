// internal/domain/models/application.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Application statuses.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Evaluation final decisions. An empty decision means the evaluation
// was saved as work in progress without deciding.
const (
	DecisionApprove    = "approve"
	DecisionNotApprove = "not_approve"
)

// Evaluation recommendations (advisory; only FinalDecision moves the
// application status).
const (
	RecommendationRecommended    = "recommended"
	RecommendationNotRecommended = "not_recommended"
	RecommendationReconsider     = "reconsider"
)

// ValidStatus reports whether s is a recognized application status.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Application is a student's request for accommodation.
//
// Most demographic/academic/financial fields are opaque to the service:
// they are stored and returned verbatim. Gender is the one field the
// engine interprets (it drives hostel eligibility). The room-binding
// fields (hostel_id, room_id, room_number) are set exactly once, by
// allocation, and only while status is "approved".
type Application struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	StudentID string             `bson:"student_id" json:"student_id"`

	FullName   string `bson:"full_name" json:"full_name"`
	FullNameCI string `bson:"full_name_ci" json:"full_name_ci"`
	Gender     string `bson:"gender" json:"gender"`

	// Opaque applicant payload. Recorded and displayed, never
	// interpreted by the engine.
	RegistrationNumber string  `bson:"registration_number,omitempty" json:"registration_number,omitempty"`
	Program            string  `bson:"program,omitempty" json:"program,omitempty"`
	YearOfStudy        int     `bson:"year_of_study,omitempty" json:"year_of_study,omitempty"`
	Phone              string  `bson:"phone,omitempty" json:"phone,omitempty"`
	Email              string  `bson:"email,omitempty" json:"email,omitempty"`
	HomeAddress        string  `bson:"home_address,omitempty" json:"home_address,omitempty"`
	DistanceKM         float64 `bson:"distance_km,omitempty" json:"distance_km,omitempty"`
	GuardianName       string  `bson:"guardian_name,omitempty" json:"guardian_name,omitempty"`
	GuardianIncome     string  `bson:"guardian_income,omitempty" json:"guardian_income,omitempty"`
	SpecialReasons     string  `bson:"special_reasons,omitempty" json:"special_reasons,omitempty"`

	// Opaque URLs for uploaded supporting documents; file storage is
	// an external collaborator and contents are never inspected here.
	DocumentURLs []string `bson:"document_urls,omitempty" json:"document_urls,omitempty"`

	Status     string      `bson:"status" json:"status"`
	Evaluation *Evaluation `bson:"evaluation,omitempty" json:"evaluation,omitempty"`

	// Set by allocation on success; absent otherwise.
	HostelID   *primitive.ObjectID `bson:"hostel_id,omitempty" json:"hostel_id,omitempty"`
	RoomID     *primitive.ObjectID `bson:"room_id,omitempty" json:"room_id,omitempty"`
	RoomNumber string              `bson:"room_number,omitempty" json:"room_number,omitempty"`
	AssignedAt *time.Time          `bson:"assigned_at,omitempty" json:"assigned_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Allocated reports whether the application is already bound to a room.
func (a Application) Allocated() bool {
	return a.RoomID != nil
}

// Evaluation is the admin-entered scoring attached to an application.
// TotalMarks is derived from the four mark fields and is never set
// independently.
type Evaluation struct {
	DistanceMarks             float64 `bson:"distance_marks" json:"distance_marks"`
	IncomeMarks               float64 `bson:"income_marks" json:"income_marks"`
	SpecialReasonsParentMarks float64 `bson:"special_reasons_parent_marks" json:"special_reasons_parent_marks"`
	SpecialReasonsMarks       float64 `bson:"special_reasons_marks" json:"special_reasons_marks"`
	TotalMarks                float64 `bson:"total_marks" json:"total_marks"`

	Recommendation string `bson:"recommendation,omitempty" json:"recommendation,omitempty"`
	FinalDecision  string `bson:"final_decision,omitempty" json:"final_decision,omitempty"`

	// Free-text sign-off fields, opaque to the engine.
	EvaluatorSignature string `bson:"evaluator_signature,omitempty" json:"evaluator_signature,omitempty"`
	CheckedBy          string `bson:"checked_by,omitempty" json:"checked_by,omitempty"`

	EvaluatedAt time.Time `bson:"evaluated_at" json:"evaluated_at"`
}
