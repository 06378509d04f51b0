// internal/app/features/applications/submit.go
package applications

import (
	"context"
	"net/http"

	applicationstore "github.com/dalemusser/hostelhub/internal/app/store/applications"
	"github.com/dalemusser/hostelhub/internal/app/system/httpjson"
	"github.com/dalemusser/hostelhub/internal/app/system/timeouts"
	"github.com/dalemusser/hostelhub/internal/domain/models"
	"go.uber.org/zap"
)

// submitInput is the application form payload. Beyond student_id and
// gender the fields are recorded verbatim; the engine never interprets
// them.
type submitInput struct {
	StudentID string `json:"student_id"`
	FullName  string `json:"full_name"`
	Gender    string `json:"gender"`

	RegistrationNumber string   `json:"registration_number,omitempty"`
	Program            string   `json:"program,omitempty"`
	YearOfStudy        int      `json:"year_of_study,omitempty"`
	Phone              string   `json:"phone,omitempty"`
	Email              string   `json:"email,omitempty"`
	HomeAddress        string   `json:"home_address,omitempty"`
	DistanceKM         float64  `json:"distance_km,omitempty"`
	GuardianName       string   `json:"guardian_name,omitempty"`
	GuardianIncome     string   `json:"guardian_income,omitempty"`
	SpecialReasons     string   `json:"special_reasons,omitempty"`
	DocumentURLs       []string `json:"document_urls,omitempty"`
}

// HandleSubmit accepts a new accommodation application. It always
// enters the system as pending, whatever the caller sends.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var in submitInput
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := applicationstore.New(h.DB, h.Log).Submit(ctx, models.Application{
		StudentID:          in.StudentID,
		FullName:           in.FullName,
		Gender:             in.Gender,
		RegistrationNumber: in.RegistrationNumber,
		Program:            in.Program,
		YearOfStudy:        in.YearOfStudy,
		Phone:              in.Phone,
		Email:              in.Email,
		HomeAddress:        in.HomeAddress,
		DistanceKM:         in.DistanceKM,
		GuardianName:       in.GuardianName,
		GuardianIncome:     in.GuardianIncome,
		SpecialReasons:     in.SpecialReasons,
		DocumentURLs:       in.DocumentURLs,
	})
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	h.Log.Info("application submitted",
		zap.String("application_id", created.ID.Hex()),
		zap.String("student_id", created.StudentID),
	)

	httpjson.Write(w, http.StatusCreated, created)
}
