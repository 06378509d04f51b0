// internal/app/system/evaluation/evaluation.go

// Package evaluation implements the scoring and decision engine for
// accommodation applications.
//
// Marks arrive as form strings. ComputeTotal is a pure function over
// them: blank or unparseable fields count as zero, the four fields are
// summed, and the result is rounded to one decimal place. The total is
// always derived; it is never accepted from the caller.
package evaluation

import (
	"math"
	"strconv"
	"time"

	"github.com/dalemusser/hostelhub/internal/app/system/apperr"
	"github.com/dalemusser/hostelhub/internal/domain/models"
)

// Marks bounds. Each of the four fields is scored 0-100, so the derived
// total lies in 0-400.
const (
	MinMark = 0
	MaxMark = 100
)

// Marks carries the four admin-entered mark fields as submitted.
type Marks struct {
	Distance             string `json:"distance_marks"`
	Income               string `json:"income_marks"`
	SpecialReasonsParent string `json:"special_reasons_parent_marks"`
	SpecialReasons       string `json:"special_reasons_marks"`
}

// Input is one evaluation submission: the marks plus decision and
// sign-off metadata.
type Input struct {
	Marks
	Recommendation     string `json:"recommendation,omitempty"`
	FinalDecision      string `json:"final_decision,omitempty"`
	EvaluatorSignature string `json:"evaluator_signature,omitempty"`
	CheckedBy          string `json:"checked_by,omitempty"`
}

// parseMark converts one form field to a number. Missing or
// unparseable input counts as zero, matching how a blank field on the
// evaluation form is treated.
func parseMark(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ComputeTotal sums the four mark fields and rounds to one decimal.
// Pure and idempotent: same marks, same total, no side effects.
func ComputeTotal(m Marks) float64 {
	sum := parseMark(m.Distance) +
		parseMark(m.Income) +
		parseMark(m.SpecialReasonsParent) +
		parseMark(m.SpecialReasons)
	return round1(sum)
}

// validate checks the static constraints on an evaluation submission:
// every parseable mark must lie in [0,100] and the final decision must
// be one of "approve", "not_approve", or empty.
func validate(in Input) error {
	fields := []struct {
		name  string
		value string
	}{
		{"distance_marks", in.Distance},
		{"income_marks", in.Income},
		{"special_reasons_parent_marks", in.SpecialReasonsParent},
		{"special_reasons_marks", in.SpecialReasons},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		v, err := strconv.ParseFloat(f.value, 64)
		if err != nil {
			continue // unparseable counts as zero, not an error
		}
		if v < MinMark || v > MaxMark {
			return apperr.Validation(f.name, "must be between 0 and 100")
		}
	}

	switch in.FinalDecision {
	case "", models.DecisionApprove, models.DecisionNotApprove:
	default:
		return apperr.Validation("final_decision", `must be "approve", "not_approve", or empty`)
	}

	switch in.Recommendation {
	case "", models.RecommendationRecommended, models.RecommendationNotRecommended, models.RecommendationReconsider:
	default:
		return apperr.Validation("recommendation", "unknown recommendation value")
	}

	return nil
}

// Apply recomputes the evaluation for app from in and folds it into a
// copy of the application.
//
// A final decision of "approve" moves the status to approved,
// "not_approve" moves it to rejected, and an empty decision leaves the
// status untouched (an evaluation can be saved as work in progress).
// The returned bool tells the caller whether the status changed, which
// is the signal to open the allocation flow.
func Apply(app models.Application, in Input) (models.Application, bool, error) {
	if err := validate(in); err != nil {
		return app, false, err
	}

	ev := models.Evaluation{
		DistanceMarks:             round1(parseMark(in.Distance)),
		IncomeMarks:               round1(parseMark(in.Income)),
		SpecialReasonsParentMarks: round1(parseMark(in.SpecialReasonsParent)),
		SpecialReasonsMarks:       round1(parseMark(in.SpecialReasons)),
		TotalMarks:                ComputeTotal(in.Marks),
		Recommendation:            in.Recommendation,
		FinalDecision:             in.FinalDecision,
		EvaluatorSignature:        in.EvaluatorSignature,
		CheckedBy:                 in.CheckedBy,
		EvaluatedAt:               time.Now().UTC(),
	}
	app.Evaluation = &ev

	statusChanged := false
	switch in.FinalDecision {
	case models.DecisionApprove:
		if app.Status != models.StatusApproved {
			app.Status = models.StatusApproved
			statusChanged = true
		}
	case models.DecisionNotApprove:
		if app.Status != models.StatusRejected {
			app.Status = models.StatusRejected
			statusChanged = true
		}
	}

	return app, statusChanged, nil
}
