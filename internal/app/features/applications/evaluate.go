// internal/app/features/applications/evaluate.go
package applications

import (
	"context"
	"net/http"

	applicationstore "github.com/dalemusser/hostelhub/internal/app/store/applications"
	"github.com/dalemusser/hostelhub/internal/app/system/evaluation"
	"github.com/dalemusser/hostelhub/internal/app/system/httpjson"
	"github.com/dalemusser/hostelhub/internal/app/system/timeouts"
	"github.com/dalemusser/hostelhub/internal/domain/models"
	"go.uber.org/zap"
)

// evaluateResponse carries the re-read application plus the signal the
// admin UI uses to decide whether to open the allocation flow.
type evaluateResponse struct {
	Application   models.Application `json:"application"`
	StatusChanged bool               `json:"status_changed"`
}

// HandleEvaluate records an evaluation on an application. The total is
// recomputed server-side from the submitted marks. A final decision of
// "approve" or "not_approve" moves the status; an empty decision saves
// the evaluation as work in progress.
//
// Re-evaluating an already-decided application overwrites the previous
// evaluation. It does not undo an existing room assignment.
func (h *Handler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	var in evaluation.Input
	if err := httpjson.Decode(r, &in); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := applicationstore.New(h.DB, h.Log)
	app, err := store.GetByID(ctx, id)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	updated, statusChanged, err := evaluation.Apply(app, in)
	if err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}

	// Persist the status whenever a decision was made, even if it
	// matches the current one, so re-evaluation stays idempotent.
	status := ""
	if in.FinalDecision != "" {
		status = updated.Status
	}
	if err := store.SaveEvaluation(ctx, id, *updated.Evaluation, status); err != nil {
		httpjson.Error(w, h.Log, err)
		return
	}
	h.Log.Info("application evaluated",
		zap.String("application_id", id.Hex()),
		zap.Float64("total_marks", updated.Evaluation.TotalMarks),
		zap.String("final_decision", in.FinalDecision),
		zap.Bool("status_changed", statusChanged),
	)

	httpjson.Write(w, http.StatusOK, evaluateResponse{
		Application:   updated,
		StatusChanged: statusChanged,
	})
}
