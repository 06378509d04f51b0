// internal/app/features/allocation/handler.go

// Package allocation exposes the room assignment flow over JSON:
// listing the hostels and rooms an approved application is eligible
// for, and committing an assignment.
package allocation

import (
	applicationstore "github.com/dalemusser/hostelhub/internal/app/store/applications"
	roomstore "github.com/dalemusser/hostelhub/internal/app/store/rooms"
	allocsvc "github.com/dalemusser/hostelhub/internal/app/system/allocation"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for allocation.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs an allocation handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
	}
}

func (h *Handler) service() *allocsvc.Service {
	return allocsvc.New(roomstore.New(h.DB), applicationstore.New(h.DB, h.Log), h.Log)
}
