// internal/app/features/hostels/handler.go

// Package hostels exposes the hostel and room catalog over JSON:
// creating and deleting hostels, listing them by gender, and managing
// the rooms inside a hostel.
package hostels

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the hostel catalog.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

// NewHandler constructs a hostels handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
	}
}
