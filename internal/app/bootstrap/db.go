// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	applicationstore "github.com/dalemusser/hostelhub/internal/app/store/applications"
	hostelstore "github.com/dalemusser/hostelhub/internal/app/store/hostels"
	roomstore "github.com/dalemusser/hostelhub/internal/app/store/rooms"
	"github.com/dalemusser/hostelhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection and verifies it with a
// ping before the app proceeds to schema setup and handler building.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeouts.Ping())
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase),
	)

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes each collection relies on. Index
// creation is idempotent; re-running on startup is safe.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	if err := hostelstore.New(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("hostels indexes: %w", err)
	}
	if err := roomstore.New(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("rooms indexes: %w", err)
	}
	if err := applicationstore.New(db, logger).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("applications indexes: %w", err)
	}

	logger.Info("database indexes ensured")
	return nil
}
