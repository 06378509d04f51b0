package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	applicationstore "github.com/dalemusser/hostelhub/internal/app/store/applications"
	hostelstore "github.com/dalemusser/hostelhub/internal/app/store/hostels"
	roomstore "github.com/dalemusser/hostelhub/internal/app/store/rooms"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// testMongoURI returns the MongoDB URI for tests. Override with
// HOSTELHUB_TEST_MONGO_URI; defaults to a local instance.
func testMongoURI() string {
	if uri := os.Getenv("HOSTELHUB_TEST_MONGO_URI"); uri != "" {
		return uri
	}
	return "mongodb://localhost:27017"
}

// SetupTestDB connects to the test MongoDB instance and returns a
// uniquely named database that is dropped on test cleanup. Collection
// indexes are created up front so uniqueness constraints hold in
// tests. Tests are skipped when no MongoDB is reachable.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(testMongoURI()))
	if err != nil {
		t.Skipf("skipping: cannot create mongo client: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("skipping: no MongoDB reachable at %s: %v", testMongoURI(), err)
	}

	db := client.Database(fmt.Sprintf("hostelhub_test_%d", time.Now().UnixNano()))

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Drop(ctx); err != nil {
			t.Logf("failed to drop test database %s: %v", db.Name(), err)
		}
		_ = client.Disconnect(ctx)
	})

	if err := hostelstore.New(db).EnsureIndexes(ctx); err != nil {
		t.Fatalf("failed to ensure hostel indexes: %v", err)
	}
	if err := roomstore.New(db).EnsureIndexes(ctx); err != nil {
		t.Fatalf("failed to ensure room indexes: %v", err)
	}
	if err := applicationstore.New(db, zap.NewNop()).EnsureIndexes(ctx); err != nil {
		t.Fatalf("failed to ensure application indexes: %v", err)
	}

	return db
}

// TestContext returns a context with a generous timeout for test
// database operations.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
