// Package testutil provides shared helpers for integration tests that
// need a live MongoDB instance. Tests skip cleanly when no instance is
// reachable.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ashiquzzaman/mongocms/internal/app/store/dbctx"
	"github.com/ashiquzzaman/mongocms/internal/app/store/names"
	"github.com/ashiquzzaman/mongocms/internal/domain/models"
)

const testMongoEnv = "MONGOCMS_TEST_MONGO_URI"

func testMongoURI() string {
	if uri := os.Getenv(testMongoEnv); uri != "" {
		return uri
	}
	return "mongodb://localhost:27017"
}

func registerTestCollections() {
	names.Register[models.User]("users")
	names.Register[models.Country]("countries")
}

// SetupTestDB connects to the test MongoDB instance and returns a
// uniquely named database that is dropped when the test finishes. The
// test is skipped when no instance is reachable.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()
	registerTestCollections()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(testMongoURI()))
	if err != nil {
		t.Skipf("mongo unavailable at %s: %v", testMongoURI(), err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("mongo unreachable at %s: %v", testMongoURI(), err)
	}

	dbName := fmt.Sprintf("mongocms_test_%s", primitive.NewObjectID().Hex())
	db := client.Database(dbName)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}

// SetupStoreContext is SetupTestDB for store-layer tests: it wraps the
// test database in a borrowed store Context.
func SetupStoreContext(t *testing.T) *dbctx.Context {
	t.Helper()
	db := SetupTestDB(t)
	c, err := dbctx.Borrow(db.Client(), db.Name())
	if err != nil {
		t.Fatalf("borrow store context: %v", err)
	}
	return c
}

// TestContext returns a context with a generous timeout for test
// database operations.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
