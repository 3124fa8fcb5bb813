// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ashiquzzaman/mongocms/internal/app/store/dbctx"
)

// DBDeps holds database dependencies for the app.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Store wraps the client and database for the repository layer. It
	// borrows the connection; Shutdown owns the disconnect.
	Store *dbctx.Context
}
