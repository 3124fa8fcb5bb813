// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/ashiquzzaman/mongocms/internal/app/store/dbctx"
	"github.com/ashiquzzaman/mongocms/internal/app/store/names"
	"github.com/ashiquzzaman/mongocms/internal/app/store/repo"
	"github.com/ashiquzzaman/mongocms/internal/domain/models"
)

// registerCollections maps domain types to collection names. Types
// without an entry fall back to their Go type name, which is rarely
// what the data expects, so every stored type is listed here.
func registerCollections() {
	names.Register[models.User]("users")
	names.Register[models.Country]("countries")
}

// ConnectDB establishes the MongoDB connection and bundles the shared
// database dependencies.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	registerCollections()

	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		logger.Error("mongo connect failed", zap.Error(err))
		return DBDeps{}, err
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		logger.Error("mongo ping failed", zap.Error(err))
		_ = client.Disconnect(context.Background())
		return DBDeps{}, err
	}

	store, err := dbctx.Borrow(client, appCfg.MongoDatabase)
	if err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, err
	}

	// Register the default named connection so callers opening their
	// own Context by name resolve to the configured deployment.
	dbctx.RegisterConnection(dbctx.DefaultConnection,
		connectionURI(appCfg.MongoURI, appCfg.MongoDatabase))

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
		Store:         store,
	}, nil
}

// connectionURI ensures the URI carries a database path segment, since
// named connections resolve their database from the URI itself.
func connectionURI(uri, dbName string) string {
	if _, err := dbctx.DatabaseName(uri); err == nil {
		return uri
	}
	base, query, hasQuery := strings.Cut(uri, "?")
	out := strings.TrimRight(base, "/") + "/" + dbName
	if hasQuery {
		out += "?" + query
	}
	return out
}

// EnsureSchema creates the indexes the queries depend on.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	users := repo.New[models.User](deps.Store)
	if err := users.EnsureIndex(ctx, "user_name", false, true, true); err != nil {
		logger.Error("user_name index creation failed", zap.Error(err))
		return err
	}
	if err := users.EnsureIndex(ctx, "email", false, false, true); err != nil {
		logger.Error("email index creation failed", zap.Error(err))
		return err
	}
	loginKeys := []string{"logins.login_provider", "logins.provider_key"}
	if err := users.EnsureIndexes(ctx, loginKeys, false, false, true); err != nil {
		logger.Error("logins index creation failed", zap.Error(err))
		return err
	}

	countries := repo.New[models.Country](deps.Store)
	if err := countries.EnsureIndex(ctx, "country_code", false, false, false); err != nil {
		logger.Error("country_code index creation failed", zap.Error(err))
		return err
	}

	logger.Info("schema ensured")
	return nil
}
