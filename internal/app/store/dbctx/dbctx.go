// Package dbctx owns the MongoDB connection for the store layer and
// hands out typed collection handles.
//
// A Context either opens its own client (Open/OpenNamed) or wraps one
// opened elsewhere (Borrow). Close disconnects only clients the
// Context opened itself; borrowed clients are never closed here.
package dbctx

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ashiquzzaman/mongocms/internal/app/store/names"
)

// DefaultConnection is the connection name used by Open.
const DefaultConnection = "DefaultConnection"

// envPrefix is the environment fallback for named connections,
// e.g. MONGOCMS_CONN_DEFAULTCONNECTION.
const envPrefix = "MONGOCMS_CONN_"

var (
	// ErrNoDatabase is returned when a connection URI carries no
	// database name in its path.
	ErrNoDatabase = errors.New("no database name specified in connection string")

	// ErrUnknownConnection is returned when a named connection has not
	// been registered and no environment fallback exists.
	ErrUnknownConnection = errors.New("unknown named connection")
)

var (
	connMu      sync.RWMutex
	connections = make(map[string]string)
)

// RegisterConnection maps a connection name to a MongoDB URI. Called
// from bootstrap once config is loaded, before any Context is opened.
func RegisterConnection(name, uri string) {
	connMu.Lock()
	defer connMu.Unlock()
	connections[name] = uri
}

func lookupConnection(name string) (string, bool) {
	connMu.RLock()
	uri, ok := connections[name]
	connMu.RUnlock()
	if ok {
		return uri, true
	}
	if v := os.Getenv(envPrefix + strings.ToUpper(name)); v != "" {
		return v, true
	}
	return "", false
}

// Context bundles a Mongo client and database handle with connection
// ownership. All store packages reach Mongo through one of these.
type Context struct {
	client *mongo.Client
	db     *mongo.Database
	owned  bool

	mu     sync.Mutex
	closed bool
}

// Open connects using the DefaultConnection named configuration.
func Open(ctx context.Context) (*Context, error) {
	return OpenNamed(ctx, DefaultConnection)
}

// OpenNamed connects using either a MongoDB URI or a registered
// connection name. Strings beginning with mongodb:// or mongodb+srv://
// are used directly; anything else is looked up in the connection
// registry (with an environment fallback).
func OpenNamed(ctx context.Context, nameOrURI string) (*Context, error) {
	uri := nameOrURI
	if !isMongoURI(uri) {
		resolved, ok := lookupConnection(nameOrURI)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownConnection, nameOrURI)
		}
		uri = resolved
	}
	return openURI(ctx, uri)
}

// Borrow wraps an already-connected client. The caller keeps ownership;
// Close on the returned Context never disconnects the client.
func Borrow(client *mongo.Client, dbName string) (*Context, error) {
	if client == nil {
		return nil, errors.New("client is required")
	}
	if dbName == "" {
		return nil, ErrNoDatabase
	}
	return &Context{client: client, db: client.Database(dbName), owned: false}, nil
}

func openURI(ctx context.Context, uri string) (*Context, error) {
	dbName, err := DatabaseName(uri)
	if err != nil {
		return nil, err
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Context{client: client, db: client.Database(dbName), owned: true}, nil
}

// Client returns the underlying Mongo client.
func (c *Context) Client() *mongo.Client { return c.client }

// Database returns the database handle.
func (c *Context) Database() *mongo.Database { return c.db }

// Close releases the connection if this Context opened it. Borrowed
// clients are left untouched. Close is idempotent.
func (c *Context) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	if !c.owned {
		return nil
	}
	return c.client.Disconnect(ctx)
}

// CollectionFor returns the collection handle for entity type T,
// combining the Context's database with the resolved collection name.
func CollectionFor[T any](c *Context) (*mongo.Collection, error) {
	name, err := names.For[T]()
	if err != nil {
		return nil, err
	}
	return c.db.Collection(name), nil
}

// DatabaseName extracts the database name from a MongoDB URI path.
func DatabaseName(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	name := strings.Trim(u.Path, "/")
	if name == "" {
		return "", ErrNoDatabase
	}
	return name, nil
}

func isMongoURI(s string) bool {
	l := strings.ToLower(s)
	return strings.HasPrefix(l, "mongodb://") || strings.HasPrefix(l, "mongodb+srv://")
}
