// Package identity implements the user-management contract on top of
// the users collection.
//
// Lookup and lifecycle operations (Create, Update, Delete, Find*) talk
// to storage. Everything else mutates a fetched User in memory only:
// nothing is persisted until the caller invokes Update, which replaces
// the whole document. Two callers updating the same user concurrently
// race at the document level; last write wins.
package identity

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ashiquzzaman/mongocms/internal/app/store/dbctx"
	"github.com/ashiquzzaman/mongocms/internal/app/store/storeerr"
	"github.com/ashiquzzaman/mongocms/internal/domain/models"
)

const usersCollection = "users"

// Store adapts the users collection to the identity contract.
type Store struct {
	c *mongo.Collection

	mu     sync.Mutex
	closed bool
}

// New binds a Store to the users collection of the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(usersCollection)}
}

// FromContext binds a Store through a store Context.
func FromContext(c *dbctx.Context) *Store {
	return New(c.Database())
}

// Close marks the store disposed; every later call fails with
// storeerr.ErrDisposed. The connection belongs to the Context and is
// left open.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}

func (s *Store) guard() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storeerr.ErrDisposed
	}
	return nil
}

// guardUser is the common preamble for every operation taking a user:
// disposed check first, then the required-argument check, before any
// storage access.
func (s *Store) guardUser(u *models.User) error {
	if err := s.guard(); err != nil {
		return err
	}
	if u == nil {
		return storeerr.ErrNilUser
	}
	return nil
}

// Create inserts the user aggregate as a new document, assigning an id
// when unset.
func (s *Store) Create(ctx context.Context, u *models.User) error {
	if err := s.guardUser(u); err != nil {
		return err
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	_, err := s.c.InsertOne(ctx, u)
	return err
}

// Update replaces the stored user document wholesale, creating it when
// absent. This is the only persistence path for the embedded roles,
// logins, and claims.
func (s *Store) Update(ctx context.Context, u *models.User) error {
	if err := s.guardUser(u); err != nil {
		return err
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": u.ID}, u,
		options.Replace().SetUpsert(true))
	return err
}

// Delete removes the user's document by id.
func (s *Store) Delete(ctx context.Context, u *models.User) error {
	if err := s.guardUser(u); err != nil {
		return err
	}
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": u.ID})
	return err
}

// FindByID looks a user up by id. A missing user is a nil result, not
// an error.
func (s *Store) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

// FindByName looks a user up by exact user name.
func (s *Store) FindByName(ctx context.Context, userName string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"user_name": userName})
}

// FindByEmail looks a user up by exact email.
func (s *Store) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

// FindByLogin looks a user up by external login reference. The match
// runs store-side against the embedded logins array; provider and key
// must match within the same element.
func (s *Store) FindByLogin(ctx context.Context, provider, key string) (*models.User, error) {
	return s.findOne(ctx, bson.M{
		"logins": bson.M{"$elemMatch": bson.M{
			"login_provider": provider,
			"provider_key":   key,
		}},
	})
}

func (s *Store) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	var u models.User
	if err := s.c.FindOne(ctx, filter).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
