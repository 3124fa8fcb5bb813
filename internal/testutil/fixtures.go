package testutil

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ashiquzzaman/mongocms/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateCountry inserts a country document and returns it with its
// generated ID.
func (f *Fixtures) CreateCountry(ctx context.Context, code, name string) models.Country {
	f.t.Helper()

	country := models.Country{
		ID:          primitive.NewObjectID(),
		CountryCode: code,
		CountryName: name,
	}
	if _, err := f.db.Collection("countries").InsertOne(ctx, country); err != nil {
		f.t.Fatalf("failed to create test country: %v", err)
	}
	return country
}

// CreateUser inserts a user document with the given roles and returns
// it with its generated ID.
func (f *Fixtures) CreateUser(ctx context.Context, userName, email string, roles ...string) models.User {
	f.t.Helper()

	if roles == nil {
		roles = []string{}
	}
	user := models.User{
		ID:       primitive.NewObjectID(),
		UserName: userName,
		Email:    email,
		Roles:    roles,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}
