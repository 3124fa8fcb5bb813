// Package repo provides a generic CRUD and query repository over a
// single MongoDB collection.
//
// A Repository is bound to an entity type and resolves its collection
// through the store Context on first use. Entities surface their
// document id by implementing Entity on a pointer receiver; filters
// are plain bson.M documents evaluated store-side. Driver errors pass
// through unwrapped and nothing is retried at this layer.
package repo

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ashiquzzaman/mongocms/internal/app/store/dbctx"
	"github.com/ashiquzzaman/mongocms/internal/app/store/storeerr"
)

// Entity is implemented (on a pointer receiver) by every stored type.
type Entity interface {
	GetID() primitive.ObjectID
	SetID(primitive.ObjectID)
}

// Repository is a per-entity-type facade over one collection.
type Repository[T any] struct {
	ctx *dbctx.Context

	mu     sync.Mutex
	coll   *mongo.Collection
	closed bool
}

// New builds a Repository for T bound to the given store Context. The
// collection handle is resolved lazily on first use.
func New[T any](c *dbctx.Context) *Repository[T] {
	return &Repository[T]{ctx: c}
}

// Collection returns the bound collection handle, resolving it through
// the Context and naming table on first call.
func (r *Repository[T]) Collection() (*mongo.Collection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, storeerr.ErrDisposed
	}
	if r.coll == nil {
		coll, err := dbctx.CollectionFor[T](r.ctx)
		if err != nil {
			return nil, err
		}
		r.coll = coll
	}
	return r.coll, nil
}

// Close marks the repository disposed. Every later call fails with
// storeerr.ErrDisposed. The underlying connection is owned by the
// Context and is not touched here.
func (r *Repository[T]) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
}

// entityOf asserts the Entity interface on *T.
func entityOf[T any](e *T) (Entity, error) {
	if e == nil {
		return nil, storeerr.ErrNilEntity
	}
	ent, ok := any(e).(Entity)
	if !ok {
		return nil, storeerr.ErrNoID
	}
	return ent, nil
}

// Create inserts one entity, assigning a fresh ObjectID when the id is
// unset, and returns the same entity post-assignment.
func (r *Repository[T]) Create(ctx context.Context, e *T) (*T, error) {
	coll, err := r.Collection()
	if err != nil {
		return nil, err
	}
	ent, err := entityOf(e)
	if err != nil {
		return nil, err
	}
	if ent.GetID().IsZero() {
		ent.SetID(primitive.NewObjectID())
	}
	if _, err := coll.InsertOne(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// InsertMany batch-inserts entities, assigning ids where unset.
func (r *Repository[T]) InsertMany(ctx context.Context, entities []*T) error {
	coll, err := r.Collection()
	if err != nil {
		return err
	}
	if len(entities) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(entities))
	for _, e := range entities {
		ent, err := entityOf(e)
		if err != nil {
			return err
		}
		if ent.GetID().IsZero() {
			ent.SetID(primitive.NewObjectID())
		}
		docs = append(docs, e)
	}
	_, err = coll.InsertMany(ctx, docs)
	return err
}

// GetByID is a point lookup. A missing document is a nil result, not
// an error.
func (r *Repository[T]) GetByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	coll, err := r.Collection()
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(out); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return out, nil
}

// Update replaces the stored document wholesale, keyed by id, creating
// it when absent (save semantics). An entity without an id gets one
// assigned, which always takes the insert path.
func (r *Repository[T]) Update(ctx context.Context, e *T) error {
	coll, err := r.Collection()
	if err != nil {
		return err
	}
	ent, err := entityOf(e)
	if err != nil {
		return err
	}
	if ent.GetID().IsZero() {
		ent.SetID(primitive.NewObjectID())
	}
	_, err = coll.ReplaceOne(ctx, bson.M{"_id": ent.GetID()}, e,
		options.Replace().SetUpsert(true))
	return err
}

// UpdateAll upserts each entity in sequence. There is no atomicity
// across the batch: a failure partway through leaves the earlier
// upserts committed.
func (r *Repository[T]) UpdateAll(ctx context.Context, entities []*T) error {
	for _, e := range entities {
		if err := r.Update(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the document with the given id. Deleting an id that
// matches nothing is not an error.
func (r *Repository[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	coll, err := r.Collection()
	if err != nil {
		return err
	}
	_, err = coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// DeleteEntity removes the document whose id the entity carries.
func (r *Repository[T]) DeleteEntity(ctx context.Context, e *T) error {
	ent, err := entityOf(e)
	if err != nil {
		return err
	}
	return r.Delete(ctx, ent.GetID())
}

// DeleteWhere removes every document matching the filter.
func (r *Repository[T]) DeleteWhere(ctx context.Context, filter bson.M) error {
	coll, err := r.Collection()
	if err != nil {
		return err
	}
	_, err = coll.DeleteMany(ctx, filter)
	return err
}

// DeleteAll removes every document in the collection.
func (r *Repository[T]) DeleteAll(ctx context.Context) error {
	return r.DeleteWhere(ctx, bson.M{})
}
