package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ashiquzzaman/mongocms/internal/app/store/storeerr"
)

// All returns every document in the collection, unordered.
func (r *Repository[T]) All(ctx context.Context) ([]*T, error) {
	return r.FindAll(ctx, bson.M{})
}

// Any reports whether at least one document matches the filter.
func (r *Repository[T]) Any(ctx context.Context, filter bson.M) (bool, error) {
	coll, err := r.Collection()
	if err != nil {
		return false, err
	}
	n, err := coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Exists is an alias for Any, kept for callers phrasing the check as
// an existence test.
func (r *Repository[T]) Exists(ctx context.Context, filter bson.M) (bool, error) {
	return r.Any(ctx, filter)
}

// FindAll returns every document matching the filter.
func (r *Repository[T]) FindAll(ctx context.Context, filter bson.M) ([]*T, error) {
	return r.find(ctx, filter)
}

// FindPage returns one page of matching documents: skip
// pageIndex*pageSize, then take pageSize. Both values are zero-based
// and must be non-negative. A page beyond the data, or a zero page
// size, is an empty slice.
func (r *Repository[T]) FindPage(ctx context.Context, filter bson.M, pageIndex, pageSize int) ([]*T, error) {
	if pageIndex < 0 || pageSize < 0 {
		return nil, storeerr.ErrInvalidPage
	}
	if pageSize == 0 {
		// The driver treats limit 0 as "no limit", which would return
		// everything instead of an empty take.
		if err := r.guard(); err != nil {
			return nil, err
		}
		return []*T{}, nil
	}
	return r.find(ctx, filter,
		options.Find().SetSkip(int64(pageIndex)*int64(pageSize)).SetLimit(int64(pageSize)))
}

// Count returns the total, unfiltered document count.
func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	coll, err := r.Collection()
	if err != nil {
		return 0, err
	}
	return coll.CountDocuments(ctx, bson.M{})
}

func (r *Repository[T]) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*T, error) {
	coll, err := r.Collection()
	if err != nil {
		return nil, err
	}
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	return decodeAll[T](ctx, cur)
}

func decodeAll[T any](ctx context.Context, cur *mongo.Cursor) ([]*T, error) {
	defer cur.Close(ctx)
	var out []*T
	for cur.Next(ctx) {
		e := new(T)
		if err := cur.Decode(e); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, cur.Err()
}
