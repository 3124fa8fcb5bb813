package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// CollectionExists reports whether the bound collection exists in the
// database (a collection is created lazily on first write).
func (r *Repository[T]) CollectionExists(ctx context.Context) (bool, error) {
	coll, err := r.Collection()
	if err != nil {
		return false, err
	}
	names, err := coll.Database().ListCollectionNames(ctx, bson.M{"name": coll.Name()})
	if err != nil {
		return false, err
	}
	return len(names) > 0, nil
}

// Drop irreversibly deletes the collection and all its data.
func (r *Repository[T]) Drop(ctx context.Context) error {
	coll, err := r.Collection()
	if err != nil {
		return err
	}
	return coll.Drop(ctx)
}

// IsCapped reports whether the collection is capped.
func (r *Repository[T]) IsCapped(ctx context.Context) (bool, error) {
	stats, err := r.Stats(ctx)
	if err != nil {
		return false, err
	}
	capped, _ := stats["capped"].(bool)
	return capped, nil
}

// Stats returns the raw collStats document for the collection.
func (r *Repository[T]) Stats(ctx context.Context) (bson.M, error) {
	coll, err := r.Collection()
	if err != nil {
		return nil, err
	}
	var out bson.M
	err = coll.Database().RunCommand(ctx, bson.D{{Key: "collStats", Value: coll.Name()}}).Decode(&out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TotalSize returns the total size of the collection's data plus
// indexes, in bytes.
func (r *Repository[T]) TotalSize(ctx context.Context) (int64, error) {
	stats, err := r.Stats(ctx)
	if err != nil {
		return 0, err
	}
	return statInt(stats, "size") + statInt(stats, "totalIndexSize"), nil
}

// StorageSize returns the allocated storage size of the collection,
// in bytes.
func (r *Repository[T]) StorageSize(ctx context.Context) (int64, error) {
	stats, err := r.Stats(ctx)
	if err != nil {
		return 0, err
	}
	return statInt(stats, "storageSize"), nil
}

// Validate runs the validate command against the collection and
// returns its raw result.
func (r *Repository[T]) Validate(ctx context.Context) (bson.M, error) {
	coll, err := r.Collection()
	if err != nil {
		return nil, err
	}
	var out bson.M
	err = coll.Database().RunCommand(ctx, bson.D{{Key: "validate", Value: coll.Name()}}).Decode(&out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// statInt tolerates the numeric BSON types collStats reports across
// server versions.
func statInt(stats bson.M, key string) int64 {
	switch v := stats[key].(type) {
	case int32:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}
