package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndex creates a single-field index if it does not already
// exist. Calling it again with the same definition has no further
// effect.
func (r *Repository[T]) EnsureIndex(ctx context.Context, field string, descending, unique, sparse bool) error {
	return r.EnsureIndexes(ctx, []string{field}, descending, unique, sparse)
}

// EnsureIndexes creates a compound index over the given fields if it
// does not already exist.
func (r *Repository[T]) EnsureIndexes(ctx context.Context, fields []string, descending, unique, sparse bool) error {
	coll, err := r.Collection()
	if err != nil {
		return err
	}
	order := 1
	if descending {
		order = -1
	}
	keys := bson.D{}
	for _, f := range fields {
		keys = append(keys, bson.E{Key: f, Value: order})
	}
	model := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetUnique(unique).SetSparse(sparse),
	}
	_, err = coll.Indexes().CreateOne(ctx, model)
	return err
}

// DropIndex drops the index(es) keyed solely on the given field.
func (r *Repository[T]) DropIndex(ctx context.Context, field string) error {
	coll, err := r.Collection()
	if err != nil {
		return err
	}
	specs, err := coll.Indexes().ListSpecifications(ctx)
	if err != nil {
		return err
	}
	for _, spec := range specs {
		if spec.Name == "_id_" {
			continue
		}
		if indexKeyedOn(spec.KeysDocument, field) {
			if _, err := coll.Indexes().DropOne(ctx, spec.Name); err != nil {
				return err
			}
		}
	}
	return nil
}

// DropAllIndexes drops every index except the mandatory _id index.
func (r *Repository[T]) DropAllIndexes(ctx context.Context) error {
	coll, err := r.Collection()
	if err != nil {
		return err
	}
	_, err = coll.Indexes().DropAll(ctx)
	return err
}

// IndexExists reports whether an index keyed solely on the given field
// is present.
func (r *Repository[T]) IndexExists(ctx context.Context, field string) (bool, error) {
	coll, err := r.Collection()
	if err != nil {
		return false, err
	}
	specs, err := coll.Indexes().ListSpecifications(ctx)
	if err != nil {
		return false, err
	}
	for _, spec := range specs {
		if indexKeyedOn(spec.KeysDocument, field) {
			return true, nil
		}
	}
	return false, nil
}

// indexKeyedOn reports whether the keys document indexes exactly the
// one given field.
func indexKeyedOn(keys bson.Raw, field string) bool {
	elems, err := keys.Elements()
	if err != nil || len(elems) != 1 {
		return false
	}
	return elems[0].Key() == field
}
