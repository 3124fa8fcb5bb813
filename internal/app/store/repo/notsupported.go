package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/ashiquzzaman/mongocms/internal/app/store/storeerr"
)

// The operations below are part of the repository contract but are
// intentionally unimplemented. They fail loudly with
// storeerr.ErrNotSupported rather than silently doing nothing, so a
// caller depending on them finds out immediately. A disposed
// repository still reports ErrDisposed first.

func (r *Repository[T]) guard() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return storeerr.ErrDisposed
	}
	return nil
}

// SelectOne is not supported.
func (r *Repository[T]) SelectOne(ctx context.Context, filter bson.M) (*T, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	return nil, storeerr.ErrNotSupported
}

// Find is not supported; use FindAll or GetByID.
func (r *Repository[T]) Find(ctx context.Context, filter bson.M) (*T, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	return nil, storeerr.ErrNotSupported
}

// First is not supported.
func (r *Repository[T]) First(ctx context.Context, filter bson.M) (*T, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	return nil, storeerr.ErrNotSupported
}

// FirstOrDefault is not supported.
func (r *Repository[T]) FirstOrDefault(ctx context.Context, filter bson.M) (*T, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	return nil, storeerr.ErrNotSupported
}

// Remove is not supported; it is distinct from Delete, which removes
// by id and is implemented.
func (r *Repository[T]) Remove(ctx context.Context, e *T) error {
	if err := r.guard(); err != nil {
		return err
	}
	return storeerr.ErrNotSupported
}

// Modify is not supported.
func (r *Repository[T]) Modify(ctx context.Context, e *T) error {
	if err := r.guard(); err != nil {
		return err
	}
	return storeerr.ErrNotSupported
}

// TrackItem is not supported.
func (r *Repository[T]) TrackItem(e *T) error {
	if err := r.guard(); err != nil {
		return err
	}
	return storeerr.ErrNotSupported
}

// Merge is not supported.
func (r *Repository[T]) Merge(persisted, current *T) error {
	if err := r.guard(); err != nil {
		return err
	}
	return storeerr.ErrNotSupported
}

// GetPaged is not supported; use FindPage.
func (r *Repository[T]) GetPaged(ctx context.Context, pageIndex, pageCount int, orderBy string, ascending bool) ([]*T, error) {
	if err := r.guard(); err != nil {
		return nil, err
	}
	return nil, storeerr.ErrNotSupported
}
