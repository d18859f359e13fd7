package service_test

import (
	"context"

	"github.com/maxviazov/gym-console/internal/repository"
)

// fakeRepo is an in-memory repository.Repository keyed by insertion order.
type fakeRepo[T any] struct {
	nextID    int64
	items     map[int64]T
	order     []int64
	setID     func(*T, int64)
	createErr error
	listErr   error
	deleteErr error
	created   []T
	updated   []T
	deleted   []int64
}

func newFakeRepo[T any](setID func(*T, int64)) *fakeRepo[T] {
	return &fakeRepo[T]{nextID: 1, items: map[int64]T{}, setID: setID}
}

func (f *fakeRepo[T]) List(_ context.Context) ([]T, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]T, 0, len(f.order))
	for _, id := range f.order {
		if it, ok := f.items[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeRepo[T]) GetByID(_ context.Context, id int64) (T, error) {
	it, ok := f.items[id]
	if !ok {
		var zero T
		return zero, repository.ErrNotFound
	}
	return it, nil
}

func (f *fakeRepo[T]) Create(_ context.Context, in T) (T, error) {
	if f.createErr != nil {
		var zero T
		return zero, f.createErr
	}
	id := f.nextID
	f.nextID++
	f.setID(&in, id)
	f.items[id] = in
	f.order = append(f.order, id)
	f.created = append(f.created, in)
	return in, nil
}

func (f *fakeRepo[T]) Update(_ context.Context, id int64, in T) (T, error) {
	if _, ok := f.items[id]; !ok {
		var zero T
		return zero, repository.ErrNotFound
	}
	f.setID(&in, id)
	f.items[id] = in
	f.updated = append(f.updated, in)
	return in, nil
}

func (f *fakeRepo[T]) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.items[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.items, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func yes(context.Context, string) bool { return true }
func no(context.Context, string) bool  { return false }
