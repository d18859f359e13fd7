// Package contract holds behaviour suites every repository.Repository
// implementation must pass, whatever transport sits behind it.
package contract

import (
	"context"
	"errors"
	"testing"

	"github.com/maxviazov/gym-console/internal/repository"
)

// Factory builds a fresh, empty repository and its cleanup.
type Factory[T any] func(t *testing.T) (repository.Repository[T], func())

// Fixture describes how to make and compare records of one resource.
type Fixture[T any] struct {
	Make Factory[T]
	// New returns a valid record to create; i makes it distinguishable.
	New func(i int) T
	ID  func(T) int64
	// Mutate changes a field the backend accepts on update.
	Mutate func(T) T
	// Same reports whether got carries the fields of want that the contract checks.
	Same func(want, got T) bool
}

func RunRepositoryContract[T any](t *testing.T, fx Fixture[T]) {
	t.Helper()

	t.Run("create_and_get", func(t *testing.T) {
		repo, cleanup := fx.Make(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, fx.New(1))
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if fx.ID(created) <= 0 {
			t.Fatalf("expected backend-assigned id, got %d", fx.ID(created))
		}
		got, err := repo.GetByID(ctx, fx.ID(created))
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !fx.Same(fx.New(1), got) {
			t.Fatalf("mismatch: %+v", got)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := fx.Make(t)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(context.Background(), 999999)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_keeps_backend_order", func(t *testing.T) {
		repo, cleanup := fx.Make(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		for i := 0; i < 7; i++ {
			if _, err := repo.Create(ctx, fx.New(i)); err != nil {
				t.Fatalf("seed %d: %v", i, err)
			}
		}
		items, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(items) != 7 {
			t.Fatalf("expected 7 items, got %d", len(items))
		}
		for i, it := range items {
			if !fx.Same(fx.New(i), it) {
				t.Fatalf("item %d out of order: %+v", i, it)
			}
		}
	})

	t.Run("list_empty", func(t *testing.T) {
		repo, cleanup := fx.Make(t)
		t.Cleanup(cleanup)
		items, err := repo.List(context.Background())
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", items)
		}
	})

	t.Run("update_changes_record", func(t *testing.T) {
		repo, cleanup := fx.Make(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, fx.New(1))
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		want := fx.Mutate(created)
		if _, err := repo.Update(ctx, fx.ID(created), want); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, err := repo.GetByID(ctx, fx.ID(created))
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !fx.Same(want, got) {
			t.Fatalf("update not applied: %+v", got)
		}
	})

	t.Run("update_missing_not_found", func(t *testing.T) {
		repo, cleanup := fx.Make(t)
		t.Cleanup(cleanup)
		_, err := repo.Update(context.Background(), 424242, fx.New(1))
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("delete_removes_record", func(t *testing.T) {
		repo, cleanup := fx.Make(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		created, err := repo.Create(ctx, fx.New(1))
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		if err := repo.Delete(ctx, fx.ID(created)); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := repo.GetByID(ctx, fx.ID(created)); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
		if err := repo.Delete(ctx, fx.ID(created)); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound on second delete, got %v", err)
		}
	})
}
