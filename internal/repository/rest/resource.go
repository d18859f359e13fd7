package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/maxviazov/gym-console/internal/model"
	"github.com/maxviazov/gym-console/internal/repository"
)

// Option customises how a resource talks to its endpoint.
type Option[T model.Record] func(*resource[T])

// WithCreateBody replaces the POST payload; some endpoints only accept a subset of fields.
func WithCreateBody[T model.Record](fn func(T) any) Option[T] {
	return func(r *resource[T]) { r.createBody = fn }
}

// WithUpdateBody replaces the PUT payload.
func WithUpdateBody[T model.Record](fn func(T) any) Option[T] {
	return func(r *resource[T]) { r.updateBody = fn }
}

// WithIDSetter lets Update return the submitted record with its id when the
// backend answers without a body.
func WithIDSetter[T model.Record](fn func(*T, int64)) Option[T] {
	return func(r *resource[T]) { r.setID = fn }
}

type resource[T model.Record] struct {
	client     *Client
	path       string
	createBody func(T) any
	updateBody func(T) any
	setID      func(*T, int64)
}

// NewResource maps the repository contract onto the usual REST verbs under path.
func NewResource[T model.Record](c *Client, path string, opts ...Option[T]) repository.Repository[T] {
	r := &resource[T]{
		client:     c,
		path:       path,
		createBody: func(v T) any { return v },
		updateBody: func(v T) any { return v },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *resource[T]) itemPath(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}

func (r *resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if _, err := r.client.do(ctx, http.MethodGet, r.path, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (r *resource[T]) GetByID(ctx context.Context, id int64) (T, error) {
	var out T
	decoded, err := r.client.do(ctx, http.MethodGet, r.itemPath(id), nil, &out)
	if err != nil {
		return out, err
	}
	// an empty body, a literal null or a record without id all mean nothing was found
	if !decoded || out.RecordID() == 0 {
		var zero T
		return zero, repository.ErrNotFound
	}
	return out, nil
}

func (r *resource[T]) Create(ctx context.Context, in T) (T, error) {
	var out T
	decoded, err := r.client.do(ctx, http.MethodPost, r.path, r.createBody(in), &out)
	if err != nil {
		var zero T
		return zero, err
	}
	if !decoded {
		return in, nil
	}
	return out, nil
}

func (r *resource[T]) Update(ctx context.Context, id int64, in T) (T, error) {
	var out T
	decoded, err := r.client.do(ctx, http.MethodPut, r.itemPath(id), r.updateBody(in), &out)
	if err != nil {
		var zero T
		return zero, err
	}
	if !decoded {
		if r.setID != nil {
			r.setID(&in, id)
		}
		return in, nil
	}
	return out, nil
}

func (r *resource[T]) Delete(ctx context.Context, id int64) error {
	_, err := r.client.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil)
	return err
}
