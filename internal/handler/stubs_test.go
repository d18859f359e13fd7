package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/gym-console/internal/handler"
	"github.com/maxviazov/gym-console/internal/model"
	"github.com/maxviazov/gym-console/internal/repository"
	"github.com/maxviazov/gym-console/internal/service"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

// stubService lets each test control outcomes while recording what the handler sent.
type stubService[T model.Record, F any] struct {
	items     []T
	listErr   error
	editForm  F
	createErr error
	updateErr error
	created   []F
	updated   map[int64]F
	deleted   []int64
	prompts   []string
}

func (s *stubService[T, F]) List(context.Context) ([]T, error) {
	return s.items, s.listErr
}

func (s *stubService[T, F]) Get(_ context.Context, id int64) (T, error) {
	for _, it := range s.items {
		if it.RecordID() == id {
			return it, nil
		}
	}
	var zero T
	return zero, repository.ErrNotFound
}

func (s *stubService[T, F]) Edit(ctx context.Context, id int64) (F, error) {
	if _, err := s.Get(ctx, id); err != nil {
		var zero F
		return zero, err
	}
	return s.editForm, nil
}

func (s *stubService[T, F]) Create(_ context.Context, form F) (T, error) {
	var zero T
	if s.createErr != nil {
		return zero, s.createErr
	}
	s.created = append(s.created, form)
	return zero, nil
}

func (s *stubService[T, F]) Update(_ context.Context, id int64, form F) (T, error) {
	var zero T
	if s.updateErr != nil {
		return zero, s.updateErr
	}
	if s.updated == nil {
		s.updated = map[int64]F{}
	}
	s.updated[id] = form
	return zero, nil
}

func (s *stubService[T, F]) Delete(ctx context.Context, id int64, confirm service.Confirm) (bool, error) {
	if id <= 0 {
		return false, service.NewInvalidInputError([]service.FieldError{{Field: "id", Message: "must be a positive number"}})
	}
	if confirm == nil {
		return false, nil
	}
	s.prompts = append(s.prompts, service.DeletePrompt)
	if !confirm(ctx, service.DeletePrompt) {
		return false, nil
	}
	s.deleted = append(s.deleted, id)
	return true, nil
}

type stubs struct {
	clients      *stubService[model.Client, service.ClientForm]
	trainers     *stubService[model.Trainer, service.TrainerForm]
	classes      *stubService[model.Class, service.ClassForm]
	memberships  *stubService[model.Membership, service.MembershipForm]
	inscriptions *stubService[model.Inscription, service.InscriptionForm]
	payments     *stubService[model.Payment, service.PaymentForm]
}

func newStubs() *stubs {
	return &stubs{
		clients:      &stubService[model.Client, service.ClientForm]{},
		trainers:     &stubService[model.Trainer, service.TrainerForm]{},
		classes:      &stubService[model.Class, service.ClassForm]{},
		memberships:  &stubService[model.Membership, service.MembershipForm]{},
		inscriptions: &stubService[model.Inscription, service.InscriptionForm]{},
		payments:     &stubService[model.Payment, service.PaymentForm]{},
	}
}

func newRouter(t *testing.T, s *stubs, pinger handler.Pinger) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.Register(r, pinger, handler.Services{
		Clients:      s.clients,
		Trainers:     s.trainers,
		Classes:      s.classes,
		Memberships:  s.memberships,
		Inscriptions: s.inscriptions,
		Payments:     s.payments,
	}, 5, zerolog.New(io.Discard))
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func postForm(r http.Handler, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
