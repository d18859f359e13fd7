package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/gym-console/internal/model"
	"github.com/maxviazov/gym-console/internal/repository"
)

// mapping converts between the operator form and the backend record of one resource.
type mapping[T model.Record, F any] struct {
	normalize func(*F)
	toModel   func(F) T
	fromModel func(T) F
}

// crudService holds the shared use-case logic: validation + orchestration, no transport details.
type crudService[T model.Record, F any] struct {
	repo repository.Repository[T]
	m    mapping[T, F]
	log  zerolog.Logger
}

func newCRUDService[T model.Record, F any](component string, repo repository.Repository[T], m mapping[T, F], logger zerolog.Logger) *crudService[T, F] {
	l := logger.With().Str("module", "service").Str("component", component).Logger()
	return &crudService[T, F]{repo: repo, m: m, log: l}
}

func (s *crudService[T, F]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list failed")
		return nil, err
	}
	return items, nil
}

func (s *crudService[T, F]) Get(ctx context.Context, id int64) (T, error) {
	if id <= 0 {
		var zero T
		return zero, invalidID("id")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *crudService[T, F]) Edit(ctx context.Context, id int64) (F, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		var zero F
		return zero, err
	}
	return s.m.fromModel(rec), nil
}

func (s *crudService[T, F]) Create(ctx context.Context, form F) (T, error) {
	start := time.Now()
	s.m.normalize(&form)
	if err := validateForm(form); err != nil {
		s.log.Debug().Interface("field_errors", FieldErrors(err)).Msg("create validation failed")
		var zero T
		return zero, err
	}

	// Repository surfaces domain-level errors already, do not wrap.
	out, err := s.repo.Create(ctx, s.m.toModel(form))
	if err != nil {
		s.log.Error().Err(err).Msg("create failed")
		var zero T
		return zero, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("id", out.RecordID()).Msg("record created")
	return out, nil
}

func (s *crudService[T, F]) Update(ctx context.Context, id int64, form F) (T, error) {
	var zero T
	if id <= 0 {
		return zero, invalidID("id")
	}
	start := time.Now()
	s.m.normalize(&form)
	if err := validateForm(form); err != nil {
		s.log.Debug().Int64("id", id).Interface("field_errors", FieldErrors(err)).Msg("update validation failed")
		return zero, err
	}

	out, err := s.repo.Update(ctx, id, s.m.toModel(form))
	if err != nil {
		s.log.Error().Err(err).Int64("id", id).Msg("update failed")
		return zero, err
	}
	s.log.Info().Dur("took", time.Since(start)).Int64("id", id).Msg("record updated")
	return out, nil
}

func (s *crudService[T, F]) Delete(ctx context.Context, id int64, confirm Confirm) (bool, error) {
	if id <= 0 {
		return false, invalidID("id")
	}
	if confirm == nil || !confirm(ctx, DeletePrompt) {
		s.log.Debug().Int64("id", id).Msg("delete not confirmed")
		return false, nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Error().Err(err).Int64("id", id).Msg("delete failed")
		return false, err
	}
	s.log.Info().Int64("id", id).Msg("record deleted")
	return true, nil
}
