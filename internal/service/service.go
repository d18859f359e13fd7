// Package service holds the use cases behind the console forms and lists.
// Kept intentionally lean: input normalization, validation, orchestration of
// the backend repositories and domain error shaping.
package service

import (
	"context"
	"errors"

	"github.com/maxviazov/gym-console/internal/model"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// DeletePrompt is the question every delete must be confirmed with.
const DeletePrompt = "Are you sure you want to delete this record?"

// Confirm asks the operator a yes/no question. Deletes only proceed on true.
type Confirm func(ctx context.Context, prompt string) bool

// FieldError describes a single invalid field in a submitted form.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// NewInvalidInputError builds an aggregated validation error if any field errors are present.
func NewInvalidInputError(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// CRUDService is the shape every console feature shares. F is the form the
// operator fills in; T is the backend record.
type CRUDService[T model.Record, F any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	// Edit returns the form prefilled from the stored record.
	Edit(ctx context.Context, id int64) (F, error)
	Create(ctx context.Context, form F) (T, error)
	Update(ctx context.Context, id int64, form F) (T, error)
	// Delete reports whether the record was removed; a declined confirmation is not an error.
	Delete(ctx context.Context, id int64, confirm Confirm) (bool, error)
}

type (
	ClientService      = CRUDService[model.Client, ClientForm]
	TrainerService     = CRUDService[model.Trainer, TrainerForm]
	ClassService       = CRUDService[model.Class, ClassForm]
	MembershipService  = CRUDService[model.Membership, MembershipForm]
	InscriptionService = CRUDService[model.Inscription, InscriptionForm]
	PaymentService     = CRUDService[model.Payment, PaymentForm]
)
