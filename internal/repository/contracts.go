package repository

import (
	"context"

	"github.com/maxviazov/gym-console/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from the backend client details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Repository is the data source behind one list/form pair.
// List returns the whole collection in backend order; the console paginates in memory.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, in T) (T, error)
	Update(ctx context.Context, id int64, in T) (T, error)
	Delete(ctx context.Context, id int64) error
}

type (
	ClientRepository      = Repository[model.Client]
	TrainerRepository     = Repository[model.Trainer]
	ClassRepository       = Repository[model.Class]
	MembershipRepository  = Repository[model.Membership]
	InscriptionRepository = Repository[model.Inscription]
	PaymentRepository     = Repository[model.Payment]
)
