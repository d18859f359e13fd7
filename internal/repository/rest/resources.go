package rest

import (
	"github.com/maxviazov/gym-console/internal/model"
	"github.com/maxviazov/gym-console/internal/repository"
)

// Backend collection paths.
const (
	ClientsPath      = "/clients"
	TrainersPath     = "/trainers"
	ClassesPath      = "/classes"
	MembershipsPath  = "/memberships"
	InscriptionsPath = "/inscriptions"
	PaymentsPath     = "/payments"
)

func NewClientRepository(c *Client) repository.ClientRepository {
	return NewResource(c, ClientsPath,
		WithIDSetter(func(v *model.Client, id int64) { v.ID = id }))
}

func NewTrainerRepository(c *Client) repository.TrainerRepository {
	return NewResource(c, TrainersPath,
		WithIDSetter(func(v *model.Trainer, id int64) { v.ID = id }))
}

func NewClassRepository(c *Client) repository.ClassRepository {
	return NewResource(c, ClassesPath,
		WithIDSetter(func(v *model.Class, id int64) { v.ID = id }))
}

func NewMembershipRepository(c *Client) repository.MembershipRepository {
	return NewResource(c, MembershipsPath,
		WithIDSetter(func(v *model.Membership, id int64) { v.ID = id }))
}

type inscriptionCreate struct {
	ClientID int64 `json:"id_cliente"`
	ClassID  int64 `json:"id_clase"`
}

type inscriptionUpdate struct {
	ClassID int64 `json:"id_clase"`
}

// NewInscriptionRepository only ever sends the enrollment keys; an existing
// inscription can move to another class but never to another client.
func NewInscriptionRepository(c *Client) repository.InscriptionRepository {
	return NewResource(c, InscriptionsPath,
		WithCreateBody(func(v model.Inscription) any {
			return inscriptionCreate{ClientID: v.ClientID, ClassID: v.ClassID}
		}),
		WithUpdateBody(func(v model.Inscription) any {
			return inscriptionUpdate{ClassID: v.ClassID}
		}),
		WithIDSetter(func(v *model.Inscription, id int64) { v.ID = id }),
	)
}

type paymentCreate struct {
	ClientID     int64   `json:"id_cliente"`
	MembershipID int64   `json:"id_membresia"`
	Amount       float64 `json:"monto"`
}

type paymentUpdate struct {
	MembershipID int64   `json:"id_membresia"`
	Amount       float64 `json:"monto"`
}

// NewPaymentRepository sends partial payloads: the payer of a payment is fixed
// once recorded.
func NewPaymentRepository(c *Client) repository.PaymentRepository {
	return NewResource(c, PaymentsPath,
		WithCreateBody(func(v model.Payment) any {
			return paymentCreate{ClientID: v.ClientID, MembershipID: v.MembershipID, Amount: v.Amount}
		}),
		WithUpdateBody(func(v model.Payment) any {
			return paymentUpdate{MembershipID: v.MembershipID, Amount: v.Amount}
		}),
		WithIDSetter(func(v *model.Payment, id int64) { v.ID = id }),
	)
}
