package service

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/maxviazov/gym-console/internal/model"
	"github.com/maxviazov/gym-console/internal/repository"
)

type PaymentForm struct {
	ClientID     int64   `form:"id_cliente" validate:"required,gt=0"`
	MembershipID int64   `form:"id_membresia" validate:"required,gt=0"`
	Amount       float64 `form:"monto" validate:"gte=0"`
}

func NewPaymentService(repo repository.PaymentRepository, logger zerolog.Logger) PaymentService {
	return newCRUDService("payment", repo, mapping[model.Payment, PaymentForm]{
		// amounts are money; keep cents only
		normalize: func(f *PaymentForm) { f.Amount = math.Round(f.Amount*100) / 100 },
		toModel: func(f PaymentForm) model.Payment {
			return model.Payment{ClientID: f.ClientID, MembershipID: f.MembershipID, Amount: f.Amount}
		},
		fromModel: func(p model.Payment) PaymentForm {
			return PaymentForm{ClientID: p.ClientID, MembershipID: p.MembershipID, Amount: p.Amount}
		},
	}, logger)
}
