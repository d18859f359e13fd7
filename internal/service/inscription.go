package service

import (
	"github.com/rs/zerolog"

	"github.com/maxviazov/gym-console/internal/model"
	"github.com/maxviazov/gym-console/internal/repository"
)

// InscriptionForm is validated in full on edit too, although the backend only
// takes the class change.
type InscriptionForm struct {
	ClientID int64 `form:"id_cliente" validate:"required,gt=0"`
	ClassID  int64 `form:"id_clase" validate:"required,gt=0"`
}

func NewInscriptionService(repo repository.InscriptionRepository, logger zerolog.Logger) InscriptionService {
	return newCRUDService("inscription", repo, mapping[model.Inscription, InscriptionForm]{
		normalize: func(*InscriptionForm) {},
		toModel: func(f InscriptionForm) model.Inscription {
			return model.Inscription{ClientID: f.ClientID, ClassID: f.ClassID}
		},
		fromModel: func(i model.Inscription) InscriptionForm {
			return InscriptionForm{ClientID: i.ClientID, ClassID: i.ClassID}
		},
	}, logger)
}
