package service

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/maxviazov/gym-console/internal/model"
	"github.com/maxviazov/gym-console/internal/repository"
)

type TrainerForm struct {
	FirstName string `form:"nombre" validate:"required,max=100"`
	LastName  string `form:"apellido" validate:"required,max=100"`
	Email     string `form:"email" validate:"required,email"`
	Phone     string `form:"telefono" validate:"required,max=30"`
	Specialty string `form:"especialidad" validate:"required,max=100"`
	HiredOn   string `form:"fecha_contratacion" validate:"required,datetime=2006-01-02"`
}

func NewTrainerService(repo repository.TrainerRepository, logger zerolog.Logger) TrainerService {
	return newCRUDService("trainer", repo, mapping[model.Trainer, TrainerForm]{
		normalize: func(f *TrainerForm) {
			f.FirstName = strings.TrimSpace(f.FirstName)
			f.LastName = strings.TrimSpace(f.LastName)
			f.Email = strings.ToLower(strings.TrimSpace(f.Email))
			f.Phone = strings.TrimSpace(f.Phone)
			f.Specialty = strings.TrimSpace(f.Specialty)
			f.HiredOn = strings.TrimSpace(f.HiredOn)
		},
		toModel: func(f TrainerForm) model.Trainer {
			return model.Trainer{
				FirstName: f.FirstName,
				LastName:  f.LastName,
				Email:     f.Email,
				Phone:     f.Phone,
				Specialty: f.Specialty,
				HiredOn:   f.HiredOn,
			}
		},
		fromModel: func(t model.Trainer) TrainerForm {
			return TrainerForm{
				FirstName: t.FirstName,
				LastName:  t.LastName,
				Email:     t.Email,
				Phone:     t.Phone,
				Specialty: t.Specialty,
				HiredOn:   dateOnly(t.HiredOn),
			}
		},
	}, logger)
}
