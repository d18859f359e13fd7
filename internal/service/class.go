package service

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/maxviazov/gym-console/internal/model"
	"github.com/maxviazov/gym-console/internal/repository"
)

// ClassForm leaves TrainerID at 0 for a class nobody leads yet.
type ClassForm struct {
	Name        string `form:"nombre_clase" validate:"required,max=100"`
	Description string `form:"descripcion" validate:"max=500"`
	Schedule    string `form:"horario" validate:"required,datetime=15:04"`
	Weekday     string `form:"dia_semana" validate:"required,weekday"`
	TrainerID   int64  `form:"id_entrenador" validate:"gte=0"`
}

func NewClassService(repo repository.ClassRepository, logger zerolog.Logger) ClassService {
	return newCRUDService("class", repo, mapping[model.Class, ClassForm]{
		normalize: func(f *ClassForm) {
			f.Name = strings.TrimSpace(f.Name)
			f.Description = strings.TrimSpace(f.Description)
			f.Schedule = strings.TrimSpace(f.Schedule)
			f.Weekday = strings.TrimSpace(f.Weekday)
		},
		toModel: func(f ClassForm) model.Class {
			c := model.Class{Name: f.Name, Description: f.Description, Schedule: f.Schedule, Weekday: f.Weekday}
			if f.TrainerID > 0 {
				id := f.TrainerID
				c.TrainerID = &id
			}
			return c
		},
		fromModel: func(c model.Class) ClassForm {
			f := ClassForm{Name: c.Name, Description: c.Description, Schedule: hourMinute(c.Schedule), Weekday: c.Weekday}
			if c.TrainerID != nil {
				f.TrainerID = *c.TrainerID
			}
			return f
		},
	}, logger)
}

// hourMinute drops the seconds a TIME column comes back with (07:30:00).
func hourMinute(s string) string {
	if len(s) == len("15:04:05") && s[2] == ':' && s[5] == ':' {
		return s[:len(timeLayout)]
	}
	return s
}
