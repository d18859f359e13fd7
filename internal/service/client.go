package service

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/maxviazov/gym-console/internal/model"
	"github.com/maxviazov/gym-console/internal/repository"
)

// ClientForm is what the operator submits for a client.
type ClientForm struct {
	FirstName string `form:"nombre" validate:"required,max=100"`
	LastName  string `form:"apellido" validate:"required,max=100"`
	BirthDate string `form:"fecha_nacimiento" validate:"required,datetime=2006-01-02"`
	Email     string `form:"email" validate:"required,email"`
	Phone     string `form:"telefono" validate:"required,max=30"`
}

func NewClientService(repo repository.ClientRepository, logger zerolog.Logger) ClientService {
	return newCRUDService("client", repo, mapping[model.Client, ClientForm]{
		normalize: func(f *ClientForm) {
			f.FirstName = strings.TrimSpace(f.FirstName)
			f.LastName = strings.TrimSpace(f.LastName)
			f.BirthDate = strings.TrimSpace(f.BirthDate)
			f.Email = strings.ToLower(strings.TrimSpace(f.Email))
			f.Phone = strings.TrimSpace(f.Phone)
		},
		toModel: func(f ClientForm) model.Client {
			return model.Client{FirstName: f.FirstName, LastName: f.LastName, BirthDate: f.BirthDate, Email: f.Email, Phone: f.Phone}
		},
		fromModel: func(c model.Client) ClientForm {
			return ClientForm{FirstName: c.FirstName, LastName: c.LastName, BirthDate: dateOnly(c.BirthDate), Email: c.Email, Phone: c.Phone}
		},
	}, logger)
}

// dateOnly trims a timestamp the backend may send back (2001-02-03T00:00:00Z)
// to the YYYY-MM-DD a date input expects.
func dateOnly(s string) string {
	if len(s) > len(dateLayout) && s[len(dateLayout)] == 'T' {
		return s[:len(dateLayout)]
	}
	return s
}
