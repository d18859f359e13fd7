package service

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/maxviazov/gym-console/internal/model"
	"github.com/maxviazov/gym-console/internal/repository"
)

type MembershipForm struct {
	Kind           string  `form:"tipo" validate:"required,max=50"`
	Price          float64 `form:"precio" validate:"gte=0"`
	DurationMonths int     `form:"duracion_meses" validate:"gte=1"`
}

func NewMembershipService(repo repository.MembershipRepository, logger zerolog.Logger) MembershipService {
	return newCRUDService("membership", repo, mapping[model.Membership, MembershipForm]{
		normalize: func(f *MembershipForm) { f.Kind = strings.TrimSpace(f.Kind) },
		toModel: func(f MembershipForm) model.Membership {
			return model.Membership{Kind: f.Kind, Price: f.Price, DurationMonths: f.DurationMonths}
		},
		fromModel: func(m model.Membership) MembershipForm {
			return MembershipForm{Kind: m.Kind, Price: m.Price, DurationMonths: m.DurationMonths}
		},
	}, logger)
}
