package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/gym-console/internal/model"
	"github.com/maxviazov/gym-console/internal/service"
)

// Services are the use cases behind the six console sections.
type Services struct {
	Clients      service.ClientService
	Trainers     service.TrainerService
	Classes      service.ClassService
	Memberships  service.MembershipService
	Inscriptions service.InscriptionService
	Payments     service.PaymentService
}

// Register mounts all console routes on the given engine.
// pageSize is how many rows each list page shows.
func Register(r *gin.Engine, backend Pinger, svcs Services, pageSize int, logger zerolog.Logger) {
	h := NewHealthHandler(backend)

	// Health probes
	r.GET(LivePath, h.Liveness)
	r.GET(ReadyPath, h.Readiness)

	r.SetHTMLTemplate(parseTemplates())
	RegisterAssets(r)

	nav := []navItem{
		{clientsSlug, "Clients"},
		{trainersSlug, "Trainers"},
		{classesSlug, "Classes"},
		{membershipsSlug, "Memberships"},
		{inscriptionsSlug, "Inscriptions"},
		{paymentsSlug, "Payments"},
	}
	l := logger.With().Str("module", "handler").Logger()
	child := func(component string) zerolog.Logger {
		return l.With().Str("component", component).Logger()
	}

	(&resourceHandler[model.Client, service.ClientForm]{
		slug: clientsSlug, title: "Clients", singular: "client",
		svc: svcs.Clients, columns: clientColumns(), fields: clientFields(),
		pageSize: pageSize, nav: nav, log: child("clients"),
	}).Register(r)
	(&resourceHandler[model.Trainer, service.TrainerForm]{
		slug: trainersSlug, title: "Trainers", singular: "trainer",
		svc: svcs.Trainers, columns: trainerColumns(), fields: trainerFields(),
		pageSize: pageSize, nav: nav, log: child("trainers"),
	}).Register(r)
	(&resourceHandler[model.Class, service.ClassForm]{
		slug: classesSlug, title: "Classes", singular: "class",
		svc: svcs.Classes, columns: classColumns(), fields: classFields(svcs.Trainers),
		pageSize: pageSize, nav: nav, log: child("classes"),
	}).Register(r)
	(&resourceHandler[model.Membership, service.MembershipForm]{
		slug: membershipsSlug, title: "Memberships", singular: "membership",
		svc: svcs.Memberships, columns: membershipColumns(), fields: membershipFields(),
		pageSize: pageSize, nav: nav, log: child("memberships"),
	}).Register(r)
	(&resourceHandler[model.Inscription, service.InscriptionForm]{
		slug: inscriptionsSlug, title: "Inscriptions", singular: "inscription",
		svc: svcs.Inscriptions, columns: inscriptionColumns(), fields: inscriptionFields(svcs.Clients, svcs.Classes),
		pageSize: pageSize, nav: nav, log: child("inscriptions"),
	}).Register(r)
	(&resourceHandler[model.Payment, service.PaymentForm]{
		slug: paymentsSlug, title: "Payments", singular: "payment",
		svc: svcs.Payments, columns: paymentColumns(), fields: paymentFields(svcs.Clients, svcs.Memberships),
		pageSize: pageSize, nav: nav, log: child("payments"),
	}).Register(r)

	home := func(c *gin.Context) { c.Redirect(http.StatusFound, HomePath) }
	r.GET("/", home)
	r.NoRoute(home)
}
