package service_test

import (
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/gym-console/internal/model"
	"github.com/maxviazov/gym-console/internal/service"
)

func TestTrainerService_Validation(t *testing.T) {
	repo := newFakeRepo(func(tr *model.Trainer, id int64) { tr.ID = id })
	svc := service.NewTrainerService(repo, zerolog.New(io.Discard))

	_, err := svc.Create(context.Background(), service.TrainerForm{
		FirstName: "Leo", LastName: "Ruiz", Email: "leo@gym.es", Phone: "600",
		Specialty: "Yoga", HiredOn: "2023-13-01",
	})
	require.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Equal(t, []service.FieldError{{Field: "fecha_contratacion", Message: "must be a date in YYYY-MM-DD format"}}, service.FieldErrors(err))

	got, err := svc.Create(context.Background(), service.TrainerForm{
		FirstName: "Leo", LastName: "Ruiz", Email: "leo@gym.es", Phone: "600",
		Specialty: " Yoga ", HiredOn: "2023-01-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "Yoga", got.Specialty)
}

func TestClassService_WeekdayAndSchedule(t *testing.T) {
	repo := newFakeRepo(func(c *model.Class, id int64) { c.ID = id })
	svc := service.NewClassService(repo, zerolog.New(io.Discard))

	_, err := svc.Create(context.Background(), service.ClassForm{Name: "Spinning", Schedule: "7.30", Weekday: "Monday"})
	require.ErrorIs(t, err, service.ErrInvalidInput)
	fields := service.FieldErrors(err)
	assert.ElementsMatch(t, []string{"horario", "dia_semana"}, []string{fields[0].Field, fields[1].Field})

	got, err := svc.Create(context.Background(), service.ClassForm{Name: "Spinning", Schedule: "07:30", Weekday: " Miércoles "})
	require.NoError(t, err)
	assert.Equal(t, "Miércoles", got.Weekday)
	assert.Nil(t, got.TrainerID, "no trainer selected")

	got, err = svc.Create(context.Background(), service.ClassForm{Name: "Pilates", Schedule: "19:00", Weekday: "Lunes", TrainerID: 4})
	require.NoError(t, err)
	require.NotNil(t, got.TrainerID)
	assert.Equal(t, int64(4), *got.TrainerID)
}

func TestClassService_EditDropsSeconds(t *testing.T) {
	repo := newFakeRepo(func(c *model.Class, id int64) { c.ID = id })
	trainer := int64(2)
	_, _ = repo.Create(context.Background(), model.Class{Name: "Boxeo", Schedule: "18:45:00", Weekday: "Viernes", TrainerID: &trainer})
	svc := service.NewClassService(repo, zerolog.New(io.Discard))

	form, err := svc.Edit(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, service.ClassForm{Name: "Boxeo", Schedule: "18:45", Weekday: "Viernes", TrainerID: 2}, form)
}

func TestMembershipService_Bounds(t *testing.T) {
	repo := newFakeRepo(func(m *model.Membership, id int64) { m.ID = id })
	svc := service.NewMembershipService(repo, zerolog.New(io.Discard))

	_, err := svc.Create(context.Background(), service.MembershipForm{Kind: "Mensual", Price: -1, DurationMonths: 0})
	require.ErrorIs(t, err, service.ErrInvalidInput)
	assert.ElementsMatch(t, []service.FieldError{
		{Field: "precio", Message: "must be >= 0"},
		{Field: "duracion_meses", Message: "must be >= 1"},
	}, service.FieldErrors(err))

	_, err = svc.Create(context.Background(), service.MembershipForm{Kind: "Gratis", Price: 0, DurationMonths: 1})
	assert.NoError(t, err)
}

func TestInscriptionService_RequiresIDs(t *testing.T) {
	repo := newFakeRepo(func(i *model.Inscription, id int64) { i.ID = id })
	svc := service.NewInscriptionService(repo, zerolog.New(io.Discard))

	_, err := svc.Create(context.Background(), service.InscriptionForm{ClassID: 3})
	require.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Equal(t, "id_cliente", service.FieldErrors(err)[0].Field)

	_, err = svc.Update(context.Background(), 1, service.InscriptionForm{ClientID: 1, ClassID: 2})
	assert.Error(t, err, "missing inscription is reported by the backend")
}

func TestPaymentService_RoundsAmount(t *testing.T) {
	repo := newFakeRepo(func(p *model.Payment, id int64) { p.ID = id })
	svc := service.NewPaymentService(repo, zerolog.New(io.Discard))

	got, err := svc.Create(context.Background(), service.PaymentForm{ClientID: 1, MembershipID: 2, Amount: 29.999})
	require.NoError(t, err)
	assert.InDelta(t, 30.00, got.Amount, 1e-9)

	_, err = svc.Create(context.Background(), service.PaymentForm{ClientID: 1, MembershipID: 0, Amount: -5})
	require.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Len(t, service.FieldErrors(err), 2)
}

func TestIsWeekday(t *testing.T) {
	assert.True(t, service.IsWeekday("Domingo"))
	assert.True(t, service.IsWeekday(" Sábado "))
	assert.False(t, service.IsWeekday("domingo"))
	assert.False(t, service.IsWeekday(""))
}
