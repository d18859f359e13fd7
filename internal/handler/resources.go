package handler

import (
	"context"

	"github.com/maxviazov/gym-console/internal/model"
	"github.com/maxviazov/gym-console/internal/service"
)

func clientColumns() []column[model.Client] {
	return []column[model.Client]{
		{"ID", func(c model.Client) string { return itoa(c.ID) }},
		{"Name", func(c model.Client) string { return person(c.FirstName, c.LastName) }},
		{"Birth date", func(c model.Client) string { return day(c.BirthDate) }},
		{"Email", func(c model.Client) string { return c.Email }},
		{"Phone", func(c model.Client) string { return c.Phone }},
		{"Status", func(c model.Client) string { return activeLabel(c.Active) }},
	}
}

func clientFields() []field {
	return []field{
		{name: "nombre", label: "First name", kind: "text", required: true},
		{name: "apellido", label: "Last name", kind: "text", required: true},
		{name: "fecha_nacimiento", label: "Birth date", kind: "date", required: true},
		{name: "email", label: "Email", kind: "email", required: true},
		{name: "telefono", label: "Phone", kind: "tel", required: true},
	}
}

func trainerColumns() []column[model.Trainer] {
	return []column[model.Trainer]{
		{"ID", func(t model.Trainer) string { return itoa(t.ID) }},
		{"Name", func(t model.Trainer) string { return person(t.FirstName, t.LastName) }},
		{"Specialty", func(t model.Trainer) string { return t.Specialty }},
		{"Email", func(t model.Trainer) string { return t.Email }},
		{"Phone", func(t model.Trainer) string { return t.Phone }},
		{"Hired", func(t model.Trainer) string { return day(t.HiredOn) }},
		{"Status", func(t model.Trainer) string { return activeLabel(t.Active) }},
	}
}

func trainerFields() []field {
	return []field{
		{name: "nombre", label: "First name", kind: "text", required: true},
		{name: "apellido", label: "Last name", kind: "text", required: true},
		{name: "email", label: "Email", kind: "email", required: true},
		{name: "telefono", label: "Phone", kind: "tel", required: true},
		{name: "especialidad", label: "Specialty", kind: "text", required: true},
		{name: "fecha_contratacion", label: "Hired on", kind: "date", required: true},
	}
}

func classColumns() []column[model.Class] {
	return []column[model.Class]{
		{"ID", func(c model.Class) string { return itoa(c.ID) }},
		{"Class", func(c model.Class) string { return c.Name }},
		{"Day", func(c model.Class) string { return c.Weekday }},
		{"Time", func(c model.Class) string { return c.Schedule }},
		{"Trainer", func(c model.Class) string { return person(c.TrainerFirstName, c.TrainerLastName) }},
		{"Description", func(c model.Class) string { return orDash(c.Description) }},
	}
}

func classFields(trainers service.TrainerService) []field {
	return []field{
		{name: "nombre_clase", label: "Class name", kind: "text", required: true},
		{name: "descripcion", label: "Description", kind: "textarea"},
		{name: "horario", label: "Time", kind: "time", required: true},
		{name: "dia_semana", label: "Day", kind: "select", required: true, options: weekdayOptions},
		{name: "id_entrenador", label: "Trainer", kind: "select", options: trainerOptions(trainers)},
	}
}

func membershipColumns() []column[model.Membership] {
	return []column[model.Membership]{
		{"ID", func(m model.Membership) string { return itoa(m.ID) }},
		{"Plan", func(m model.Membership) string { return m.Kind }},
		{"Price", func(m model.Membership) string { return money(m.Price) }},
		{"Months", func(m model.Membership) string { return itoa(int64(m.DurationMonths)) }},
	}
}

func membershipFields() []field {
	return []field{
		{name: "tipo", label: "Plan", kind: "text", required: true},
		{name: "precio", label: "Price", kind: "number", step: "0.01", required: true},
		{name: "duracion_meses", label: "Duration (months)", kind: "number", step: "1", required: true},
	}
}

func inscriptionColumns() []column[model.Inscription] {
	return []column[model.Inscription]{
		{"ID", func(i model.Inscription) string { return itoa(i.ID) }},
		{"Client", func(i model.Inscription) string { return person(i.ClientFirstName, i.ClientLastName) }},
		{"Class", func(i model.Inscription) string { return orDash(i.ClassName) }},
		{"Enrolled", func(i model.Inscription) string { return orDash(day(i.EnrolledAt)) }},
	}
}

func inscriptionFields(clients service.ClientService, classes service.ClassService) []field {
	return []field{
		{name: "id_cliente", label: "Client", kind: "select", required: true, options: clientOptions(clients)},
		{name: "id_clase", label: "Class", kind: "select", required: true, options: classOptions(classes)},
	}
}

func paymentColumns() []column[model.Payment] {
	return []column[model.Payment]{
		{"ID", func(p model.Payment) string { return itoa(p.ID) }},
		{"Client", func(p model.Payment) string { return person(p.ClientFirstName, p.ClientLastName) }},
		{"Membership", func(p model.Payment) string { return orDash(p.MembershipKind) }},
		{"Amount", func(p model.Payment) string { return money(p.Amount) }},
		{"Paid on", func(p model.Payment) string { return orDash(day(p.PaidAt)) }},
	}
}

func paymentFields(clients service.ClientService, memberships service.MembershipService) []field {
	return []field{
		{name: "id_cliente", label: "Client", kind: "select", required: true, options: clientOptions(clients)},
		{name: "id_membresia", label: "Membership", kind: "select", required: true, options: membershipOptions(memberships)},
		{name: "monto", label: "Amount", kind: "number", step: "0.01", required: true},
	}
}

func weekdayOptions(context.Context) ([]option, error) {
	out := make([]option, len(service.Weekdays))
	for i, d := range service.Weekdays {
		out[i] = option{Value: d, Label: d}
	}
	return out, nil
}

// optionsFrom turns the records of a related service into select options.
func optionsFrom[T model.Record](list func(context.Context) ([]T, error), label func(T) string) func(context.Context) ([]option, error) {
	return func(ctx context.Context) ([]option, error) {
		items, err := list(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]option, len(items))
		for i, it := range items {
			out[i] = option{Value: itoa(it.RecordID()), Label: label(it)}
		}
		return out, nil
	}
}

func trainerOptions(svc service.TrainerService) func(context.Context) ([]option, error) {
	return optionsFrom(svc.List, func(t model.Trainer) string { return person(t.FirstName, t.LastName) })
}

func clientOptions(svc service.ClientService) func(context.Context) ([]option, error) {
	return optionsFrom(svc.List, func(c model.Client) string { return person(c.FirstName, c.LastName) })
}

func classOptions(svc service.ClassService) func(context.Context) ([]option, error) {
	return optionsFrom(svc.List, func(c model.Class) string { return c.Name + " (" + c.Weekday + " " + c.Schedule + ")" })
}

func membershipOptions(svc service.MembershipService) func(context.Context) ([]option, error) {
	return optionsFrom(svc.List, func(m model.Membership) string { return m.Kind + " · " + money(m.Price) })
}
