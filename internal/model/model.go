// Package model contains the gym records exchanged with the REST backend.
// Field tags follow the backend wire format, which uses Spanish names.
package model

// Record is anything the console lists, edits and deletes by numeric id.
type Record interface {
	RecordID() int64
}

// Client is a gym member.
type Client struct {
	ID        int64  `json:"id_cliente,omitempty"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	BirthDate string `json:"fecha_nacimiento"` // YYYY-MM-DD
	Email     string `json:"email"`
	Phone     string `json:"telefono"`
	Active    *bool  `json:"estado,omitempty"`
}

// Trainer leads classes.
type Trainer struct {
	ID        int64  `json:"id_entrenador,omitempty"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"email"`
	Phone     string `json:"telefono"`
	Specialty string `json:"especialidad"`
	HiredOn   string `json:"fecha_contratacion"` // YYYY-MM-DD
	Active    *bool  `json:"estado,omitempty"`
}

// Class is a weekly scheduled session, optionally led by a trainer.
type Class struct {
	ID               int64  `json:"id_clase,omitempty"`
	Name             string `json:"nombre_clase"`
	Description      string `json:"descripcion,omitempty"`
	Schedule         string `json:"horario"`    // HH:MM
	Weekday          string `json:"dia_semana"` // Lunes..Domingo
	TrainerID        *int64 `json:"id_entrenador,omitempty"`
	TrainerFirstName string `json:"entrenador_nombre,omitempty"`
	TrainerLastName  string `json:"entrenador_apellido,omitempty"`
}

// Membership is a purchasable plan.
type Membership struct {
	ID             int64   `json:"id_membresia,omitempty"`
	Kind           string  `json:"tipo"`
	Price          float64 `json:"precio"`
	DurationMonths int     `json:"duracion_meses"`
}

// Inscription enrolls a client in a class.
type Inscription struct {
	ID              int64  `json:"id_inscripcion,omitempty"`
	ClientID        int64  `json:"id_cliente"`
	ClassID         int64  `json:"id_clase"`
	EnrolledAt      string `json:"fecha_inscripcion,omitempty"`
	ClientFirstName string `json:"cliente_nombre,omitempty"`
	ClientLastName  string `json:"cliente_apellido,omitempty"`
	ClassName       string `json:"nombre_clase,omitempty"`
}

// Payment records money received from a client for a membership.
type Payment struct {
	ID              int64   `json:"id_pago,omitempty"`
	ClientID        int64   `json:"id_cliente"`
	MembershipID    int64   `json:"id_membresia"`
	Amount          float64 `json:"monto"`
	PaidAt          string  `json:"fecha_pago,omitempty"`
	ClientFirstName string  `json:"cliente_nombre,omitempty"`
	ClientLastName  string  `json:"cliente_apellido,omitempty"`
	MembershipKind  string  `json:"membresia_tipo,omitempty"`
	MembershipPrice float64 `json:"membresia_precio,omitempty"`
}

func (c Client) RecordID() int64      { return c.ID }
func (t Trainer) RecordID() int64     { return t.ID }
func (c Class) RecordID() int64       { return c.ID }
func (m Membership) RecordID() int64  { return m.ID }
func (i Inscription) RecordID() int64 { return i.ID }
func (p Payment) RecordID() int64     { return p.ID }

// FullName joins first and last name the way list views show people.
func FullName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
