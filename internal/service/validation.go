package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Weekdays are the values the backend accepts for dia_semana, in week order.
var Weekdays = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their form names so the UI can attach messages to inputs
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		return IsWeekday(fl.Field().String())
	})
	return v
}

// IsWeekday reports whether s is one of Weekdays, ignoring surrounding spaces.
func IsWeekday(s string) bool {
	s = strings.TrimSpace(s)
	for _, d := range Weekdays {
		if d == s {
			return true
		}
	}
	return false
}

// validateForm runs struct tags and folds failures into the aggregated input error.
func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ferrs := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		ferrs = append(ferrs, FieldError{Field: fe.Field(), Message: messageFor(fe)})
	}
	return NewInvalidInputError(ferrs)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "email":
		return "must be a valid email address"
	case "datetime":
		switch fe.Param() {
		case dateLayout:
			return "must be a date in YYYY-MM-DD format"
		case timeLayout:
			return "must be a time in HH:MM format"
		}
		return "invalid format"
	case "weekday":
		return "must be one of " + strings.Join(Weekdays, ", ")
	case "gt":
		return "must be > " + fe.Param()
	case "gte":
		return "must be >= " + fe.Param()
	case "max":
		return "length must be <= " + fe.Param()
	default:
		return "is invalid"
	}
}

func invalidID(field string) error {
	return NewInvalidInputError([]FieldError{{Field: field, Message: "must be > 0"}})
}
