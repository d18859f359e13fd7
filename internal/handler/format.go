package handler

import (
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/maxviazov/gym-console/internal/model"
)

// prices are in euros and the gym staff reads Spanish number formatting
var moneyPrinter = message.NewPrinter(language.Spanish)

func money(v float64) string {
	return moneyPrinter.Sprintf("%.2f €", v)
}

// day trims a backend timestamp (2024-03-01T00:00:00.000Z) to its date.
func day(s string) string {
	if len(s) >= 10 && s[4] == '-' && s[7] == '-' {
		return s[:10]
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func person(first, last string) string { return orDash(model.FullName(first, last)) }

func activeLabel(b *bool) string {
	switch {
	case b == nil:
		return "-"
	case *b:
		return "Active"
	default:
		return "Inactive"
	}
}

// formValues reads a bound form struct back into input values keyed by their
// `form` tag. Zero values render as empty inputs.
func formValues(form any) map[string]string {
	out := map[string]string{}
	v := reflect.Indirect(reflect.ValueOf(form))
	if v.Kind() != reflect.Struct {
		return out
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("form")
		if name == "" || name == "-" {
			continue
		}
		fv := v.Field(i)
		if fv.IsZero() {
			out[name] = ""
			continue
		}
		out[name] = fmt.Sprint(fv.Interface())
	}
	return out
}
