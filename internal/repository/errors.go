package repository

import (
	"errors"
	"net/http"
)

// Domain-level errors I prefer to bubble up from repository implementations.
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("backend unavailable")
)

// MapStatus translates backend HTTP status codes to domain errors.
// 2xx maps to nil; codes I don't handle explicitly come back as a plain error
// carrying the status text.
func MapStatus(code int) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusConflict:
		return ErrConflict
	case code >= 500:
		return ErrUnavailable
	default:
		return &StatusError{Code: code}
	}
}

// StatusError keeps an unexpected backend status around for logs and error pages.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return "backend responded " + http.StatusText(e.Code)
}
