// Package response centralizes how domain errors turn into HTTP statuses.
// Console pages and the JSON probes both go through MapError.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/gym-console/internal/repository"
	"github.com/maxviazov/gym-console/internal/service"
)

// ErrorPayload is the canonical error envelope.
type ErrorPayload struct {
	Error       string               `json:"error"`
	Message     string               `json:"message,omitempty"`
	FieldErrors []service.FieldError `json:"field_errors,omitempty"`
}

// MapError converts a domain / infrastructure error into an HTTP status and payload.
// Message is safe to show to an operator.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}

	if errors.Is(err, service.ErrInvalidInput) {
		return http.StatusBadRequest, ErrorPayload{
			Error:       "invalid_input",
			Message:     "One or more fields are invalid.",
			FieldErrors: service.FieldErrors(err),
		}
	}

	var statusErr *repository.StatusError
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound, ErrorPayload{Error: "not_found", Message: "The record does not exist."}
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, ErrorPayload{Error: "conflict", Message: "The record is referenced elsewhere or conflicts with existing data."}
	case errors.Is(err, repository.ErrUnavailable):
		return http.StatusServiceUnavailable, ErrorPayload{Error: "backend_unavailable", Message: "The gym backend is not reachable. Try again later."}
	case errors.As(err, &statusErr):
		return http.StatusBadGateway, ErrorPayload{Error: "bad_gateway", Message: "The gym backend rejected the request."}
	default:
		return http.StatusInternalServerError, ErrorPayload{Error: "internal_error", Message: "Something went wrong."}
	}
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}
