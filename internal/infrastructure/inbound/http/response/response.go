// Package response writes JSON bodies and maps domain errors to HTTP statuses.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"microblog-service/internal/custom_errors"
)

type errorBody struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, errorBody{Error: message})
}

// StatusFor picks the response status for an error returned by a service.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, custom_errors.ErrUsernameTaken), errors.Is(err, custom_errors.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, custom_errors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, custom_errors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, custom_errors.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, custom_errors.ErrInvalidOperation):
		return http.StatusBadRequest
	case errors.Is(err, custom_errors.ErrExternalServiceError):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// FromError writes err with its mapped status. Internal errors are not echoed.
func FromError(w http.ResponseWriter, err error) int {
	status := StatusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	Error(w, status, message)
	return status
}
