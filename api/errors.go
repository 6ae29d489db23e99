package api

import (
	"fmt"
	"net/http"

	"github.com/jrsteele09/go-jobboard/internal/errors"
)

// APIError is a non-2xx response.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// UserMessage maps any client error onto the text shown to the user.
func UserMessage(err error, fallback string) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	case errors.Is(err, errors.ErrUnauthenticated), errors.Is(err, errors.ErrMissingSessionField):
		return "Please log in to continue."
	case errors.Is(err, errors.ErrForbiddenRole):
		return "Your account type cannot do that."
	case errors.Is(err, errors.ErrValidation):
		return err.Error()
	}
	return fallback
}

func newAPIError(status int, message, fallback string) *APIError {
	if message == "" {
		message = fallback
	}
	if message == "" {
		message = fmt.Sprintf("request failed: %s", http.StatusText(status))
	}
	return &APIError{Status: status, Message: message}
}
