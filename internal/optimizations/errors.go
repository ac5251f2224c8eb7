package optimizations

import (
	"errors"
	"net/http"
)

// Domain errors for optimization operations.
var (
	ErrNotFound      = errors.New("optimization not found")
	ErrDuplicate     = errors.New("optimization already exists")
	ErrInvalidPrompt = errors.New("prompt must be between 1 and 10000 characters")
	ErrInvalidGoal   = errors.New("goal must be between 1 and 1000 characters")
)

// MapHTTPStatus maps optimization domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidPrompt) || errors.Is(err, ErrInvalidGoal) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
