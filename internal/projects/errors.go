package projects

import (
	"errors"
	"net/http"
)

// Domain errors for project operations.
var (
	ErrNotFound       = errors.New("project not found")
	ErrEntryNotFound  = errors.New("context entry not found")
	ErrDuplicate      = errors.New("project already exists")
	ErrCallerRequired = errors.New("caller id required")
	ErrInvalidProject = errors.New("invalid project")
	ErrInvalidEntry   = errors.New("invalid context entry")
	ErrFileTooLarge   = errors.New("file exceeds maximum upload size")
)

// MapHTTPStatus maps project domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrEntryNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrCallerRequired) || errors.Is(err, ErrInvalidProject) || errors.Is(err, ErrInvalidEntry) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}
