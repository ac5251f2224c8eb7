package specialists

import (
	"errors"
	"net/http"
)

// Domain errors for specialist catalog operations.
var (
	ErrInvalidKind   = errors.New("invalid specialist kind")
	ErrInvalidRubric = errors.New("rubric weights must sum to 100")
)

// MapHTTPStatus maps specialist domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidKind) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
