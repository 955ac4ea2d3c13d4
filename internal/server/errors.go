// Package server provides the HTTP REST API for the matching service.
package server

import (
	"errors"
	"net/http"

	"github.com/andras/talent-sonar/internal/matching"
	"github.com/andras/talent-sonar/internal/outreach"
	"github.com/andras/talent-sonar/internal/store"
	"github.com/andras/talent-sonar/internal/types"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Field + " - " + e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation   *ErrValidation
		invalidInput *matching.ErrInvalidInput
		unknownTone  *outreach.ErrUnknownTone
		transition   *types.ErrInvalidTransition
		jobMissing   *store.ErrJobNotFound
		candMissing  *store.ErrCandidateNotFound
		matchMissing *store.ErrMatchNotFound
		integrity    *store.ErrDataIntegrity
	)

	switch {
	case errors.As(err, &validation), errors.As(err, &invalidInput), errors.As(err, &unknownTone), errors.As(err, &transition), errors.As(err, &integrity):
		return http.StatusBadRequest
	case errors.As(err, &jobMissing), errors.As(err, &candMissing), errors.As(err, &matchMissing):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
