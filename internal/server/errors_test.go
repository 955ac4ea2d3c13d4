package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andras/talent-sonar/internal/matching"
	"github.com/andras/talent-sonar/internal/outreach"
	"github.com/andras/talent-sonar/internal/store"
	"github.com/andras/talent-sonar/internal/types"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&ErrValidation{Field: "job_id", Message: "required"}, http.StatusBadRequest},
		{&matching.ErrInvalidInput{Field: "min_score", Reason: "out of range"}, http.StatusBadRequest},
		{&outreach.ErrUnknownTone{Tone: "grumpy"}, http.StatusBadRequest},
		{&types.ErrInvalidTransition{From: types.MatchRejected, To: types.MatchPending}, http.StatusBadRequest},
		{&store.ErrDataIntegrity{Entity: "candidate", Cause: errors.New("bad email")}, http.StatusBadRequest},
		{&store.ErrJobNotFound{JobID: "j"}, http.StatusNotFound},
		{&store.ErrCandidateNotFound{CandidateID: "c"}, http.StatusNotFound},
		{&store.ErrMatchNotFound{MatchID: "m"}, http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), "error: %v", tc.err)
	}
}

func TestHTTPStatus_Wrapped(t *testing.T) {
	err := fmt.Errorf("pipeline: %w", &store.ErrJobNotFound{JobID: "j"})
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))
}
