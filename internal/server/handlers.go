package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/andras/talent-sonar/internal/matching"
	"github.com/andras/talent-sonar/internal/outreach"
	"github.com/andras/talent-sonar/internal/types"
)

// MatchRequest is the body of POST /api/match. Optional fields default to
// the engine's standard options when omitted.
type MatchRequest struct {
	JobID           string   `json:"job_id" validate:"required"`
	MaxResults      *int     `json:"max_results,omitempty"`
	MinScore        *float64 `json:"min_score,omitempty"`
	IncludeInternal *bool    `json:"include_internal,omitempty"`
	IncludeExternal *bool    `json:"include_external,omitempty"`
	WeightedSkills  bool     `json:"weighted_skills,omitempty"`
}

func (r *MatchRequest) options() matching.Options {
	opts := matching.DefaultOptions()
	if r.MaxResults != nil {
		opts.MaxResults = *r.MaxResults
	}
	if r.MinScore != nil {
		opts.MinScore = *r.MinScore
	}
	if r.IncludeInternal != nil {
		opts.IncludeInternal = *r.IncludeInternal
	}
	if r.IncludeExternal != nil {
		opts.IncludeExternal = *r.IncludeExternal
	}
	opts.WeightedSkills = r.WeightedSkills
	return opts
}

// StatusUpdateRequest is the body of PATCH /api/matches/{id}/status.
type StatusUpdateRequest struct {
	Status types.MatchStatus `json:"status" validate:"required"`
}

func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	if err := validator.New().Struct(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return false
	}
	return true
}

// handleMatch runs the matching pipeline for a job.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result, err := s.engine.Match(r.Context(), req.JobID, req.options())
	if err != nil {
		s.failRequest(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

// handleOutreach drafts an outreach message for an existing match.
func (s *Server) handleOutreach(w http.ResponseWriter, r *http.Request) {
	var req outreach.DraftRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := s.drafter.Draft(r.Context(), req)
	if err != nil {
		s.failRequest(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleUpdateMatchStatus applies a review-lifecycle transition.
func (s *Server) handleUpdateMatchStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req StatusUpdateRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	if err := s.repo.UpdateMatchStatus(r.Context(), id, req.Status); err != nil {
		s.failRequest(w, err)
		return
	}

	match, err := s.repo.GetMatch(r.Context(), id)
	if err != nil {
		s.failRequest(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, match)
}

// handleGetMatch returns one match by id.
func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	match, err := s.repo.GetMatch(r.Context(), r.PathValue("id"))
	if err != nil {
		s.failRequest(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, match)
}

// handleMatchesForJob lists persisted matches for a job.
func (s *Server) handleMatchesForJob(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")
	if _, err := s.repo.GetJob(r.Context(), jobID); err != nil {
		s.failRequest(w, err)
		return
	}

	matches, err := s.repo.MatchesForJob(r.Context(), jobID)
	if err != nil {
		s.failRequest(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"matches": matches})
}

// handleListJobs returns all stored jobs.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.repo.ListJobs(r.Context())
	if err != nil {
		s.failRequest(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": jobs})
}

// handleListCandidates returns all stored candidates.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := s.repo.ListCandidates(r.Context())
	if err != nil {
		s.failRequest(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"candidates": candidates})
}
