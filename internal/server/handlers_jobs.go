package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jonathan/energy-jobboard/internal/db"
	"github.com/jonathan/energy-jobboard/internal/enrich"
	"github.com/jonathan/energy-jobboard/internal/logger"
	"github.com/jonathan/energy-jobboard/internal/schemas"
	"github.com/jonathan/energy-jobboard/internal/types"
)

// maxPostingsPerRequest bounds POST /jobs/enrich batches.
const maxPostingsPerRequest = 1000

// EnrichRequest is the body of POST /jobs/enrich. Postings must match the
// job_postings schema.
type EnrichRequest struct {
	Postings json.RawMessage `json:"postings" validate:"required"`
	Save     bool            `json:"save"`
}

// EnrichResponse is the body returned by POST /jobs/enrich
type EnrichResponse struct {
	Jobs    []types.EnrichedJob `json:"jobs"`
	Summary enrich.Summary      `json:"summary"`
	Saved   int                 `json:"saved"`
}

// ListJobsResponse is the body returned by GET /jobs
type ListJobsResponse struct {
	Jobs   []types.EnrichedJob `json:"jobs"`
	Total  int                 `json:"total"`
	Limit  int                 `json:"limit"`
	Offset int                 `json:"offset"`
}

// handleEnrichJobs enriches a batch of postings and optionally stores them
func (s *Server) handleEnrichJobs(w http.ResponseWriter, r *http.Request) {
	var req EnrichRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.Save && s.store == nil {
		s.writeError(w, r, &ErrStoreDisabled{})
		return
	}

	if err := schemas.Validate(schemas.JobPostings, req.Postings); err != nil {
		s.writeError(w, r, err)
		return
	}
	var postings []types.JobPosting
	if err := json.Unmarshal(req.Postings, &postings); err != nil {
		s.writeError(w, r, &ErrValidation{Field: "postings", Message: err.Error()})
		return
	}
	if len(postings) > maxPostingsPerRequest {
		s.writeError(w, r, &ErrValidation{
			Field:   "postings",
			Message: fmt.Sprintf("at most %d postings per request", maxPostingsPerRequest),
		})
		return
	}

	jobs, summary, err := s.enricher.Run(r.Context(), postings)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := EnrichResponse{Jobs: jobs, Summary: summary}
	if req.Save {
		for i := range jobs {
			if err := s.store.UpsertEnrichedJob(r.Context(), &jobs[i]); err != nil {
				s.writeError(w, r, err)
				return
			}
			resp.Saved++
		}
		logger.Ctx(r.Context()).Info().Int("saved", resp.Saved).Msg("stored enriched jobs")
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetJob returns one stored job
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	job, err := s.store.GetEnrichedJob(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if job == nil {
		s.writeError(w, r, &ErrNotFound{Resource: "job", ID: id})
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleListJobs lists stored jobs filtered by ?role=, ?confidence= and
// ?skill=. A skill the taxonomy knows is matched by its canonical name.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := db.ListFilters{
		RoleID:     q.Get("role"),
		Confidence: q.Get("confidence"),
		Skill:      q.Get("skill"),
		Limit:      parseQueryInt(r, "limit", db.DefaultListLimit, db.MaxListLimit),
		Offset:     parseQueryInt(r, "offset", 0, 0),
	}

	switch strings.ToLower(filters.Confidence) {
	case "", "high", "medium", "low":
	default:
		s.writeError(w, r, &ErrValidation{Field: "confidence", Message: "must be high, medium or low"})
		return
	}
	if canonical, ok := s.taxonomy().Lookup(filters.Skill); ok {
		filters.Skill = canonical
	}

	jobs, total, err := s.store.ListEnrichedJobs(r.Context(), filters)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ListJobsResponse{
		Jobs:   jobs,
		Total:  total,
		Limit:  filters.Limit,
		Offset: filters.Offset,
	})
}

// handleJobStats counts stored jobs per role
func (s *Server) handleJobStats(w http.ResponseWriter, r *http.Request) {
	counts, err := s.store.CountByRole(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"by_role": counts, "total": total})
}
