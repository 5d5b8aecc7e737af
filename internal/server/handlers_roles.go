package server

import (
	"net/http"

	"github.com/jonathan/energy-jobboard/internal/roles"
)

// MatchRoleRequest is the body of POST /roles/match. When Jobs is set the
// title and description are ignored and every job is matched.
type MatchRoleRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Jobs        []roles.Job `json:"jobs" validate:"omitempty,max=10000"`
}

// RoleStatsRequest is the body of POST /roles/stats
type RoleStatsRequest struct {
	Jobs []roles.Job `json:"jobs" validate:"required,max=10000"`
}

// handleListRoles lists the role categories in match order
func (s *Server) handleListRoles(w http.ResponseWriter, _ *http.Request) {
	list := s.enricher.Matcher.Roles()
	s.jsonResponse(w, http.StatusOK, map[string]any{"roles": list, "count": len(list)})
}

// handleMatchRoles classifies one title, or a batch of jobs
func (s *Server) handleMatchRoles(w http.ResponseWriter, r *http.Request) {
	var req MatchRoleRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	m := s.enricher.Matcher
	if req.Jobs != nil {
		s.jsonResponse(w, http.StatusOK, map[string]any{"jobs": m.Batch(req.Jobs)})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"role": m.Match(req.Title, req.Description)})
}

// handleRoleStats aggregates role matches over a batch of jobs
func (s *Server) handleRoleStats(w http.ResponseWriter, r *http.Request) {
	var req RoleStatsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, s.enricher.Matcher.Statistics(req.Jobs))
}
