package server

import (
	"net/http"
	"strings"

	"github.com/jonathan/energy-jobboard/internal/skills"
)

// SkillsRequest is the body of the skills routes
type SkillsRequest struct {
	Skills []string `json:"skills" validate:"required,max=10000"`
	Report bool     `json:"report,omitempty"`
}

// SkillsResponse carries a list of skills
type SkillsResponse struct {
	Skills []string `json:"skills"`
	Count  int      `json:"count"`
}

// ValidateResult is one entry of the /skills/validate response
type ValidateResult struct {
	Skill string `json:"skill"`
	Valid bool   `json:"valid"`
}

// ValidateResponse is the body of POST /skills/validate
type ValidateResponse struct {
	Valid   []string         `json:"valid"`
	Results []ValidateResult `json:"results"`
}

// NormalizeResult is one entry of the /skills/normalize response
type NormalizeResult struct {
	Input string           `json:"input"`
	Parts []NormalizedPart `json:"parts"`
}

// NormalizedPart is one compound fragment and its normalized form
type NormalizedPart struct {
	Part       string `json:"part"`
	Normalized string `json:"normalized,omitempty"`
	RejectedBy string `json:"rejected_by,omitempty"`
	Match      string `json:"match,omitempty"`
}

// handleReferenceSkills lists the reference taxonomy, optionally only the
// terms containing ?word=.
func (s *Server) handleReferenceSkills(w http.ResponseWriter, r *http.Request) {
	tx := s.taxonomy()
	var list []string
	if word := strings.TrimSpace(r.URL.Query().Get("word")); word != "" {
		list = tx.TermsContaining(word)
	} else {
		list = tx.All()
	}
	if list == nil {
		list = []string{}
	}
	s.jsonResponse(w, http.StatusOK, SkillsResponse{Skills: list, Count: len(list)})
}

// handleProcessSkills canonicalizes raw skills. With "report": true the
// response includes what was rejected and why.
func (s *Server) handleProcessSkills(w http.ResponseWriter, r *http.Request) {
	var req SkillsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if req.Report {
		s.jsonResponse(w, http.StatusOK, s.enricher.Processor.ProcessWithReport(req.Skills))
		return
	}
	kept := s.enricher.Processor.Process(req.Skills)
	s.jsonResponse(w, http.StatusOK, SkillsResponse{Skills: kept, Count: len(kept)})
}

// handleValidateSkills runs the structural skill validator.
func (s *Server) handleValidateSkills(w http.ResponseWriter, r *http.Request) {
	var req SkillsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := ValidateResponse{
		Valid:   skills.FilterValid(req.Skills),
		Results: make([]ValidateResult, len(req.Skills)),
	}
	for i, skill := range req.Skills {
		resp.Results[i] = ValidateResult{Skill: skill, Valid: skills.IsValid(skill)}
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

// handleNormalizationRules lists the normalization rule names in the order
// they run. They are the rejected_by values of /skills/normalize.
func (s *Server) handleNormalizationRules(w http.ResponseWriter, _ *http.Request) {
	names := skills.RuleNames()
	s.jsonResponse(w, http.StatusOK, map[string]any{"rules": names, "count": len(names)})
}

// handleNormalizeSkills splits and normalizes each skill without
// deduplication, showing the taxonomy match of every surviving part.
func (s *Server) handleNormalizeSkills(w http.ResponseWriter, r *http.Request) {
	var req SkillsRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	tx := s.taxonomy()
	results := make([]NormalizeResult, len(req.Skills))
	for i, raw := range req.Skills {
		parts := skills.SplitCompound(raw)
		res := NormalizeResult{Input: raw, Parts: make([]NormalizedPart, len(parts))}
		for j, part := range parts {
			np := NormalizedPart{Part: part}
			np.Normalized, np.RejectedBy = skills.NormalizeWithRule(part)
			if np.RejectedBy == "" {
				np.Match, _ = tx.Match(np.Normalized)
			}
			res.Parts[j] = np
		}
		results[i] = res
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"results": results})
}
