package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/jonathan/energy-jobboard/internal/taxonomy"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 10 << 20

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status        string `json:"status"`
	Store         string `json:"store"`
	ReferenceSize int    `json:"reference_skills"`
	RoleCount     int    `json:"roles"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:        "ok",
		Store:         "disabled",
		ReferenceSize: s.taxonomy().Len(),
		RoleCount:     len(s.enricher.Matcher.Roles()),
	}

	if s.store != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		resp.Store = "ok"
		if err := s.store.Ping(ctx); err != nil {
			resp.Status = "degraded"
			resp.Store = "unavailable"
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) taxonomy() *taxonomy.Taxonomy {
	return s.enricher.Processor.Taxonomy()
}

// decode reads a JSON body into dst and validates its struct tags.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &ErrValidation{Field: "body", Message: "request body too large"}
		}
		return &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	if err := s.validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

// parseQueryInt reads a non-negative integer query parameter, capped at
// maxValue when maxValue is positive.
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}
