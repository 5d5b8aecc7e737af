// Package roles classifies job titles into energy-sector role categories
// using an ordered table of keyword patterns. The first pattern with a
// matching keyword wins; there is no scoring.
package roles

import (
	"math"
	"regexp"
)

// Confidence is how reliably a pattern identifies its role.
type Confidence string

// Confidence levels
const (
	High   Confidence = "high"
	Medium Confidence = "medium"
	Low    Confidence = "low"
)

// Pattern is one role category and the keywords that identify it.
type Pattern struct {
	RoleID      string
	RoleName    string
	Keywords    []*regexp.Regexp
	Confidence  Confidence
	Description string
}

// Match is the result of classifying one job.
type Match struct {
	RoleID         string     `json:"role_id"`
	RoleName       string     `json:"role_name"`
	Confidence     Confidence `json:"confidence"`
	MatchedKeyword string     `json:"matched_keyword"`
}

// Role identifies a role category.
type Role struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Confidence  Confidence `json:"confidence"`
	Description string     `json:"description,omitempty"`
}

// Job is the input to batch matching.
type Job struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// MatchedJob pairs a job with its match, which is nil when no role applies.
type MatchedJob struct {
	Job
	Match *Match `json:"role"`
}

// Stats aggregates matches over a batch of jobs. MatchRate is a percentage
// rounded to one decimal place.
type Stats struct {
	Total        int            `json:"total"`
	Matched      int            `json:"matched"`
	Unmatched    int            `json:"unmatched"`
	MatchRate    float64        `json:"match_rate"`
	ByRole       map[string]int `json:"by_role"`
	ByConfidence map[string]int `json:"by_confidence"`
}

// Matcher classifies jobs against an ordered pattern table. It is immutable
// and safe for concurrent use.
type Matcher struct {
	patterns []Pattern
}

var defaultMatcher = NewMatcher(defaultPatterns)

// NewMatcher returns a Matcher over patterns, tried in the order given.
func NewMatcher(patterns []Pattern) *Matcher {
	p := make([]Pattern, len(patterns))
	copy(p, patterns)
	return &Matcher{patterns: p}
}

// Default returns the Matcher over the built-in energy role table.
func Default() *Matcher {
	return defaultMatcher
}

// DefaultPatterns returns a copy of the built-in energy role table in match order.
func DefaultPatterns() []Pattern {
	p := make([]Pattern, len(defaultPatterns))
	copy(p, defaultPatterns)
	return p
}

// Match classifies a title and optional description. Both are searched as
// one string. It returns nil when no pattern matches.
func (m *Matcher) Match(title, description string) *Match {
	text := title + " " + description
	for _, p := range m.patterns {
		for _, kw := range p.Keywords {
			loc := kw.FindStringIndex(text)
			if loc == nil {
				continue
			}
			return &Match{
				RoleID:         p.RoleID,
				RoleName:       p.RoleName,
				Confidence:     p.Confidence,
				MatchedKeyword: text[loc[0]:loc[1]],
			}
		}
	}
	return nil
}

// Roles lists every role category in match order.
func (m *Matcher) Roles() []Role {
	out := make([]Role, len(m.patterns))
	for i, p := range m.patterns {
		out[i] = Role{ID: p.RoleID, Name: p.RoleName, Confidence: p.Confidence, Description: p.Description}
	}
	return out
}

// Batch matches every job, keeping input order.
func (m *Matcher) Batch(jobs []Job) []MatchedJob {
	out := make([]MatchedJob, len(jobs))
	for i, j := range jobs {
		out[i] = MatchedJob{Job: j, Match: m.Match(j.Title, j.Description)}
	}
	return out
}

// Statistics matches every job and aggregates the results.
func (m *Matcher) Statistics(jobs []Job) Stats {
	return Summarize(m.Batch(jobs))
}

// Summarize aggregates already-matched jobs.
func Summarize(matched []MatchedJob) Stats {
	stats := Stats{
		Total:        len(matched),
		ByRole:       make(map[string]int),
		ByConfidence: make(map[string]int),
	}
	for _, mj := range matched {
		if mj.Match == nil {
			stats.Unmatched++
			continue
		}
		stats.Matched++
		stats.ByRole[mj.Match.RoleID]++
		stats.ByConfidence[string(mj.Match.Confidence)]++
	}
	if stats.Total > 0 {
		rate := float64(stats.Matched) / float64(stats.Total) * 100
		stats.MatchRate = math.Round(rate*10) / 10
	}
	return stats
}
