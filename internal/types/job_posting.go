// Package types provides type definitions for structured data used throughout the job board.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// JobPosting is a scraped or imported posting before enrichment. Skill
// fields hold raw strings exactly as the source wrote them.
type JobPosting struct {
	ID              string    `json:"id,omitempty"`
	URL             string    `json:"url,omitempty"`
	Title           string    `json:"title"`
	Company         string    `json:"company,omitempty"`
	Location        string    `json:"location,omitempty"`
	Description     string    `json:"description,omitempty"`
	Skills          []string  `json:"skills,omitempty"`
	RequiredSkills  []string  `json:"required_skills,omitempty"`
	PreferredSkills []string  `json:"preferred_skills,omitempty"`
	Keywords        []string  `json:"keywords,omitempty"`
	Source          string    `json:"source,omitempty"`
	PostedAt        time.Time `json:"posted_at,omitzero"`
}

// AllRawSkills returns every raw skill string on the posting in field order:
// skills, required, preferred, then keywords.
func (p JobPosting) AllRawSkills() []string {
	out := make([]string, 0, len(p.Skills)+len(p.RequiredSkills)+len(p.PreferredSkills)+len(p.Keywords))
	out = append(out, p.Skills...)
	out = append(out, p.RequiredSkills...)
	out = append(out, p.PreferredSkills...)
	out = append(out, p.Keywords...)
	return out
}

// RoleAssignment is the energy-sector role a posting was classified into.
type RoleAssignment struct {
	RoleID         string `json:"role_id"`
	RoleName       string `json:"role_name"`
	Confidence     string `json:"confidence"`
	MatchedKeyword string `json:"matched_keyword"`
}

// EnrichedJob is a posting with canonical skills and its role attached.
type EnrichedJob struct {
	JobPosting
	CanonicalSkills []string        `json:"canonical_skills"`
	SkillTargets    *SkillTargets   `json:"skill_targets,omitempty"`
	Role            *RoleAssignment `json:"role,omitempty"`
	EnrichedAt      time.Time       `json:"enriched_at"`
}
